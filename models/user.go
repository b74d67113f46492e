package models

import (
	"context"
	"errors"
	"time"

	"github.com/zaywreck/warehouse_backend/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const DefaultRoleName = "user"

type User struct {
	ID             int       `gorm:"primary_key" json:"id"`
	Username       string    `gorm:"size:50;index" json:"username"`
	Email          string    `gorm:"size:100;not null;unique" json:"email"`
	HashedPassword string    `gorm:"size:255;not null" json:"-"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	Roles          []Role    `gorm:"many2many:user_roles" json:"roles,omitempty"`
}

type Role struct {
	ID    int    `gorm:"primary_key" json:"id"`
	Name  string `gorm:"size:50;not null;unique" json:"name"`
	Users []User `gorm:"many2many:user_roles" json:"-"`
}

// NewUser is the registration payload. Username is optional.
type NewUser struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username"`
}

// PrepareGive strips the credential before the row leaves the server.
func (result *User) PrepareGive() {
	result.HashedPassword = ""
}

// RegisterUser creates an account for the given email, hashing the
// password with bcrypt. A duplicate email is a conflict. The default
// "user" role is attached when it exists; its absence is not an error.
func RegisterUser(ctx context.Context, db *gorm.DB, newUser NewUser) (User, error) {
	var user User

	var existing User
	err := db.WithContext(ctx).Where("email = ?", newUser.Email).First(&existing).Error
	if err == nil {
		return user, utils.ErrDuplicateRecord
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, err
	}

	hashed, err := utils.HashPassword(newUser.Password)
	if err != nil {
		return user, err
	}

	user = User{
		Username:       newUser.Username,
		Email:          newUser.Email,
		HashedPassword: string(hashed),
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return user, err
	}

	var defaultRole Role
	err = db.WithContext(ctx).Where("name = ?", DefaultRoleName).First(&defaultRole).Error
	if err == nil {
		if err := db.WithContext(ctx).Model(&user).Association("Roles").Append(&defaultRole); err != nil {
			return user, err
		}
		user.Roles = []Role{defaultRole}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, err
	}

	return user, nil
}

// Authenticate resolves the email and verifies the password. Unknown
// email and password mismatch return distinct errors so logging and tests
// can tell them apart; handlers present one uniform message.
func Authenticate(ctx context.Context, db *gorm.DB, email string, password string) (User, error) {
	var user User
	err := db.WithContext(ctx).Where("email = ?", email).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, utils.ErrUnknownEmail
	}
	if err != nil {
		return user, err
	}

	err = utils.ComparePassword(user.HashedPassword, password)
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return user, utils.ErrPasswordMismatch
	}
	if err != nil {
		return user, err
	}

	return user, nil
}

func UserByEmail(ctx context.Context, db *gorm.DB, email string) (User, error) {
	var user User
	err := db.WithContext(ctx).Preload("Roles").Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, utils.ErrorRecordNotFound
	}
	return user, err
}

// FindOrCreateRole backs seeding; application code never auto-creates
// roles.
func FindOrCreateRole(ctx context.Context, db *gorm.DB, name string) (Role, bool, error) {
	var role Role
	err := db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return role, false, err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		role = Role{Name: name}
		if err := db.WithContext(ctx).Create(&role).Error; err != nil {
			return role, false, err
		}
		return role, true, nil
	}

	return role, false, nil
}
