package models_test

import (
	"context"
	"errors"
	"testing"

	"github.com/zaywreck/warehouse_backend/models"
	"github.com/zaywreck/warehouse_backend/utils"
)

func TestRegisterUser_DuplicateEmailConflicts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user, err := models.RegisterUser(ctx, db, models.NewUser{
		Email:    "a@example.com",
		Password: "secret",
		Username: "a",
	})
	if err != nil {
		t.Fatalf("first register: %v", err)
	}
	if user.HashedPassword == "secret" || user.HashedPassword == "" {
		t.Fatal("password must be stored hashed")
	}

	_, err = models.RegisterUser(ctx, db, models.NewUser{
		Email:    "a@example.com",
		Password: "other",
	})
	if !errors.Is(err, utils.ErrDuplicateRecord) {
		t.Fatalf("expected ErrDuplicateRecord, got %v", err)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "a@example.com").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one user row, got %d", count)
	}
}

func TestRegisterUser_AttachesDefaultRoleWhenPresent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, _, err := models.FindOrCreateRole(ctx, db, models.DefaultRoleName); err != nil {
		t.Fatalf("seed role: %v", err)
	}

	user, err := models.RegisterUser(ctx, db, models.NewUser{
		Email:    "b@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(user.Roles) != 1 || user.Roles[0].Name != models.DefaultRoleName {
		t.Fatalf("expected default role attached, got %+v", user.Roles)
	}
}

func TestRegisterUser_MissingDefaultRoleIsNotFatal(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user, err := models.RegisterUser(ctx, db, models.NewUser{
		Email:    "c@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("register without role table content: %v", err)
	}
	if len(user.Roles) != 0 {
		t.Fatalf("expected no roles, got %+v", user.Roles)
	}
}

func TestAuthenticate_FailureModesAreDistinct(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := models.RegisterUser(ctx, db, models.NewUser{
		Email:    "d@example.com",
		Password: "secret",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := models.Authenticate(ctx, db, "missing@example.com", "secret"); !errors.Is(err, utils.ErrUnknownEmail) {
		t.Fatalf("expected ErrUnknownEmail, got %v", err)
	}

	if _, err := models.Authenticate(ctx, db, "d@example.com", "wrong"); !errors.Is(err, utils.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}

	user, err := models.Authenticate(ctx, db, "d@example.com", "secret")
	if err != nil {
		t.Fatalf("valid login: %v", err)
	}
	if user.Email != "d@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}
