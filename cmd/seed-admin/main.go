// seed-admin creates the base roles ("user", "admin") and an initial
// admin account.
//
// Usage (from backend directory):
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... \
//	ADMIN_EMAIL=... ADMIN_PASSWORD=... go run ./cmd/seed-admin
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/zaywreck/warehouse_backend/config"
	"github.com/zaywreck/warehouse_backend/models"
	"github.com/zaywreck/warehouse_backend/utils"
)

func main() {
	ctx := context.Background()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_EMAIL and ADMIN_PASSWORD are required")
		os.Exit(1)
	}

	cfg := config.Load()
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect database: %v\n", err)
		os.Exit(1)
	}

	models.MigrateTable(db)

	for _, name := range []string{models.DefaultRoleName, "admin"} {
		if _, created, err := models.FindOrCreateRole(ctx, db, name); err != nil {
			fmt.Fprintf(os.Stderr, "failed to ensure role %q: %v\n", name, err)
			os.Exit(1)
		} else if created {
			fmt.Printf("created role %q\n", name)
		}
	}

	user, err := models.RegisterUser(ctx, db, models.NewUser{
		Email:    adminEmail,
		Password: adminPassword,
		Username: "admin",
	})
	if errors.Is(err, utils.ErrDuplicateRecord) {
		fmt.Printf("admin account %s already exists, leaving it untouched\n", adminEmail)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create admin account: %v\n", err)
		os.Exit(1)
	}

	adminRole, _, err := models.FindOrCreateRole(ctx, db, "admin")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to lookup admin role: %v\n", err)
		os.Exit(1)
	}
	if err := db.WithContext(ctx).Model(&user).Association("Roles").Append(&adminRole); err != nil {
		fmt.Fprintf(os.Stderr, "failed to attach admin role: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seeded admin account %s (id=%d)\n", adminEmail, user.ID)
}
