package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/teamkudos/kudos-backend/config"
	"github.com/teamkudos/kudos-backend/internal/domain/entity"
)

// seed bootstraps a local database with an approved admin account plus a few
// teams and card categories.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()

	admin, err := entity.NewUser(entity.NewUserInput{
		Email:     "admin@kudos.local",
		Password:  "changeme123",
		FirstName: "Admin",
		LastName:  "User",
		JobTitle:  "Administrator",
	})
	if err != nil {
		log.Fatalf("failed to build admin user: %v", err)
	}
	admin.Role = entity.RoleAdmin
	admin.ApprovalStatus = entity.ApprovalApproved

	var id string
	err = db.QueryRowContext(ctx, `
		INSERT INTO users (id, email, password, first_name, last_name, role, job_title, approval_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role, approval_status = EXCLUDED.approval_status
		RETURNING id
	`, admin.ID, admin.Email.String(), admin.Password.Value(), admin.FirstName, admin.LastName,
		string(admin.Role), admin.JobTitle, string(admin.ApprovalStatus), admin.CreatedAt, admin.UpdatedAt).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=changeme123\n", id, admin.Email.String())

	for _, name := range []string{"Engineering", "Design", "Operations"} {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO teams (id, name, created_at, updated_at)
			VALUES (gen_random_uuid(), $1, now(), now())
			ON CONFLICT (name) DO NOTHING
		`, name); err != nil {
			log.Fatalf("failed to seed team %s: %v", name, err)
		}
	}
	fmt.Println("teams ensured")

	for _, name := range []string{"Teamwork", "Innovation", "Customer Focus", "Above and Beyond"} {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO categories (id, name, created_at, updated_at)
			VALUES (gen_random_uuid(), $1, now(), now())
			ON CONFLICT (name) DO NOTHING
		`, name); err != nil {
			log.Fatalf("failed to seed category %s: %v", name, err)
		}
	}
	fmt.Println("categories ensured")
}
