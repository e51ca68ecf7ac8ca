package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/frahmantamala/user-management/internal/user"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the reserved admin account and a sample site for development and testing.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm: %v", err)
		}

		if clearData {
			if err := db.Exec("DELETE FROM user_permissions").Error; err != nil {
				log.Fatalf("failed to clear user_permissions: %v", err)
			}
			if err := db.Exec("DELETE FROM users WHERE username <> ?", user.AdminUsername).Error; err != nil {
				log.Fatalf("failed to clear users: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("admin"), cfg.Security.BCryptCost)

		var exists int
		row := db.Raw("SELECT 1 FROM users WHERE username = ?", user.AdminUsername).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("admin user already exists")
		} else {
			if err := db.Exec(
				"INSERT INTO users (id, username, password_hash, full_name, is_active, is_locked, created_at, updated_at) VALUES (?, ?, ?, ?, true, false, now(), now())",
				uuid.NewString(), user.AdminUsername, string(hash), "Administrator",
			).Error; err != nil {
				log.Fatalf("failed to insert admin user: %v", err)
			}
			fmt.Println("Seeded admin user")
		}

		siteName := "default"
		row = db.Raw("SELECT 1 FROM sites WHERE name = ?", siteName).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("default site already exists")
		} else {
			if err := db.Exec(
				"INSERT INTO sites (id, name, url, created_at, updated_at) VALUES (?, ?, ?, now(), now())",
				uuid.NewString(), siteName, "http://localhost",
			).Error; err != nil {
				log.Fatalf("failed to insert default site: %v", err)
			}
			fmt.Println("Seeded default site")
		}
	},
}
