package main

import (
	"database/sql"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	var (
		path string
		down bool
	)
	flag.StringVar(&path, "path", "cmd/migrate/migrations", "migrations directory")
	flag.BoolVar(&down, "down", false, "roll all migrations back instead of applying them")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading config from the environment")
	}

	dbAddr := os.Getenv("DB_ADDR")
	if dbAddr == "" {
		log.Fatal("DB_ADDR must be set")
	}

	db, err := sql.Open("postgres", dbAddr)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatalf("failed to prepare migration driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		log.Fatalf("failed to initialize migrations: %v", err)
	}

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}

	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Println("no new migrations to apply")
	case err != nil:
		log.Fatalf("migration failed: %v", err)
	default:
		log.Println("migrations applied successfully")
	}
}
