package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/notely-dev/notely/db"
	"github.com/notely-dev/notely/internal/config"
	"github.com/notely-dev/notely/internal/metrics"
	"github.com/notely-dev/notely/internal/router"
	"github.com/notely-dev/notely/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	cfg := config.Load()

	conn, err := db.Connect(cfg.Database.DSN())

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	metrics.Init()

	users := store.NewGormUserStore(conn)
	notes := store.NewGormNoteStore(conn)

	r := router.NewRouter(users, notes)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
