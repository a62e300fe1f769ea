// Command dbcheck verifies the MongoDB settings in .env before the API is
// started: it connects, pings, creates the indexes and prints collection counts.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/xyz-asif/tasktracker/internal/config"
	"github.com/xyz-asif/tasktracker/internal/database"
	"github.com/xyz-asif/tasktracker/internal/features/tasks"
	"github.com/xyz-asif/tasktracker/internal/features/todos"
)

func main() {
	cfg := config.Load()

	fmt.Printf("Testing MongoDB connection to %s...\n", cfg.MongoURI)
	dbCfg := database.DefaultConfig()
	dbCfg.URI = cfg.MongoURI
	dbCfg.DBName = cfg.MongoDB
	dbCfg.Timeout = cfg.MongoTimeout

	db, err := database.Connect(dbCfg)
	if err != nil {
		log.Fatal("MongoDB connection failed:", err)
	}
	defer db.Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoTimeout)
	defer cancel()

	if err := db.HealthCheck(ctx); err != nil {
		log.Fatal("MongoDB health check failed:", err)
	}
	fmt.Println("MongoDB connected")

	taskRepo := tasks.NewRepository(db.Database)
	todoRepo := todos.NewRepository(db.Database)

	if err := taskRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Creating task indexes failed:", err)
	}
	if err := todoRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Creating todo indexes failed:", err)
	}
	fmt.Println("Indexes ready")

	taskCount, err := taskRepo.CountAll(ctx)
	if err != nil {
		log.Fatal("Counting tasks failed:", err)
	}
	todoCount, err := todoRepo.CountAll(ctx)
	if err != nil {
		log.Fatal("Counting todos failed:", err)
	}

	if cfg.MongoTransactions {
		err := db.WithTransaction(ctx, func(ctx context.Context) error {
			_, err := taskRepo.CountAll(ctx)
			return err
		})
		if err != nil {
			log.Fatal("MONGO_TRANSACTIONS=true but transactions are unavailable:", err)
		}
		fmt.Println("Transactions supported")
	}

	fmt.Printf("\nDatabase %q: %d tasks, %d todos\n", cfg.MongoDB, taskCount, todoCount)
}
