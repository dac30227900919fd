package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/lawflow/lawflow-backend/cmd"
)

func main() {
	// Load .env if present; deployed environments inject variables directly.
	_ = godotenv.Load()

	shouldRunMigrations := flag.Bool("migrations", false, "Run migrations")
	shouldRunServer := flag.Bool("server", true, "Run server")
	flag.Parse()

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if *shouldRunServer {
		if err := cmd.RunServer(); err != nil {
			log.Fatalf("server exited with error: %v", err)
		}
	}
}
