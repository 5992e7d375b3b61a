package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"memory-game/cli"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found; using environment variables", "tag", "main")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
