package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"likes-cli/internal/cli"

	"github.com/joho/godotenv"
)

// loadDotEnv reads ./.env when present. Variables already set in the environment win.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func main() {
	if err := loadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "warning: .env:", err)
	}

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
