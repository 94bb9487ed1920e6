package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/hitoshi/campman/internal/app"
)

func main() {
	// .env はローカル開発用。存在しなくてもよい。
	_ = godotenv.Load()

	if err := app.Run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "campman: %v\n", err)
		os.Exit(1)
	}
}
