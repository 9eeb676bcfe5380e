package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gi8lino/jirafred/internal/app"
)

var (
	Version = "dev"
)

func main() {
	if err := app.Run(context.Background(), Version, os.Args[1:], os.Getenv, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
