package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/eringen/cleanblog"
	"github.com/eringen/cleanblog/views"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := "serve"
	if len(os.Args) >= 2 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("cleanblog %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func runServe() error {
	envFile := cleanblog.EnvOr("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := cleanblog.ConfigFromEnv().WithDefaults()
	app := cleanblog.New(cfg, views.Funcs(cfg))
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}

func printUsage() {
	fmt.Println(`cleanblog - a small blog publishing app built with Go, Echo, and templ

Usage:
  cleanblog [command]

Commands:
  serve         Start the web server (default)
  version       Print the cleanblog version
  help          Show this help message

Configuration is read from the environment and an optional .env file
(override the path with ENV_FILE). SESSION_SECRET is required.`)
}
