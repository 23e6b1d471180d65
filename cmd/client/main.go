package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dan9191/contact-service/internal/client"
	"github.com/Dan9191/contact-service/internal/client/cli"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	defaultAddr := os.Getenv("SERVER_ADDR")
	if defaultAddr == "" {
		defaultAddr = "http://localhost:8080"
	}

	addr := flag.String("addr", defaultAddr, "contact service base URL")
	sessionPath := flag.String("session", client.DefaultSessionPath(), "session file path")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(*addr, *sessionPath)
	app.Run(ctx)
}
