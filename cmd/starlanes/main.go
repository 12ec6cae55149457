package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/example/starlanes/internal/console"
	"github.com/example/starlanes/internal/session"
	"github.com/example/starlanes/internal/store"
)

type config struct {
	SessionPath   string `env:"STARLANES_SESSION_PATH"`
	SessionDBPath string `env:"STARLANES_SESSION_DB"`
}

func main() {
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse config: %v", err)
	}
	if cfg.SessionPath == "" {
		cfg.SessionPath = store.DefaultSessionPath()
	}

	sessionPath := flag.String("session", cfg.SessionPath, "path to the saved session file")
	sessionDB := flag.String("session-db", cfg.SessionDBPath, "save to a sqlite database instead of a file")
	flag.Parse()

	var sessions store.SessionStore = store.NewFileStore(*sessionPath)
	if *sessionDB != "" {
		db, err := store.OpenSQLiteStore(context.Background(), *sessionDB)
		if err != nil {
			log.Fatalf("open session store: %v", err)
		}
		defer db.Close()
		sessions = db
	}

	frontEnd := console.New(os.Stdin, os.Stdout, sessions, "console")
	session.NewOrchestrator(frontEnd).Run()
}
