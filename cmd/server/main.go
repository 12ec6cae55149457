package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/example/starlanes/internal/auth"
	srv "github.com/example/starlanes/internal/server"
	"github.com/example/starlanes/internal/store"
)

type config struct {
	Addr          string        `env:"STARLANES_ADDR" envDefault:":8080"`
	SessionDBPath string        `env:"STARLANES_SESSION_DB" envDefault:"starlanes.db"`
	TokenSecret   string        `env:"STARLANES_TOKEN_SECRET,required"`
	TokenLifetime time.Duration `env:"STARLANES_TOKEN_LIFETIME" envDefault:"720h"`
}

func main() {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse config: %v", err)
	}

	addr := flag.String("addr", cfg.Addr, "listen address")
	dbPath := flag.String("session-db", cfg.SessionDBPath, "path to session database")
	flag.Parse()

	sessions, err := store.OpenSQLiteStore(context.Background(), *dbPath)
	if err != nil {
		log.Fatalf("open session store: %v", err)
	}
	defer sessions.Close()

	issuer := auth.NewTokenIssuer([]byte(cfg.TokenSecret), cfg.TokenLifetime)
	gs := srv.NewGameServer(issuer, sessions)

	r := mux.NewRouter()

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	gs.Routes(r)

	server := &http.Server{
		Addr:         *addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	log.Printf("listening on %s", *addr)
	log.Fatal(server.ListenAndServe())
}
