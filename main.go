package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/user-admin-api/config"
	"github.com/example/user-admin-api/modules/api"
	"github.com/example/user-admin-api/modules/auth"
	"github.com/example/user-admin-api/modules/users"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Optional .env for local development; the environment wins.
	_ = godotenv.Load()

	cfg, err := config.Environ()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework
	// Order: independent modules first, then dependent modules
	app.Register(users.NewModule(cfg)) // Independent module (credential store)
	app.Register(auth.NewModule(cfg))  // Depends on users
	app.Register(api.NewModule(cfg))   // Depends on auth and users

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(cfg.HTTPAddr)

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(addr string) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("REST API Endpoints (%s):", addr)
	log.Println("")
	log.Println("  Public Endpoints:")
	log.Println("  POST   /api/v1/session    - Login and get a bearer token")
	log.Println("  GET    /health            - Health check")
	log.Println("")
	log.Println("  Protected Endpoints (require Bearer token):")
	log.Println("  GET    /api/v1/users      - List users (any valid token)")
	log.Println("  POST   /api/v1/users      - Create a user (admin only)")
	log.Println("  PUT    /api/v1/users/:id  - Edit note/permission (admin only)")
	log.Println("  DELETE /api/v1/users/:id  - Delete a user (admin only)")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
