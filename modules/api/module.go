package api

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/example/user-admin-api/config"
	"github.com/example/user-admin-api/modules/auth"
	"github.com/example/user-admin-api/modules/users"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Module is the HTTP API module.
type Module struct {
	cfg       *config.Config
	app       *fiber.App
	authPort  auth.Port
	usersPort users.Port
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.DependentModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new api Module.
func NewModule(cfg *config.Config) *Module {
	return &Module{
		cfg: cfg,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *Module) Dependencies() []string {
	return []string{"auth", "users"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *Module) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "auth":
		m.authPort = auth.NewAdapter(container)
	case "users":
		m.usersPort = users.NewAdapter(container)
	}
}

// Start initializes the Fiber HTTP server.
func (m *Module) Start(_ context.Context) error {
	if m.authPort == nil {
		return fmt.Errorf("auth dependency not set")
	}
	if m.usersPort == nil {
		return fmt.Errorf("users dependency not set")
	}

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	m.app.Use(recover.New())
	m.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	m.app.Use(cors.New())

	m.setupRoutes()

	go func() {
		if err := m.app.Listen(m.cfg.HTTPAddr); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on %s", m.cfg.HTTPAddr)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *Module) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"addr": m.cfg.HTTPAddr,
		},
	}
}

// setupRoutes configures all API routes.
func (m *Module) setupRoutes() {
	handlers := NewHandlers(m.authPort, m.usersPort)

	m.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"module": "api",
		})
	})

	v1 := m.app.Group("/api/v1")

	// Public session route
	v1.Post("/session", handlers.CreateSession)

	// User management routes. Listing requires any valid token; writes
	// require the admin permission.
	userRoutes := v1.Group("/users")
	userRoutes.Get("/", RequireAuthenticated(m.authPort), handlers.ListUsers)
	userRoutes.Post("/", RequireAdmin(m.authPort), handlers.CreateUser)
	userRoutes.Put("/:id", RequireAdmin(m.authPort), handlers.EditUser)
	userRoutes.Delete("/:id", RequireAdmin(m.authPort), handlers.DeleteUser)
}

// errorHandler translates uncaught Fiber errors into the domain error
// envelope without leaking detail.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Status:  code,
		Message: message,
	})
}
