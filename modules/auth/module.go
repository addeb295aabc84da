package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/user-admin-api/config"
	"github.com/example/user-admin-api/modules/users"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Module provides session issuance and token verification.
type Module struct {
	cfg     *config.Config
	manager *TokenManager
	users   users.Port
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.DependentModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new auth Module.
func NewModule(cfg *config.Config) *Module {
	return &Module{
		cfg: cfg,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "auth"
}

// Dependencies returns the list of module dependencies.
func (m *Module) Dependencies() []string {
	return []string{"users"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *Module) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "users" {
		m.users = users.NewAdapter(container)
	}
}

// Start initializes the token manager.
func (m *Module) Start(_ context.Context) error {
	if m.users == nil {
		return fmt.Errorf("users dependency not set")
	}

	m.manager = NewTokenManager(TokenConfig{
		Secret: m.cfg.JWTSecret,
		Issuer: m.cfg.JWTIssuer,
		TTL:    m.cfg.TokenTTL,
	})

	if m.cfg.JWTSecret == "" {
		log.Println("[auth] Warning: no JWT secret configured, logins will fail")
	}

	log.Printf("[auth] Module started (token ttl: %s)", m.cfg.TokenTTL)
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[auth] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	if m.cfg.JWTSecret == "" {
		return mono.HealthStatus{
			Healthy: false,
			Message: "no signing secret configured",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container,
		"login",
		json.Unmarshal,
		json.Marshal,
		m.handleLogin,
	); err != nil {
		return fmt.Errorf("failed to register login service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container,
		"validate-token",
		json.Unmarshal,
		json.Marshal,
		m.handleValidateToken,
	); err != nil {
		return fmt.Errorf("failed to register validate-token service: %w", err)
	}

	log.Printf("[auth] Registered services: login, validate-token")
	return nil
}

// handleLogin verifies credentials against the users module and issues a
// bearer token carrying the user's permission flag.
func (m *Module) handleLogin(ctx context.Context, req LoginRequest, _ *mono.Msg) (LoginResponse, error) {
	creds, err := m.users.VerifyCredentials(ctx, req.NationalID, req.Password)
	if err != nil {
		return LoginResponse{}, err
	}

	token, err := m.manager.Issue(creds.UserID, creds.IsAdmin)
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		Token:     token,
		ExpiresIn: m.manager.TTL(),
	}, nil
}

// handleValidateToken verifies a bearer token. Verification failures are
// returned in-band, not as errors.
func (m *Module) handleValidateToken(_ context.Context, req ValidateTokenRequest, _ *mono.Msg) (ValidateTokenResponse, error) {
	claims, err := m.manager.Verify(req.Header)
	if err != nil {
		return ValidateTokenResponse{
			Valid: false,
			Error: err.Error(),
		}, nil
	}

	return ValidateTokenResponse{
		Valid:   true,
		Subject: claims.Subject,
		IsAdmin: claims.Admin,
	}, nil
}
