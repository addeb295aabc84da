package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	domain "github.com/example/user-admin-api/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Port defines the interface other modules use for authentication.
type Port interface {
	Login(ctx context.Context, nationalID, password string) (LoginResponse, error)
	ValidateHeader(ctx context.Context, authHeader string) (*domain.Claims, error)
}

// Adapter implements Port using the service container.
type Adapter struct {
	container mono.ServiceContainer
}

// Compile-time interface check.
var _ Port = (*Adapter)(nil)

// NewAdapter creates a new Adapter.
func NewAdapter(container mono.ServiceContainer) *Adapter {
	return &Adapter{
		container: container,
	}
}

// Login verifies credentials and returns an issued token.
func (a *Adapter) Login(ctx context.Context, nationalID, password string) (LoginResponse, error) {
	req := LoginRequest{NationalID: nationalID, Password: password}
	var resp LoginResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"login",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return LoginResponse{}, fmt.Errorf("login request failed: %w", err)
	}

	return resp, nil
}

// ValidateHeader verifies the token carried by an Authorization header
// and returns its claims.
func (a *Adapter) ValidateHeader(ctx context.Context, authHeader string) (*domain.Claims, error) {
	req := ValidateTokenRequest{Header: authHeader}
	var resp ValidateTokenResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"validate-token",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("validate-token request failed: %w", err)
	}

	if !resp.Valid {
		return nil, errors.New(resp.Error)
	}

	return &domain.Claims{
		Subject: resp.Subject,
		Admin:   resp.IsAdmin,
	}, nil
}
