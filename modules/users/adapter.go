package users

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/example/user-admin-api/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Port defines the interface other modules use to access user management.
type Port interface {
	Create(ctx context.Context, req CreateUserRequest) (CreateUserResponse, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Edit(ctx context.Context, req EditUserRequest) (EditUserResponse, error)
	Delete(ctx context.Context, id string) error
	VerifyCredentials(ctx context.Context, nationalID, password string) (VerifyCredentialsResponse, error)
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

func call[Req any, Resp any](ctx context.Context, a *Adapter, service string, req *Req, resp *Resp) error {
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		resp,
	); err != nil {
		return fmt.Errorf("%s request failed: %w", service, err)
	}
	return nil
}

// Create creates a new user.
func (a *Adapter) Create(ctx context.Context, req CreateUserRequest) (CreateUserResponse, error) {
	var resp CreateUserResponse
	if err := call(ctx, a, "create-user", &req, &resp); err != nil {
		return CreateUserResponse{}, err
	}
	return resp, nil
}

// List returns all users ordered by creation time.
func (a *Adapter) List(ctx context.Context) ([]domain.Profile, error) {
	req := ListUsersRequest{}
	var resp ListUsersResponse
	if err := call(ctx, a, "list-users", &req, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// Edit updates the mutable fields of a user.
func (a *Adapter) Edit(ctx context.Context, req EditUserRequest) (EditUserResponse, error) {
	var resp EditUserResponse
	if err := call(ctx, a, "edit-user", &req, &resp); err != nil {
		return EditUserResponse{}, err
	}
	return resp, nil
}

// Delete removes a user by id.
func (a *Adapter) Delete(ctx context.Context, id string) error {
	req := DeleteUserRequest{ID: id}
	var resp DeleteUserResponse
	return call(ctx, a, "delete-user", &req, &resp)
}

// VerifyCredentials checks a national id/password pair.
func (a *Adapter) VerifyCredentials(ctx context.Context, nationalID, password string) (VerifyCredentialsResponse, error) {
	req := VerifyCredentialsRequest{NationalID: nationalID, Password: password}
	var resp VerifyCredentialsResponse
	if err := call(ctx, a, "verify-credentials", &req, &resp); err != nil {
		return VerifyCredentialsResponse{}, err
	}
	return resp, nil
}
