package users

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/user-admin-api/config"
	domain "github.com/example/user-admin-api/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Module owns the credential store and provides user management services.
type Module struct {
	cfg     *config.Config
	db      *gorm.DB
	service *Service
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new users Module.
func NewModule(cfg *config.Config) *Module {
	return &Module{
		cfg: cfg,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "users"
}

// Start opens the database, migrates the schema and seeds default users.
func (m *Module) Start(ctx context.Context) error {
	db, err := gorm.Open(sqlite.Open(m.cfg.DBPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&domain.User{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	repo := NewRepository(db)
	hasher := NewPasswordHasher(m.cfg.BcryptCost)
	m.service = NewService(repo, hasher)

	if m.cfg.SeedUsers {
		if err := seedDefaultUsers(ctx, repo, m.service); err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
	}

	log.Printf("[users] Module started (database: %s)", m.cfg.DBPath)
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[users] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.Ping(); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"database": m.cfg.DBPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	services := map[string]error{
		"create-user": helper.RegisterTypedRequestReplyService(
			container, "create-user", json.Unmarshal, json.Marshal, m.handleCreate),
		"list-users": helper.RegisterTypedRequestReplyService(
			container, "list-users", json.Unmarshal, json.Marshal, m.handleList),
		"edit-user": helper.RegisterTypedRequestReplyService(
			container, "edit-user", json.Unmarshal, json.Marshal, m.handleEdit),
		"delete-user": helper.RegisterTypedRequestReplyService(
			container, "delete-user", json.Unmarshal, json.Marshal, m.handleDelete),
		"verify-credentials": helper.RegisterTypedRequestReplyService(
			container, "verify-credentials", json.Unmarshal, json.Marshal, m.handleVerifyCredentials),
	}
	for name, err := range services {
		if err != nil {
			return fmt.Errorf("failed to register %s service: %w", name, err)
		}
	}

	log.Printf("[users] Registered services: create-user, list-users, edit-user, delete-user, verify-credentials")
	return nil
}

func (m *Module) handleCreate(ctx context.Context, req CreateUserRequest, _ *mono.Msg) (CreateUserResponse, error) {
	user, err := m.service.Create(ctx, CreateInput{
		Name:       req.Name,
		NationalID: req.NationalID,
		BirthDate:  req.BirthDate,
		Password:   req.Password,
		IsAdmin:    req.IsAdmin,
		Note:       req.Note,
	})
	if err != nil {
		return CreateUserResponse{}, err
	}

	return CreateUserResponse{
		ID:         user.ID,
		Name:       user.Name,
		NationalID: user.NationalID,
		BirthDate:  user.BirthDate,
		Note:       user.Note,
		IsAdmin:    user.IsAdmin,
		CreatedAt:  user.CreatedAt,
	}, nil
}

func (m *Module) handleList(ctx context.Context, _ ListUsersRequest, _ *mono.Msg) (ListUsersResponse, error) {
	list, err := m.service.List(ctx)
	if err != nil {
		return ListUsersResponse{}, err
	}

	profiles := make([]domain.Profile, 0, len(list))
	for _, u := range list {
		profiles = append(profiles, domain.NewProfile(u))
	}

	return ListUsersResponse{Users: profiles}, nil
}

func (m *Module) handleEdit(ctx context.Context, req EditUserRequest, _ *mono.Msg) (EditUserResponse, error) {
	user, err := m.service.Edit(ctx, req.ID, req.Note, req.IsAdmin)
	if err != nil {
		return EditUserResponse{}, err
	}

	return EditUserResponse{
		Note:    user.Note,
		IsAdmin: user.IsAdmin,
	}, nil
}

func (m *Module) handleDelete(ctx context.Context, req DeleteUserRequest, _ *mono.Msg) (DeleteUserResponse, error) {
	if err := m.service.Delete(ctx, req.ID); err != nil {
		return DeleteUserResponse{}, err
	}
	return DeleteUserResponse{}, nil
}

func (m *Module) handleVerifyCredentials(ctx context.Context, req VerifyCredentialsRequest, _ *mono.Msg) (VerifyCredentialsResponse, error) {
	user, err := m.service.VerifyCredentials(ctx, req.NationalID, req.Password)
	if err != nil {
		return VerifyCredentialsResponse{}, err
	}

	return VerifyCredentialsResponse{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
	}, nil
}
