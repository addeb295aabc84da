package users

import (
	"errors"
	"testing"
	"time"

	domain "github.com/example/user-admin-api/domain/user"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func testUser(nationalID string) *domain.User {
	return &domain.User{
		ID:           uuid.New().String(),
		Name:         "Test User",
		NationalID:   nationalID,
		BirthDate:    time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		PasswordHash: "$2a$04$fakehashfakehashfakehash",
		Note:         "note",
		IsAdmin:      false,
		CreatedAt:    time.Now(),
	}
}

func TestRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	user := testUser("111.111.111-11")
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.NationalID != user.NationalID {
		t.Errorf("NationalID = %v, want %v", found.NationalID, user.NationalID)
	}
}

func TestRepository_Create_DuplicateNationalID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	first := testUser("111.111.111-11")
	if err := repo.Create(first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	second := testUser("111.111.111-11")
	second.Name = "Impostor"
	err := repo.Create(second)
	if !errors.Is(err, ErrDuplicateNationalID) {
		t.Fatalf("Create() error = %v, want ErrDuplicateNationalID", err)
	}

	// First record is unaffected by the rejected insert.
	found, err := repo.FindByNationalID("111.111.111-11")
	if err != nil {
		t.Fatalf("FindByNationalID() error = %v", err)
	}
	if found.ID != first.ID {
		t.Errorf("surviving record id = %v, want %v", found.ID, first.ID)
	}
	if found.Name != "Test User" {
		t.Errorf("surviving record name = %v, want Test User", found.Name)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %v, want 1", count)
	}
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID("non-existent-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID() error = %v, want ErrNotFound", err)
	}
}

func TestRepository_FindByNationalID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	user := testUser("222.222.222-22")
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("existing user", func(t *testing.T) {
		found, err := repo.FindByNationalID("222.222.222-22")
		if err != nil {
			t.Fatalf("FindByNationalID() error = %v", err)
		}
		if found.ID != user.ID {
			t.Errorf("ID = %v, want %v", found.ID, user.ID)
		}
	})

	t.Run("unknown national id", func(t *testing.T) {
		_, err := repo.FindByNationalID("999.999.999-99")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("FindByNationalID() error = %v, want ErrNotFound", err)
		}
	})
}

func TestRepository_ListByCreation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	// Insert out of order; listing must come back oldest first.
	newest := testUser("333.333.333-33")
	newest.CreatedAt = base.Add(2 * time.Hour)
	oldest := testUser("111.111.111-11")
	oldest.CreatedAt = base
	middle := testUser("222.222.222-22")
	middle.CreatedAt = base.Add(time.Hour)

	for _, u := range []*domain.User{newest, oldest, middle} {
		if err := repo.Create(u); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	list, err := repo.ListByCreation()
	if err != nil {
		t.Fatalf("ListByCreation() error = %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len(list) = %v, want 3", len(list))
	}

	want := []string{"111.111.111-11", "222.222.222-22", "333.333.333-33"}
	for i, u := range list {
		if u.NationalID != want[i] {
			t.Errorf("list[%d].NationalID = %v, want %v", i, u.NationalID, want[i])
		}
	}
}

func TestRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	user := testUser("111.111.111-11")
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	user.Note = "updated note"
	user.IsAdmin = true
	if err := repo.Update(user); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, err := repo.FindByID(user.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Note != "updated note" {
		t.Errorf("Note = %v, want updated note", found.Note)
	}
	if !found.IsAdmin {
		t.Error("IsAdmin = false, want true")
	}
	if found.NationalID != user.NationalID {
		t.Errorf("NationalID changed: %v", found.NationalID)
	}

	t.Run("unknown id", func(t *testing.T) {
		missing := testUser("999.999.999-99")
		missing.ID = "non-existent-id"
		if err := repo.Update(missing); !errors.Is(err, ErrNotFound) {
			t.Errorf("Update() error = %v, want ErrNotFound", err)
		}
	})
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	user := testUser("111.111.111-11")
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(user.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.FindByID(user.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID() after delete error = %v, want ErrNotFound", err)
	}

	t.Run("unknown id", func(t *testing.T) {
		if err := repo.Delete("non-existent-id"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Delete() error = %v, want ErrNotFound", err)
		}
	})
}
