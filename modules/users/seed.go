package users

import (
	"context"
	"log"
	"time"
)

// Seed credentials for a fresh database. The admin account is the entry
// point for creating real users through the API.
const (
	seedAdminNationalID   = "123.456.789-12"
	seedRegularNationalID = "222.222.222-44"
	seedPassword          = "12345"
)

// seedDefaultUsers inserts one admin and one regular user when the store
// is empty. An already populated store is left untouched.
func seedDefaultUsers(ctx context.Context, repo *Repository, service *Service) error {
	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	birthDate := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

	seeds := []CreateInput{
		{
			Name:       "Admin",
			NationalID: seedAdminNationalID,
			BirthDate:  birthDate,
			Password:   seedPassword,
			IsAdmin:    true,
			Note:       "Seeded administrator",
		},
		{
			Name:       "Regular",
			NationalID: seedRegularNationalID,
			BirthDate:  birthDate,
			Password:   seedPassword,
			IsAdmin:    false,
			Note:       "Seeded regular user",
		},
	}

	for _, in := range seeds {
		if _, err := service.Create(ctx, in); err != nil {
			return err
		}
	}

	log.Printf("[users] Seeded %d default users", len(seeds))
	return nil
}
