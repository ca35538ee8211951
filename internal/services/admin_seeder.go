package services

import (
	"inkwell/internal/config"
	"inkwell/internal/models"
	"inkwell/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type SeedAction string

const (
	SeedCreated SeedAction = "created"
	SeedUpdated SeedAction = "updated"
	SeedExists  SeedAction = "exists"
)

// AdminSeeder converges the admin table to exactly one record matching the
// configured identity. It runs once at startup, before the router accepts
// traffic, and is safe to run on every restart.
type AdminSeeder struct {
	repo repository.AdminRepository
	cfg  config.AdminConfig
}

func NewAdminSeeder(repo repository.AdminRepository, cfg config.AdminConfig) *AdminSeeder {
	return &AdminSeeder{repo: repo, cfg: cfg}
}

// Ensure reads, diffs and corrects the admin table in a single transaction:
// no rows creates the configured admin, extra rows beyond the first (by
// email sort order) are deleted, and a primary whose email or password has
// drifted from configuration is overwritten.
func (s *AdminSeeder) Ensure() (SeedAction, error) {
	var action SeedAction
	err := s.repo.InTransaction(func(tx repository.AdminRepository) error {
		admins, err := tx.FindAllOrderedByEmail()
		if err != nil {
			return err
		}

		if len(admins) == 0 {
			hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Password), bcryptCost)
			if err != nil {
				return err
			}
			action = SeedCreated
			return tx.Create(&models.Admin{
				Email:        s.cfg.Email,
				PasswordHash: string(hash),
			})
		}

		primary := admins[0]
		if len(admins) > 1 {
			extras := make([]string, 0, len(admins)-1)
			for _, a := range admins[1:] {
				extras = append(extras, a.ID)
			}
			if err := tx.DeleteByIDs(extras); err != nil {
				return err
			}
		}

		passwordMatches := bcrypt.CompareHashAndPassword(
			[]byte(primary.PasswordHash), []byte(s.cfg.Password)) == nil
		if primary.Email != s.cfg.Email || !passwordMatches {
			hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Password), bcryptCost)
			if err != nil {
				return err
			}
			primary.Email = s.cfg.Email
			primary.PasswordHash = string(hash)
			if err := tx.Update(&primary); err != nil {
				return err
			}
			action = SeedUpdated
			return nil
		}

		action = SeedExists
		return nil
	})
	if err != nil {
		return "", err
	}
	return action, nil
}

// VerifyPassword is the opaque credential check used by login.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
