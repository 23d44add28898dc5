package mongo

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/accessflow/accessflow/internal/core/domain"
)

// Seed bootstraps an empty database: the admin profile is created first so it
// takes id 1 (the convention the UI keys admin badges on), followed by a
// default profile for self-registered accounts and the initial admin user.
// Seeding is skipped when profiles already exist or no admin credentials are
// configured.
func Seed(ctx context.Context, db *mongo.Database, adminEmail, adminPassword string, log zerolog.Logger) error {
	profiles := NewProfileRepository(db)
	users := NewUserRepository(db)

	count, err := profiles.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	adminProfile, err := profiles.Create(ctx, &domain.Profile{
		Name:        domain.AdminProfileName,
		Description: "Acesso administrativo completo",
	})
	if err != nil {
		return err
	}

	if _, err := profiles.Create(ctx, &domain.Profile{
		Name:        "comum",
		Description: "Acesso padrão",
	}); err != nil {
		return err
	}

	log.Info().Int64("admin_profile_id", adminProfile.ID).Msg("seeded profile catalog")

	if adminEmail == "" || adminPassword == "" {
		log.Warn().Msg("no admin credentials configured; skipping admin user seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin, err := users.Create(ctx, &domain.User{
		Name:         "Administrador",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
		Profiles:     []domain.Profile{*adminProfile},
	})
	if err != nil {
		return err
	}

	log.Info().Int64("user_id", admin.ID).Str("email", adminEmail).Msg("seeded admin user")
	return nil
}
