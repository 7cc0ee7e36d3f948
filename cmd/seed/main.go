package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"elocalpass/internal/logging"
	"elocalpass/internal/models"
	"elocalpass/internal/repositories"
	"elocalpass/internal/services"
	"elocalpass/pkg/database"
)

var version = "dev"

// Globals are shared by every seed command.
type Globals struct {
	DatabaseURL string `env:"DATABASE_URL" required:"" help:"Postgres connection string."`
	Migrate     bool   `default:"true" negatable:"" help:"Apply pending migrations first."`
	LogLevel    string `env:"LOG_LEVEL" default:"info" help:"Log level."`
}

// UserCmd upserts a staff account.
type UserCmd struct {
	Email    string `required:"" help:"Login email."`
	Name     string `required:"" help:"Display name."`
	Password string `required:"" env:"SEED_PASSWORD" help:"Plain-text password, stored bcrypt-hashed."`
	Role     string `default:"ADMIN" enum:"ADMIN,DISTRIBUTOR,LOCATION,SELLER" help:"Account role."`
	Inactive bool   `help:"Create the account disabled."`
}

func (c *UserCmd) Run(ctx context.Context, g *Globals) error {
	logger, err := logging.NewLogger(logging.Config{Component: "seed", Level: g.LogLevel})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	pool, err := database.NewPool(ctx, database.PoolConfig{DSN: g.DatabaseURL, MaxConns: 2}, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if g.Migrate {
		if err := database.Migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	hash, err := services.HashPassword(c.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(c.Email)),
		PasswordHash: hash,
		Name:         strings.TrimSpace(c.Name),
		Role:         models.Role(c.Role),
		IsActive:     !c.Inactive,
	}
	if err := repositories.NewUserRepository(pool).Upsert(ctx, user); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	logger.Info("seeded user", zap.String("email", user.Email), zap.String("role", string(user.Role)))
	return nil
}

var cli struct {
	Globals

	User    UserCmd          `cmd:"" help:"Create or update a staff user."`
	Version kong.VersionFlag `help:"Print version."`
}

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Name("seed"),
		kong.Description("Seed the eLocalPass database."),
		kong.Vars{"version": version},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	err := cmd.Run(&cli.Globals)
	cmd.FatalIfErrorf(err)
}
