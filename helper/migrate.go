package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"visitorpass/config"
	"visitorpass/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var Actions = []string{ActionUp, ActionDown, ActionStepUp, ActionDrop}

var ErrUnknownAction = errors.New("unknown migration action")

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	extra := url.Values{}
	if cfg.DB.Postgres.MigrationTable != "" {
		extra.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	mig, err := migrate.New(migrationsSource, postgres.WriteEndpoint(cfg).DSN(extra))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// steps maps an action to its migrate call. Drop reverts every migration, not the schema itself.
func steps(mig *migrate.Migrate, action string) (func() error, error) {
	switch action {
	case ActionUp:
		return mig.Up, nil
	case ActionDown:
		return func() error { return mig.Steps(-1) }, nil
	case ActionStepUp:
		return func() error { return mig.Steps(1) }, nil
	case ActionDrop:
		return mig.Down, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
}

func Runner(cfg *config.Config, action string) error {
	if !slices.Contains(Actions, action) {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	mig, err := newMigrate(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	run, err := steps(mig, action)
	if err != nil {
		return err
	}

	if err = run(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, verr := mig.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		log.Warn().Err(verr).Msg("failed to read migration version")
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migrations applied")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}
