package postgres

//nolint:revive
import (
	"errors"
	"net"
	"net/url"
	"time"
	"visitorpass/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Endpoint is one side of the read/write split.
type Endpoint struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	Timezone string
	SSLMode  string
}

// Connection carries the primary (Write) and replica (Read) pools. Both may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New opens both pools. The returned cleanup closes them.
func New(cfg *config.Config) (*Connection, func()) {
	conn := &Connection{
		Read:  open(cfg, "read", ReadEndpoint(cfg)),
		Write: open(cfg, "write", WriteEndpoint(cfg)),
	}

	return conn, func() {
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database connections")
		}
	}
}

func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db != nil {
			errs = append(errs, db.Close())
		}
	}

	return errors.Join(errs...)
}

func WriteEndpoint(cfg *config.Config) Endpoint {
	w := cfg.DB.Postgres.Write

	return Endpoint{
		Host: w.Host, Port: w.Port, Username: w.Username, Password: w.Password,
		Name: cfg.DB.Postgres.Prefix + w.Name, Timezone: w.Timezone, SSLMode: w.SSLMode,
	}
}

func ReadEndpoint(cfg *config.Config) Endpoint {
	r := cfg.DB.Postgres.Read

	return Endpoint{
		Host: r.Host, Port: r.Port, Username: r.Username, Password: r.Password,
		Name: cfg.DB.Postgres.Prefix + r.Name, Timezone: r.Timezone, SSLMode: r.SSLMode,
	}
}

// DSN renders the endpoint as a postgres:// URL. extra is appended to the query string.
func (e Endpoint) DSN(extra url.Values) string {
	query := url.Values{}
	if e.SSLMode != "" {
		query.Set("sslmode", e.SSLMode)
	}

	if e.Timezone != "" {
		query.Set("timezone", e.Timezone)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + e.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func open(cfg *config.Config, name string, endpoint Endpoint) *sqlx.DB {
	pool := cfg.DB.Postgres.Pool
	logger := log.With().Str("name", name).Str("host", endpoint.Host).Str("port", endpoint.Port).Str("dbName", endpoint.Name).Logger()

	for attempt := range max(cfg.DB.Postgres.MaxRetry, 1) {
		db, err := sqlx.Connect("postgres", endpoint.DSN(nil))
		if err == nil {
			db.SetMaxOpenConns(pool.MaxOpen)
			db.SetMaxIdleConns(pool.MaxIdle)
			db.SetConnMaxLifetime(time.Duration(pool.MaxLifetimeSecs) * time.Second)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt+1).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second)
	}

	logger.Fatal().Msgf("giving up on %s database after %d attempts", name, max(cfg.DB.Postgres.MaxRetry, 1))

	return nil
}
