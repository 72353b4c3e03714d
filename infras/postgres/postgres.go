package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"starlight/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 5
	postgresMaxOpenConnection = 10
)

var errNoConnection = errors.New("could not connect to postgres")

// DBName returns the database name with prefix if configured
func DBName(config *config.Config) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + config.DB.Postgres.Write.Name
	}

	return config.DB.Postgres.Write.Name
}

// DSN builds the connection string for the journal database.
func DSN(config *config.Config) string {
	write := config.DB.Postgres.Write

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		write.Username,
		write.Password,
		net.JoinHostPort(write.Host, write.Port),
		DBName(config),
		write.SSLMode,
	)
}

// New opens the journal database, retrying as configured.
func New(config *config.Config) (*sqlx.DB, error) {
	write := config.DB.Postgres.Write
	maxRetry := max(1, config.DB.Postgres.MaxRetry)
	waitTime := config.DB.Postgres.RetryWaitTime

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", DSN(config))
		if err == nil {
			log.
				Info().
				Str("host", write.Host).
				Str("port", write.Port).
				Str("dbName", DBName(config)).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		log.
			Error().
			Err(err).
			Str("host", write.Host).
			Str("port", write.Port).
			Str("dbName", DBName(config)).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil, errNoConnection
}
