package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"8080"`
		Host     string `envconfig:"HOST"      default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME" default:"starlight"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
		Contact  string `envconfig:"CONTACT"  default:"hello@starlight.example"`
		// TrustProxy honours X-Forwarded-For and X-Real-IP when resolving the
		// client address. Enable only behind a proxy that overwrites them.
		TrustProxy bool `envconfig:"TRUST_PROXY"`
		CORS       struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"   default:"Content-Type,X-Visitor-ID"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"   default:"GET,POST,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"   default:"*"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"   default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"20"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Site struct {
		MarkupPath           string `envconfig:"MARKUP_PATH"`
		SubmitTimeoutSeconds int    `envconfig:"SUBMIT_TIMEOUT_SECONDS" default:"15"`
		HoneypotField        string `envconfig:"HONEYPOT_FIELD"         default:"website"`
		IntersectionObserver bool   `envconfig:"INTERSECTION_OBSERVER"  default:"true"`
		SessionTTLMinutes    int    `envconfig:"SESSION_TTL_MINUTES"    default:"30"`
		SessionCookie        string `envconfig:"SESSION_COOKIE"         default:"starlight_visitor"`
		SessionMax           int    `envconfig:"SESSION_MAX"            default:"10000"`
		BookingEndpoint      string `envconfig:"BOOKING_ENDPOINT"`
	} `envconfig:"SITE"`

	Diagram struct {
		CenterX    float64 `envconfig:"CENTER_X"    default:"200"`
		CenterY    float64 `envconfig:"CENTER_Y"    default:"200"`
		Radius     float64 `envconfig:"RADIUS"      default:"180"`
		EvenFill   string  `envconfig:"EVEN_FILL"   default:"#1d2247"`
		OddFill    string  `envconfig:"ODD_FILL"    default:"#2b3266"`
		StrokeFill string  `envconfig:"STROKE_FILL" default:"rgba(255,255,255,0.12)"`
	} `envconfig:"DIAGRAM"`

	Journal struct {
		Backend   string `envconfig:"BACKEND"   default:"memory"`
		Namespace string `envconfig:"NAMESPACE" default:"starlight_bookings"`
		Diskv     struct {
			BasePath string `envconfig:"BASE_PATH" default:"./data/journal"`
		} `envconfig:"DISKV"`
	} `envconfig:"JOURNAL"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"     default:"localhost"`
				Port     string `envconfig:"PORT"     default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"       default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Write          struct {
				Host     string `envconfig:"HOST"     default:"localhost"`
				Port     string `envconfig:"PORT"     default:"5432"`
				Username string `envconfig:"USER"     default:"postgres"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"     default:"starlight"`
				SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME" default:"starlight-journal"`
			Region          string `envconfig:"REGION"      default:"auto"`
		} `envconfig:"S3"`
		Kafka struct {
			Brokers              []string `envconfig:"BROKERS"`
			Topic                string   `envconfig:"TOPIC" default:"booking.recorded"`
			BatchTimeoutMillis   int      `envconfig:"BATCH_TIMEOUT_MILLIS" default:"10"`
			PublishTimeoutMillis int      `envconfig:"PUBLISH_TIMEOUT_MILLIS" default:"2000"`
			SASL                 struct {
				Username string `envconfig:"USERNAME"`
				Password string `envconfig:"PASSWORD"`
			} `envconfig:"SASL"`
		} `envconfig:"KAFKA"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

// Get returns the process configuration, loading it on first use. A missing
// .env file is not fatal.
func Get() *Config {
	if !initialized {
		_ = Init()
	}

	return &conf
}

// Default builds a fresh configuration from the default tags without loading
// .env. Tests use it as a base.
func Default() *Config {
	var cfg Config

	if err := envconfig.Process("STARLIGHT_DEFAULTS_UNUSED", &cfg); err != nil {
		log.Error().Err(err).Msg("Failed to apply configuration defaults")
	}

	return &cfg
}
