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
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		SiteURL  string `envconfig:"SITE_URL"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Enable  bool `envconfig:"ENABLE"`
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`

		CMS struct {
			BaseURL           string `envconfig:"BASE_URL"`
			Token             string `envconfig:"TOKEN"`
			TimeoutSeconds    int    `envconfig:"TIMEOUT_SECONDS"`
			RevalidateSeconds int    `envconfig:"REVALIDATE_SECONDS"`
		} `envconfig:"CMS"`

		Mail struct {
			Provider   string `envconfig:"PROVIDER"`
			ServiceID  string `envconfig:"SERVICE_ID"`
			TemplateID string `envconfig:"TEMPLATE_ID"`
			PublicKey  string `envconfig:"PUBLIC_KEY"`
			Recipient  string `envconfig:"RECIPIENT"`
			EmailJS    struct {
				Endpoint    string `envconfig:"ENDPOINT"`
				AccessToken string `envconfig:"ACCESS_TOKEN"`
			} `envconfig:"EMAILJS"`
			SES struct {
				Region          string `envconfig:"REGION"`
				SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			} `envconfig:"SES"`
		} `envconfig:"MAIL"`
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

		applyDefaults(&conf)

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}

	if cfg.App.Name == "" {
		cfg.App.Name = "Swasti Lifecare"
	}

	if cfg.App.SiteURL == "" {
		cfg.App.SiteURL = "https://swastilifescare.com"
	}

	if cfg.External.CMS.BaseURL == "" {
		cfg.External.CMS.BaseURL = "http://localhost:1337"
	}

	if cfg.External.CMS.RevalidateSeconds == 0 {
		cfg.External.CMS.RevalidateSeconds = 60
	}

	if cfg.External.Mail.Provider == "" {
		cfg.External.Mail.Provider = "emailjs"
	}

	if cfg.External.Mail.Recipient == "" {
		cfg.External.Mail.Recipient = "contact@swastilifescare.com"
	}

	if cfg.External.Mail.SES.Region == "" {
		cfg.External.Mail.SES.Region = "ap-south-1"
	}
}
