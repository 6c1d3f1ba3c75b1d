package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port                 int
	DatabaseURL          string
	DatabaseType         string
	UVCFile              string
	CommissionerEmail    string
	CommissionerPassword string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("gevs", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.UVCFile, "uvc-file", "", "File of single-use voting credentials")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.CommissionerEmail, "commissioner-email", "", "Commissioner email (prefer env)")
	fs.StringVar(&cfg.CommissionerPassword, "commissioner-password", "", "Commissioner password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5001 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	if cfg.UVCFile == "" {
		cfg.UVCFile = os.Getenv("UVC_FILE")
		if cfg.UVCFile == "" {
			cfg.UVCFile = "uvcs.txt"
		}
	}

	// Bootstrap commissioner account - MUST be provided
	if cfg.CommissionerEmail == "" {
		cfg.CommissionerEmail = os.Getenv("COMMISSIONER_EMAIL")
	}
	if cfg.CommissionerEmail == "" {
		return Config{}, errors.New("COMMISSIONER_EMAIL required")
	}

	if cfg.CommissionerPassword == "" {
		cfg.CommissionerPassword = os.Getenv("COMMISSIONER_PASSWORD")
	}
	if cfg.CommissionerPassword == "" {
		return Config{}, errors.New("COMMISSIONER_PASSWORD required")
	}

	return cfg, nil
}
