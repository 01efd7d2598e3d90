package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"foodgram"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port        int `default:"8080"`
	BaseURL     string
	CORSOrigins []string `default:"[*]"`
}

type Auth struct {
	SecretKey string
	Audience  string
	Domain    string
}

// Recipes tunes short code generation for public recipe links.
type Recipes struct {
	ShortCodeLength   int `default:"6"`
	ShortCodeAttempts int `default:"32"`
}

type Media struct {
	Dir       string `default:"media"`
	URLPrefix string `default:"/media/"`
	MaxSide   int    `default:"1600"`
}

type Config struct {
	DB      DB
	Server  Server
	Auth    Auth
	Recipes Recipes
	Media   Media
}

const envPrefix = "FOODGRAM" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err = config.check(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) check() error {
	if c.Recipes.ShortCodeLength < 1 {
		return fmt.Errorf("%w: Recipes.ShortCodeLength must be positive", ErrConfiguration)
	}

	if c.Recipes.ShortCodeAttempts < 1 {
		return fmt.Errorf("%w: Recipes.ShortCodeAttempts must be positive", ErrConfiguration)
	}

	return nil
}
