package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type App struct {
	Port            string `env:"API_PORT" envDefault:"8080"`
	DBConnectionURL string `env:"DB_CONNECTION_URL,required"`
	JWTSecret       string `env:"JWT_SECRET,required"`

	EtherscanAPIURL string        `env:"ETHERSCAN_API_URL" envDefault:"https://api.etherscan.io/api"`
	EtherscanAPIKey string        `env:"ETHERSCAN_API_KEY,required"`
	ExplorerTimeout time.Duration `env:"EXPLORER_TIMEOUT" envDefault:"15s"`

	OpenAIAPIURL   string        `env:"OPENAI_API_URL" envDefault:"https://api.openai.com/v1/chat/completions"`
	OpenAIAPIKey   string        `env:"OPENAI_API_KEY,required"`
	OpenAIModel    string        `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	SummaryTimeout time.Duration `env:"SUMMARY_TIMEOUT" envDefault:"30s"`

	MaxWalletsPerUser int           `env:"MAX_WALLETS_PER_USER" envDefault:"10"`
	TokenExpiration   time.Duration `env:"TOKEN_EXPIRATION" envDefault:"168h"`
}

func NewApp() (App, error) {
	if os.Getenv("GO_ENV") == "local" {
		_ = godotenv.Load(".env")
	}

	var cfg App
	if err := env.Parse(&cfg); err != nil {
		return App{}, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}
