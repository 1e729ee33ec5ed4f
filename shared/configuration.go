package shared

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const CONFIG_PREFIX = "WMK"

type AppConfig struct {
	MongoUri    string   `split_words:"true" default:"mongodb://127.0.0.1:27017"`
	MongoDbName string   `split_words:"true" default:"wheremykidsat"`
	ListenPort  string   `split_words:"true" default:"8000"`
	CorsOrigins []string `split_words:"true" default:"*"`
}

func InitAppConfiguration() (config *AppConfig, err error) {
	// a missing .env is fine, env vars may come from the process environment
	_ = godotenv.Load()

	config = &AppConfig{}
	if err := envconfig.Process(CONFIG_PREFIX, config); err != nil {
		return nil, fmt.Errorf("failed to parse env vars: %v", err)
	}

	return
}
