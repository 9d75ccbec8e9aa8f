package config

import (
	"time"

	"github.com/spf13/viper"

	"model-serving-service/internal/domain"
)

type Config struct {
	Server  ServerConfig
	Dataset domain.DatasetConfig
	Model   domain.ModelConfig
	Storage StorageConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Host  string
	Port  int
	Debug bool
}

type StorageConfig struct {
	ModelPath      string
	DataPath       string
	PersistTimeout time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads configuration from the environment with defaults. Invalid
// dataset shape or hyperparameters are fatal here so the process never
// starts with a config the pipeline cannot use.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 5000)
	v.SetDefault("DEBUG", false)
	v.SetDefault("RANDOM_SEED", 42)
	v.SetDefault("N_SAMPLES", 1000)
	v.SetDefault("N_FEATURES", 4)
	v.SetDefault("NOISE_LEVEL", 0.1)
	v.SetDefault("N_ESTIMATORS", 100)
	v.SetDefault("RANDOM_STATE", 42)
	v.SetDefault("MAX_DEPTH", 10)
	v.SetDefault("MIN_SAMPLES_SPLIT", 2)
	v.SetDefault("MIN_SAMPLES_LEAF", 1)
	v.SetDefault("MODEL_PATH", "models/model.json")
	v.SetDefault("DATA_PATH", "data/dataset.csv")
	v.SetDefault("PERSIST_TIMEOUT", "10s")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("LOGGER_FILE", "")

	// Env
	v.AutomaticEnv()

	persistTimeout, err := time.ParseDuration(v.GetString("PERSIST_TIMEOUT"))
	if err != nil {
		persistTimeout = 10 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:  v.GetString("SERVER_HOST"),
			Port:  v.GetInt("SERVER_PORT"),
			Debug: v.GetBool("DEBUG"),
		},
		Dataset: domain.DatasetConfig{
			Seed:       v.GetInt64("RANDOM_SEED"),
			Samples:    v.GetInt("N_SAMPLES"),
			Features:   v.GetInt("N_FEATURES"),
			NoiseLevel: v.GetFloat64("NOISE_LEVEL"),
		},
		Model: domain.ModelConfig{
			Estimators:      v.GetInt("N_ESTIMATORS"),
			RandomState:     v.GetInt64("RANDOM_STATE"),
			MaxDepth:        v.GetInt("MAX_DEPTH"),
			MinSamplesSplit: v.GetInt("MIN_SAMPLES_SPLIT"),
			MinSamplesLeaf:  v.GetInt("MIN_SAMPLES_LEAF"),
		},
		Storage: StorageConfig{
			ModelPath:      v.GetString("MODEL_PATH"),
			DataPath:       v.GetString("DATA_PATH"),
			PersistTimeout: persistTimeout,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
			File:   v.GetString("LOGGER_FILE"),
		},
	}

	if err := cfg.Dataset.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Model.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
