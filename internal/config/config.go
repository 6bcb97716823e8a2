package config

import "time"

// Config is the root configuration shared by the trainer and the server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Training TrainingConfig `yaml:"training"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"120s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings. List values are comma-separated.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// DatasetConfig tells the server where the scored words live.
type DatasetConfig struct {
	Source     string `yaml:"source"      env:"DATASET_SOURCE"      env-default:"json"`
	Path       string `yaml:"path"        env:"DATASET_PATH"        env-default:"./artifacts/datasets/game_words.json"`
	SQLitePath string `yaml:"sqlite_path" env:"DATASET_SQLITE_PATH" env-default:"./artifacts/game_words.db"`
}

// TrainingConfig holds the offline scoring pipeline settings.
type TrainingConfig struct {
	OutDir       string `yaml:"out_dir"       env:"TRAINING_OUT_DIR"       env-default:"./artifacts"`
	SQLitePath   string `yaml:"sqlite_path"   env:"TRAINING_SQLITE_PATH"`
	Trees        int    `yaml:"trees"         env:"TRAINING_TREES"         env-default:"100"`
	MaxDepth     int    `yaml:"max_depth"     env:"TRAINING_MAX_DEPTH"     env-default:"5"`
	Seed         uint64 `yaml:"seed"          env:"TRAINING_SEED"          env-default:"42"`
	Workers      int    `yaml:"workers"       env:"TRAINING_WORKERS"       env-default:"0"`
	SegmentWords int    `yaml:"segment_words" env:"TRAINING_SEGMENT_WORDS" env-default:"2000"`
}
