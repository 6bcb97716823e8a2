package app

import (
	"wordpace/internal/config"
	"wordpace/internal/dataset"
	"wordpace/internal/db"
)

// DatasetLoader picks the dataset backend named by the config.
func DatasetLoader(cfg config.DatasetConfig) dataset.Loader {
	if cfg.Source == config.DatasetSourceSQLite {
		return db.NewStore(cfg.SQLitePath)
	}
	return dataset.NewFileStore(cfg.Path)
}
