package config

import "github.com/spf13/viper"

type (
	Config struct {
		Database
		Import
	}

	Database struct {
		Path string
	}
	Import struct {
		ExportPath string // Path to the jbisc.txt export to ingest
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("export_path", DefaultExportPath)

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Import: Import{
			ExportPath: v.GetString("EXPORT_PATH"),
		},
	}
}
