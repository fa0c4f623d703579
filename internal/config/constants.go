package config

// Default paths
const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./opac.db"

	// DefaultExportPath is the default path for the bibliographic export file
	DefaultExportPath = "./jbisc.txt"
)
