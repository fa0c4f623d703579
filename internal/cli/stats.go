package cli

import (
	"flag"
	"fmt"
	"os"

	"opac/internal/config"
	"opac/internal/database"
)

// StatsCommand prints row counts for an existing catalog database.
type StatsCommand struct {
	DatabasePath string
}

func NewStatsCommand() *StatsCommand {
	return &StatsCommand{}
}

func (cmd *StatsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)

	cfg := config.NewConfig()
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the catalog database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s stats [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print catalog database statistics.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *StatsCommand) Run() error {
	if _, err := os.Stat(cmd.DatabasePath); os.IsNotExist(err) {
		return fmt.Errorf("database not found: %s", cmd.DatabasePath)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	totalBooks, totalAuthors, err := db.GetStats()
	if err != nil {
		return fmt.Errorf("failed to read statistics: %w", err)
	}

	fmt.Printf("Database: %s\n", cmd.DatabasePath)
	fmt.Printf("Books: %d\n", totalBooks)
	fmt.Printf("Authors: %d\n", totalAuthors)
	return nil
}
