package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"opac/internal/config"
	"opac/internal/database"
	"opac/internal/services"
)

// ImportCommand handles importing a jbisc.txt bibliographic export into the
// catalog database.
type ImportCommand struct {
	ExportPath   string
	DatabasePath string
	Verbose      bool
	DryRun       bool
}

func NewImportCommand() *ImportCommand {
	return &ImportCommand{}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.ExportPath, "file", config.DefaultExportPath, "Path to the jbisc.txt export file")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Parse and resolve without writing to the database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import a flat bibliographic export into the catalog database.\n\n")
		fmt.Fprintf(os.Stderr, "The export is expected to contain one 'KEY: value' field per line,\n")
		fmt.Fprintf(os.Stderr, "with records separated by a '*' sentinel line.\n\n")
		fmt.Fprintf(os.Stderr, "A malformed record aborts the whole import before anything is written;\n")
		fmt.Fprintf(os.Stderr, "fix the reported record and re-run.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Import an export into the default database:\n")
		fmt.Fprintf(os.Stderr, "  %s import -file jbisc.txt\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Preview what would be imported:\n")
		fmt.Fprintf(os.Stderr, "  %s import -file jbisc.txt -dry-run -verbose\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ImportCommand) Run() error {
	fmt.Println("Catalog Import")
	fmt.Println("==============")

	if cmd.DryRun {
		fmt.Println("DRY RUN MODE - No changes will be made")
		fmt.Println()
	}

	if _, err := os.Stat(cmd.ExportPath); os.IsNotExist(err) {
		return fmt.Errorf("export file not found: %s", cmd.ExportPath)
	}

	fmt.Printf("File: %s\n", cmd.ExportPath)

	if cmd.DryRun {
		file, err := os.Open(cmd.ExportPath)
		if err != nil {
			return fmt.Errorf("failed to open export file: %w", err)
		}
		defer file.Close()

		batch, err := services.ParseBatch(file)
		if err != nil {
			return fmt.Errorf("failed to parse export: %w", err)
		}

		fmt.Printf("\nParsed %d books, %d authors, %d holding locations, %d notes\n",
			len(batch.Books), len(batch.Authors), len(batch.Locations), len(batch.Notes))

		if cmd.Verbose {
			fmt.Println("\n=== Books Found ===")
			for i, book := range batch.Books {
				fmt.Printf("%d. %q (%s)\n", i+1, book.Title, book.PublicationDate())
			}
		}

		fmt.Println("\nDry run complete. Use without -dry-run to import.")
		return nil
	}

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	fmt.Printf("Saving to database: %s\n", cmd.DatabasePath)

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	service := services.NewImportService(db)
	result, err := service.ImportFile(cmd.ExportPath)
	if err != nil {
		return fmt.Errorf("import failed, nothing was written: %w", err)
	}

	fmt.Println("\n=== Import Summary ===")
	fmt.Printf("Books imported: %d\n", result.BooksImported)
	fmt.Printf("Authors created: %d\n", result.AuthorsCreated)
	fmt.Printf("Holding locations created: %d\n", result.LocationsCreated)
	fmt.Printf("Notes created: %d\n", result.NotesCreated)

	fmt.Println("\nImport complete!")
	return nil
}
