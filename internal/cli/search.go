package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"opac/internal/config"
	"opac/internal/database"
	"opac/internal/database/books"
	"opac/internal/entities"
)

// SearchCommand queries the catalog database.
type SearchCommand struct {
	DatabasePath string
	Keyword      string
	Title        string
	Author       string
	Publisher    string
	Year         int
	ISBN         string
}

func NewSearchCommand() *SearchCommand {
	return &SearchCommand{}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")
	fs.StringVar(&cmd.Keyword, "keyword", "", "Match title, author or publisher substring, or exact year/ISBN")
	fs.StringVar(&cmd.Title, "title", "", "Match a title substring")
	fs.StringVar(&cmd.Author, "author", "", "Match an author name substring")
	fs.StringVar(&cmd.Publisher, "publisher", "", "Match a publisher substring")
	fs.IntVar(&cmd.Year, "year", 0, "Match an exact publication year")
	fs.StringVar(&cmd.ISBN, "isbn", "", "Match an exact ISBN")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Search the catalog database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s search -keyword 雪\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s search -author 中谷 -db opac.db\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Keyword == "" && cmd.Title == "" && cmd.Author == "" &&
		cmd.Publisher == "" && cmd.Year == 0 && cmd.ISBN == "" {
		return fmt.Errorf("at least one of -keyword, -title, -author, -publisher, -year or -isbn is required")
	}

	return nil
}

func (cmd *SearchCommand) Run() error {
	if _, err := os.Stat(cmd.DatabasePath); os.IsNotExist(err) {
		return fmt.Errorf("database not found: %s", cmd.DatabasePath)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	repo := books.NewRepository(db.DB)

	var results []entities.Book
	switch {
	case cmd.Keyword != "":
		results, err = repo.WithKeyword(cmd.Keyword)
	case cmd.Title != "":
		results, err = repo.WithTitle(cmd.Title)
	case cmd.Author != "":
		results, err = repo.WithAuthor(cmd.Author)
	case cmd.Publisher != "":
		results, err = repo.WithPublisher(cmd.Publisher)
	case cmd.Year != 0:
		results, err = repo.WithYear(cmd.Year)
	case cmd.ISBN != "":
		results, err = repo.WithISBN(cmd.ISBN)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No matching books found")
		return nil
	}

	fmt.Printf("Found %d books:\n\n", len(results))
	for _, book := range results {
		printBook(book)
	}

	return nil
}

func printBook(book entities.Book) {
	fmt.Printf("%q", book.Title)
	if len(book.Authors) > 0 {
		var credits []string
		for _, attribution := range book.Authors {
			credits = append(credits, attribution.Formatted())
		}
		fmt.Printf(" / %s", strings.Join(credits, " ; "))
	}
	fmt.Println()

	fmt.Printf("  %s", book.PublicationDate())
	if book.Publisher != "" {
		fmt.Printf(", %s", book.Publisher)
	}
	if book.PublishedLocation != "" {
		fmt.Printf(" (%s)", book.PublishedLocation)
	}
	fmt.Println()

	if book.PageCount > 0 || book.Dimensions() != "" {
		fmt.Printf("  %dp %s\n", book.PageCount, book.Dimensions())
	}
	if book.ISBN != "" {
		fmt.Printf("  ISBN %s\n", book.ISBN)
	}
	fmt.Printf("  Held at %s (%s)\n", book.HoldingLocation.Name, book.HoldingRecord)
	for _, note := range book.Notes {
		fmt.Printf("  note: %s\n", note.Content)
	}
	fmt.Println()
}
