package books

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"opac/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_books_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.HoldingLocation{},
		&entities.Author{},
		&entities.Book{},
		&entities.BookAuthor{},
		&entities.Note{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func seedCatalog(t *testing.T, repo *Repository) {
	t.Helper()

	require.NoError(t, repo.db.Create(&entities.HoldingLocation{ID: 1, Name: "Tokyo Main"}).Error)
	require.NoError(t, repo.db.Create(&[]entities.Author{
		{ID: 1, FullName: "山田太郎", LastName: "山田", FirstName: "太郎"},
		{ID: 2, FullName: "鈴木一郎", LastName: "鈴木", FirstName: "一郎"},
	}).Error)
	require.NoError(t, repo.db.Create(&[]entities.Book{
		{
			ID: 1, HoldingLocationID: 1, HoldingRecord: "TM-0001",
			Title: "雪の結晶", Publisher: "岩波書店", PublishedLocation: "東京",
			PublicationYear: 1994, PublicationMonth: 10, ISBN: "4003112431",
		},
		{
			ID: 2, HoldingLocationID: 1, HoldingRecord: "TM-0002",
			Title: "プログラミング入門", Publisher: "技術評論社", PublishedLocation: "東京",
			PublicationYear: 2004, PublicationMonth: 8, ISBN: "4774121234",
		},
	}).Error)
	require.NoError(t, repo.db.Create(&[]entities.BookAuthor{
		{BookID: 1, AuthorID: 1, Role: "author"},
		{BookID: 2, AuthorID: 2, Role: "author"},
		{BookID: 2, AuthorID: 1, Role: "translator"},
	}).Error)
	require.NoError(t, repo.db.Create(&[]entities.Note{
		{ID: 1, BookID: 1, Content: "岩波文庫"},
	}).Error)
}

func TestRepository_GetByID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	book, err := repo.GetByID(1)

	require.NoError(t, err)
	assert.Equal(t, "雪の結晶", book.Title)
	assert.Equal(t, "Tokyo Main", book.HoldingLocation.Name)
	require.Len(t, book.Authors, 1)
	assert.Equal(t, "山田太郎", book.Authors[0].Author.FullName)
	require.Len(t, book.Notes, 1)
	assert.Equal(t, "岩波文庫", book.Notes[0].Content)
}

func TestRepository_WithTitle(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	books, err := repo.WithTitle("結晶")

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "雪の結晶", books[0].Title)
}

func TestRepository_WithAuthor(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	// 山田 appears as author of book 1 and translator of book 2.
	books, err := repo.WithAuthor("山田")

	require.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestRepository_WithPublisher(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	books, err := repo.WithPublisher("岩波")

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "雪の結晶", books[0].Title)
}

func TestRepository_WithYear(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	books, err := repo.WithYear(2004)

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "プログラミング入門", books[0].Title)
}

func TestRepository_WithISBN(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	books, err := repo.WithISBN("4003112431")

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "雪の結晶", books[0].Title)
}

func TestRepository_WithKeyword_MatchesAcrossFields(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	tests := []struct {
		name    string
		keyword string
		titles  []string
	}{
		{"title substring", "結晶", []string{"雪の結晶"}},
		{"author substring", "鈴木", []string{"プログラミング入門"}},
		{"publisher substring", "技術評論社", []string{"プログラミング入門"}},
		{"exact year", "1994", []string{"雪の結晶"}},
		{"exact isbn", "4774121234", []string{"プログラミング入門"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books, err := repo.WithKeyword(tt.keyword)
			require.NoError(t, err)
			require.Len(t, books, len(tt.titles))
			for i, title := range tt.titles {
				assert.Equal(t, title, books[i].Title)
			}
		})
	}
}

func TestRepository_WithKeyword_NoDuplicateRowsFromJoin(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	seedCatalog(t, repo)

	// Book 2 has two author rows; the join must not duplicate it.
	books, err := repo.WithKeyword("プログラミング")

	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestRepository_SubstringSearchIsCaseSensitiveOnStoredText(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.db.Create(&entities.HoldingLocation{ID: 1, Name: "x"}).Error)
	require.NoError(t, repo.db.Create(&entities.Book{
		ID: 1, HoldingLocationID: 1, HoldingRecord: "r", Title: "Snow Crystals",
	}).Error)

	// Stored text is matched as-is; no case folding is applied on insert.
	books, err := repo.WithTitle("Crystals")
	require.NoError(t, err)
	assert.Len(t, books, 1)
}
