// Package books provides the catalog search queries.
//
// Searches match stored text as-is with LIKE patterns: titles, publishers
// and author names are inserted without case folding or any other
// normalization, so substring matches behave predictably against the
// original record text.
package books

import (
	"strconv"

	"gorm.io/gorm"

	"opac/internal/entities"
)

// Repository handles all book query operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) preloaded() *gorm.DB {
	return r.db.
		Preload("HoldingLocation").
		Preload("Notes").
		Preload("Authors.Author")
}

func (r *Repository) joinAuthors(tx *gorm.DB) *gorm.DB {
	return tx.
		Joins("LEFT JOIN book_authors ON book_authors.book_id = books.id").
		Joins("LEFT JOIN authors ON authors.id = book_authors.author_id")
}

// GetByID retrieves one book with its location, authors and notes.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.preloaded().First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAll retrieves every book in the catalog.
func (r *Repository) GetAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.preloaded().Find(&books).Error
	return books, err
}

// WithKeyword OR-combines substring match on title, author full name and
// publisher with exact match on publication year and ISBN.
func (r *Repository) WithKeyword(query string) ([]entities.Book, error) {
	pattern := "%" + query + "%"
	year, _ := strconv.Atoi(query)

	var books []entities.Book
	err := r.joinAuthors(r.preloaded()).
		Where("books.title LIKE ? OR authors.full_name LIKE ? OR books.publisher LIKE ? OR books.publication_year = ? OR books.isbn = ?",
			pattern, pattern, pattern, year, query).
		Distinct("books.*").
		Find(&books).Error
	return books, err
}

// WithTitle finds books whose title contains the given text.
func (r *Repository) WithTitle(title string) ([]entities.Book, error) {
	var books []entities.Book
	err := r.preloaded().
		Where("books.title LIKE ?", "%"+title+"%").
		Find(&books).Error
	return books, err
}

// WithAuthor finds books with an author whose full name contains the given
// text.
func (r *Repository) WithAuthor(name string) ([]entities.Book, error) {
	var books []entities.Book
	err := r.joinAuthors(r.preloaded()).
		Where("authors.full_name LIKE ?", "%"+name+"%").
		Distinct("books.*").
		Find(&books).Error
	return books, err
}

// WithPublisher finds books whose publisher contains the given text.
func (r *Repository) WithPublisher(name string) ([]entities.Book, error) {
	var books []entities.Book
	err := r.preloaded().
		Where("books.publisher LIKE ?", "%"+name+"%").
		Find(&books).Error
	return books, err
}

// WithYear finds books published in the given year.
func (r *Repository) WithYear(year int) ([]entities.Book, error) {
	var books []entities.Book
	err := r.preloaded().
		Where("books.publication_year = ?", year).
		Find(&books).Error
	return books, err
}

// WithISBN finds books with the exact ISBN.
func (r *Repository) WithISBN(isbn string) ([]entities.Book, error) {
	var books []entities.Book
	err := r.preloaded().
		Where("books.isbn = ?", isbn).
		Find(&books).Error
	return books, err
}
