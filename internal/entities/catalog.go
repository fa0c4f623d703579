package entities

import "fmt"

// HoldingLocation is a deduplicated physical location holding books.
type HoldingLocation struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:1024" json:"name"`
}

// Book is one normalized catalog record. Title, publisher and
// published-location text is stored exactly as parsed, with no case folding,
// so substring search behaves predictably.
type Book struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	HoldingLocationID uint   `gorm:"index;not null" json:"holding_location_id"`
	HoldingRecord     string `gorm:"size:1024;not null" json:"holding_record"`
	NBC               string `gorm:"column:nbc;index;size:30" json:"nbc,omitempty"`
	ISBN              string `gorm:"column:isbn;index;size:30" json:"isbn,omitempty"`
	Title             string `gorm:"size:1024;not null" json:"title"`
	Publisher         string `gorm:"size:1024" json:"publisher,omitempty"`
	PublishedLocation string `gorm:"size:1024" json:"published_location,omitempty"`
	PublicationYear   int    `gorm:"index" json:"publication_year,omitempty"`
	PublicationMonth  int    `gorm:"index" json:"publication_month,omitempty"`
	PageCount         int    `json:"page_count,omitempty"`
	Height            int    `json:"height,omitempty"`
	Width             int    `json:"width,omitempty"`

	HoldingLocation HoldingLocation `gorm:"foreignKey:HoldingLocationID" json:"holding_location,omitempty"`
	Authors         []BookAuthor    `gorm:"foreignKey:BookID" json:"authors,omitempty"`
	Notes           []Note          `gorm:"foreignKey:BookID" json:"notes,omitempty"`
}

// Author is a deduplicated author identity. Structurally equal authors from
// different records share one row.
type Author struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	FullName      string `gorm:"size:1024;not null;index" json:"full_name"`
	FirstName     string `gorm:"size:1024" json:"first_name,omitempty"`
	LastName      string `gorm:"size:1024" json:"last_name,omitempty"`
	FirstNameKana string `gorm:"size:1024" json:"first_name_kana,omitempty"`
	LastNameKana  string `gorm:"size:1024" json:"last_name_kana,omitempty"`
}

// BookAuthor links a book to an author with a contribution role.
type BookAuthor struct {
	BookID   uint   `gorm:"primaryKey;autoIncrement:false" json:"book_id"`
	AuthorID uint   `gorm:"primaryKey;autoIncrement:false" json:"author_id"`
	Role     string `gorm:"primaryKey;size:20" json:"role"`

	Author Author `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// Note is one free-text NOTE line attached to a book, in source order.
type Note struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	BookID  uint   `gorm:"index" json:"book_id"`
	Content string `gorm:"type:text" json:"content"`
}

func (HoldingLocation) TableName() string { return "holding_locations" }
func (Book) TableName() string            { return "books" }
func (Author) TableName() string          { return "authors" }
func (BookAuthor) TableName() string      { return "book_authors" }
func (Note) TableName() string            { return "notes" }

// roleSuffixes maps normalized roles back to the Japanese suffix used when
// displaying a non-author attribution.
var roleSuffixes = map[string]string{
	"editor":      "編著",
	"director":    "監修",
	"author":      "著",
	"translator":  "訳",
	"illustrator": "絵",
}

// PublicationDate renders the publication date as "2004" or "2004-8".
func (b Book) PublicationDate() string {
	result := fmt.Sprintf("%d", b.PublicationYear)
	if b.PublicationMonth > 0 {
		result += fmt.Sprintf("-%d", b.PublicationMonth)
	}
	return result
}

// Dimensions renders the physical size as "15x21cm", omitting unset parts.
func (b Book) Dimensions() string {
	result := ""
	if b.Width > 0 {
		result += fmt.Sprintf("%dx", b.Width)
	}
	if b.Height > 0 {
		result += fmt.Sprintf("%dcm", b.Height)
	}
	return result
}

// Formatted renders an attribution for display, re-appending the Japanese
// role suffix for anything other than a plain author credit.
func (ba BookAuthor) Formatted() string {
	result := ba.Author.FullName
	if ba.Role != "author" {
		result += roleSuffixes[ba.Role]
	}
	return result
}
