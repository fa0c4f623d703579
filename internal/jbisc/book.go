package jbisc

import "fmt"

// Book is one fully normalized record from the export, before surrogate
// keys are assigned. Authors keep their source order.
type Book struct {
	Title             string
	Authors           []Attribution
	PublishedLocation string
	Publisher         string
	PublicationYear   int
	PublicationMonth  int
	PageCount         int
	Width             int
	Height            int
	HoldingLocation   string
	HoldingRecord     string
	ISBN              string
	NBC               string
	Notes             []string
}

// ParseBook normalizes one raw record. The TR (title/author) and PUB
// (publication) lines are required and fail the record when absent or
// malformed; a missing PHYS line just leaves the physical fields unset.
func ParseBook(record *RawRecord) (*Book, error) {
	tr := record.Get("tr")
	if tr == "" {
		return nil, fmt.Errorf("%w: tr", ErrMissingRequiredField)
	}
	pub := record.Get("pub")
	if pub == "" {
		return nil, fmt.Errorf("%w: pub", ErrMissingRequiredField)
	}

	title, rawAuthors := ParseTitleLine(tr)
	if title == "" {
		return nil, fmt.Errorf("%w: tr has no title", ErrMissingRequiredField)
	}

	publication, err := ParsePublication(pub)
	if err != nil {
		return nil, fmt.Errorf("pub line: %w", err)
	}

	book := &Book{
		Title:             title,
		Authors:           ParseAuthors(rawAuthors, record.GetAll("authorheading")),
		PublishedLocation: publication.Location,
		Publisher:         publication.Publisher,
		PublicationYear:   publication.Date.Year,
		PublicationMonth:  publication.Date.Month,
		HoldingLocation:   record.Get("holdingloc"),
		HoldingRecord:     record.Get("holdingsrecord"),
		ISBN:              record.Get("isbn"),
		NBC:               record.Get("nbc"),
		Notes:             record.GetAll("note"),
	}

	if phys := record.Get("phys"); phys != "" {
		physical := ParsePhysical(phys)
		book.PageCount = physical.PageCount
		book.Width = physical.Width
		book.Height = physical.Height
	}

	return book, nil
}
