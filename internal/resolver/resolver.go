// Package resolver deduplicates authors and holding locations across one
// import batch and assigns every row its surrogate key before anything is
// written. The write layer needs all foreign keys resolved up front, so the
// whole batch must be parsed before Resolve runs; there is no streaming
// variant on purpose.
package resolver

import (
	"opac/internal/entities"
	"opac/internal/jbisc"
)

// authorKey is the canonical tuple identifying an author. Two authors are
// the same entity iff every field matches; missing fields count as absent,
// not as wildcards. Two real people producing identical tuples collapse
// into one row; that is the accepted limit of exact-match identity.
type authorKey struct {
	FullName      string
	FirstName     string
	LastName      string
	FirstNameKana string
	LastNameKana  string
}

// Batch holds the fully resolved relational tuples for one import run,
// ready for a single transactional insert. Surrogate keys are assigned in
// first-seen order.
type Batch struct {
	Locations   []entities.HoldingLocation
	Authors     []entities.Author
	Books       []entities.Book
	BookAuthors []entities.BookAuthor
	Notes       []entities.Note
}

// Resolve walks the parsed batch once, interning authors by structural
// equality and holding locations by exact name.
func Resolve(books []*jbisc.Book) *Batch {
	batch := &Batch{}
	locationIDs := make(map[string]uint)
	authorIDs := make(map[authorKey]uint)

	for _, book := range books {
		bookID := uint(len(batch.Books) + 1)

		locationID, ok := locationIDs[book.HoldingLocation]
		if !ok {
			locationID = uint(len(batch.Locations) + 1)
			locationIDs[book.HoldingLocation] = locationID
			batch.Locations = append(batch.Locations, entities.HoldingLocation{
				ID:   locationID,
				Name: book.HoldingLocation,
			})
		}

		batch.Books = append(batch.Books, entities.Book{
			ID:                bookID,
			HoldingLocationID: locationID,
			HoldingRecord:     book.HoldingRecord,
			NBC:               book.NBC,
			ISBN:              book.ISBN,
			Title:             book.Title,
			Publisher:         book.Publisher,
			PublishedLocation: book.PublishedLocation,
			PublicationYear:   book.PublicationYear,
			PublicationMonth:  book.PublicationMonth,
			PageCount:         book.PageCount,
			Height:            book.Height,
			Width:             book.Width,
		})

		for _, attribution := range book.Authors {
			key := authorKey(attribution.Author)
			authorID, ok := authorIDs[key]
			if !ok {
				authorID = uint(len(batch.Authors) + 1)
				authorIDs[key] = authorID
				batch.Authors = append(batch.Authors, entities.Author{
					ID:            authorID,
					FullName:      attribution.Author.FullName,
					FirstName:     attribution.Author.FirstName,
					LastName:      attribution.Author.LastName,
					FirstNameKana: attribution.Author.FirstNameKana,
					LastNameKana:  attribution.Author.LastNameKana,
				})
			}

			batch.BookAuthors = append(batch.BookAuthors, entities.BookAuthor{
				BookID:   bookID,
				AuthorID: authorID,
				Role:     string(attribution.Role),
			})
		}

		for _, note := range book.Notes {
			batch.Notes = append(batch.Notes, entities.Note{
				ID:      uint(len(batch.Notes) + 1),
				BookID:  bookID,
				Content: note,
			})
		}
	}

	return batch
}
