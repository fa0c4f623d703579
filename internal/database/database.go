package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"opac/internal/entities"
	"opac/internal/resolver"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.HoldingLocation{},
		&entities.Author{},
		&entities.Book{},
		&entities.BookAuthor{},
		&entities.Note{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InsertBatch writes a fully resolved import batch in a single transaction,
// parents before children so every foreign key already exists when the row
// referencing it lands. A failure anywhere rolls the whole batch back; a
// partial import must never leave orphaned rows behind.
func (d *Database) InsertBatch(batch *resolver.Batch) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		if len(batch.Locations) > 0 {
			if err := tx.Create(&batch.Locations).Error; err != nil {
				return fmt.Errorf("failed to insert holding locations: %w", err)
			}
		}
		if len(batch.Authors) > 0 {
			if err := tx.Create(&batch.Authors).Error; err != nil {
				return fmt.Errorf("failed to insert authors: %w", err)
			}
		}
		if len(batch.Books) > 0 {
			if err := tx.Create(&batch.Books).Error; err != nil {
				return fmt.Errorf("failed to insert books: %w", err)
			}
		}
		if len(batch.BookAuthors) > 0 {
			if err := tx.Create(&batch.BookAuthors).Error; err != nil {
				return fmt.Errorf("failed to insert book authors: %w", err)
			}
		}
		if len(batch.Notes) > 0 {
			if err := tx.Create(&batch.Notes).Error; err != nil {
				return fmt.Errorf("failed to insert notes: %w", err)
			}
		}
		return nil
	})
}

func (d *Database) GetStats() (totalBooks int64, totalAuthors int64, err error) {
	err = d.DB.Model(&entities.Book{}).Count(&totalBooks).Error
	if err != nil {
		return
	}
	err = d.DB.Model(&entities.Author{}).Count(&totalAuthors).Error
	return
}
