package report

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Run is the persisted record of one engine invocation, mirroring the
// CSV row of spec.md §6 plus a timestamp for historical querying.
type Run struct {
	gorm.Model
	Algorithm          string
	Threads            int
	Input              string
	Seed               uint64
	Cost               float64
	Steps              int
	ReadSeconds        float64
	SearchSeconds      float64
	ReconstructSeconds float64
	NodesVisited       int
	Path               string
	RanAt              time.Time
}

// Store wraps a GORM database handle scoped to the Run table.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if absent) the SQLite database at path and
// migrates the Run schema into it.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("report: open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("report: migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save inserts one Run row.
func (s *Store) Save(r *Run) error {
	if err := s.db.Create(r).Error; err != nil {
		return fmt.Errorf("report: save run: %w", err)
	}
	return nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("report: underlying db: %w", err)
	}
	return sqlDB.Close()
}
