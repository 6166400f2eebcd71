package scheduler

import (
	"context"
	"fmt"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
)

// CategorySource yields the categories of a first-run import.
type CategorySource interface {
	Configured() bool
	Load() ([]domain.Category, error)
}

// DocumentSeeder writes a document only if none exists.
type DocumentSeeder interface {
	Seed(ctx context.Context, doc domain.Document) (bool, error)
}

// Seeder imports an initial navigation document at startup.
// An existing document is never touched, whatever the source contains.
type Seeder struct {
	source    CategorySource
	documents DocumentSeeder
	logger    logger.Logger
}

// NewSeeder creates a seeder.
func NewSeeder(source CategorySource, documents DocumentSeeder, log logger.Logger) *Seeder {
	return &Seeder{
		source:    source,
		documents: documents,
		logger:    log,
	}
}

// Run performs the import once. It reports whether a document was written.
func (s *Seeder) Run(ctx context.Context) (bool, error) {
	if !s.source.Configured() {
		s.logger.Debug("no seed source configured")
		return false, nil
	}

	cats, err := s.source.Load()
	if err != nil {
		return false, fmt.Errorf("load seed source: %w", err)
	}
	if len(cats) == 0 {
		s.logger.Warn("seed source contains no usable sites")
		return false, nil
	}

	doc := domain.Document{Categories: cats}
	seeded, err := s.documents.Seed(ctx, doc)
	if err != nil {
		return false, fmt.Errorf("seed document: %w", err)
	}

	if seeded {
		s.logger.Info("navigation document seeded",
			logger.Int("categories", len(cats)),
			logger.Int("sites", doc.SiteCount()))
	} else {
		s.logger.Info("navigation document already present, seed skipped")
	}
	return seeded, nil
}
