// Package navigation owns the navigation document: the whole category/site
// tree stored as one JSON value under a fixed key.
//
// Every mutation is read-modify-write of the full document with no version
// check. Two concurrent editors race and the later Write silently discards the
// earlier one (last-write-wins). That is accepted for an interactively
// administered, single-editor directory; callers must not rely on more.
// Sites and categories are addressed by position, so an index obtained from
// one Read is only meaningful until the next mutation.
package navigation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/store"
)

// Store reads and writes the navigation document.
type Store struct {
	kv     store.KV
	logger logger.Logger
}

// NewStore creates a document store on top of kv.
func NewStore(kv store.KV, log logger.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: log,
	}
}

// Read returns the current document, or an empty one if none was ever written.
// A stored value that does not decode is reported as domain.ErrCorruptDocument;
// it is never replaced by an empty document, which would wipe it on the next write.
func (s *Store) Read(ctx context.Context) (domain.Document, error) {
	raw, err := s.kv.Get(ctx, store.KeyDocument)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.EmptyDocument(), nil
		}
		return domain.Document{}, fmt.Errorf("%w: read document: %w", domain.ErrStorage, err)
	}

	var doc domain.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		s.logger.Error("stored navigation document does not decode",
			logger.Int("bytes", len(raw)),
			logger.Error(err))
		return domain.Document{}, fmt.Errorf("%w: %w", domain.ErrCorruptDocument, err)
	}
	doc.Normalize()
	return doc, nil
}

// Write replaces the stored document unconditionally.
func (s *Store) Write(ctx context.Context, doc domain.Document) error {
	doc.Normalize()
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: marshal document: %w", domain.ErrStorage, err)
	}
	if err := s.kv.Put(ctx, store.KeyDocument, string(data), store.NoExpiry); err != nil {
		return fmt.Errorf("%w: write document: %w", domain.ErrStorage, err)
	}
	return nil
}

// Seed writes doc only when no document exists yet and reports whether it did.
// The existence check and the write are not atomic; Seed is meant for startup.
func (s *Store) Seed(ctx context.Context, doc domain.Document) (bool, error) {
	_, err := s.kv.Get(ctx, store.KeyDocument)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, store.ErrNotFound):
		return false, fmt.Errorf("%w: check document: %w", domain.ErrStorage, err)
	}
	if err := s.Write(ctx, doc); err != nil {
		return false, err
	}
	return true, nil
}

// AddCategory appends an empty category. color defaults to domain.DefaultCategoryColor.
func (s *Store) AddCategory(ctx context.Context, name, color string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrMissingField
	}
	if color == "" {
		color = domain.DefaultCategoryColor
	}
	if err := domain.ValidateColor(color); err != nil {
		return err
	}

	doc, err := s.Read(ctx)
	if err != nil {
		return err
	}
	if doc.HasCategory(name) {
		return fmt.Errorf("%w: %q", domain.ErrDuplicateCategory, name)
	}

	doc.Categories = append(doc.Categories, domain.Category{
		Name:  name,
		Sites: []domain.Site{},
		Color: color,
	})
	return s.Write(ctx, doc)
}

// DeleteCategory removes category i and every site in it.
func (s *Store) DeleteCategory(ctx context.Context, i int) error {
	doc, err := s.Read(ctx)
	if err != nil {
		return err
	}
	if !doc.ValidCategory(i) {
		return fmt.Errorf("%w: category %d of %d", domain.ErrIndexOutOfRange, i, len(doc.Categories))
	}

	doc.Categories = append(doc.Categories[:i], doc.Categories[i+1:]...)
	return s.Write(ctx, doc)
}

// AddSite appends site to category c.
func (s *Store) AddSite(ctx context.Context, c int, site domain.Site) error {
	if err := domain.ValidateSite(site); err != nil {
		return err
	}

	doc, err := s.Read(ctx)
	if err != nil {
		return err
	}
	if !doc.ValidCategory(c) {
		return fmt.Errorf("%w: category %d of %d", domain.ErrIndexOutOfRange, c, len(doc.Categories))
	}

	doc.Categories[c].Sites = append(doc.Categories[c].Sites, site)
	return s.Write(ctx, doc)
}

// EditSite replaces the site at (c, i) wholesale.
func (s *Store) EditSite(ctx context.Context, c, i int, site domain.Site) error {
	if err := domain.ValidateSite(site); err != nil {
		return err
	}

	doc, err := s.Read(ctx)
	if err != nil {
		return err
	}
	if !doc.ValidSite(c, i) {
		return fmt.Errorf("%w: category %d site %d", domain.ErrSiteNotFound, c, i)
	}

	doc.Categories[c].Sites[i] = site
	return s.Write(ctx, doc)
}

// DeleteSite removes the site at (c, i); later sites shift down by one.
func (s *Store) DeleteSite(ctx context.Context, c, i int) error {
	doc, err := s.Read(ctx)
	if err != nil {
		return err
	}
	if !doc.ValidSite(c, i) {
		return fmt.Errorf("%w: category %d site %d", domain.ErrIndexOutOfRange, c, i)
	}

	sites := doc.Categories[c].Sites
	doc.Categories[c].Sites = append(sites[:i], sites[i+1:]...)
	return s.Write(ctx, doc)
}
