// Package linkapply runs the public link-submission workflow: anyone may
// submit, an admin approves (the site is appended to a category) or rejects.
package linkapply

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/navigation"
	"github.com/MrSnakeDoc/linkhub/internal/store"
)

// errUndecodable marks a stored application whose JSON no longer decodes.
var errUndecodable = errors.New("undecodable application")

// Submission is what the public submits.
type Submission struct {
	SiteName    string
	SiteURL     string
	SiteIcon    string
	Description string
	Contact     string
}

// Store persists link applications, one key per application.
type Store struct {
	kv        store.KV
	documents *navigation.Store
	logger    logger.Logger
	now       func() time.Time
	newID     func() string
}

// NewStore creates an application store. Approvals append to documents.
func NewStore(kv store.KV, documents *navigation.Store, log logger.Logger, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		kv:        kv,
		documents: documents,
		logger:    log,
		now:       now,
		newID:     uuid.NewString,
	}
}

// Submit validates sub and stores it as a pending application. No expiry.
func (s *Store) Submit(ctx context.Context, sub Submission) (string, error) {
	site := domain.Site{Name: sub.SiteName, URL: sub.SiteURL, Icon: sub.SiteIcon}
	if err := domain.ValidateSite(site); err != nil {
		return "", err
	}

	app := domain.LinkApplication{
		ID:          s.newID(),
		SiteName:    sub.SiteName,
		SiteURL:     sub.SiteURL,
		SiteIcon:    sub.SiteIcon,
		Description: sub.Description,
		Contact:     sub.Contact,
		Status:      domain.StatusPending,
		AppliedAt:   s.now().UTC(),
	}
	if err := s.save(ctx, &app); err != nil {
		return "", err
	}
	return app.ID, nil
}

// Get loads one application.
func (s *Store) Get(ctx context.Context, id string) (*domain.LinkApplication, error) {
	if id == "" {
		return nil, domain.ErrMissingField
	}
	raw, err := s.kv.Get(ctx, store.ApplicationKey(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrApplicationNotFound, id)
		}
		return nil, fmt.Errorf("%w: get application: %w", domain.ErrStorage, err)
	}

	var app domain.LinkApplication
	if err := json.Unmarshal([]byte(raw), &app); err != nil {
		return nil, fmt.Errorf("%w: %w %s: %w", domain.ErrStorage, errUndecodable, id, err)
	}
	return &app, nil
}

// ListPending returns pending applications, most recent first.
// Equal timestamps are ordered by id so repeated calls agree.
func (s *Store) ListPending(ctx context.Context) ([]domain.LinkApplication, error) {
	keys, err := s.kv.List(ctx, store.KeyPrefixApplication)
	if err != nil {
		return nil, fmt.Errorf("%w: list applications: %w", domain.ErrStorage, err)
	}

	pending := make([]domain.LinkApplication, 0, len(keys))
	for _, key := range keys {
		id, ok := store.ExtractApplicationID(key)
		if !ok {
			continue
		}
		app, err := s.Get(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrApplicationNotFound) {
				// Listed then gone: nothing to show.
				continue
			}
			if errors.Is(err, errUndecodable) {
				s.logger.Warn("skipping unreadable link application",
					logger.String("apply_id", id),
					logger.Error(err))
				continue
			}
			return nil, err
		}
		if app.Pending() {
			pending = append(pending, *app)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		a, b := pending[i], pending[j]
		if !a.AppliedAt.Equal(b.AppliedAt) {
			return a.AppliedAt.After(b.AppliedAt)
		}
		return a.ID < b.ID
	})
	return pending, nil
}

// Approve appends the application's site to category c and marks it approved.
//
// Two values are written, the document first and the application second,
// with no transaction across them. If the second write fails the site is
// already visible but the application still reads as pending; that state is
// logged at error level with both identifiers so it can be repaired by hand.
func (s *Store) Approve(ctx context.Context, id string, c int, by string) error {
	app, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !app.Pending() {
		return fmt.Errorf("%w: %s is %s", domain.ErrAlreadyProcessed, id, app.Status)
	}

	if err := s.documents.AddSite(ctx, c, app.Site()); err != nil {
		return err
	}

	if err := app.Decide(domain.StatusApproved, by, s.now().UTC()); err != nil {
		return err
	}
	if err := s.save(ctx, app); err != nil {
		s.logger.Error("site added to document but application still pending",
			logger.String("apply_id", id),
			logger.Int("category_index", c),
			logger.Error(err))
		return err
	}
	return nil
}

// Reject marks a pending application rejected.
func (s *Store) Reject(ctx context.Context, id string, by string) error {
	app, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := app.Decide(domain.StatusRejected, by, s.now().UTC()); err != nil {
		return fmt.Errorf("%w: %s is %s", err, id, app.Status)
	}
	return s.save(ctx, app)
}

func (s *Store) save(ctx context.Context, app *domain.LinkApplication) error {
	data, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("%w: marshal application: %w", domain.ErrStorage, err)
	}
	if err := s.kv.Put(ctx, store.ApplicationKey(app.ID), string(data), store.NoExpiry); err != nil {
		return fmt.Errorf("%w: save application: %w", domain.ErrStorage, err)
	}
	return nil
}
