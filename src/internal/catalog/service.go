package catalog

import (
	"encoding/json"
	"fmt"
	"time"

	apperrors "github.com/shopworks/storefront-admin/src/internal/errors"
	"github.com/shopworks/storefront-admin/src/internal/log"
	"github.com/shopworks/storefront-admin/src/internal/store"
)

const (
	// CollectionContent holds free-form content pages keyed by page id.
	CollectionContent = "content"
	// CollectionProducts holds product listings keyed by product id.
	CollectionProducts = "products"
)

// Reset scopes accepted by Service.Reset.
const (
	ResetContent  = "content"
	ResetProducts = "products"
	ResetAll      = "all"
)

var knownCollections = map[string]struct{}{
	CollectionContent:  {},
	CollectionProducts: {},
}

// Service implements CRUD over the content and product collections.
type Service struct {
	store   store.Store
	now     func() time.Time
	started time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a service on top of st. Uptime is measured from this call.
func NewService(st store.Store, opts ...Option) *Service {
	s := &Service{
		store: st,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.started = s.now()
	return s
}

// Now returns the service's current time.
func (s *Service) Now() time.Time {
	return s.now()
}

// Uptime returns the time elapsed since the service was created.
func (s *Service) Uptime() time.Duration {
	return s.now().Sub(s.started)
}

// ListAll returns the whole named collection.
func (s *Service) ListAll(name string) (store.Collection, error) {
	if err := checkCollection(name); err != nil {
		return nil, err
	}
	return s.store.Load(name)
}

// GetOne returns a single record of the named collection.
func (s *Service) GetOne(name, key string) (json.RawMessage, error) {
	c, err := s.ListAll(name)
	if err != nil {
		return nil, err
	}
	record, ok := c[key]
	if !ok {
		return nil, apperrors.NewNotFound(notFoundMessage(name))
	}
	return record, nil
}

// Delete removes key from the named collection.
func (s *Service) Delete(name, key string) error {
	if err := checkCollection(name); err != nil {
		return err
	}
	if key == "" {
		return apperrors.NewBadRequest("Missing key")
	}

	err := s.store.Update(name, func(c store.Collection) error {
		if _, ok := c[key]; !ok {
			return apperrors.NewNotFound(notFoundMessage(name))
		}
		delete(c, key)
		return nil
	})
	if err != nil {
		return err
	}

	log.Infof("Deleted %s/%s", name, key)
	return nil
}

// Reset empties the collections selected by scope.
func (s *Service) Reset(scope string) error {
	var names []string
	switch scope {
	case ResetContent:
		names = []string{CollectionContent}
	case ResetProducts:
		names = []string{CollectionProducts}
	case ResetAll:
		names = []string{CollectionContent, CollectionProducts}
	default:
		return apperrors.NewBadRequest("Invalid reset type")
	}

	for _, name := range names {
		if err := s.store.Replace(name, store.Collection{}); err != nil {
			return err
		}
	}

	log.Warnf("Reset %s collection(s)", scope)
	return nil
}

func checkCollection(name string) error {
	if _, ok := knownCollections[name]; !ok {
		return apperrors.NewBadRequest(fmt.Sprintf("Unknown collection %q", name))
	}
	return nil
}

func notFoundMessage(name string) string {
	switch name {
	case CollectionProducts:
		return "Product not found"
	case CollectionContent:
		return "Page not found"
	default:
		return "Not found"
	}
}

func decodeRecord(name, key string, raw json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return apperrors.NewParseError(fmt.Sprintf("failed to decode %s record %q", name, key), err)
	}
	return nil
}

func encodeRecord(v interface{}) (json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, apperrors.NewBadRequest("Record is not serializable")
	}
	return data, nil
}
