package catalog

import (
	"time"

	"github.com/shopworks/storefront-admin/src/internal/models"
)

// Info summarizes the stored data for the admin dashboard.
type Info struct {
	ContentPages  int
	TotalProducts int
	// LastActivity is the latest lastModified over both collections, nil if none.
	LastActivity *string
	Uptime       time.Duration
}

// Timestamps returns the latest lastModified per collection plus server time.
func (s *Service) Timestamps() (models.Timestamps, error) {
	content, err := s.Content()
	if err != nil {
		return models.Timestamps{}, err
	}
	products, err := s.Products()
	if err != nil {
		return models.Timestamps{}, err
	}

	contentTimes := make([]string, 0, len(content))
	for _, page := range content {
		contentTimes = append(contentTimes, page.LastModified())
	}
	productTimes := make([]string, 0, len(products))
	for _, p := range products {
		productTimes = append(productTimes, p.LastModified)
	}

	return models.Timestamps{
		Content:  latest(contentTimes),
		Products: latest(productTimes),
		Server:   models.FormatTime(s.now()),
	}, nil
}

// Info returns record counts, last activity and uptime.
func (s *Service) Info() (Info, error) {
	content, err := s.Content()
	if err != nil {
		return Info{}, err
	}
	products, err := s.Products()
	if err != nil {
		return Info{}, err
	}

	all := make([]string, 0, len(content)+len(products))
	for _, page := range content {
		all = append(all, page.LastModified())
	}
	for _, p := range products {
		all = append(all, p.LastModified)
	}

	return Info{
		ContentPages:  len(content),
		TotalProducts: len(products),
		LastActivity:  latest(all),
		Uptime:        s.Uptime(),
	}, nil
}

// latest returns the most recent parseable timestamp as stored, or nil.
func latest(values []string) *string {
	var (
		max    time.Time
		stored string
		found  bool
	)
	for _, v := range values {
		t, ok := models.ParseTime(v)
		if !ok {
			continue
		}
		if !found || t.After(max) {
			max, stored, found = t, v, true
		}
	}
	if !found {
		return nil
	}
	return &stored
}
