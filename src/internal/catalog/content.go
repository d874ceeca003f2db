package catalog

import (
	apperrors "github.com/shopworks/storefront-admin/src/internal/errors"
	"github.com/shopworks/storefront-admin/src/internal/log"
	"github.com/shopworks/storefront-admin/src/internal/models"
	"github.com/shopworks/storefront-admin/src/internal/store"
)

// Content returns all content pages decoded.
func (s *Service) Content() (map[string]models.ContentPage, error) {
	c, err := s.ListAll(CollectionContent)
	if err != nil {
		return nil, err
	}

	pages := make(map[string]models.ContentPage, len(c))
	for key, raw := range c {
		var page models.ContentPage
		if err := decodeRecord(CollectionContent, key, raw, &page); err != nil {
			return nil, err
		}
		pages[key] = page
	}
	return pages, nil
}

// SaveContent upserts a content page. The stored value is changes plus
// lastModified and modifiedBy; any previous value of the page is replaced.
// timestamp is used as lastModified when non-empty. It returns the
// lastModified value written.
func (s *Service) SaveContent(page string, changes map[string]interface{}, timestamp, caller string) (string, error) {
	if page == "" || changes == nil {
		return "", apperrors.NewBadRequest("Missing page or changes")
	}
	if timestamp == "" {
		timestamp = models.FormatTime(s.now())
	}

	record := make(models.ContentPage, len(changes)+2)
	for field, value := range changes {
		record[field] = value
	}
	record[models.FieldLastModified] = timestamp
	record[models.FieldModifiedBy] = caller

	raw, err := encodeRecord(record)
	if err != nil {
		return "", err
	}

	err = s.store.Update(CollectionContent, func(c store.Collection) error {
		c[page] = raw
		return nil
	})
	if err != nil {
		return "", err
	}

	log.Infof("Content page %s updated by %s", page, caller)
	return timestamp, nil
}
