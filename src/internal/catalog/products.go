package catalog

import (
	"sort"

	apperrors "github.com/shopworks/storefront-admin/src/internal/errors"
	"github.com/shopworks/storefront-admin/src/internal/log"
	"github.com/shopworks/storefront-admin/src/internal/models"
	"github.com/shopworks/storefront-admin/src/internal/store"
)

// Products returns all products decoded.
func (s *Service) Products() (map[string]*models.Product, error) {
	c, err := s.ListAll(CollectionProducts)
	if err != nil {
		return nil, err
	}

	products := make(map[string]*models.Product, len(c))
	for id, raw := range c {
		var p models.Product
		if err := decodeRecord(CollectionProducts, id, raw, &p); err != nil {
			return nil, err
		}
		products[id] = &p
	}
	return products, nil
}

// GetProduct returns a single product.
func (s *Service) GetProduct(id string) (*models.Product, error) {
	raw, err := s.GetOne(CollectionProducts, id)
	if err != nil {
		return nil, err
	}
	var p models.Product
	if err := decodeRecord(CollectionProducts, id, raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPublicProducts returns the public projection of every product,
// ordered by product id.
func (s *Service) ListPublicProducts() ([]models.ProductView, error) {
	products, err := s.Products()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(products))
	for id := range products {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	views := make([]models.ProductView, 0, len(ids))
	for _, id := range ids {
		views = append(views, products[id].View(id))
	}
	return views, nil
}

// CreateProduct stores a new product under id. It fails with CONFLICT if the
// id is taken. It returns the creation timestamp.
func (s *Service) CreateProduct(id string, p *models.Product, caller string) (string, error) {
	if id == "" || p == nil {
		return "", apperrors.NewBadRequest("Missing productId or productData")
	}
	if err := validateProduct(p); err != nil {
		return "", err
	}

	now := models.FormatTime(s.now())
	record := *p
	record.ID = id
	record.CreatedAt = now
	record.CreatedBy = caller
	record.LastModified = now
	record.ModifiedBy = caller

	raw, err := encodeRecord(&record)
	if err != nil {
		return "", err
	}

	err = s.store.Update(CollectionProducts, func(c store.Collection) error {
		if _, exists := c[id]; exists {
			return apperrors.NewConflict("Product already exists")
		}
		c[id] = raw
		return nil
	})
	if err != nil {
		return "", err
	}

	log.Infof("Product %s created by %s", id, caller)
	return now, nil
}

// UpdateProduct replaces an existing product. createdAt and createdBy are
// carried over from the stored record. It returns the modification timestamp.
func (s *Service) UpdateProduct(id string, p *models.Product, caller string) (string, error) {
	if id == "" || p == nil {
		return "", apperrors.NewBadRequest("Missing productId or productData")
	}
	if err := validateProduct(p); err != nil {
		return "", err
	}

	now := models.FormatTime(s.now())

	err := s.store.Update(CollectionProducts, func(c store.Collection) error {
		existingRaw, ok := c[id]
		if !ok {
			return apperrors.NewNotFound("Product not found")
		}

		var existing models.Product
		if err := decodeRecord(CollectionProducts, id, existingRaw, &existing); err != nil {
			return err
		}

		record := *p
		record.ID = id
		record.CreatedAt = existing.CreatedAt
		record.CreatedBy = existing.CreatedBy
		record.LastModified = now
		record.ModifiedBy = caller

		raw, err := encodeRecord(&record)
		if err != nil {
			return err
		}
		c[id] = raw
		return nil
	})
	if err != nil {
		return "", err
	}

	log.Infof("Product %s updated by %s", id, caller)
	return now, nil
}
