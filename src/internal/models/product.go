package models

// DefaultSize is used in public listings for products that declare no sizes.
const DefaultSize = "Standard"

// Product is a stored product listing. Optional attributes are pointers or
// omitted slices so a stored record reflects exactly what the admin sent;
// defaults are applied only when projecting to ProductView.
type Product struct {
	// ID echoes the collection key.
	ID string `json:"id,omitempty"`
	// Name is the display name (required).
	Name string `json:"name" validate:"required"`
	// Price is the unit price (required, zero is allowed).
	Price *float64 `json:"price" validate:"required"`

	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Emoji       string `json:"emoji,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`

	// InStock defaults to true in public listings.
	InStock *bool `json:"inStock,omitempty"`
	// Featured defaults to false in public listings.
	Featured *bool `json:"featured,omitempty"`

	Sizes  []string `json:"sizes,omitempty"`
	Scents []string `json:"scents,omitempty"`
	Colors []string `json:"colors,omitempty"`

	CreatedAt    string `json:"createdAt,omitempty"`
	CreatedBy    string `json:"createdBy,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
	ModifiedBy   string `json:"modifiedBy,omitempty"`
}

// ProductView is the public-facing projection of a Product.
type ProductView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Emoji       string   `json:"emoji"`
	ImageURL    string   `json:"imageUrl"`
	InStock     bool     `json:"inStock"`
	Featured    bool     `json:"featured"`
	Sizes       []string `json:"sizes"`
	Scents      []string `json:"scents"`
	Colors      []string `json:"colors"`
}

// View projects the product to its public fields, filling defaults for
// attributes the record does not carry.
func (p *Product) View(id string) ProductView {
	v := ProductView{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Emoji:       p.Emoji,
		ImageURL:    p.ImageURL,
		InStock:     true,
		Featured:    false,
		Sizes:       []string{DefaultSize},
		Scents:      []string{},
		Colors:      []string{},
	}
	if p.Price != nil {
		v.Price = *p.Price
	}
	if p.InStock != nil {
		v.InStock = *p.InStock
	}
	if p.Featured != nil {
		v.Featured = *p.Featured
	}
	if len(p.Sizes) > 0 {
		v.Sizes = append([]string(nil), p.Sizes...)
	}
	if len(p.Scents) > 0 {
		v.Scents = append([]string(nil), p.Scents...)
	}
	if len(p.Colors) > 0 {
		v.Colors = append([]string(nil), p.Colors...)
	}
	return v
}
