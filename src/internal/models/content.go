package models

const (
	// FieldLastModified is the system-assigned modification timestamp of a content page.
	FieldLastModified = "lastModified"
	// FieldModifiedBy is the system-assigned caller address of a content page.
	FieldModifiedBy = "modifiedBy"
)

// ContentPage is a free-form page document plus system metadata.
type ContentPage map[string]interface{}

// LastModified returns the page's lastModified field, or "" if it is absent
// or not a string.
func (p ContentPage) LastModified() string {
	s, _ := p[FieldLastModified].(string)
	return s
}
