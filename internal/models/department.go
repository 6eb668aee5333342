package models

// Department is an organizational unit that sellers may belong to.
// ID is nil until the department has been persisted.
type Department struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

// IsNew reports whether the department has not been stored yet
func (d *Department) IsNew() bool {
	return d.ID == nil
}

// GetID returns the identifier, or 0 for a new department
func (d *Department) GetID() int {
	if d.ID == nil {
		return 0
	}
	return *d.ID
}

// SameAs reports whether both departments refer to the same stored row
func (d *Department) SameAs(other *Department) bool {
	if d == nil || other == nil || d.ID == nil || other.ID == nil {
		return false
	}
	return *d.ID == *other.ID
}
