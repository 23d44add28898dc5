package domain

// Profile is a named permission group attachable to users.
type Profile struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProfileFilter narrows a profile lookup. Zero-value fields are ignored.
type ProfileFilter struct {
	ID   *int64
	Name string
}

// IsEmpty reports whether no filter field is set.
func (f ProfileFilter) IsEmpty() bool {
	return f.ID == nil && f.Name == ""
}
