package domain

import "time"

// AdminProfileName marks the profile that grants administrative capability.
// By convention it is the first profile created (id 1).
const AdminProfileName = "admin"

// User models a managed account with its attached access profiles.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Profiles     []Profile `json:"profiles"`
}

// IsAdmin reports whether the user carries the admin profile.
func (u *User) IsAdmin() bool {
	for _, p := range u.Profiles {
		if p.Name == AdminProfileName {
			return true
		}
	}
	return false
}

// UserFilter narrows a user lookup. Zero-value fields are ignored.
type UserFilter struct {
	ID    *int64
	Name  string
	Email string
}

// IsEmpty reports whether no filter field is set.
func (f UserFilter) IsEmpty() bool {
	return f.ID == nil && f.Name == "" && f.Email == ""
}
