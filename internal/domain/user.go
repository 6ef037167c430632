package domain

import (
	"strings"
	"time"
)

// User is one entry of the firm's user directory.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

// ResolveMember finds the directory user matching a prospective team member
// by email first, then by name, both case-insensitive. Returns nil when no
// directory entry matches (the member is an external contact).
func ResolveMember(directory []*User, email, name string) *User {
	if email != "" {
		for _, u := range directory {
			if strings.EqualFold(u.Email, email) {
				return u
			}
		}
	}
	if name != "" {
		for _, u := range directory {
			if strings.EqualFold(u.Name, name) {
				return u
			}
		}
	}
	return nil
}
