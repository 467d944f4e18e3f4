// Package models contains the wire and domain records exchanged with the
// community platform backend, plus pure helpers derived from them.
package models

import (
	"fmt"
	"net/url"
)

// Account lifecycle statuses. A user moves pending -> approved -> member,
// or pending -> rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusMember   = "member"
	StatusRejected = "rejected"
)

// Roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Village is a village directory entry.
type Village struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	District string `json:"district"`
}

// User is the identity record returned by the /auth/users/me endpoint and
// the member directory. DisplayName and Avatar are derived client-side,
// once, when the record enters the session.
type User struct {
	ID           int      `json:"id"`
	Email        string   `json:"email"`
	FullName     string   `json:"full_name"`
	PhoneNumber  string   `json:"phone_number,omitempty"`
	VillageID    *int     `json:"village_id,omitempty"`
	Village      *Village `json:"village,omitempty"`
	Profession   string   `json:"profession,omitempty"`
	DateOfBirth  string   `json:"date_of_birth,omitempty"`
	Address      string   `json:"address,omitempty"`
	Role         string   `json:"role"`
	Status       string   `json:"status"`
	AdminComment string   `json:"admin_comment,omitempty"`
	SabhasadID   string   `json:"sabhasad_id,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`

	// Derived fields, not part of the wire format.
	DisplayName string `json:"-"`
	Avatar      string `json:"-"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Decorate fills the derived display fields. The display name falls back
// full name -> sabhasad id -> email; the avatar is a generated-initials URL.
func (u *User) Decorate() {
	u.DisplayName = displayName(u)
	u.Avatar = avatarURL(u.DisplayName)
}

func displayName(u *User) string {
	switch {
	case u.FullName != "":
		return u.FullName
	case u.SabhasadID != "":
		return u.SabhasadID
	default:
		return u.Email
	}
}

func avatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))
}
