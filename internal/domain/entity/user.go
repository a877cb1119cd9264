// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

// User is an account on the building management platform.
type User struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       Role   `json:"role"`
	IsActive   bool   `json:"isActive"`
	IsVerified bool   `json:"isVerified"`
}

// FullName joins the name fields, falling back to the email.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}

	return name
}

// CanManage reports whether the user may be linked to an address as its manager.
func (u *User) CanManage() bool {
	return u.Role.CanManage()
}

// Summary returns the compact form embedded in other records.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.FullName(),
		Email: u.Email,
	}
}

// UserSummary is the compact user representation embedded in addresses.
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Credentials are exchanged for a session.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
