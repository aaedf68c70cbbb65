// internal/models/user.go
package models

import "time"

// User is a marketplace member profile. There is no authentication in
// this system; identity is caller-asserted and profiles are public data
// plus a handful of editable fields.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Region      string    `json:"region,omitempty"`
	MemberSince time.Time `json:"member_since"`
	SalesCount  int       `json:"sales_count"`
	Rating      float64   `json:"rating"`
}

// PublicProfile strips fields the profile owner has not published.
func (u User) PublicProfile() User {
	return User{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
		Region:      u.Region,
		MemberSince: u.MemberSince,
		SalesCount:  u.SalesCount,
		Rating:      u.Rating,
	}
}
