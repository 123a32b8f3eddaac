package domain

import (
	"strings"
	"time"
)

type User struct {
	ID        string    `json:"id"`
	Name      *string   `json:"name,omitempty"`
	Email     *string   `json:"email,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}
}

// UserProfileUpdate changes only the non-nil fields.
type UserProfileUpdate struct {
	Name      *string
	Email     *string
	AvatarURL *string
}

func (u UserProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.AvatarURL == nil
}

// Normalized trims every field; fields left blank become nil.
func (u UserProfileUpdate) Normalized() UserProfileUpdate {
	return UserProfileUpdate{
		Name:      trimmedOrNil(u.Name),
		Email:     trimmedOrNil(u.Email),
		AvatarURL: trimmedOrNil(u.AvatarURL),
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
