package domain

import (
	"fmt"
	"slices"
)

// MaxSearchHistory bounds PreferenceProfile.SearchHistory.
const MaxSearchHistory = 10

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	switch t {
	case "", ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// PriceRange bounds are independently optional.
type PriceRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

func (r PriceRange) Validate() error {
	return ProductFilter{MinPrice: r.Min, MaxPrice: r.Max}.Validate()
}

// PreferenceProfile is a user's stored taste profile. SearchHistory is ordered
// oldest first, so the most recent query is the last element.
type PreferenceProfile struct {
	Theme          Theme       `json:"theme,omitempty"`
	Notifications  *bool       `json:"notifications,omitempty"`
	FavoriteBrands []string    `json:"favorite_brands"`
	PriceRange     *PriceRange `json:"price_range,omitempty"`
	SearchHistory  []string    `json:"search_history"`
}

// PreferenceUpdate is a partial profile; only non-nil fields are written.
type PreferenceUpdate struct {
	Theme          *Theme
	Notifications  *bool
	FavoriteBrands *[]string
	PriceRange     *PriceRange
	SearchHistory  *[]string
}

func (u PreferenceUpdate) IsEmpty() bool {
	return u.Theme == nil && u.Notifications == nil && u.FavoriteBrands == nil &&
		u.PriceRange == nil && u.SearchHistory == nil
}

func (u PreferenceUpdate) Validate() error {
	if u.Theme != nil && !u.Theme.Valid() {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidPreferences, *u.Theme)
	}
	if u.PriceRange != nil {
		if err := u.PriceRange.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Apply returns a copy of p with the update's fields written over it.
func (u PreferenceUpdate) Apply(p PreferenceProfile) PreferenceProfile {
	if u.Theme != nil {
		p.Theme = *u.Theme
	}
	if u.Notifications != nil {
		notifications := *u.Notifications
		p.Notifications = &notifications
	}
	if u.FavoriteBrands != nil {
		p.FavoriteBrands = slices.Clone(*u.FavoriteBrands)
	}
	if u.PriceRange != nil {
		priceRange := *u.PriceRange
		p.PriceRange = &priceRange
	}
	if u.SearchHistory != nil {
		p.SearchHistory = TrimSearchHistory(*u.SearchHistory)
	}
	return p
}

// AppendSearchHistory appends query and keeps the MaxSearchHistory most recent entries.
// The input slice is never modified.
func AppendSearchHistory(history []string, query string) []string {
	next := make([]string, 0, len(history)+1)
	next = append(next, history...)
	next = append(next, query)
	return TrimSearchHistory(next)
}

// TrimSearchHistory drops the oldest entries beyond MaxSearchHistory.
func TrimSearchHistory(history []string) []string {
	if len(history) <= MaxSearchHistory {
		return history
	}
	return slices.Clone(history[len(history)-MaxSearchHistory:])
}
