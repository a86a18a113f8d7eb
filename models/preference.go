package models

import "time"

// Preference keys. These mirror the keys the mobile client stores under,
// so a device backup and the local database stay interchangeable.
const (
	PrefKeyTheme    = "userTheme"
	PrefKeyLanguage = "language"
	PrefKeyToken    = "user-token"
)

// ThemeMode is the active color scheme preference
type ThemeMode string

const (
	ThemeSystem ThemeMode = "system"
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
)

// IsValid reports whether the theme mode is one of the known schemes
func (m ThemeMode) IsValid() bool {
	switch m {
	case ThemeSystem, ThemeLight, ThemeDark:
		return true
	}
	return false
}

// Preference is a persisted key-value entry, one row per preference key
type Preference struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Preference model
func (Preference) TableName() string {
	return "preferences"
}
