package store

import (
	"errors"
	"fmt"

	"github.com/boska/laundry-dash-api/i18n"
	"github.com/boska/laundry-dash-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceStore persists the device-local preference entries: theme
// mode, language and the session token. There is one writer per key, so
// the last write simply wins.
type PreferenceStore struct {
	db *gorm.DB
}

// NewPreferenceStore creates a preference store backed by the database
func NewPreferenceStore(db *gorm.DB) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// Get returns the stored value for a key, or ("", false) when unset
func (p *PreferenceStore) Get(key string) (string, bool, error) {
	var pref models.Preference
	err := p.db.Where("key = ?", key).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load preference %q: %w", key, err)
	}
	return pref.Value, true, nil
}

// Set stores the value for a key, overwriting any previous value
func (p *PreferenceStore) Set(key, value string) error {
	pref := models.Preference{Key: key, Value: value}
	err := p.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return fmt.Errorf("failed to save preference %q: %w", key, err)
	}
	return nil
}

// Delete removes a key. Absent keys are ignored.
func (p *PreferenceStore) Delete(key string) error {
	if err := p.db.Where("key = ?", key).Delete(&models.Preference{}).Error; err != nil {
		return fmt.Errorf("failed to delete preference %q: %w", key, err)
	}
	return nil
}

// Theme returns the stored theme mode, defaulting to system
func (p *PreferenceStore) Theme() (models.ThemeMode, error) {
	value, ok, err := p.Get(models.PrefKeyTheme)
	if err != nil {
		return "", err
	}
	if !ok {
		return models.ThemeSystem, nil
	}
	mode := models.ThemeMode(value)
	if !mode.IsValid() {
		// A stored value from an older build; fall back rather than fail
		return models.ThemeSystem, nil
	}
	return mode, nil
}

// SetTheme validates and persists the theme mode
func (p *PreferenceStore) SetTheme(mode models.ThemeMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("unknown theme mode %q", mode)
	}
	return p.Set(models.PrefKeyTheme, string(mode))
}

// Language returns the stored language, defaulting to English
func (p *PreferenceStore) Language() (i18n.Language, error) {
	value, ok, err := p.Get(models.PrefKeyLanguage)
	if err != nil {
		return "", err
	}
	if !ok {
		return i18n.DefaultLanguage, nil
	}
	lang := i18n.Language(value)
	if !lang.IsValid() {
		return i18n.DefaultLanguage, nil
	}
	return lang, nil
}

// SetLanguage validates and persists the language
func (p *PreferenceStore) SetLanguage(lang i18n.Language) error {
	if !lang.IsValid() {
		return fmt.Errorf("unsupported language %q", lang)
	}
	return p.Set(models.PrefKeyLanguage, string(lang))
}

// SessionToken returns the persisted auth token, or ("", false) when
// logged out
func (p *PreferenceStore) SessionToken() (string, bool, error) {
	return p.Get(models.PrefKeyToken)
}

// SetSessionToken persists the auth token issued at login
func (p *PreferenceStore) SetSessionToken(token string) error {
	return p.Set(models.PrefKeyToken, token)
}

// ClearSessionToken removes the auth token (logout)
func (p *PreferenceStore) ClearSessionToken() error {
	return p.Delete(models.PrefKeyToken)
}
