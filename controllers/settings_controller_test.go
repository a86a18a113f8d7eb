package controllers

import (
	"net/http"
	"testing"

	"github.com/boska/laundry-dash-api/models"
	"github.com/boska/laundry-dash-api/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newSettingsRouter(t *testing.T) (*gin.Engine, *store.PreferenceStore) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Preference{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	prefs := store.NewPreferenceStore(db)
	ctl := NewSettingsController(prefs)

	router := setupTestRouter()
	router.GET("/settings", ctl.GetSettings)
	router.PUT("/settings/theme", ctl.SetTheme)
	router.PUT("/settings/language", ctl.SetLanguage)
	return router, prefs
}

func TestGetSettingsDefaults(t *testing.T) {
	router, _ := newSettingsRouter(t)

	w, response := doJSON(t, router, http.MethodGet, "/settings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "system", data["theme"])
	assert.Equal(t, "en", data["language"])
	assert.Len(t, data["languages"].([]interface{}), 2)

	translations := data["translations"].(map[string]interface{})
	laundryDash := translations["laundry_dash"].(map[string]interface{})
	assert.Equal(t, "Laundry Dash", laundryDash["title"])
}

func TestSetTheme(t *testing.T) {
	tests := []struct {
		name           string
		mode           string
		expectedStatus int
		expectedError  string
	}{
		{"dark", "dark", http.StatusOK, ""},
		{"light", "light", http.StatusOK, ""},
		{"system", "system", http.StatusOK, ""},
		{"unknown rejected", "sepia", http.StatusBadRequest, "INVALID_THEME"},
		{"empty rejected", "", http.StatusBadRequest, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, prefs := newSettingsRouter(t)

			w, response := doJSON(t, router, http.MethodPut, "/settings/theme", map[string]interface{}{
				"mode": tt.mode,
			})

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				errorData := response["error"].(map[string]interface{})
				assert.Equal(t, tt.expectedError, errorData["code"])
				return
			}

			theme, err := prefs.Theme()
			assert.NoError(t, err)
			assert.Equal(t, models.ThemeMode(tt.mode), theme, "Theme must be persisted synchronously")
		})
	}
}

func TestSetLanguage(t *testing.T) {
	router, prefs := newSettingsRouter(t)

	w, response := doJSON(t, router, http.MethodPut, "/settings/language", map[string]interface{}{
		"language": "zh-TW",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "zh-TW", data["language"])

	translations := data["translations"].(map[string]interface{})
	laundryDash := translations["laundry_dash"].(map[string]interface{})
	assert.Equal(t, "洗笑笑 Chill Laundry", laundryDash["title"])

	lang, err := prefs.Language()
	assert.NoError(t, err)
	assert.Equal(t, "zh-TW", string(lang))
}

func TestSetLanguageRejectsUnknown(t *testing.T) {
	router, prefs := newSettingsRouter(t)

	w, response := doJSON(t, router, http.MethodPut, "/settings/language", map[string]interface{}{
		"language": "fr",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errorData := response["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_LANGUAGE", errorData["code"])

	lang, err := prefs.Language()
	assert.NoError(t, err)
	assert.Equal(t, "en", string(lang), "A rejected language must not be stored")
}
