package controllers

import (
	"net/http"

	"github.com/boska/laundry-dash-api/i18n"
	"github.com/boska/laundry-dash-api/models"
	"github.com/boska/laundry-dash-api/store"
	"github.com/gin-gonic/gin"
)

// SettingsController exposes the theme and language preferences
type SettingsController struct {
	prefs *store.PreferenceStore
}

// NewSettingsController creates a settings controller
func NewSettingsController(prefs *store.PreferenceStore) *SettingsController {
	return &SettingsController{prefs: prefs}
}

// SetThemeRequest represents the request body for the theme preference
type SetThemeRequest struct {
	Mode models.ThemeMode `json:"mode" binding:"required"`
}

// SetLanguageRequest represents the request body for the language
// preference
type SetLanguageRequest struct {
	Language i18n.Language `json:"language" binding:"required"`
}

// GetSettings handles GET /api/v1/settings - returns the active
// preferences plus the translation table for the active language
func (ctl *SettingsController) GetSettings(c *gin.Context) {
	theme, err := ctl.prefs.Theme()
	if err != nil {
		settingsDBError(c)
		return
	}
	lang, err := ctl.prefs.Language()
	if err != nil {
		settingsDBError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"theme":        theme,
			"language":     lang,
			"languages":    i18n.Languages(),
			"translations": i18n.Translate(lang),
		},
	})
}

// SetTheme handles PUT /api/v1/settings/theme - persists the theme mode
func (ctl *SettingsController) SetTheme(c *gin.Context) {
	var req SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	if !req.Mode.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_THEME",
				"message": "Theme must be system, light or dark",
			},
		})
		return
	}

	if err := ctl.prefs.SetTheme(req.Mode); err != nil {
		settingsDBError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"theme": req.Mode,
		},
	})
}

// SetLanguage handles PUT /api/v1/settings/language - persists the
// language
func (ctl *SettingsController) SetLanguage(c *gin.Context) {
	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	if !req.Language.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_LANGUAGE",
				"message": "Unsupported language",
			},
		})
		return
	}

	if err := ctl.prefs.SetLanguage(req.Language); err != nil {
		settingsDBError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"language":     req.Language,
			"translations": i18n.Translate(req.Language),
		},
	})
}

func settingsDBError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "DATABASE_ERROR",
			"message": "Failed to access preferences",
		},
	})
}
