package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguagesAreValid(t *testing.T) {
	for _, lang := range Languages() {
		assert.True(t, lang.IsValid(), "Listed language %q must have a table", lang)
	}

	assert.False(t, Language("fr").IsValid())
	assert.False(t, Language("").IsValid())
}

func TestTranslateKnownLanguages(t *testing.T) {
	en := Translate(English)
	assert.Equal(t, "Laundry Dash", en.LaundryDash.Title)
	assert.Equal(t, "Email is required", en.Login.EmailRequired)

	zh := Translate(TraditionalChinese)
	assert.Equal(t, "洗笑笑 Chill Laundry", zh.LaundryDash.Title)
	assert.Equal(t, "主題", zh.Settings.ThemeTitle)
}

func TestTranslateFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Translate(DefaultLanguage), Translate(Language("")))
	assert.Equal(t, Translate(DefaultLanguage), Translate(Language("klingon")))
}

func TestAllTablesComplete(t *testing.T) {
	// init would have panicked on a hole, but keep the explicit check
	// so a regression names the missing field
	for _, lang := range Languages() {
		assert.NoError(t, validate(Translate(lang)), "Table for %q has missing strings", lang)
	}
}
