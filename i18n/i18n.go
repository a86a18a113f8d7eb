// Package i18n holds the static translation tables for the app. Each
// language maps to one fixed-shape Translation record, validated at
// init so a missing string is a startup failure instead of a silent
// runtime fallback.
package i18n

import "fmt"

// Language is a supported locale
type Language string

const (
	English            Language = "en"
	TraditionalChinese Language = "zh-TW"

	DefaultLanguage = English
)

// IsValid reports whether the language has a translation table
func (l Language) IsValid() bool {
	_, ok := translations[l]
	return ok
}

// Translation is the fixed shape every language must fill completely
type Translation struct {
	LaundryDash LaundryDashStrings `json:"laundry_dash"`
	Login       LoginStrings       `json:"login"`
	Settings    SettingsStrings    `json:"settings"`
}

// LaundryDashStrings covers the landing screen
type LaundryDashStrings struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	SameDay      string `json:"same_day"`
	Delivery     string `json:"delivery"`
	Quality      string `json:"quality"`
	StartMessage string `json:"start_message"`
}

// LoginStrings covers the login form and its validation messages
type LoginStrings struct {
	WelcomeBack        string `json:"welcome_back"`
	EmailRequired      string `json:"email_required"`
	InvalidEmail       string `json:"invalid_email"`
	PasswordRequired   string `json:"password_required"`
	LoginFailed        string `json:"login_failed"`
	LoginFailedMessage string `json:"login_failed_message"`
	LoginSuccess       string `json:"login_success"`
}

// SettingsStrings covers the settings screen
type SettingsStrings struct {
	LanguageTitle string `json:"language_title"`
	English       string `json:"english"`
	Chinese       string `json:"chinese"`
	ThemeTitle    string `json:"theme_title"`
	ThemeSystem   string `json:"theme_system"`
	ThemeLight    string `json:"theme_light"`
	ThemeDark     string `json:"theme_dark"`
}

var translations = map[Language]Translation{
	English: {
		LaundryDash: LaundryDashStrings{
			Title:        "Laundry Dash",
			Subtitle:     "24/7 Door to Door Laundry Service",
			SameDay:      "Same Day Service",
			Delivery:     "Free Delivery",
			Quality:      "Premium Service",
			StartMessage: "Start your laundry service today",
		},
		Login: LoginStrings{
			WelcomeBack:        "Welcome back!",
			EmailRequired:      "Email is required",
			InvalidEmail:       "Please enter a valid email",
			PasswordRequired:   "Password is required",
			LoginFailed:        "Login Failed",
			LoginFailedMessage: "Invalid email or password. Please try again.",
			LoginSuccess:       "Login Successful",
		},
		Settings: SettingsStrings{
			LanguageTitle: "Language",
			English:       "English",
			Chinese:       "繁體中文",
			ThemeTitle:    "Theme",
			ThemeSystem:   "System",
			ThemeLight:    "Light",
			ThemeDark:     "Dark",
		},
	},
	TraditionalChinese: {
		LaundryDash: LaundryDashStrings{
			Title:        "洗笑笑 Chill Laundry",
			Subtitle:     "專業便利的清洗服務",
			SameDay:      "當日服務",
			Delivery:     "免費收送",
			Quality:      "優質服務",
			StartMessage: "立即開始使用洗衣服務",
		},
		Login: LoginStrings{
			WelcomeBack:        "歡迎回到洗笑笑！",
			EmailRequired:      "電子郵件是必需的",
			InvalidEmail:       "請輸入有效的電子郵件",
			PasswordRequired:   "密碼是必需的",
			LoginFailed:        "登錄失敗",
			LoginFailedMessage: "無效的電子郵件或密碼。請再試一次。",
			LoginSuccess:       "登錄成功",
		},
		Settings: SettingsStrings{
			LanguageTitle: "語言",
			English:       "English",
			Chinese:       "繁體中文",
			ThemeTitle:    "主題",
			ThemeSystem:   "系統",
			ThemeLight:    "淺色",
			ThemeDark:     "深色",
		},
	},
}

func init() {
	for lang, t := range translations {
		if err := validate(t); err != nil {
			panic(fmt.Sprintf("i18n: incomplete translation table for %q: %v", lang, err))
		}
	}
}

func validate(t Translation) error {
	fields := map[string]string{
		"laundryDash.title":        t.LaundryDash.Title,
		"laundryDash.subtitle":     t.LaundryDash.Subtitle,
		"laundryDash.sameDay":      t.LaundryDash.SameDay,
		"laundryDash.delivery":     t.LaundryDash.Delivery,
		"laundryDash.quality":      t.LaundryDash.Quality,
		"laundryDash.startMessage": t.LaundryDash.StartMessage,
		"login.welcomeBack":        t.Login.WelcomeBack,
		"login.emailRequired":      t.Login.EmailRequired,
		"login.invalidEmail":       t.Login.InvalidEmail,
		"login.passwordRequired":   t.Login.PasswordRequired,
		"login.loginFailed":        t.Login.LoginFailed,
		"login.loginFailedMessage": t.Login.LoginFailedMessage,
		"login.loginSuccess":       t.Login.LoginSuccess,
		"settings.languageTitle":   t.Settings.LanguageTitle,
		"settings.english":         t.Settings.English,
		"settings.chinese":         t.Settings.Chinese,
		"settings.themeTitle":      t.Settings.ThemeTitle,
		"settings.themeSystem":     t.Settings.ThemeSystem,
		"settings.themeLight":      t.Settings.ThemeLight,
		"settings.themeDark":       t.Settings.ThemeDark,
	}
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("missing %s", name)
		}
	}
	return nil
}

// Translate returns the translation table for a language. The zero
// value resolves to the default language; any other unknown value is
// rejected by the callers before reaching here, but falls back too.
func Translate(lang Language) Translation {
	if t, ok := translations[lang]; ok {
		return t
	}
	return translations[DefaultLanguage]
}

// Languages lists the supported languages
func Languages() []Language {
	return []Language{English, TraditionalChinese}
}
