package internal

import (
	"embed"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFiles embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle

	localizerMu sync.RWMutex
	localizer   *i18n.Localizer
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFiles.ReadDir("locales")
		if err != nil {
			GetInternalLogger().Error("Failed to read embedded locales", "error", err)
			return
		}
		for _, entry := range entries {
			name := path.Join("locales", entry.Name())
			data, err := localeFiles.ReadFile(name)
			if err != nil {
				GetInternalLogger().Error("Failed to read locale file", "file", name, "error", err)
				continue
			}
			if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
				GetInternalLogger().Error("Failed to parse locale file", "file", name, "error", err)
			}
		}
	})
	return bundle
}

// SetLanguage selects the language used for user-facing messages.
// Accepts BCP 47 tags or Accept-Language style lists; English is the fallback.
func SetLanguage(langs ...string) {
	l := i18n.NewLocalizer(getBundle(), append(langs, language.English.String())...)

	localizerMu.Lock()
	localizer = l
	localizerMu.Unlock()
}

func getLocalizer() *i18n.Localizer {
	localizerMu.RLock()
	l := localizer
	localizerMu.RUnlock()
	if l != nil {
		return l
	}

	SetLanguage()

	localizerMu.RLock()
	defer localizerMu.RUnlock()
	return localizer
}

// Message returns the localized text for messageID. When the id is unknown the
// id itself is returned so errors never lose their identity.
func Message(messageID string, data map[string]any) string {
	msg, err := getLocalizer().Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		GetInternalLogger().Warn("Missing localized message", "id", messageID, "error", err)
		return messageID
	}
	return msg
}
