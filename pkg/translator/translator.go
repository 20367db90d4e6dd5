package translator

import (
	"embed"
	"io/fs"
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var embedded embed.FS

var Translator *i18n.Bundle

type Config struct {
	// TranslationFolder overrides the embedded translation files when set.
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguagePt = "pt"
	LanguageEn = "en"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	fsys, dir := fs.FS(embedded), "translation"
	if cfg.TranslationFolder != "" {
		fsys, dir = os.DirFS(cfg.TranslationFolder), "."
	}

	lstFiles, err := fs.ReadDir(fsys, dir)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() {
			continue
		}
		if _, err := Translator.LoadMessageFileFS(fsys, path.Join(dir, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}

	for _, lang := range cfg.SupportedLanguages {
		if !hasLanguage(lang) {
			zap.L().Warn("no translations for supported language", zap.String("lang", lang))
		}
	}
}

func hasLanguage(lang string) bool {
	for _, tag := range Translator.LanguageTags() {
		if base, _ := tag.Base(); base.String() == lang {
			return true
		}
	}
	return false
}

// Localize renders a message, falling back to English and then to the message id.
func Localize(lang, messageID string, data map[string]any) string {
	if Translator == nil {
		return messageID
	}
	l := i18n.NewLocalizer(Translator, lang, LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: data})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", messageID), zap.Error(err))
		return messageID
	}
	return msg
}
