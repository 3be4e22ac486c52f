package translator

import (
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var Translator *i18n.Bundle

var (
	supportedTags = []language.Tag{language.English}
	matcher       = language.NewMatcher(supportedTags)
)

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // first entry is the fallback
	// Fs defaults to the OS filesystem.
	Fs afero.Fs
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

var supportedFormats = map[string]struct{}{
	".toml": {},
	".yaml": {},
	".yml":  {},
}

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	Translator.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	Translator.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	matcher = newMatcher(cfg.SupportedLanguages)

	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	files, err := afero.ReadDir(fs, cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if _, ok := supportedFormats[strings.ToLower(path.Ext(f.Name()))]; !ok {
			continue
		}

		filePath := path.Join(cfg.TranslationFolder, f.Name())
		content, err := afero.ReadFile(fs, filePath)
		if err != nil {
			zap.L().Warn("failed to read translation file", zap.String("file", f.Name()), zap.Error(err))
			continue
		}

		if _, err := Translator.ParseMessageFileBytes(content, filePath); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// MatchLanguage picks the best supported language for an Accept-Language
// header value.
func MatchLanguage(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		tags = []language.Tag{language.English}
	}

	_, index, _ := matcher.Match(tags...)
	base, _ := supportedTags[index].Base()
	return base.String()
}

func newMatcher(languages []string) language.Matcher {
	tags := make([]language.Tag, 0, len(languages))
	for _, lang := range languages {
		tag, err := language.Parse(lang)
		if err != nil {
			zap.L().Warn("ignoring unsupported language", zap.String("lang", lang), zap.Error(err))
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		tags = append(tags, language.English)
	}

	supportedTags = tags
	return language.NewMatcher(tags)
}
