// Package locale holds the two built-in string sets (English and Spanish)
// and their sample item lists. The set is chosen once at startup.
package locale

import (
	"embed"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"randompick/internal/errors"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed messages/*.yaml samples/*.yaml
var files embed.FS

// Auto selects the locale from the environment (LC_ALL, LC_MESSAGES, LANG).
const Auto = "auto"

var supported = []language.Tag{language.English, language.Spanish}

// Strings are the user-facing texts of one locale.
type Strings struct {
	Title            string
	Description      string
	Privacy          string
	Placeholder      string
	SelectedHeading  string
	PickButton       string
	PickingButton    string
	LoadSampleButton string
	ResetButton      string
	EmptyInput       string
	Quit             string
	TooLong          string
	Footer           string
}

// Locale is one resolved string set plus its sample list.
type Locale struct {
	Tag     language.Tag
	Strings Strings
	Samples []string

	localizer *i18n.Localizer
}

var bundle = mustBundle()

func mustBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	entries, err := files.ReadDir("messages")
	if err != nil {
		panic(err)
	}
	for _, e := range entries {
		data, err := files.ReadFile(path.Join("messages", e.Name()))
		if err != nil {
			panic(err)
		}
		if _, err := b.ParseMessageFileBytes(data, e.Name()); err != nil {
			panic(fmt.Sprintf("locale: parse %s: %v", e.Name(), err))
		}
	}
	return b
}

// Supported returns the base language codes that Load accepts.
func Supported() []string {
	codes := make([]string, 0, len(supported))
	for _, t := range supported {
		codes = append(codes, t.String())
	}
	return codes
}

// Load resolves the locale named by tag. Regional variants (es-MX, en_US,
// es_ES.UTF-8) map to their base language; anything else is an
// UnknownLocale error.
func Load(tag string) (*Locale, error) {
	if strings.EqualFold(tag, Auto) {
		tag = FromEnv()
	}

	base, err := match(tag)
	if err != nil {
		return nil, err
	}

	samples, err := loadSamples(base)
	if err != nil {
		return nil, err
	}

	l := &Locale{
		Tag:       base,
		Samples:   samples,
		localizer: i18n.NewLocalizer(bundle, base.String()),
	}
	if err := l.resolve(); err != nil {
		return nil, err
	}
	return l, nil
}

// MustLoad is Load for the built-in tags; it panics on error.
func MustLoad(tag string) *Locale {
	l, err := Load(tag)
	if err != nil {
		panic(err)
	}
	return l
}

// FromEnv returns the first usable language from the usual POSIX variables,
// or "en".
func FromEnv() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if _, err := match(v); err == nil {
			return v
		}
	}
	return "en"
}

func match(tag string) (language.Tag, error) {
	clean := strings.TrimSpace(tag)
	if i := strings.IndexAny(clean, ".@"); i >= 0 {
		clean = clean[:i]
	}
	clean = strings.ReplaceAll(clean, "_", "-")

	parsed, err := language.Parse(clean)
	if err != nil {
		return language.Und, errors.NewConfigError("unsupported locale", tag, errors.UnknownLocale, err)
	}
	b, _ := parsed.Base()
	for _, t := range supported {
		if sb, _ := t.Base(); sb == b {
			return t, nil
		}
	}
	return language.Und, errors.NewConfigError("unsupported locale", tag, errors.UnknownLocale, nil)
}

func loadSamples(tag language.Tag) ([]string, error) {
	data, err := files.ReadFile(path.Join("samples", tag.String()+".yaml"))
	if err != nil {
		return nil, errors.NewConfigError("missing sample list", tag.String(), errors.UnknownLocale, err)
	}
	var samples []string
	if err := yaml.Unmarshal(data, &samples); err != nil {
		return nil, errors.Wrapf(err, "parse sample list %s", tag)
	}
	return samples, nil
}

func (l *Locale) resolve() error {
	targets := []struct {
		id  string
		dst *string
	}{
		{"Title", &l.Strings.Title},
		{"Description", &l.Strings.Description},
		{"Privacy", &l.Strings.Privacy},
		{"Placeholder", &l.Strings.Placeholder},
		{"SelectedHeading", &l.Strings.SelectedHeading},
		{"PickButton", &l.Strings.PickButton},
		{"PickingButton", &l.Strings.PickingButton},
		{"LoadSampleButton", &l.Strings.LoadSampleButton},
		{"ResetButton", &l.Strings.ResetButton},
		{"EmptyInput", &l.Strings.EmptyInput},
		{"Quit", &l.Strings.Quit},
		{"TooLong", &l.Strings.TooLong},
	}
	for _, t := range targets {
		s, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: t.id})
		if err != nil {
			return errors.Wrapf(err, "locale %s: message %s", l.Tag, t.id)
		}
		*t.dst = s
	}

	footer, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    "Footer",
		TemplateData: map[string]interface{}{"Year": time.Now().Year()},
	})
	if err != nil {
		return errors.Wrapf(err, "locale %s: message Footer", l.Tag)
	}
	l.Strings.Footer = footer
	return nil
}

// ItemCount renders "n items" with the locale's plural rules.
func (l *Locale) ItemCount(n int) string {
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    "ItemCount",
		PluralCount:  n,
		TemplateData: map[string]interface{}{"Count": n},
	})
	if err != nil {
		return fmt.Sprintf("%d", n)
	}
	return s
}

// SampleText returns the sample list as one item per line.
func (l *Locale) SampleText() string {
	return strings.Join(l.Samples, "\n")
}
