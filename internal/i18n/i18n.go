// Package i18n serves the app's UI strings from embedded TOML message files.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Fallback is the language used when nothing better matches.
var Fallback = language.English

// Catalog localizes message IDs for one language.
type Catalog struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	tag       language.Tag
}

// New loads every embedded message file and picks the best match for langs
// (BCP 47 tags or POSIX locale names such as "es_ES.UTF-8").
func New(langs ...string) (*Catalog, error) {
	bundle := goi18n.NewBundle(Fallback)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(locales, f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var wanted []language.Tag
	var normalized []string
	for _, l := range langs {
		tag, ok := ParseLocale(l)
		if !ok {
			continue
		}
		wanted = append(wanted, tag)
		normalized = append(normalized, tag.String())
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	tag, _, _ := matcher.Match(wanted...)
	base, _ := tag.Base()
	tag, _ = language.Compose(base)

	return &Catalog{
		bundle:    bundle,
		localizer: goi18n.NewLocalizer(bundle, normalized...),
		tag:       tag,
	}, nil
}

// FromEnv builds a catalog for the locale named by LC_ALL, LC_MESSAGES or LANG.
func FromEnv() (*Catalog, error) {
	return New(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
}

// ParseLocale converts a POSIX locale name or BCP 47 tag to a language tag.
// "C", "POSIX" and empty strings are rejected.
func ParseLocale(s string) (language.Tag, bool) {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "-")
	if s == "" || s == "C" || s == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// Language returns the matched base language.
func (c *Catalog) Language() language.Tag {
	if c == nil {
		return Fallback
	}
	return c.tag
}

// T localizes id. data, when given, fills template fields such as
// {{.Title}}. A missing message, or a nil catalog, renders as its ID.
func (c *Catalog) T(id string, data ...map[string]any) string {
	if c == nil {
		return id
	}
	cfg := &goi18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	s, err := c.localizer.Localize(cfg)
	if err != nil || s == "" {
		return id
	}
	return s
}
