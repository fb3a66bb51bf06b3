package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
		ok   bool
	}{
		{"en", language.English, true},
		{"es_ES.UTF-8", language.MustParse("es-ES"), true},
		{"de_DE@euro", language.MustParse("de-DE"), true},
		{"C", language.Und, false},
		{"POSIX", language.Und, false},
		{"", language.Und, false},
		{"!!", language.Und, false},
	}
	for _, tt := range tests {
		got, ok := ParseLocale(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}

func TestNew_DefaultsToEnglish(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, language.English, c.Language())
	assert.Equal(t, "Home Screen", c.T("home_title"))
}

func TestNew_MatchesSpanish(t *testing.T) {
	c, err := New("es_MX.UTF-8")
	require.NoError(t, err)
	assert.Equal(t, language.Spanish, c.Language())
	assert.Equal(t, "Volver", c.T("details_go_back"))
}

func TestNew_UnsupportedFallsBack(t *testing.T) {
	c, err := New("C", "fr_FR.UTF-8")
	require.NoError(t, err)
	assert.Equal(t, language.English, c.Language())
	assert.Equal(t, "Go Back", c.T("details_go_back"))
}

func TestT_TemplateData(t *testing.T) {
	c, err := New("en")
	require.NoError(t, err)
	assert.Equal(t, "Item ID: 2", c.T("details_item_id", map[string]any{"ItemID": 2}))
	assert.Equal(t, "Go to Second Item", c.T("nav_go_to_item", map[string]any{"Title": "Second Item"}))
}

func TestT_MissingMessageReturnsID(t *testing.T) {
	c, err := New("en")
	require.NoError(t, err)
	assert.Equal(t, "no_such_message", c.T("no_such_message"))
}

func TestLocales_SameMessageIDs(t *testing.T) {
	en, err := New("en")
	require.NoError(t, err)
	es, err := New("es")
	require.NoError(t, err)

	for _, id := range []string{"home_title", "config_heading", "box_loop", "details_go_home", "debug_empty"} {
		assert.NotEqual(t, id, en.T(id), id)
		assert.NotEqual(t, id, es.T(id), id)
	}
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	assert.Equal(t, "home_title", c.T("home_title"))
	assert.Equal(t, Fallback, c.Language())
}
