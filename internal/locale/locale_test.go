package locale

import (
	"fmt"
	"testing"
	"time"

	"randompick/internal/errors"

	"github.com/alecthomas/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadEnglish(t *testing.T) {
	l, err := Load("en")
	require.NoError(t, err)

	assert.Equal(t, language.English, l.Tag)
	assert.Equal(t, "Please enter some items first!", l.Strings.EmptyInput)
	assert.Equal(t, "Pick Random", l.Strings.PickButton)
	assert.Equal(t, "Picking...", l.Strings.PickingButton)
	assert.Equal(t, fmt.Sprintf("Random Picker %d", time.Now().Year()), l.Strings.Footer)
	assert.Equal(t, 15, len(l.Samples))
	assert.Equal(t, "Tom Hanks", l.Samples[0])
}

func TestLoadSpanish(t *testing.T) {
	l, err := Load("es")
	require.NoError(t, err)

	assert.Equal(t, language.Spanish, l.Tag)
	assert.Equal(t, "¡Por favor, ingresa algunos elementos primero!", l.Strings.EmptyInput)
	assert.Equal(t, "Seleccionar al Azar", l.Strings.PickButton)
	assert.Equal(t, "Seleccionando...", l.Strings.PickingButton)
	assert.Equal(t, "Cargar Ejemplos", l.Strings.LoadSampleButton)
	assert.Equal(t, "Reiniciar Todo", l.Strings.ResetButton)
	assert.Equal(t, "Elemento Seleccionado:", l.Strings.SelectedHeading)
	assert.Equal(t, 15, len(l.Samples))
	assert.Equal(t, "Antonio Banderas", l.Samples[0])
	assert.Equal(t, "Guillermo del Toro", l.Samples[14])
}

func TestEveryStringResolved(t *testing.T) {
	for _, code := range Supported() {
		l := MustLoad(code)
		s := l.Strings
		for name, v := range map[string]string{
			"Title": s.Title, "Description": s.Description, "Privacy": s.Privacy,
			"Placeholder": s.Placeholder, "SelectedHeading": s.SelectedHeading,
			"PickButton": s.PickButton, "PickingButton": s.PickingButton,
			"LoadSampleButton": s.LoadSampleButton, "ResetButton": s.ResetButton,
			"EmptyInput": s.EmptyInput, "Quit": s.Quit, "Footer": s.Footer,
			"TooLong": s.TooLong,
		} {
			assert.True(t, v != "", code+"/"+name)
		}
	}
}

func TestRegionalVariants(t *testing.T) {
	for _, tag := range []string{"es-MX", "es_ES", "es_ES.UTF-8", "ES"} {
		l, err := Load(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, language.Spanish, l.Tag, tag)
	}
	l, err := Load("en_US.UTF-8")
	require.NoError(t, err)
	assert.Equal(t, language.English, l.Tag)
}

func TestUnknownLocale(t *testing.T) {
	for _, tag := range []string{"fr", "de-DE", "", "not a tag"} {
		_, err := Load(tag)
		require.Error(t, err, tag)
		assert.True(t, errors.IsUnknownLocale(err), tag)
	}
}

func TestAutoLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "es_AR.UTF-8")

	l, err := Load(Auto)
	require.NoError(t, err)
	assert.Equal(t, language.Spanish, l.Tag)

	t.Setenv("LANG", "C")
	assert.Equal(t, "en", FromEnv())

	t.Setenv("LANG", "fr_FR.UTF-8")
	assert.Equal(t, "en", FromEnv())
}

func TestItemCount(t *testing.T) {
	en := MustLoad("en")
	assert.Equal(t, "1 item", en.ItemCount(1))
	assert.Equal(t, "4 items", en.ItemCount(4))
	assert.Equal(t, "0 items", en.ItemCount(0))

	es := MustLoad("es")
	assert.Equal(t, "1 elemento", es.ItemCount(1))
	assert.Equal(t, "15 elementos", es.ItemCount(15))
}

func TestSampleText(t *testing.T) {
	l := MustLoad("es")
	text := l.SampleText()
	assert.Contains(t, text, "Penélope Cruz\nJavier Bardem")
}
