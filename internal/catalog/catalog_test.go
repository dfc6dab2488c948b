package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/screener/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, 10, c.Len())
	assert.Equal(t, []string{
		"mdd_adult", "gad_adult", "adhd_adult", "ptsd_adult", "bipolar_screen",
		"ocd_adult", "depression", "anxiety", "stress", "sleep",
	}, c.IDs())
}

func TestDefaultCatalogInstrumentsAreConsistent(t *testing.T) {
	for _, in := range Default().Instruments() {
		t.Run(in.ID, func(t *testing.T) {
			require.NoError(t, in.Validate())
			assert.Equal(t, len(in.Questions), in.Stats.Questions, "stats question count")
			assert.NotEmpty(t, in.Icon)
			assert.NotEmpty(t, in.Description)
			assert.Greater(t, in.Stats.Minutes, 0)
		})
	}
}

func TestGet(t *testing.T) {
	c := Default()

	in, err := c.Get("depression")
	require.NoError(t, err)
	assert.Equal(t, "Depression Quick Check", in.Title)
	require.Len(t, in.Questions, 2)
	assert.Equal(t, "dep_1", in.Questions[0].ID)
	assert.Equal(t, "dep_9", in.Questions[1].ID)

	_, err = c.Get("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	var nf *models.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "instrument", nf.Kind)
	assert.Equal(t, "nope", nf.ID)
}

func TestCrisisOptions(t *testing.T) {
	c := Default()

	mdd, err := c.Get("mdd_adult")
	require.NoError(t, err)
	q, _, ok := mdd.Question("mdd_a9")
	require.True(t, ok)
	assert.True(t, q.IsCrisisValue(1))
	assert.False(t, q.IsCrisisValue(0))

	dep, err := c.Get("depression")
	require.NoError(t, err)
	q, _, ok = dep.Question("dep_9")
	require.True(t, ok)
	assert.False(t, q.IsCrisisValue(0))
	for v := 1; v <= 3; v++ {
		assert.True(t, q.IsCrisisValue(v), "dep_9 value %d", v)
	}
}

func TestListIsRestartable(t *testing.T) {
	c := Default()

	first := c.List()
	first[0].Title = "changed"
	second := c.List()

	assert.Equal(t, "Major Depressive Disorder (Adult)", second[0].Title)
	assert.Len(t, second, c.Len())
}

func TestNewCopiesInput(t *testing.T) {
	defs := []models.Instrument{stressCheck()}
	c, err := New(defs)
	require.NoError(t, err)

	defs[0].Questions[0].Prompt = "mutated"
	defs[0].Questions[0].Options[0].Label = "mutated"

	in, err := c.Get("stress")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", in.Questions[0].Prompt)
	assert.NotEqual(t, "mutated", in.Questions[0].Options[0].Label)
}

func TestNewRejectsInvalidCatalogs(t *testing.T) {
	dupQuestion := stressCheck()
	dupQuestion.Questions[1].ID = dupQuestion.Questions[0].ID

	noOptions := stressCheck()
	noOptions.Questions[2].Options = nil

	negative := stressCheck()
	negative.Questions[0].Options[0].Value = -1

	tests := []struct {
		name        string
		instruments []models.Instrument
		wantErr     string
	}{
		{"empty", nil, "no instruments"},
		{"duplicate instrument", []models.Instrument{stressCheck(), stressCheck()}, "duplicate instrument id"},
		{"duplicate question", []models.Instrument{dupQuestion}, "duplicate question id"},
		{"question without options", []models.Instrument{noOptions}, "has no options"},
		{"negative value", []models.Instrument{negative}, "negative value"},
		{"missing id", []models.Instrument{{Title: "x", Questions: stressCheck().Questions}}, "id is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.instruments)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("catalog.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("catalog.YML"))
	assert.Equal(t, FormatJSON, DetectFormat("catalog.json"))
	assert.Equal(t, FormatUnknown, DetectFormat("catalog.txt"))
	assert.Equal(t, "yaml", FormatYAML.String())
}

func TestParseYAML(t *testing.T) {
	doc := `
instruments:
  - id: mood_check
    title: Mood Check
    description: Custom check
    icon: "*"
    stats:
      minutes: 1
      rating: Custom
    questions:
      - id: m1
        prompt: How is your mood?
        options:
          - {value: 0, label: Fine}
          - {value: 2, label: Low, crisis: true}
`
	c, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	in, err := c.Get("mood_check")
	require.NoError(t, err)
	assert.Equal(t, 1, in.Stats.Questions, "question count is derived when omitted")
	assert.True(t, in.Questions[0].IsCrisisValue(2))
}

func TestParseRejectsUnknownFields(t *testing.T) {
	doc := `
instruments:
  - id: x
    title: X
    questoins: []
`
	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestMarshalLoadRoundTrip(t *testing.T) {
	data, err := Marshal(Builtin())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Instruments(), c.Instruments())
}

func TestLoadJSON(t *testing.T) {
	doc := `{"instruments":[{"id":"j","title":"J","questions":[{"id":"j1","prompt":"?","options":[{"value":1,"label":"Yes"}]}]}]}`
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.True(t, c.Has("j"))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("catalog.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
