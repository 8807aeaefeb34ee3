package facts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skinatlas/pkg/platform/sentinel"
)

func TestEmbeddedDataset(t *testing.T) {
	store, err := Load(context.Background(), EmbeddedSource{})
	require.NoError(t, err)

	t.Run("resolves repeated countries to their last entry", func(t *testing.T) {
		iceland, ok := store.Get("Iceland")
		require.True(t, ok)
		assert.Equal(t,
			"Very light skin tones evolved to maximize vitamin D synthesis in low UV conditions.",
			iceland.AdaptationMechanisms)

		japan, ok := store.Get("Japan")
		require.True(t, ok)
		assert.Equal(t,
			"Moderate melanin levels suited to seasonal UV levels in temperate climates.",
			japan.AdaptationMechanisms)
	})

	t.Run("reports the repeated countries", func(t *testing.T) {
		dups := store.Duplicates()
		assert.Contains(t, dups, "Italy")
		assert.Contains(t, dups, "Portugal")
		assert.Contains(t, dups, "Vietnam")
	})

	t.Run("every record has all five fields", func(t *testing.T) {
		for _, name := range store.Countries() {
			r, _ := store.Get(name)
			assert.NotEmpty(t, r.AdaptationMechanisms, name)
			assert.NotEmpty(t, r.HistoricalContext, name)
			assert.NotEmpty(t, r.ModernChallenges, name)
			assert.NotEmpty(t, r.Exceptions, name)
			assert.NotEmpty(t, r.LifestyleImpact, name)
		}
	})

	assert.Equal(t, 128, store.Len())
}

func TestParseYAML(t *testing.T) {
	t.Run("keeps document order including repeats", func(t *testing.T) {
		entries, err := ParseYAML([]byte(`
countries:
  - country: "Chad"
    adaptation_mechanisms: "a"
    historical_context: "b"
    modern_challenges: "c"
    exceptions: "d"
    lifestyle_impact: "e"
  - country: "Chad"
    adaptation_mechanisms: "a2"
    historical_context: "b2"
    modern_challenges: "c2"
    exceptions: "d2"
    lifestyle_impact: "e2"
`))
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "a", entries[0].AdaptationMechanisms)
		assert.Equal(t, "e2", entries[1].LifestyleImpact)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := ParseYAML([]byte("countries:\n  - country: Chad\n    climate: hot\n"))
		assert.ErrorIs(t, err, ErrMalformedDataset)
	})

	t.Run("rejects entries without a country", func(t *testing.T) {
		_, err := ParseYAML([]byte("countries:\n  - exceptions: none\n"))
		assert.ErrorContains(t, err, "entry 0 has no country")
		assert.ErrorIs(t, err, ErrMalformedDataset)
	})
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "facts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
countries:
  - country: "Atlantis"
    adaptation_mechanisms: "gills"
    historical_context: "sunk"
    modern_challenges: "tourism"
    exceptions: "none"
    lifestyle_impact: "aquatic"
`), 0o600))

	store, err := Load(context.Background(), FileSource{Path: path})
	require.NoError(t, err)
	got, ok := store.Get("Atlantis")
	require.True(t, ok)
	assert.Equal(t, "gills", got.AdaptationMechanisms)

	_, err = Load(context.Background(), FileSource{Path: filepath.Join(dir, "missing.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

type staticSource struct {
	entries []Entry
	err     error
}

func (s staticSource) Load(context.Context) ([]Entry, error) { return s.entries, s.err }

func TestLoad_Errors(t *testing.T) {
	_, err := Load(context.Background(), staticSource{})
	assert.ErrorIs(t, err, ErrEmptyDataset)

	boom := errors.New("boom")
	_, err = Load(context.Background(), staticSource{err: boom})
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "load facts")
}
