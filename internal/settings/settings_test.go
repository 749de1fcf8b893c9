package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidDaySpan(t *testing.T) {
	for _, span := range []int{7, 10, 14, 20, 30} {
		assert.True(t, ValidDaySpan(span), "span %d should be valid", span)
	}
	for _, span := range []int{0, -7, 1, 8, 15, 31, 365} {
		assert.False(t, ValidDaySpan(span), "span %d should be invalid", span)
	}
}

func TestNormalize(t *testing.T) {
	var s Settings
	s.Normalize()

	assert.Equal(t, DefaultDaySpan, s.DaySpan)
	assert.Equal(t, 7, s.DaysPerRow)
	assert.Equal(t, 2, s.MaxVisible)
	assert.Equal(t, "default", s.Account)
	assert.Equal(t, "primary", s.CalendarID)
}

func TestNormalize_KeepsValidValues(t *testing.T) {
	s := Settings{DaySpan: 14, DaysPerRow: 5, MaxVisible: 4, Account: "work", CalendarID: "team@example.com"}
	s.Normalize()

	assert.Equal(t, 14, s.DaySpan)
	assert.Equal(t, 5, s.DaysPerRow)
	assert.Equal(t, 4, s.MaxVisible)
	assert.Equal(t, "work", s.Account)
	assert.Equal(t, "team@example.com", s.CalendarID)
}

func TestLoad_MissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	// The defaults must now exist on disk with restrictive permissions.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	want := Settings{
		DaySpan:    20,
		ListView:   true,
		ExpandAll:  true,
		DaysPerRow: 10,
		MaxVisible: 3,
		Account:    "work",
		CalendarID: "primary",
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_NormalizesBadSpan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("day_span: 9\n"), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultDaySpan, s.DaySpan)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}
