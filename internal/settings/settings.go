package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// daySpans are the selectable horizons, in days.
var daySpans = []int{7, 10, 14, 20, 30}

// DefaultDaySpan is the horizon used when none is configured.
const DefaultDaySpan = 7

// Settings is the persisted widget configuration.
type Settings struct {
	// DaySpan is the number of days to render, one of 7/10/14/20/30.
	DaySpan int `yaml:"day_span" json:"daySpan"`

	// ListView selects the agenda (list) view instead of the day grid.
	ListView bool `yaml:"list_view" json:"listView"`

	// ExpandAll disables the per-day visible-event cap.
	ExpandAll bool `yaml:"expand_all" json:"expandAll"`

	// DaysPerRow is the grid layout hint.
	DaysPerRow int `yaml:"days_per_row" json:"daysPerRow"`

	// MaxVisible caps events shown per day before "+N more".
	MaxVisible int `yaml:"max_visible" json:"maxVisible"`

	// Account is the Google account name whose token is used.
	Account string `yaml:"account" json:"account"`

	// CalendarID is the calendar to fetch; "primary" by default.
	CalendarID string `yaml:"calendar_id" json:"calendarId"`
}

// Default returns the in-memory default configuration.
func Default() Settings {
	return Settings{
		DaySpan:    DefaultDaySpan,
		ListView:   false,
		ExpandAll:  false,
		DaysPerRow: 7,
		MaxVisible: 2,
		Account:    "default",
		CalendarID: "primary",
	}
}

// DaySpans returns the selectable horizons for settings UIs.
func DaySpans() []int {
	out := make([]int, len(daySpans))
	copy(out, daySpans)
	return out
}

// ValidDaySpan reports whether span is one of the selectable horizons.
func ValidDaySpan(span int) bool {
	for _, s := range daySpans {
		if s == span {
			return true
		}
	}
	return false
}

// Normalize fills in missing/zero values with defaults so partially-filled
// files (e.g. from older versions) still behave correctly.
func (s *Settings) Normalize() {
	if !ValidDaySpan(s.DaySpan) {
		s.DaySpan = DefaultDaySpan
	}
	if s.DaysPerRow < 1 {
		s.DaysPerRow = 7
	}
	if s.MaxVisible < 1 {
		s.MaxVisible = 2
	}
	if s.Account == "" {
		s.Account = "default"
	}
	if s.CalendarID == "" {
		s.CalendarID = "primary"
	}
}

// Load reads settings from the given YAML path. A missing file is not an
// error: the defaults are written back and returned, so first runs start
// from a well-formed file.
func Load(path string) (Settings, error) {
	if path == "" {
		return Settings{}, errors.New("settings path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s := Default()
			if err := Save(path, s); err != nil {
				return s, err
			}
			return s, nil
		}
		return Settings{}, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file: %w", err)
	}
	s.Normalize()

	return s, nil
}

// Save writes settings to the given path atomically (temp file + rename)
// with 0600 permissions.
func Save(path string, s Settings) error {
	if path == "" {
		return errors.New("settings path is empty")
	}

	s.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tabcal-settings-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// DefaultPath returns the settings file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "tabcal", "settings.yaml"), nil
}
