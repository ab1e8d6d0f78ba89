package config

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Match assigns strategies to the two robots and carries per-match driver settings.
// Zero MaxMoves and Seed mean "use the driver default".
type Match struct {
	Red           string `yaml:"red"`
	Blue          string `yaml:"blue"`
	MaxMoves      int    `yaml:"max_moves"`
	Seed          int64  `yaml:"seed"`
	StopOnBlocked *bool  `yaml:"stop_on_blocked"`
}

// LoadMatch reads a match file. Files ending in .yaml or .yml are decoded as YAML;
// anything else is the two-line form: red strategy name, then blue strategy name.
func LoadMatch(path string) (Match, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Match{}, &FileError{Path: path, Err: err}
	}
	var m Match
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &m); err != nil {
			return Match{}, &FormatError{Msg: "match file " + path + ": " + err.Error()}
		}
		m.Red = strings.TrimSpace(m.Red)
		m.Blue = strings.TrimSpace(m.Blue)
	default:
		m = parseMatchLines(b)
	}
	if err := m.Validate(); err != nil {
		return Match{}, err
	}
	return m, nil
}

func parseMatchLines(b []byte) Match {
	var names [2]string
	sc := bufio.NewScanner(bytes.NewReader(b))
	for i := 0; i < len(names) && sc.Scan(); i++ {
		names[i] = strings.TrimSpace(sc.Text())
	}
	return Match{Red: names[0], Blue: names[1]}
}

// Validate checks that both robots are named and the numeric settings are sane.
func (m Match) Validate() error {
	if m.Red == "" {
		return &FormatError{Msg: "missing red robot strategy"}
	}
	if m.Blue == "" {
		return &FormatError{Msg: "missing blue robot strategy"}
	}
	if m.MaxMoves < 0 {
		return &ValueError{Key: "max_moves", Value: strconv.Itoa(m.MaxMoves), Reason: "must not be negative"}
	}
	return nil
}

// StopOnBlockedOr returns the configured stop_on_blocked value, or def when unset.
func (m Match) StopOnBlockedOr(def bool) bool {
	if m.StopOnBlocked == nil {
		return def
	}
	return *m.StopOnBlocked
}
