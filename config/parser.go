package config

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar only splits the file into lines of words and '=' tokens. Whitespace is
// dropped anywhere on a line, so "HIT DURATION = 1 0" reads as HITDURATION=10; the
// per-line checks below decide what a well-formed pair is.
var configLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[^\S\n]+`},
	{Name: "Eq", Pattern: `=`},
	{Name: "Word", Pattern: `[^=#\s]+`},
})

type configFile struct {
	Lines []*configLine `parser:"( @@ | EOL )*"`
}

type configLine struct {
	Pos    lexer.Position
	Tokens []string `parser:"@( Word | Eq )+"`
}

var configParser = participle.MustBuild[configFile](
	participle.Lexer(configLexer),
	participle.Elide("Comment", "Whitespace"),
)

func parse(name string, r io.Reader) (Config, error) {
	cfg := Default()
	file, err := configParser.Parse(name, r)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return Config{}, &FormatError{Line: perr.Position().Line, Msg: perr.Message()}
		}
		return Config{}, &FormatError{Msg: err.Error()}
	}
	for _, ln := range file.Lines {
		if err := cfg.apply(ln); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(ln *configLine) error {
	line := ln.Pos.Line
	eq := -1
	for i, tok := range ln.Tokens {
		if tok != "=" {
			continue
		}
		if eq >= 0 {
			return &FormatError{Line: line, Msg: "multiple '=' found"}
		}
		eq = i
	}
	if eq < 0 {
		return &FormatError{Line: line, Msg: "missing '=' in " + strings.Join(ln.Tokens, "")}
	}
	key := strings.Join(ln.Tokens[:eq], "")
	value := strings.Join(ln.Tokens[eq+1:], "")
	if key == "" {
		return &FormatError{Line: line, Msg: "empty key"}
	}
	if !validKey(key) {
		return &FormatError{Line: line, Msg: "invalid characters in key " + key}
	}
	if value == "" {
		return &FormatError{Line: line, Msg: "empty value for key " + key}
	}
	key = strings.ToUpper(key)
	ptr, ok := c.lookup(key)
	if !ok {
		return &FormatError{Line: line, Msg: "unknown configuration key " + key}
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		reason := "is not an integer"
		if errors.Is(err, strconv.ErrRange) {
			reason = "is out of range"
		}
		return &ValueError{Line: line, Key: key, Value: value, Reason: reason}
	}
	if n <= 0 {
		return &ValueError{Line: line, Key: key, Value: value, Reason: "must be positive"}
	}
	*ptr = n
	return nil
}

func validKey(key string) bool {
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}
