package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	want := Config{20, 30, 10, 20, 5, 10, 30}
	if cfg != want {
		t.Fatalf("Default()=%+v want=%+v", cfg, want)
	}
}

func TestParse_MixedCaseCommentsAndWhitespace(t *testing.T) {
	in := `# board policy

hit_duration = 7
  PaintBlob_Limit=12
ROCK_LOWER_BOUND   =   3
rock_upper_bound = 4   # trailing comment
	fog_lower_bound	=	1

Fog_Upper_Bound = 2
LONG_RANGE_LIMIT = 9
`
	cfg, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Config{
		HitDuration:    7,
		PaintBlobLimit: 12,
		RockLowerBound: 3,
		RockUpperBound: 4,
		FogLowerBound:  1,
		FogUpperBound:  2,
		LongRangeLimit: 9,
	}
	if cfg != want {
		t.Fatalf("cfg=%+v want=%+v", cfg, want)
	}
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader("HIT_DURATION=3"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Default()
	want.HitDuration = 3
	if cfg != want {
		t.Fatalf("cfg=%+v want=%+v", cfg, want)
	}
}

func TestParse_DuplicateKeyOverwrites(t *testing.T) {
	cfg, err := Parse(strings.NewReader("HIT_DURATION=3\nhit_duration=8\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.HitDuration != 8 {
		t.Fatalf("HitDuration=%d want=8", cfg.HitDuration)
	}
}

func TestParse_WhitespaceInsideTokensIsRemoved(t *testing.T) {
	cfg, err := Parse(strings.NewReader("PAINT BLOB_LIMIT = 1 5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.PaintBlobLimit != 15 {
		t.Fatalf("PaintBlobLimit=%d want=15", cfg.PaintBlobLimit)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		wantType any
		wantLine int
	}{
		{"missing equals", "HIT_DURATION 5\n", &FormatError{}, 1},
		{"multiple equals", "\nHIT_DURATION = 5 = 6\n", &FormatError{}, 2},
		{"empty key", "= 5\n", &FormatError{}, 1},
		{"bad key chars", "HIT-DURATION = 5\n", &FormatError{}, 1},
		{"empty value", "HIT_DURATION =\n", &FormatError{}, 1},
		{"unknown key", "# c\n\nSPEED = 5\n", &FormatError{}, 3},
		{"unknown key with bad value", "HIT_DURATION = 3\nFOO = abc\n", &FormatError{}, 2},
		{"unknown key with zero value", "foo = 0\n", &FormatError{}, 1},
		{"non numeric", "HIT_DURATION = five\n", &ValueError{}, 1},
		{"trailing junk", "HIT_DURATION = 5x\n", &ValueError{}, 1},
		{"out of range", "HIT_DURATION = 99999999999999999999999\n", &ValueError{}, 1},
		{"zero", "PAINTBLOB_LIMIT = 0\n", &ValueError{}, 1},
		{"negative", "FOG_UPPER_BOUND = -3\n", &ValueError{}, 1},
		{"inverted rock bounds", "ROCK_LOWER_BOUND = 9\nROCK_UPPER_BOUND = 2\n", &BoundsError{}, 0},
		{"inverted fog bounds", "FOG_LOWER_BOUND = 11\n", &BoundsError{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.in))
			if err == nil {
				t.Fatalf("expected error for %q", tc.in)
			}
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("err=%v does not match ErrConfig", err)
			}
			switch tc.wantType.(type) {
			case *FormatError:
				var fe *FormatError
				if !errors.As(err, &fe) {
					t.Fatalf("err=%T %v want *FormatError", err, err)
				}
				if fe.Line != tc.wantLine {
					t.Fatalf("line=%d want=%d (%v)", fe.Line, tc.wantLine, err)
				}
			case *ValueError:
				var ve *ValueError
				if !errors.As(err, &ve) {
					t.Fatalf("err=%T %v want *ValueError", err, err)
				}
				if ve.Line != tc.wantLine {
					t.Fatalf("line=%d want=%d (%v)", ve.Line, tc.wantLine, err)
				}
			case *BoundsError:
				var be *BoundsError
				if !errors.As(err, &be) {
					t.Fatalf("err=%T %v want *BoundsError", err, err)
				}
			}
			t.Logf("%s: %v", tc.name, err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "board.cfg", "HIT_DURATION = 4\nLONG_RANGE_LIMIT = 2\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HitDuration != 4 || cfg.LongRangeLimit != 2 {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.cfg"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err=%v want fs.ErrNotExist", err)
	}
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("err=%v want ErrConfig", err)
	}
}

func TestLoad_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	path := writeFile(t, "locked.cfg", "HIT_DURATION = 4\n")
	if err := os.Chmod(path, 0); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	_, err := Load(path)
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("err=%v want fs.ErrPermission", err)
	}
}

func TestValidate_RejectsNonPositive(t *testing.T) {
	cfg := Default()
	cfg.LongRangeLimit = 0
	var ve *ValueError
	if err := cfg.Validate(); !errors.As(err, &ve) || ve.Key != KeyLongRangeLimit {
		t.Fatalf("err=%v want ValueError for %s", err, KeyLongRangeLimit)
	}
}
