package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestPrettyJSONHandler_Layout(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	log.With("game_id", "g1").WithGroup("turn").Debug("moved",
		"n", 4,
		"robot", "red",
		slog.Group("pos", "row", 3, "col", 9),
		"err", errors.New("blocked"),
	)

	out := buf.String()
	t.Logf("\n%s", out)
	if !strings.Contains(out, "\n  \"time\"") {
		t.Fatalf("record is not indented")
	}
	if i, j := strings.Index(out, `"time"`), strings.Index(out, `"msg"`); i < 0 || j < i {
		t.Fatalf("time must precede msg")
	}

	var got struct {
		Level string
		Msg   string
		Attrs map[string]any
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Level != "DEBUG" || got.Msg != "moved" {
		t.Fatalf("level=%s msg=%s", got.Level, got.Msg)
	}
	if got.Attrs["game_id"] != "g1" {
		t.Fatalf("game_id bound before the group moved: %v", got.Attrs)
	}
	turn, ok := got.Attrs["turn"].(map[string]any)
	if !ok {
		t.Fatalf("turn group missing: %v", got.Attrs)
	}
	if turn["robot"] != "red" || turn["n"] != float64(4) || turn["err"] != "blocked" {
		t.Fatalf("turn group=%v", turn)
	}
	pos, ok := turn["pos"].(map[string]any)
	if !ok || pos["row"] != float64(3) || pos["col"] != float64(9) {
		t.Fatalf("pos group=%v", turn["pos"])
	}
}

func TestPrettyJSONHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyJSONHandler(&buf, nil))
	log.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug record written at default level: %s", buf.String())
	}
	log.Info("shown")
	if !strings.Contains(buf.String(), `"msg": "shown"`) {
		t.Fatalf("info record missing: %s", buf.String())
	}
	if strings.Contains(buf.String(), `"attrs"`) {
		t.Fatalf("attrs written for a bare record: %s", buf.String())
	}
}

func TestNew(t *testing.T) {
	cases := []struct {
		format string
		want   string
	}{
		{"text", "msg=hello"},
		{"", "msg=hello"},
		{"json", `"msg":"hello"`},
		{"PRETTY", `"msg": "hello"`},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		log, err := New(&buf, tc.format, slog.LevelInfo)
		if err != nil {
			t.Fatalf("New(%q): %v", tc.format, err)
		}
		log.Info("hello")
		if !strings.Contains(buf.String(), tc.want) {
			t.Fatalf("format %q wrote %q, want it to contain %q", tc.format, buf.String(), tc.want)
		}
	}
	if _, err := New(&bytes.Buffer{}, "xml", slog.LevelInfo); err == nil {
		t.Fatalf("unknown format accepted")
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"INFO":   slog.LevelInfo,
		"Warn":   slog.LevelWarn,
		"error":  slog.LevelError,
		"info+2": slog.LevelInfo + 2,
	} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q)=%v,%v want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("bad level accepted")
	}
}
