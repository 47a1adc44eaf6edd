package tui

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/morphpage/internal/morph"
)

func TestStreamRedrawsOneLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf, 0)

	for _, f := range []string{"шаг", "#аг"} {
		if err := s.Render(f); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, hideCursor) {
		t.Error("stream should hide the cursor first")
	}
	if strings.Count(out, clearLine) != 2 {
		t.Errorf("expected 2 redraws, got %q", out)
	}
	if !strings.HasSuffix(out, showCursor+"\n") {
		t.Error("close should restore the cursor")
	}
	if s.Frames() != 2 {
		t.Errorf("expected 2 frames, got %d", s.Frames())
	}
}

func TestStreamLimit(t *testing.T) {
	s := NewStream(&bytes.Buffer{}, 2)

	s.Render("a")
	select {
	case <-s.Done():
		t.Fatal("done after one frame")
	default:
	}

	s.Render("b")
	s.Render("c")
	select {
	case <-s.Done():
	default:
		t.Fatal("expected done after two frames")
	}
}

func TestStreamClosed(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf, 0)
	s.Close()

	if buf.Len() != 0 {
		t.Errorf("unused stream wrote %q", buf.String())
	}
	if err := s.Render("x"); !errors.Is(err, morph.ErrMissingSink) {
		t.Errorf("expected ErrMissingSink, got %v", err)
	}
}

func TestTrace(t *testing.T) {
	cfg := morph.Config{
		Interval: 250 * time.Millisecond,
		Pause:    time.Second,
		Substitutions: []morph.Substitution{
			{From: 'ш', To: '#'},
			{From: 'а', To: '%'},
		},
	}

	frames, err := Trace("шаг", cfg, 4)
	if err != nil {
		t.Fatal(err)
	}

	want := []TraceFrame{
		{At: 0, Text: "шаг", Index: -1},
		{At: 250 * time.Millisecond, Text: "#аг", Index: 0},
		{At: 500 * time.Millisecond, Text: "ш%г", Index: 1},
		{At: 750 * time.Millisecond, Text: "шаг", Index: -1},
		{At: 2000 * time.Millisecond, Text: "#аг", Index: 0},
	}
	if len(frames) != len(want) {
		t.Fatalf("expected %d frames, got %d: %v", len(want), len(frames), frames)
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d: expected %+v, got %+v", i, want[i], frames[i])
		}
	}
}

func TestTraceRejectsBadConfig(t *testing.T) {
	if _, err := Trace("x", morph.Config{}, 3); !errors.Is(err, morph.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}

func TestWriteTrace(t *testing.T) {
	var buf bytes.Buffer
	frames := []TraceFrame{
		{At: 0, Text: "шаг", Index: -1},
		{At: 250 * time.Millisecond, Text: "#аг", Index: 0},
		{At: 500 * time.Millisecond, Text: "ш%г", Index: 1},
	}
	if err := WriteTrace(&buf, frames); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "ш%г") || !strings.Contains(out, "substituted index") {
		t.Errorf("unexpected trace output:\n%s", out)
	}
}

func TestExportJSON(t *testing.T) {
	cfg := morph.Config{
		Interval:      250 * time.Millisecond,
		Pause:         time.Second,
		Substitutions: []morph.Substitution{{From: 'ш', To: '#'}},
	}
	frames, err := Trace("шаг", cfg, 2)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "trace.json")
	if err := ExportJSON(path, "шаг", cfg, frames); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.IntervalMs != 250 || data.PauseMs != 1000 {
		t.Errorf("unexpected timing %d/%d", data.IntervalMs, data.PauseMs)
	}
	if len(data.Substitutions) != 1 || data.Substitutions[0] != "ш→#" {
		t.Errorf("unexpected substitutions %v", data.Substitutions)
	}
	if len(data.Frames) != 3 || data.Frames[1].Text != "#аг" || data.Frames[1].AtMs != 250 {
		t.Errorf("unexpected frames %+v", data.Frames)
	}
}
