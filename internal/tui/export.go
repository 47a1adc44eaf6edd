package tui

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/morphpage/internal/morph"
)

type ExportData struct {
	Text          string        `json:"text"`
	IntervalMs    int64         `json:"interval_ms"`
	PauseMs       int64         `json:"pause_ms"`
	Substitutions []string      `json:"substitutions"`
	Frames        []ExportFrame `json:"frames"`
}

type ExportFrame struct {
	AtMs  int64  `json:"at_ms"`
	Text  string `json:"text"`
	Index int    `json:"index"`
}

func newExportData(text string, cfg morph.Config, frames []TraceFrame) ExportData {
	data := ExportData{
		Text:          text,
		IntervalMs:    cfg.Interval.Milliseconds(),
		PauseMs:       cfg.Pause.Milliseconds(),
		Substitutions: make([]string, len(cfg.Substitutions)),
		Frames:        make([]ExportFrame, len(frames)),
	}
	for i, s := range cfg.Substitutions {
		data.Substitutions[i] = string(s.From) + "→" + string(s.To)
	}
	for i, f := range frames {
		data.Frames[i] = ExportFrame{AtMs: f.At.Milliseconds(), Text: f.Text, Index: f.Index}
	}
	return data
}

// EncodeJSON writes a trace run as indented JSON.
func EncodeJSON(w io.Writer, text string, cfg morph.Config, frames []TraceFrame) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(text, cfg, frames))
}

func ExportJSON(path, text string, cfg morph.Config, frames []TraceFrame) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return EncodeJSON(file, text, cfg, frames)
}
