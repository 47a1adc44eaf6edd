package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/san-kum/morphpage/internal/lang"
	"github.com/san-kum/morphpage/internal/morph"
	"github.com/san-kum/morphpage/internal/theme"
	"github.com/san-kum/morphpage/internal/typewriter"
)

const (
	DefaultText       = "404 — Ошибочка"
	DefaultIntervalMs = 500
	DefaultPauseMs    = 1500
	DefaultSpeedMs    = 60
	DefaultAppName    = "morphpage"

	EnvPrefix = "MORPHPAGE_"
)

type Config struct {
	Morph      MorphConfig      `yaml:"morph" koanf:"morph"`
	Typewriter TypewriterConfig `yaml:"typewriter" koanf:"typewriter"`
	Storage    StorageConfig    `yaml:"storage" koanf:"storage"`
	Page       PageConfig       `yaml:"page" koanf:"page"`
}

type MorphConfig struct {
	Text          string               `yaml:"text" koanf:"text"`
	IntervalMs    int                  `yaml:"interval_ms" koanf:"interval_ms"`
	PauseMs       int                  `yaml:"pause_ms" koanf:"pause_ms"`
	Substitutions []SubstitutionConfig `yaml:"substitutions" koanf:"substitutions"`
}

type SubstitutionConfig struct {
	From string `yaml:"from" koanf:"from"`
	To   string `yaml:"to" koanf:"to"`
}

type TypewriterConfig struct {
	SpeedMs    int               `yaml:"speed_ms" koanf:"speed_ms"`
	Texts      map[string]string `yaml:"texts" koanf:"texts"`
	Highlights map[string]string `yaml:"highlights" koanf:"highlights"`
}

type StorageConfig struct {
	AppName string `yaml:"app_name" koanf:"app_name"`
}

type PageConfig struct {
	Theme    string `yaml:"theme" koanf:"theme"`
	Language string `yaml:"language" koanf:"language"`
}

func DefaultSubstitutions() []SubstitutionConfig {
	subs := morph.DefaultSubstitutions()
	out := make([]SubstitutionConfig, len(subs))
	for i, s := range subs {
		out[i] = SubstitutionConfig{From: string(s.From), To: string(s.To)}
	}
	return out
}

func DefaultConfig() *Config {
	return &Config{
		Morph: MorphConfig{
			Text:          DefaultText,
			IntervalMs:    DefaultIntervalMs,
			PauseMs:       DefaultPauseMs,
			Substitutions: DefaultSubstitutions(),
		},
		Typewriter: TypewriterConfig{
			SpeedMs: DefaultSpeedMs,
			Texts: map[string]string{
				"en": "{Middle} is a small studio building careful, fast web pages.",
				"ru": "{Мидл} — небольшая студия, которая делает аккуратные и быстрые сайты.",
			},
			Highlights: map[string]string{
				"en": "{Middle}",
				"ru": "{Мидл}",
			},
		},
		Storage: StorageConfig{AppName: DefaultAppName},
		Page: PageConfig{
			Theme:    string(theme.Default),
			Language: string(lang.Default),
		},
	}
}

// Load reads the YAML file at path over DefaultConfig, then applies
// MORPHPAGE_* environment overrides. A missing file is not an error; nested
// keys use a double underscore: MORPHPAGE_MORPH__PAUSE_MS=0.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// decoding into a prefilled slice would keep trailing default entries
	if k.Exists("morph.substitutions") {
		cfg.Morph.Substitutions = nil
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yamlv3.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if _, err := c.Morph.ToMorph(); err != nil {
		return err
	}
	if c.Typewriter.SpeedMs <= 0 {
		return fmt.Errorf("typewriter.speed_ms must be positive, got %d", c.Typewriter.SpeedMs)
	}
	for k := range c.Typewriter.Texts {
		if _, err := lang.Parse(k); err != nil {
			return fmt.Errorf("typewriter.texts: %w", err)
		}
	}
	if _, err := theme.Parse(c.Page.Theme); err != nil {
		return fmt.Errorf("page.theme: %w", err)
	}
	if _, err := lang.Parse(c.Page.Language); err != nil {
		return fmt.Errorf("page.language: %w", err)
	}
	return nil
}

// ToMorph converts the section into animator settings. Every substitution
// side must be exactly one rune.
func (m MorphConfig) ToMorph() (morph.Config, error) {
	cfg := morph.Config{
		Interval: time.Duration(m.IntervalMs) * time.Millisecond,
		Pause:    time.Duration(m.PauseMs) * time.Millisecond,
	}
	for i, s := range m.Substitutions {
		if utf8.RuneCountInString(s.From) != 1 || utf8.RuneCountInString(s.To) != 1 {
			return morph.Config{}, fmt.Errorf("morph.substitutions[%d]: %w: from/to must be single characters, got %q -> %q",
				i, morph.ErrConfiguration, s.From, s.To)
		}
		from, _ := utf8.DecodeRuneInString(s.From)
		to, _ := utf8.DecodeRuneInString(s.To)
		cfg.Substitutions = append(cfg.Substitutions, morph.Substitution{From: from, To: to})
	}
	if err := cfg.Validate(); err != nil {
		return morph.Config{}, err
	}
	return cfg, nil
}

// Scripts builds the typewriter texts keyed by page language. Entries with
// an unsupported language key are skipped.
func (t TypewriterConfig) Scripts() map[lang.Lang]typewriter.Script {
	out := make(map[lang.Lang]typewriter.Script, len(t.Texts))
	for k, text := range t.Texts {
		l, err := lang.Parse(k)
		if err != nil {
			continue
		}
		out[l] = typewriter.Script{Text: text, Highlight: t.Highlights[k]}
	}
	return out
}

func (t TypewriterConfig) Speed() time.Duration {
	return time.Duration(t.SpeedMs) * time.Millisecond
}
