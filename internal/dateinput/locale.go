package dateinput

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SegmentID names one editable field.
type SegmentID string

const (
	SegmentDay    SegmentID = "day"
	SegmentMonth  SegmentID = "month"
	SegmentYear   SegmentID = "year"
	SegmentHour   SegmentID = "hour"
	SegmentMinute SegmentID = "minute"
)

// AllSegments lists every field in a fixed, locale-independent order.
var AllSegments = []SegmentID{SegmentDay, SegmentMonth, SegmentYear, SegmentHour, SegmentMinute}

func (id SegmentID) isDate() bool {
	return id == SegmentDay || id == SegmentMonth || id == SegmentYear
}

func (id SegmentID) maxLength() int {
	if id == SegmentYear {
		return 4
	}
	return 2
}

// SegmentSpec describes one date segment of a locale.
type SegmentSpec struct {
	ID          SegmentID `json:"id" yaml:"id"`
	Placeholder string    `json:"placeholder" yaml:"placeholder"`
	Label       string    `json:"label" yaml:"label"`
}

// LocaleConfig is the ordered date portion of a locale plus its separator.
type LocaleConfig struct {
	Key       string        `json:"key" yaml:"key"`
	Segments  []SegmentSpec `json:"segments" yaml:"segments"`
	Separator string        `json:"separator,omitempty" yaml:"separator,omitempty"`
}

const defaultSeparator = "/"

func (c LocaleConfig) separator() string {
	if c.Separator == "" {
		return defaultSeparator
	}
	return c.Separator
}

func (c LocaleConfig) spec(id SegmentID) (SegmentSpec, bool) {
	for _, s := range c.Segments {
		if s.ID == id {
			return s, true
		}
	}
	return SegmentSpec{}, false
}

// Validate checks that day, month and year each appear exactly once.
func (c LocaleConfig) Validate() error {
	if strings.TrimSpace(c.Key) == "" {
		return &LocaleError{Key: c.Key, Reason: "missing key"}
	}
	seen := map[SegmentID]bool{}
	for _, s := range c.Segments {
		if !s.ID.isDate() {
			return &LocaleError{Key: c.Key, Reason: fmt.Sprintf("segment %q is not a date segment", s.ID)}
		}
		if seen[s.ID] {
			return &LocaleError{Key: c.Key, Reason: fmt.Sprintf("duplicate segment %q", s.ID)}
		}
		seen[s.ID] = true
	}
	for _, id := range []SegmentID{SegmentDay, SegmentMonth, SegmentYear} {
		if !seen[id] {
			return &LocaleError{Key: c.Key, Reason: fmt.Sprintf("missing segment %q", id)}
		}
	}
	return nil
}

// Time segments are the same for every locale.
var (
	hourSpec   = SegmentSpec{ID: SegmentHour, Placeholder: "--", Label: "Hour"}
	minuteSpec = SegmentSpec{ID: SegmentMinute, Placeholder: "--", Label: "Minute"}
)

func builtinLocales() []LocaleConfig {
	return []LocaleConfig{
		{
			Key: "en-US",
			Segments: []SegmentSpec{
				{ID: SegmentMonth, Placeholder: "mm", Label: "Month"},
				{ID: SegmentDay, Placeholder: "dd", Label: "Day"},
				{ID: SegmentYear, Placeholder: "yyyy", Label: "Year"},
			},
		},
		{
			Key: "en-GB",
			Segments: []SegmentSpec{
				{ID: SegmentDay, Placeholder: "dd", Label: "Day"},
				{ID: SegmentMonth, Placeholder: "mm", Label: "Month"},
				{ID: SegmentYear, Placeholder: "yyyy", Label: "Year"},
			},
		},
		{
			Key: "de-DE",
			Segments: []SegmentSpec{
				{ID: SegmentDay, Placeholder: "TT", Label: "Tag"},
				{ID: SegmentMonth, Placeholder: "MM", Label: "Monat"},
				{ID: SegmentYear, Placeholder: "JJJJ", Label: "Jahr"},
			},
			Separator: ".",
		},
	}
}

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

// LocaleTable maps locale keys to their configuration.
type LocaleTable struct {
	byKey map[string]LocaleConfig
}

// BuiltinLocales returns a fresh table holding en-US, en-GB and de-DE.
func BuiltinLocales() *LocaleTable {
	t := &LocaleTable{byKey: map[string]LocaleConfig{}}
	for _, c := range builtinLocales() {
		t.byKey[c.Key] = c
	}
	return t
}

// Add registers (or replaces) a locale after validating it.
func (t *LocaleTable) Add(c LocaleConfig) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if t.byKey == nil {
		t.byKey = map[string]LocaleConfig{}
	}
	t.byKey[c.Key] = c
	return nil
}

func (t *LocaleTable) Lookup(key string) (LocaleConfig, error) {
	if t == nil {
		return BuiltinLocales().Lookup(key)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		key = DefaultLocale
	}
	c, ok := t.byKey[key]
	if !ok {
		return LocaleConfig{}, &UnknownLocaleError{Key: key}
	}
	return c, nil
}

// Keys returns every locale key, sorted.
func (t *LocaleTable) Keys() []string {
	keys := make([]string, 0, len(t.byKey))
	for k := range t.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns every locale sorted by key.
func (t *LocaleTable) All() []LocaleConfig {
	out := make([]LocaleConfig, 0, len(t.byKey))
	for _, k := range t.Keys() {
		out = append(out, t.byKey[k])
	}
	return out
}

type localeFile struct {
	Locales []LocaleConfig `yaml:"locales"`
}

// LoadLocales merges YAML locale definitions into t:
//
//	locales:
//	  - key: fr-FR
//	    separator: "/"
//	    segments:
//	      - {id: day, placeholder: jj, label: Jour}
//	      - {id: month, placeholder: mm, label: Mois}
//	      - {id: year, placeholder: aaaa, label: Année}
func (t *LocaleTable) LoadLocales(r io.Reader) error {
	var f localeFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("parse locales: %w", err)
	}
	for _, c := range f.Locales {
		if err := t.Add(c); err != nil {
			return err
		}
	}
	return nil
}
