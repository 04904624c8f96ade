// Package dictionary holds the irregular verb tables. The tables are
// decoded once from an embedded YAML file and are read-only afterwards, so
// lookups are safe from any number of goroutines.
package dictionary

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed irregular.yaml
var irregularYAML []byte

// Entry holds the principal parts of an irregular verb.
type Entry struct {
	Base       string `yaml:"base" json:"base"`
	Past       string `yaml:"past" json:"past"`
	Participle string `yaml:"participle" json:"participle"`
}

type nounEntry struct {
	Singular string `yaml:"singular"`
	Plural   string `yaml:"plural"`
}

type irregularFile struct {
	Verbs []Entry     `yaml:"verbs"`
	Nouns []nounEntry `yaml:"nouns"`
}

var (
	entries     map[string]Entry
	plurals     map[string]string
	pluralOf    map[string]bool
	verbs       []string
	entriesErr  error
	entriesOnce sync.Once
)

type tables struct {
	entries  map[string]Entry
	plurals  map[string]string
	pluralOf map[string]bool
	verbs    []string
}

// decodeTables builds the lookup tables from raw YAML. Nothing is returned
// alongside an error, so the package never serves a half-built table.
func decodeTables(raw []byte) (tables, error) {
	var f irregularFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return tables{}, fmt.Errorf("failed to decode irregular verb table: %w", err)
	}
	t := tables{
		entries:  make(map[string]Entry, len(f.Verbs)),
		plurals:  make(map[string]string, len(f.Nouns)),
		pluralOf: make(map[string]bool, len(f.Nouns)),
	}
	for _, e := range f.Verbs {
		if e.Base == "" || e.Past == "" || e.Participle == "" {
			return tables{}, fmt.Errorf("incomplete irregular verb entry %+v", e)
		}
		t.entries[e.Base] = e
		t.verbs = append(t.verbs, e.Base)
	}
	sort.Strings(t.verbs)
	for _, n := range f.Nouns {
		if n.Singular == "" || n.Plural == "" {
			return tables{}, fmt.Errorf("incomplete irregular noun entry %+v", n)
		}
		t.plurals[n.Singular] = n.Plural
		t.pluralOf[n.Plural] = true
	}
	return t, nil
}

func load() {
	entriesOnce.Do(func() {
		t, err := decodeTables(irregularYAML)
		if err != nil {
			entriesErr = err
			return
		}
		entries, plurals, pluralOf, verbs = t.entries, t.plurals, t.pluralOf, t.verbs
	})
}

// InitDictionaries loads the irregular verb tables and reports whether the
// embedded data was usable. Lookups load lazily, so calling it is only
// needed to surface the error early.
func InitDictionaries() error {
	load()
	return entriesErr
}

// Lookup returns the principal parts of verb if it is irregular.
func Lookup(verb string) (Entry, bool) {
	load()
	e, ok := entries[verb]
	return e, ok
}

// IrregularPast returns the irregular simple past of verb.
func IrregularPast(verb string) (string, bool) {
	e, ok := Lookup(verb)
	return e.Past, ok
}

// IrregularParticiple returns the irregular past participle of verb.
func IrregularParticiple(verb string) (string, bool) {
	e, ok := Lookup(verb)
	return e.Participle, ok
}

// IrregularPlural returns the plural of noun if it does not take -s.
func IrregularPlural(noun string) (string, bool) {
	load()
	p, ok := plurals[noun]
	return p, ok
}

// IsIrregularPlural reports whether noun is already the irregular plural
// of some noun in the table, such as children or men.
func IsIrregularPlural(noun string) bool {
	load()
	return pluralOf[noun]
}

// Verbs returns the irregular verbs in alphabetical order.
func Verbs() []string {
	load()
	out := make([]string, len(verbs))
	copy(out, verbs)
	return out
}

// Count returns the number of irregular verbs known.
func Count() int {
	load()
	return len(entries)
}
