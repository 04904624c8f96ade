package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"englishgrammar/model"
)

var (
	ErrEmptyDocument = errors.New("empty document")
	ErrUnknownFormat = errors.New("unknown document format")
)

// Format selects the document encoding.
type Format string

const (
	FormatAuto Format = "auto"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value to a Format. The empty string means auto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Document is one unit of input: paragraphs of sentences, loose sentences
// forming a trailing paragraph, and simple statements.
type Document struct {
	ID         string            `json:"id" yaml:"id,omitempty"`
	Source     string            `json:"source,omitempty" yaml:"-"`
	Paragraphs model.Text        `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	Sentences  []model.Sentence  `json:"sentences,omitempty" yaml:"sentences,omitempty"`
	Statements []model.Statement `json:"statements,omitempty" yaml:"statements,omitempty"`
	CreatedAt  time.Time         `json:"created_at" yaml:"-"`
}

// Text returns the paragraphs of d with the loose sentences appended as a
// final paragraph.
func (d Document) Text() model.Text {
	out := make(model.Text, 0, len(d.Paragraphs)+1)
	out = append(out, d.Paragraphs...)
	if len(d.Sentences) > 0 {
		out = append(out, model.Paragraph(d.Sentences))
	}
	return out
}

// AllSentences returns every sentence of d in reading order.
func (d Document) AllSentences() []model.Sentence {
	var out []model.Sentence
	for _, p := range d.Text() {
		out = append(out, p...)
	}
	return out
}

// IsEmpty reports whether d contains nothing to render.
func (d Document) IsEmpty() bool {
	return len(d.Paragraphs) == 0 && len(d.Sentences) == 0 && len(d.Statements) == 0
}

// Decode reads a whole document from r. A top-level list is read as a list
// of sentences. With FormatAuto, input starting with { or [ is JSON and
// anything else YAML.
func Decode(r io.Reader, format Format) (Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read document: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Document{}, ErrEmptyDocument
	}

	if format == FormatAuto || format == "" {
		format = FormatYAML
		if raw[0] == '{' || raw[0] == '[' {
			format = FormatJSON
		}
	}

	var doc Document
	switch format {
	case FormatJSON:
		doc, err = decodeJSON(raw)
	case FormatYAML:
		doc, err = decodeYAML(raw)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return Document{}, err
	}
	if doc.IsEmpty() {
		return Document{}, ErrEmptyDocument
	}
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	doc.CreatedAt = time.Now().UTC()
	return doc, nil
}

func decodeJSON(raw []byte) (Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if raw[0] == '[' {
		if err := dec.Decode(&doc.Sentences); err != nil {
			return Document{}, fmt.Errorf("failed to decode JSON sentences: %w", err)
		}
		return doc, nil
	}
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("failed to decode JSON document: %w", err)
	}
	return doc, nil
}

func decodeYAML(raw []byte) (Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return Document{}, fmt.Errorf("failed to decode YAML document: %w", err)
	}
	var doc Document
	if len(root.Content) == 0 {
		return doc, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if root.Content[0].Kind == yaml.SequenceNode {
		if err := dec.Decode(&doc.Sentences); err != nil {
			return Document{}, fmt.Errorf("failed to decode YAML sentences: %w", err)
		}
		return doc, nil
	}
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("failed to decode YAML document: %w", err)
	}
	return doc, nil
}

// ReadFile decodes the document at path, choosing the format from the file
// extension.
func ReadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()

	format := FormatAuto
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = FormatJSON
	case ".yaml", ".yml":
		format = FormatYAML
	}
	doc, err := Decode(f, format)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}
