package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// decodeStrict decodes data into v, rejecting fields v does not declare.
func decodeStrict(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// knownKeys rejects mapping keys outside fields. yaml.v3 does not carry
// KnownFields into Node.Decode, so types decoded from custom unmarshalers
// check their own keys.
func knownKeys(value *yaml.Node, what string, fields ...string) error {
	if value.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		k := value.Content[i]
		if !slices.Contains(fields, k.Value) {
			return fmt.Errorf("%s: line %d: field %s not found", what, k.Line, k.Value)
		}
	}
	return nil
}

func (np *NounPhrase) UnmarshalJSON(data []byte) error {
	type plain NounPhrase
	return decodeStrict(data, (*plain)(np))
}

func (np *NounPhrase) UnmarshalYAML(value *yaml.Node) error {
	if err := knownKeys(value, "noun phrase", "article", "adjectives", "noun", "number"); err != nil {
		return err
	}
	type plain NounPhrase
	return value.Decode((*plain)(np))
}

func (pp *PrepositionalPhrase) UnmarshalJSON(data []byte) error {
	type plain PrepositionalPhrase
	return decodeStrict(data, (*plain)(pp))
}

func (pp *PrepositionalPhrase) UnmarshalYAML(value *yaml.Node) error {
	if err := knownKeys(value, "prepositional phrase", "preposition", "object"); err != nil {
		return err
	}
	type plain PrepositionalPhrase
	return value.Decode((*plain)(pp))
}

// Nominal fills a subject or object slot: either a pronoun used verbatim
// or a noun phrase. When Phrase is non-nil it wins over Pronoun.
type Nominal struct {
	Pronoun Pronoun
	Phrase  *NounPhrase
}

func PronounNominal(p Pronoun) Nominal {
	return Nominal{Pronoun: p}
}

func PhraseNominal(np NounPhrase) Nominal {
	return Nominal{Phrase: &np}
}

// IsPronoun reports whether n is a pronoun literal rather than a noun phrase.
func (n Nominal) IsPronoun() bool {
	return n.Phrase == nil
}

// IsZero reports whether neither a pronoun nor a noun phrase is set.
func (n Nominal) IsZero() bool {
	return n.Phrase == nil && n.Pronoun == ""
}

func (n Nominal) MarshalJSON() ([]byte, error) {
	if n.Phrase != nil {
		return json.Marshal(n.Phrase)
	}
	return json.Marshal(string(n.Pronoun))
}

// UnmarshalJSON accepts a bare string (pronoun) or an object (noun phrase).
// null leaves n zero.
func (n *Nominal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = Nominal{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Nominal{Pronoun: Pronoun(s)}
		return nil
	}
	var np NounPhrase
	if err := json.Unmarshal(data, &np); err != nil {
		return fmt.Errorf("nominal: %w", err)
	}
	*n = Nominal{Phrase: &np}
	return nil
}

func (n Nominal) MarshalYAML() (interface{}, error) {
	if n.Phrase != nil {
		return n.Phrase, nil
	}
	return string(n.Pronoun), nil
}

func (n *Nominal) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*n = Nominal{Pronoun: Pronoun(value.Value)}
		return nil
	case yaml.MappingNode:
		var np NounPhrase
		if err := value.Decode(&np); err != nil {
			return fmt.Errorf("nominal: %w", err)
		}
		*n = Nominal{Phrase: &np}
		return nil
	}
	return fmt.Errorf("nominal: line %d: expected a pronoun or a noun phrase", value.Line)
}

// Complement is a noun phrase or a prepositional phrase following the
// object of a clause. A complement that carries a preposition is a
// prepositional phrase.
type Complement struct {
	Phrase        *NounPhrase
	Prepositional *PrepositionalPhrase
}

func NounComplement(np NounPhrase) Complement {
	return Complement{Phrase: &np}
}

func PrepComplement(pp PrepositionalPhrase) Complement {
	return Complement{Prepositional: &pp}
}

func (c Complement) MarshalJSON() ([]byte, error) {
	if c.Prepositional != nil {
		return json.Marshal(c.Prepositional)
	}
	return json.Marshal(c.Phrase)
}

func (c *Complement) UnmarshalJSON(data []byte) error {
	var sniff struct {
		Preposition *string `json:"preposition"`
	}
	if err := json.Unmarshal(data, &sniff); err != nil {
		return fmt.Errorf("complement: %w", err)
	}
	if sniff.Preposition != nil {
		var pp PrepositionalPhrase
		if err := json.Unmarshal(data, &pp); err != nil {
			return fmt.Errorf("complement: %w", err)
		}
		*c = Complement{Prepositional: &pp}
		return nil
	}
	var np NounPhrase
	if err := json.Unmarshal(data, &np); err != nil {
		return fmt.Errorf("complement: %w", err)
	}
	*c = Complement{Phrase: &np}
	return nil
}

func (c Complement) MarshalYAML() (interface{}, error) {
	if c.Prepositional != nil {
		return c.Prepositional, nil
	}
	return c.Phrase, nil
}

func (c *Complement) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("complement: line %d: expected a mapping", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == "preposition" {
			var pp PrepositionalPhrase
			if err := value.Decode(&pp); err != nil {
				return fmt.Errorf("complement: %w", err)
			}
			*c = Complement{Prepositional: &pp}
			return nil
		}
	}
	var np NounPhrase
	if err := value.Decode(&np); err != nil {
		return fmt.Errorf("complement: %w", err)
	}
	*c = Complement{Phrase: &np}
	return nil
}
