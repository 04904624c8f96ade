package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestClauseJSON(t *testing.T) {
	src := `{
		"subject": "I",
		"predicate": {"verb": "read", "tense": "past"},
		"object": {"article": "a", "noun": "book", "number": "singular"},
		"complements": [
			{"preposition": "in", "object": {"article": "the", "noun": "park"}},
			{"noun": "yesterday"}
		]
	}`
	var got Clause
	require.NoError(t, json.Unmarshal([]byte(src), &got))

	obj := PhraseNominal(NounPhrase{Article: ArticleA, Noun: "book", Number: Singular})
	want := Clause{
		Subject:   PronounNominal(I),
		Predicate: VerbPhrase{Verb: "read", Tense: Past},
		Object:    &obj,
		Complements: []Complement{
			PrepComplement(PrepositionalPhrase{Preposition: "in", Object: NounPhrase{Article: ArticleThe, Noun: "park"}}),
			NounComplement(NounPhrase{Noun: "yesterday"}),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("clause mismatch (-want +got):\n%s", diff)
	}

	out, err := json.Marshal(got)
	require.NoError(t, err)
	var again Clause
	require.NoError(t, json.Unmarshal(out, &again))
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("re-decoded clause mismatch (-want +got):\n%s", diff)
	}
}

func TestClauseYAML(t *testing.T) {
	src := `
subject:
  article: the
  noun: dog
  number: singular
predicate:
  verb: chase
  tense: present
object: them
complements:
  - preposition: into
    object:
      article: the
      noun: garden
`
	var got Clause
	require.NoError(t, yaml.Unmarshal([]byte(src), &got))

	require.NotNil(t, got.Subject.Phrase)
	assert.Equal(t, "dog", got.Subject.Phrase.Noun)
	assert.False(t, got.Subject.IsPronoun())
	require.NotNil(t, got.Object)
	assert.True(t, got.Object.IsPronoun())
	assert.Equal(t, Them, got.Object.Pronoun)
	require.Len(t, got.Complements, 1)
	require.NotNil(t, got.Complements[0].Prepositional)
	assert.Equal(t, "garden", got.Complements[0].Prepositional.Object.Noun)
}

func TestNominalYAMLRejectsSequence(t *testing.T) {
	var n Nominal
	err := yaml.Unmarshal([]byte("[a, b]"), &n)
	assert.Error(t, err)
}

func TestEnumValidity(t *testing.T) {
	for _, tense := range Tenses {
		assert.True(t, tense.Valid(), tense)
	}
	assert.False(t, Tense("pluperfect").Valid())
	assert.True(t, Pronoun("they").Valid())
	assert.False(t, Pronoun("thou").Valid())
	assert.True(t, Command.Valid())
	assert.False(t, SentenceType("question").Valid())
	assert.True(t, That.Valid())
	assert.False(t, Conjunction("nor").Valid())
	assert.False(t, Article("some").Valid())
	assert.True(t, Possessive.Valid())
}

func TestNominalJSONNull(t *testing.T) {
	var c Clause
	require.NoError(t, json.Unmarshal([]byte(`{"subject": null, "predicate": {"verb": "run", "tense": "present"}}`), &c))
	assert.True(t, c.Subject.IsZero())
}

func TestNestedPhrasesRejectUnknownFields(t *testing.T) {
	var n Nominal
	err := json.Unmarshal([]byte(`{"noun": "dog", "numbr": "singular"}`), &n)
	assert.ErrorContains(t, err, "numbr")

	err = yaml.Unmarshal([]byte("{noun: dog, numbr: singular}"), &n)
	assert.ErrorContains(t, err, "field numbr not found")

	var c Complement
	err = json.Unmarshal([]byte(`{"preposition": "in", "object": {"noun": "park"}, "extra": true}`), &c)
	assert.ErrorContains(t, err, "extra")

	err = yaml.Unmarshal([]byte("{preposition: in, object: {noun: park, adjectivs: [green]}}"), &c)
	assert.ErrorContains(t, err, "field adjectivs not found")

	require.NoError(t, yaml.Unmarshal([]byte("{noun: dog, number: plural}"), &n))
	assert.Equal(t, Plural, n.Phrase.Number)
}

