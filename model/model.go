package model

// Article is one of the three English articles. The empty value means no article.
type Article string

const (
	ArticleA   Article = "a"
	ArticleAn  Article = "an"
	ArticleThe Article = "the"
)

// Valid reports whether a is one of the three articles.
func (a Article) Valid() bool {
	switch a {
	case ArticleA, ArticleAn, ArticleThe:
		return true
	}
	return false
}

// Number is grammatical number. The empty value means unspecified.
type Number string

const (
	Singular Number = "singular"
	Plural   Number = "plural"
)

// Valid reports whether n is singular or plural.
func (n Number) Valid() bool {
	return n == Singular || n == Plural
}

// Tense is the closed set of tenses the renderer can conjugate.
type Tense string

const (
	Present        Tense = "present"
	Past           Tense = "past"
	Future         Tense = "future"
	PresentPerfect Tense = "present perfect"
	PastPerfect    Tense = "past perfect"
	FuturePerfect  Tense = "future perfect"
)

// Tenses lists every recognized tense in declaration order.
var Tenses = []Tense{Present, Past, Future, PresentPerfect, PastPerfect, FuturePerfect}

// Valid reports whether t is one of Tenses.
func (t Tense) Valid() bool {
	for _, v := range Tenses {
		if t == v {
			return true
		}
	}
	return false
}

// Voice is active or passive.
type Voice string

const (
	Active  Voice = "active"
	Passive Voice = "passive"
)

// Valid reports whether v is a known voice.
func (v Voice) Valid() bool {
	return v == Active || v == Passive
}

// Mood is the grammatical mood of a verb phrase.
type Mood string

const (
	Indicative  Mood = "indicative"
	Imperative  Mood = "imperative"
	Subjunctive Mood = "subjunctive"
	Conditional Mood = "conditional"
)

// Valid reports whether m is a known mood.
func (m Mood) Valid() bool {
	switch m {
	case Indicative, Imperative, Subjunctive, Conditional:
		return true
	}
	return false
}

// Case is grammatical case, used when declining a noun.
type Case string

const (
	Nominative Case = "nominative"
	Objective  Case = "objective"
	Possessive Case = "possessive"
)

// Valid reports whether c is a known case.
func (c Case) Valid() bool {
	switch c {
	case Nominative, Objective, Possessive:
		return true
	}
	return false
}

// Pronoun is a personal pronoun used verbatim as a subject or object.
type Pronoun string

const (
	I    Pronoun = "I"
	You  Pronoun = "you"
	He   Pronoun = "he"
	She  Pronoun = "she"
	It   Pronoun = "it"
	We   Pronoun = "we"
	They Pronoun = "they"
	Me   Pronoun = "me"
	Him  Pronoun = "him"
	Her  Pronoun = "her"
	Us   Pronoun = "us"
	Them Pronoun = "them"
)

var pronouns = map[Pronoun]struct{}{
	I: {}, You: {}, He: {}, She: {}, It: {}, We: {}, They: {},
	Me: {}, Him: {}, Her: {}, Us: {}, Them: {},
}

// Valid reports whether p is a known personal pronoun.
func (p Pronoun) Valid() bool {
	_, ok := pronouns[p]
	return ok
}

// Conjunction joins the main clause to its subordinate clauses.
type Conjunction string

const (
	And      Conjunction = "and"
	Or       Conjunction = "or"
	But      Conjunction = "but"
	Because  Conjunction = "because"
	If       Conjunction = "if"
	When     Conjunction = "when"
	While    Conjunction = "while"
	Although Conjunction = "although"
	That     Conjunction = "that"
)

// Valid reports whether c is a known conjunction.
func (c Conjunction) Valid() bool {
	switch c {
	case And, Or, But, Because, If, When, While, Although, That:
		return true
	}
	return false
}

// SentenceType selects the terminal punctuation of a sentence.
type SentenceType string

const (
	Declarative   SentenceType = "declarative"
	Interrogative SentenceType = "interrogative"
	Command       SentenceType = "imperative"
	Exclamative   SentenceType = "exclamative"
)

// Valid reports whether s is a known sentence type.
func (s SentenceType) Valid() bool {
	switch s {
	case Declarative, Interrogative, Command, Exclamative:
		return true
	}
	return false
}

// NounPhrase is an optional article, optional adjectives and a noun.
type NounPhrase struct {
	Article    Article  `json:"article,omitempty" yaml:"article,omitempty"`
	Adjectives []string `json:"adjectives,omitempty" yaml:"adjectives,omitempty"`
	Noun       string   `json:"noun" yaml:"noun"`
	Number     Number   `json:"number,omitempty" yaml:"number,omitempty"`
}

// VerbPhrase is a verb with its tense and trailing adverbs. Voice and mood
// are carried for callers but do not affect rendering.
type VerbPhrase struct {
	Verb    string   `json:"verb" yaml:"verb"`
	Tense   Tense    `json:"tense" yaml:"tense"`
	Voice   Voice    `json:"voice,omitempty" yaml:"voice,omitempty"`
	Mood    Mood     `json:"mood,omitempty" yaml:"mood,omitempty"`
	Adverbs []string `json:"adverbs,omitempty" yaml:"adverbs,omitempty"`
}

// PrepositionalPhrase is a preposition followed by its noun phrase object.
type PrepositionalPhrase struct {
	Preposition string     `json:"preposition" yaml:"preposition"`
	Object      NounPhrase `json:"object" yaml:"object"`
}

// Clause is a subject and predicate with an optional object and complements.
type Clause struct {
	Subject     Nominal      `json:"subject" yaml:"subject"`
	Predicate   VerbPhrase   `json:"predicate" yaml:"predicate"`
	Object      *Nominal     `json:"object,omitempty" yaml:"object,omitempty"`
	Complements []Complement `json:"complements,omitempty" yaml:"complements,omitempty"`
}

// Sentence is a typed main clause, optionally followed by subordinate
// clauses introduced by a conjunction.
type Sentence struct {
	Type               SentenceType `json:"type" yaml:"type"`
	MainClause         Clause       `json:"mainClause" yaml:"mainClause"`
	SubordinateClauses []Clause     `json:"subordinateClauses,omitempty" yaml:"subordinateClauses,omitempty"`
	Conjunction        Conjunction  `json:"conjunction,omitempty" yaml:"conjunction,omitempty"`
}

type Paragraph []Sentence

type Text []Paragraph

// TimePosition places the time adverbial of a Statement.
type TimePosition string

const (
	TimeAtBeginning TimePosition = "beginning"
	TimeAtEnd       TimePosition = "end"
)

// Statement is the simple statement word order: who, verb, what, where,
// how, when. Every part is already inflected text.
type Statement struct {
	Who          string       `json:"who" yaml:"who"`
	Verb         string       `json:"verb" yaml:"verb"`
	What         string       `json:"what,omitempty" yaml:"what,omitempty"`
	Where        string       `json:"where,omitempty" yaml:"where,omitempty"`
	How          string       `json:"how,omitempty" yaml:"how,omitempty"`
	When         string       `json:"when,omitempty" yaml:"when,omitempty"`
	TimePosition TimePosition `json:"timePosition,omitempty" yaml:"timePosition,omitempty"`
}
