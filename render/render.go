// Package render turns grammar values into English surface strings.
//
// Rendering is best effort: it never fails, and malformed input such as an
// empty noun produces a malformed string rather than an error. Use package
// analyze to reject structurally invalid input before rendering.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"englishgrammar/inflect"
	"englishgrammar/model"
)

// NounPhrase renders article, adjectives and noun. A plural noun gets a
// trailing s unless it already ends in one.
func NounPhrase(np model.NounPhrase) string {
	var s strings.Builder
	buildNounPhrase(np, &s)
	return s.String()
}

func buildNounPhrase(np model.NounPhrase, s *strings.Builder) {
	if np.Article != "" {
		s.WriteString(string(np.Article))
		s.WriteRune(' ')
	}
	if len(np.Adjectives) > 0 {
		s.WriteString(strings.Join(np.Adjectives, " "))
		s.WriteRune(' ')
	}
	if np.Number == model.Plural {
		s.WriteString(inflect.Pluralize(np.Noun))
	} else {
		s.WriteString(np.Noun)
	}
}

// VerbPhrase renders the verb conjugated for its tense against subject,
// followed by its adverbs. subject may be nil.
func VerbPhrase(vp model.VerbPhrase, subject *model.Nominal) string {
	var s strings.Builder
	buildVerbPhrase(vp, subject, &s)
	return s.String()
}

func buildVerbPhrase(vp model.VerbPhrase, subject *model.Nominal, s *strings.Builder) {
	s.WriteString(inflect.Conjugate(vp.Verb, vp.Tense, subject))
	if len(vp.Adverbs) > 0 {
		s.WriteRune(' ')
		s.WriteString(strings.Join(vp.Adverbs, " "))
	}
}

// PrepositionalPhrase renders the preposition followed by its object.
func PrepositionalPhrase(pp model.PrepositionalPhrase) string {
	var s strings.Builder
	buildPrepositionalPhrase(pp, &s)
	return s.String()
}

func buildPrepositionalPhrase(pp model.PrepositionalPhrase, s *strings.Builder) {
	s.WriteString(pp.Preposition)
	s.WriteRune(' ')
	buildNounPhrase(pp.Object, s)
}

func buildNominal(n model.Nominal, s *strings.Builder) {
	if n.Phrase != nil {
		buildNounPhrase(*n.Phrase, s)
		return
	}
	s.WriteString(string(n.Pronoun))
}

// Clause renders subject, predicate, object and complements in that order.
func Clause(c model.Clause) string {
	var s strings.Builder
	buildClause(c, &s)
	return s.String()
}

func buildClause(c model.Clause, s *strings.Builder) {
	buildNominal(c.Subject, s)
	s.WriteRune(' ')
	subject := c.Subject
	buildVerbPhrase(c.Predicate, &subject, s)
	if c.Object != nil && !c.Object.IsZero() {
		s.WriteRune(' ')
		buildNominal(*c.Object, s)
	}
	for _, comp := range c.Complements {
		switch {
		case comp.Prepositional != nil:
			s.WriteRune(' ')
			buildPrepositionalPhrase(*comp.Prepositional, s)
		case comp.Phrase != nil:
			s.WriteRune(' ')
			buildNounPhrase(*comp.Phrase, s)
		}
	}
}

// Terminator returns the punctuation closing a sentence of type t, or the
// empty string for an unknown type.
func Terminator(t model.SentenceType) string {
	switch t {
	case model.Declarative:
		return "."
	case model.Interrogative:
		return "?"
	case model.Command, model.Exclamative:
		return "!"
	}
	return ""
}

// Sentence renders the main clause, then the conjunction and subordinate
// clauses, then the terminal punctuation, and capitalizes the first letter.
// Word order is never changed, so an interrogative renders as a statement
// followed by a question mark.
func Sentence(sent model.Sentence) string {
	var s strings.Builder
	buildClause(sent.MainClause, &s)
	if len(sent.SubordinateClauses) > 0 {
		if sent.Conjunction != "" {
			s.WriteRune(' ')
			s.WriteString(string(sent.Conjunction))
		}
		for _, c := range sent.SubordinateClauses {
			s.WriteRune(' ')
			buildClause(c, &s)
		}
	}
	s.WriteString(Terminator(sent.Type))
	return capitalize(s.String())
}

// Paragraph renders each sentence and joins them with a single space.
func Paragraph(p model.Paragraph) string {
	out := make([]string, len(p))
	for i, sent := range p {
		out[i] = Sentence(sent)
	}
	return strings.Join(out, " ")
}

// Text renders paragraphs separated by a blank line.
func Text(t model.Text) string {
	out := make([]string, len(t))
	for i, p := range t {
		out[i] = Paragraph(p)
	}
	return strings.Join(out, "\n\n")
}

// Statement renders the simple statement word order
// who-verb-what-where-how-when. With the time placed at the beginning the
// time adverbial leads, followed by a comma.
func Statement(st model.Statement) string {
	parts := make([]string, 0, 6)
	lead := st.TimePosition == model.TimeAtBeginning && st.When != ""
	if lead {
		parts = append(parts, st.When+",")
	}
	for _, p := range []string{st.Who, st.Verb, st.What, st.Where, st.How} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if !lead && st.When != "" {
		parts = append(parts, st.When)
	}
	return capitalize(strings.Join(parts, " ") + ".")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
