package analyze

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"englishgrammar/dictionary"
	"englishgrammar/model"
	"englishgrammar/render"
)

// ErrInvalidGrammarInput marks input that is structurally unusable: a
// clause without subject or predicate, or a tense outside the closed set.
var ErrInvalidGrammarInput = errors.New("invalid grammar input")

// Analysis summarizes one rendered sentence.
type Analysis struct {
	SentenceID     string        `json:"sentence_id"`
	Text           string        `json:"text"`
	Type           string        `json:"type"`
	ClauseCount    int           `json:"clause_count"`
	Tenses         []model.Tense `json:"tenses,omitempty"`
	IrregularVerbs []string      `json:"irregular_verbs,omitempty"`
	GrammarIssues  []string      `json:"grammar_issues,omitempty"`
}

type ClauseRole string

const (
	MainClause        ClauseRole = "main"
	SubordinateClause ClauseRole = "subordinate"
)

// issue is one validation failure located within a sentence.
type issue struct {
	role  ClauseRole
	index int
	msg   string
}

func (i issue) Error() string {
	if i.role == MainClause {
		return fmt.Sprintf("main clause: %s", i.msg)
	}
	return fmt.Sprintf("subordinate clause %d: %s", i.index+1, i.msg)
}

func (i issue) Unwrap() error { return ErrInvalidGrammarInput }

func clauseIssues(c model.Clause, role ClauseRole, index int) error {
	var err error
	add := func(msg string) {
		err = multierr.Append(err, issue{role: role, index: index, msg: msg})
	}
	switch {
	case c.Subject.IsZero():
		add("missing subject")
	case c.Subject.Phrase != nil && c.Subject.Phrase.Noun == "":
		add("subject noun phrase has an empty noun")
	case c.Subject.Phrase == nil && !c.Subject.Pronoun.Valid():
		add(fmt.Sprintf("unknown pronoun %q", c.Subject.Pronoun))
	}
	if c.Predicate.Verb == "" {
		add("missing predicate verb")
	}
	if !c.Predicate.Tense.Valid() {
		add(fmt.Sprintf("unknown tense %q", c.Predicate.Tense))
	}
	return err
}

// ValidateClause checks that c has a subject and a predicate with a
// recognized tense. The returned error matches ErrInvalidGrammarInput.
func ValidateClause(c model.Clause) error {
	return clauseIssues(c, MainClause, 0)
}

// Validate checks the main clause and every subordinate clause of s. All
// problems are reported together; each matches ErrInvalidGrammarInput
// under errors.Is. Validation never affects how s renders.
func Validate(s model.Sentence) error {
	err := clauseIssues(s.MainClause, MainClause, 0)
	for i, c := range s.SubordinateClauses {
		err = multierr.Append(err, clauseIssues(c, SubordinateClause, i))
	}
	return err
}

// ValidateParagraph validates every sentence of p, prefixing each problem
// with the sentence position.
func ValidateParagraph(p model.Paragraph) error {
	var err error
	for i, s := range p {
		if serr := Validate(s); serr != nil {
			err = multierr.Append(err, fmt.Errorf("sentence %d: %w", i+1, serr))
		}
	}
	return err
}

// Issues flattens a validation error into readable messages.
func Issues(err error) []string {
	errs := multierr.Errors(err)
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}

// Analyze renders s and records its clause structure, the tenses and
// irregular verbs used, and any validation issues.
func Analyze(ctx context.Context, id string, s model.Sentence) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}

	a := Analysis{
		SentenceID:  id,
		Text:        render.Sentence(s),
		Type:        string(s.Type),
		ClauseCount: 1 + len(s.SubordinateClauses),
	}

	seenTense := map[model.Tense]bool{}
	seenVerb := map[string]bool{}
	clauses := append([]model.Clause{s.MainClause}, s.SubordinateClauses...)
	for _, c := range clauses {
		vp := c.Predicate
		if !seenTense[vp.Tense] {
			seenTense[vp.Tense] = true
			a.Tenses = append(a.Tenses, vp.Tense)
		}
		if !vp.Tense.Valid() || vp.Tense == model.Present || vp.Tense == model.Future || seenVerb[vp.Verb] {
			continue
		}
		if _, ok := dictionary.Lookup(vp.Verb); ok {
			seenVerb[vp.Verb] = true
			a.IrregularVerbs = append(a.IrregularVerbs, vp.Verb)
		}
	}

	a.GrammarIssues = Issues(Validate(s))
	return a, nil
}

// ValidateStatement checks that a simple statement has its two required
// parts, who and verb.
func ValidateStatement(st model.Statement) error {
	var err error
	if st.Who == "" {
		err = multierr.Append(err, fmt.Errorf("statement: missing who: %w", ErrInvalidGrammarInput))
	}
	if st.Verb == "" {
		err = multierr.Append(err, fmt.Errorf("statement: missing verb: %w", ErrInvalidGrammarInput))
	}
	return err
}
