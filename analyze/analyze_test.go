package analyze

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"englishgrammar/model"
)

func dogClause(verb string, tense model.Tense) model.Clause {
	return model.Clause{
		Subject:   model.PhraseNominal(model.NounPhrase{Article: model.ArticleThe, Noun: "dog", Number: model.Singular}),
		Predicate: model.VerbPhrase{Verb: verb, Tense: tense},
	}
}

func TestValidateAcceptsWellFormed(t *testing.T) {
	s := model.Sentence{
		Type:               model.Declarative,
		MainClause:         dogClause("run", model.Present),
		SubordinateClauses: []model.Clause{{Subject: model.PronounNominal(model.They), Predicate: model.VerbPhrase{Verb: "sing", Tense: model.Past}}},
		Conjunction:        model.And,
	}
	assert.NoError(t, Validate(s))
	assert.NoError(t, ValidateClause(s.MainClause))
}

func TestValidateReportsEveryIssue(t *testing.T) {
	s := model.Sentence{
		Type:       model.Declarative,
		MainClause: model.Clause{Predicate: model.VerbPhrase{Tense: "pluperfect"}},
		SubordinateClauses: []model.Clause{
			dogClause("run", model.Past),
			{Subject: model.PronounNominal("thou"), Predicate: model.VerbPhrase{Verb: "go", Tense: model.Past}},
		},
	}
	err := Validate(s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidGrammarInput))
	assert.Equal(t, []string{
		"main clause: missing subject",
		"main clause: missing predicate verb",
		`main clause: unknown tense "pluperfect"`,
		`subordinate clause 2: unknown pronoun "thou"`,
	}, Issues(err))
}

func TestValidateClauseEmptyNoun(t *testing.T) {
	c := dogClause("run", model.Present)
	c.Subject.Phrase.Noun = ""
	err := ValidateClause(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGrammarInput)
}

func TestValidateParagraph(t *testing.T) {
	good := model.Sentence{Type: model.Declarative, MainClause: dogClause("run", model.Present)}
	bad := model.Sentence{Type: model.Declarative, MainClause: dogClause("", model.Present)}
	assert.NoError(t, ValidateParagraph(model.Paragraph{good, good}))

	err := ValidateParagraph(model.Paragraph{good, bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGrammarInput)
	assert.Equal(t, []string{"sentence 2: main clause: missing predicate verb"}, Issues(err))
}

func TestAnalyze(t *testing.T) {
	s := model.Sentence{
		Type:       model.Declarative,
		MainClause: dogClause("say", model.Past),
		SubordinateClauses: []model.Clause{
			dogClause("run", model.PastPerfect),
			dogClause("walk", model.Past),
			dogClause("say", model.Past),
		},
		Conjunction: model.That,
	}
	a, err := Analyze(context.Background(), "s1", s)
	require.NoError(t, err)
	assert.Equal(t, "s1", a.SentenceID)
	assert.Equal(t, "The dog said that the dog had run the dog walked the dog said.", a.Text)
	assert.Equal(t, 4, a.ClauseCount)
	assert.Equal(t, []model.Tense{model.Past, model.PastPerfect}, a.Tenses)
	assert.Equal(t, []string{"say", "run"}, a.IrregularVerbs)
	assert.Empty(t, a.GrammarIssues)
}

func TestAnalyzeUnknownTenseIsNotIrregularUse(t *testing.T) {
	a, err := Analyze(context.Background(), "s2", model.Sentence{Type: model.Declarative, MainClause: dogClause("run", "pluperfect")})
	require.NoError(t, err)
	assert.Empty(t, a.IrregularVerbs)
	assert.Equal(t, []model.Tense{"pluperfect"}, a.Tenses)
	assert.Len(t, a.GrammarIssues, 1)
}

func TestAnalyzeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Analyze(ctx, "s1", model.Sentence{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValidateStatement(t *testing.T) {
	assert.NoError(t, ValidateStatement(model.Statement{Who: "The sun", Verb: "rises"}))

	err := ValidateStatement(model.Statement{Where: "in the east"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGrammarInput)
	assert.Equal(t, []string{"statement: missing who: invalid grammar input", "statement: missing verb: invalid grammar input"}, Issues(err))
}
