package pipeline

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"englishgrammar/analyze"
	"englishgrammar/ingest"
	"englishgrammar/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func sentence(noun, verb string, tense model.Tense) model.Sentence {
	return model.Sentence{
		Type: model.Declarative,
		MainClause: model.Clause{
			Subject:   model.PhraseNominal(model.NounPhrase{Article: model.ArticleThe, Noun: noun, Number: model.Singular}),
			Predicate: model.VerbPhrase{Verb: verb, Tense: tense},
		},
	}
}

func docs(n int) []ingest.Document {
	out := make([]ingest.Document, n)
	for i := range out {
		out[i] = ingest.Document{
			ID:        fmt.Sprintf("doc-%d", i),
			Sentences: []model.Sentence{sentence("dog", "run", model.Present), sentence("cat", "sleep", model.Past)},
		}
	}
	return out
}

func TestRenderDocument(t *testing.T) {
	doc := ingest.Document{
		ID:         "d1",
		Paragraphs: model.Text{{sentence("dog", "run", model.Present)}},
		Sentences:  []model.Sentence{sentence("sun", "shine", model.Past)},
		Statements: []model.Statement{{Who: "the sun", Verb: "rises", Where: "in the east"}},
	}
	res, err := RenderDocument(context.Background(), doc, true)
	require.NoError(t, err)
	assert.NoError(t, res.Err)
	assert.Equal(t, "The dog runs.\n\nThe sun shone.\n\nThe sun rises in the east.", res.Text)
	require.Len(t, res.Analyses, 2)
	assert.Equal(t, "d1-1", res.Analyses[0].SentenceID)
	assert.Equal(t, "d1-2", res.Analyses[1].SentenceID)
}

func TestRenderDocumentValidation(t *testing.T) {
	bad := sentence("dog", "run", "pluperfect")
	doc := ingest.Document{
		ID:         "d2",
		Sentences:  []model.Sentence{bad},
		Statements: []model.Statement{{Who: "the sun"}},
	}

	res, err := RenderDocument(context.Background(), doc, false)
	require.NoError(t, err)
	assert.NoError(t, res.Err)
	assert.Equal(t, "The dog run.\n\nThe sun.", res.Text)

	res, err = RenderDocument(context.Background(), doc, true)
	require.NoError(t, err)
	assert.ErrorIs(t, res.Err, analyze.ErrInvalidGrammarInput)
	assert.Equal(t, "The dog run.\n\nThe sun.", res.Text)
}

func TestRunPreservesOrder(t *testing.T) {
	in := docs(25)
	results, err := Run(context.Background(), in, Options{Workers: 3, Validate: true, Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)
	require.Len(t, results, len(in))
	for i, res := range results {
		assert.Equal(t, in[i].ID, res.DocumentID)
		assert.Equal(t, "The dog runs. The cat slept.", res.Text)
		assert.NoError(t, res.Err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, docs(5), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStart(t *testing.T) {
	in := make(chan ingest.Document)
	out := Start(context.Background(), in, Options{Workers: 2})

	go func() {
		defer close(in)
		for _, d := range docs(6) {
			in <- d
		}
	}()

	var ids []string
	for res := range out {
		ids = append(ids, res.DocumentID)
		assert.Equal(t, "The dog runs. The cat slept.", res.Text)
	}
	sort.Strings(ids)
	assert.Equal(t, []string{"doc-0", "doc-1", "doc-2", "doc-3", "doc-4", "doc-5"}, ids)
}

func TestStartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan ingest.Document)
	out := Start(ctx, in, Options{Workers: 3})
	cancel()
	for range out {
	}
}
