// Package pipeline renders many documents concurrently. The renderer is
// pure, so workers share nothing but the input slice and their own result
// slot.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"englishgrammar/analyze"
	"englishgrammar/ingest"
	"englishgrammar/render"
)

const DefaultWorkers = 4

type Options struct {
	Workers  int
	Validate bool
	Logger   *zap.Logger
}

func (o Options) workers() int {
	if o.Workers < 1 {
		return DefaultWorkers
	}
	return o.Workers
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Result is the rendering of one document. Err is set when validation was
// requested and the document failed it; Text is rendered regardless.
type Result struct {
	DocumentID string             `json:"document_id"`
	Source     string             `json:"source,omitempty"`
	Text       string             `json:"text"`
	Analyses   []analyze.Analysis `json:"analyses,omitempty"`
	Err        error              `json:"-"`
}

// RenderDocument renders doc and analyzes each of its sentences.
func RenderDocument(ctx context.Context, doc ingest.Document, validate bool) (Result, error) {
	res := Result{DocumentID: doc.ID, Source: doc.Source}

	parts := make([]string, 0, 2)
	if t := doc.Text(); len(t) > 0 {
		parts = append(parts, render.Text(t))
	}
	if len(doc.Statements) > 0 {
		stmts := make([]string, len(doc.Statements))
		for i, st := range doc.Statements {
			stmts[i] = render.Statement(st)
		}
		parts = append(parts, strings.Join(stmts, " "))
	}
	res.Text = strings.Join(parts, "\n\n")

	for i, s := range doc.AllSentences() {
		a, err := analyze.Analyze(ctx, fmt.Sprintf("%s-%d", doc.ID, i+1), s)
		if err != nil {
			return res, err
		}
		res.Analyses = append(res.Analyses, a)
	}

	if validate {
		err := analyze.ValidateParagraph(doc.AllSentences())
		for i, st := range doc.Statements {
			if serr := analyze.ValidateStatement(st); serr != nil {
				err = multierr.Append(err, fmt.Errorf("statement %d: %w", i+1, serr))
			}
		}
		if err != nil {
			res.Err = fmt.Errorf("document %s: %w", doc.ID, err)
		}
	}
	return res, nil
}

// Run renders docs with at most opts.Workers documents in flight. Results
// are in input order. A document failing validation does not stop the run;
// only cancellation of ctx does.
func Run(ctx context.Context, docs []ingest.Document, opts Options) ([]Result, error) {
	log := opts.logger()
	results := make([]Result, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := RenderDocument(ctx, doc, opts.Validate)
			if err != nil {
				return err
			}
			results[i] = res
			log.Debug("rendered document",
				zap.String("id", doc.ID),
				zap.String("source", doc.Source),
				zap.Int("sentences", len(res.Analyses)),
				zap.Bool("valid", res.Err == nil))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	log.Info("rendered documents", zap.Int("count", len(docs)))
	return results, nil
}

// Start consumes documents from in and publishes their results on the
// returned channel until in is closed or ctx is done. The output channel is
// closed once every worker has exited. Result order follows completion, not
// arrival.
func Start(ctx context.Context, in <-chan ingest.Document, opts Options) <-chan Result {
	log := opts.logger()
	out := make(chan Result, opts.workers())

	var wg sync.WaitGroup
	for w := 0; w < opts.workers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case doc, ok := <-in:
					if !ok {
						return
					}
					res, err := RenderDocument(ctx, doc, opts.Validate)
					if err != nil {
						log.Warn("render aborted", zap.String("id", doc.ID), zap.Error(err))
						return
					}
					select {
					case out <- res:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
