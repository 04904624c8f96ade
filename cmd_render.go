package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"englishgrammar/analyze"
	"englishgrammar/ingest"
	"englishgrammar/logger"
	"englishgrammar/pipeline"
)

var (
	renderFormat   string
	renderValidate bool
	renderWorkers  int
	renderLogDir   string
	renderJSON     bool
	renderWatch    bool
)

var renderCmd = &cobra.Command{
	Use:   "render [files...]",
	Short: "Render grammar documents to text",
	Long: `Render one or more YAML or JSON grammar documents. With no files the
document is read from standard input.`,
	RunE: runRender,
}

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check that every clause has a subject and a predicate with a known tense",
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := readDocuments(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		invalid := 0
		for _, doc := range docs {
			res, err := pipeline.RenderDocument(cmd.Context(), doc, true)
			if err != nil {
				return err
			}
			if res.Err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", docName(doc))
				continue
			}
			invalid++
			for _, msg := range analyze.Issues(res.Err) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", docName(doc), msg)
			}
		}
		if invalid > 0 {
			return fmt.Errorf("%d of %d documents invalid: %w", invalid, len(docs), analyze.ErrInvalidGrammarInput)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{renderCmd, validateCmd} {
		c.Flags().StringVar(&renderFormat, "format", "", "document format: auto, yaml or json (default from config)")
	}
	renderCmd.Flags().BoolVar(&renderValidate, "validate", false, "fail documents with missing subjects, predicates or unknown tenses")
	renderCmd.Flags().IntVar(&renderWorkers, "workers", 0, "documents rendered concurrently (default from config)")
	renderCmd.Flags().StringVar(&renderLogDir, "log-dir", "", "write a JSON analysis per document to this directory")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "print results as JSON")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "re-render files whenever they change")

	rootCmd.AddCommand(renderCmd, validateCmd)
}

func docName(doc ingest.Document) string {
	if doc.Source != "" {
		return doc.Source
	}
	return doc.ID
}

func documentFormat() (ingest.Format, error) {
	f := renderFormat
	if f == "" {
		f = cfg.Render.Format
	}
	return ingest.ParseFormat(f)
}

func readDocuments(stdin io.Reader, paths []string) ([]ingest.Document, error) {
	if len(paths) == 0 {
		format, err := documentFormat()
		if err != nil {
			return nil, err
		}
		doc, err := ingest.Decode(stdin, format)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		doc.Source = "-"
		return []ingest.Document{doc}, nil
	}
	docs := make([]ingest.Document, 0, len(paths))
	for _, p := range paths {
		doc, err := ingest.ReadFile(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func renderOptions(cmd *cobra.Command) pipeline.Options {
	opts := pipeline.Options{
		Workers:  cfg.Render.Workers,
		Validate: cfg.Render.Validate,
		Logger:   log,
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = renderWorkers
	}
	if cmd.Flags().Changed("validate") {
		opts.Validate = renderValidate
	}
	return opts
}

func logDir(cmd *cobra.Command) string {
	if cmd.Flags().Changed("log-dir") {
		return renderLogDir
	}
	return cfg.Render.LogDir
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderWatch {
		if len(args) == 0 {
			return errors.New("--watch needs at least one file")
		}
		return watchAndRender(cmd, args)
	}

	docs, err := readDocuments(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	dir := logDir(cmd)
	if dir != "" {
		if err := logger.InitLogs(dir); err != nil {
			return fmt.Errorf("failed to prepare log directory: %w", err)
		}
	}

	results, err := pipeline.Run(cmd.Context(), docs, renderOptions(cmd))
	if err != nil {
		return err
	}

	failed := 0
	for i, res := range results {
		if err := emitResult(cmd, res, i); err != nil {
			return err
		}
		if dir != "" {
			if err := logger.LogJSON(dir, res.DocumentID+"_analysis", res); err != nil {
				log.Warn("failed to write analysis log", zap.String("id", res.DocumentID), zap.Error(err))
			}
		}
		if res.Err != nil {
			failed++
			fmt.Fprintln(cmd.ErrOrStderr(), res.Err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(results))
	}
	return nil
}

func emitResult(cmd *cobra.Command, res pipeline.Result, i int) error {
	out := cmd.OutOrStdout()
	if renderJSON {
		b, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}
	if i > 0 {
		fmt.Fprintln(out)
	}
	_, err := fmt.Fprintln(out, res.Text)
	return err
}

// watchAndRender renders each file once, then again every time it is
// written, until the command context is cancelled.
func watchAndRender(cmd *cobra.Command, paths []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer w.Close()

	watched := make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = true
		// editors replace files on save, so watch the directory
		if err := w.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
	}

	in := make(chan ingest.Document)
	results := pipeline.Start(ctx, in, renderOptions(cmd))
	enqueue := func(path string) {
		doc, err := ingest.ReadFile(path)
		if err != nil {
			log.Warn("skipping unreadable document", zap.String("path", path), zap.Error(err))
			return
		}
		select {
		case in <- doc:
		case <-ctx.Done():
		}
	}

	go func() {
		defer close(in)
		for p := range watched {
			enqueue(p)
		}
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !watched[ev.Name] || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				log.Debug("document changed", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
				enqueue(ev.Name)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("file watcher error", zap.Error(err))
			}
		}
	}()

	n := 0
	for res := range results {
		if err := emitResult(cmd, res, n); err != nil {
			return err
		}
		if res.Err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), res.Err)
		}
		n++
	}
	return nil
}
