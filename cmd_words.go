package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"englishgrammar/demo"
	"englishgrammar/dictionary"
	"englishgrammar/inflect"
	"englishgrammar/model"
	"englishgrammar/render"
)

var (
	conjTense   string
	conjPronoun string
	conjNoun    string
	conjNumber  string
	conjAll     bool

	declNumber string
	declCase   string

	stmt        model.Statement
	stmtTimePos string
)

var conjugateCmd = &cobra.Command{
	Use:   "conjugate VERB",
	Short: "Conjugate a verb for a tense and subject",
	Example: `  grammar conjugate go --tense "present perfect"
  grammar conjugate watch --noun dog --number singular
  grammar conjugate sing --all`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verb := args[0]
		subject, err := conjugationSubject()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if conjAll {
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, t := range model.Tenses {
				fmt.Fprintf(tw, "%s\t%s\n", t, inflect.Conjugate(verb, t, subject))
			}
			return tw.Flush()
		}
		tense := model.Tense(conjTense)
		if !tense.Valid() {
			return fmt.Errorf("unknown tense %q (valid: %v)", conjTense, model.Tenses)
		}
		fmt.Fprintln(out, inflect.Conjugate(verb, tense, subject))
		return nil
	},
}

func conjugationSubject() (*model.Nominal, error) {
	switch {
	case conjPronoun != "" && conjNoun != "":
		return nil, errors.New("--pronoun and --noun are mutually exclusive")
	case conjPronoun != "":
		p := model.Pronoun(conjPronoun)
		if !p.Valid() {
			return nil, fmt.Errorf("unknown pronoun %q", conjPronoun)
		}
		n := model.PronounNominal(p)
		return &n, nil
	case conjNoun != "":
		num := model.Number(conjNumber)
		if conjNumber != "" && !num.Valid() {
			return nil, fmt.Errorf("unknown number %q", conjNumber)
		}
		n := model.PhraseNominal(model.NounPhrase{Noun: conjNoun, Number: num})
		return &n, nil
	}
	return nil, nil
}

var declineCmd = &cobra.Command{
	Use:     "decline NOUN",
	Short:   "Decline a noun for number and case",
	Example: `  grammar decline child --number plural --case possessive`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		num := model.Number(declNumber)
		if !num.Valid() {
			return fmt.Errorf("unknown number %q", declNumber)
		}
		c := model.Case(declCase)
		if !c.Valid() {
			return fmt.Errorf("unknown case %q", declCase)
		}
		fmt.Fprintln(cmd.OutOrStdout(), inflect.Decline(args[0], num, c))
		return nil
	},
}

var statementCmd = &cobra.Command{
	Use:     "statement",
	Short:   "Render a simple who-verb-what-where-how-when statement",
	Example: `  grammar statement --who "the girl" --verb reads --what books --when "every day" --time-position beginning`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := stmt
		st.TimePosition = model.TimePosition(stmtTimePos)
		if st.TimePosition != model.TimeAtBeginning && st.TimePosition != model.TimeAtEnd {
			return fmt.Errorf("unknown time position %q", stmtTimePos)
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.Statement(st))
		return nil
	},
}

var verbsCmd = &cobra.Command{
	Use:   "verbs",
	Short: "List the irregular verbs and their principal parts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "BASE\tPAST\tPARTICIPLE")
		for _, v := range dictionary.Verbs() {
			e, _ := dictionary.Lookup(v)
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Base, e.Past, e.Participle)
		}
		return tw.Flush()
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render the built-in examples and check them against their expected text",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if failed := demo.Run(cmd.OutOrStdout()); failed > 0 {
			return fmt.Errorf("%d examples rendered unexpected text", failed)
		}
		return nil
	},
}

func init() {
	conjugateCmd.Flags().StringVarP(&conjTense, "tense", "t", string(model.Present), "tense to conjugate for")
	conjugateCmd.Flags().StringVar(&conjPronoun, "pronoun", "", "pronoun subject (the verb stays bare)")
	conjugateCmd.Flags().StringVar(&conjNoun, "noun", "", "noun subject")
	conjugateCmd.Flags().StringVar(&conjNumber, "number", string(model.Singular), "number of the noun subject")
	conjugateCmd.Flags().BoolVar(&conjAll, "all", false, "print every tense")

	declineCmd.Flags().StringVar(&declNumber, "number", string(model.Singular), "singular or plural")
	declineCmd.Flags().StringVar(&declCase, "case", string(model.Nominative), "nominative, objective or possessive")

	f := statementCmd.Flags()
	f.StringVar(&stmt.Who, "who", "", "who performs the action")
	f.StringVar(&stmt.Verb, "verb", "", "the inflected verb")
	f.StringVar(&stmt.What, "what", "", "object of the action")
	f.StringVar(&stmt.Where, "where", "", "location")
	f.StringVar(&stmt.How, "how", "", "manner")
	f.StringVar(&stmt.When, "when", "", "time")
	f.StringVar(&stmtTimePos, "time-position", string(model.TimeAtEnd), "place the time at the beginning or the end")
	_ = statementCmd.MarkFlagRequired("who")
	_ = statementCmd.MarkFlagRequired("verb")

	rootCmd.AddCommand(conjugateCmd, declineCmd, statementCmd, verbsCmd, demoCmd)
}
