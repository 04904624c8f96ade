// Package demo is the built-in example corpus: grammar values paired with
// the exact text they must render to. The CLI runs it as a self-check.
package demo

import (
	"fmt"
	"io"

	"englishgrammar/inflect"
	"englishgrammar/model"
	"englishgrammar/render"
)

// Example pairs a rendering with its expected output.
type Example struct {
	Name   string
	Want   string
	Render func() string
}

var (
	DogNP = model.NounPhrase{Article: model.ArticleThe, Noun: "dog", Number: model.Singular}

	BigRedDogNP = model.NounPhrase{Article: model.ArticleA, Adjectives: []string{"big", "red"}, Noun: "dog", Number: model.Singular}

	RunningVP = model.VerbPhrase{Verb: "run", Tense: model.Present, Adverbs: []string{"quickly"}}

	InTheHousePP = model.PrepositionalPhrase{
		Preposition: "in",
		Object:      model.NounPhrase{Article: model.ArticleThe, Noun: "house", Number: model.Singular},
	}
)

func the(noun string, number model.Number) model.Nominal {
	return model.PhraseNominal(model.NounPhrase{Article: model.ArticleThe, Noun: noun, Number: number})
}

func simple(subject model.Nominal, verb string, tense model.Tense) model.Clause {
	return model.Clause{Subject: subject, Predicate: model.VerbPhrase{Verb: verb, Tense: tense}}
}

func DogRunningClause() model.Clause {
	return model.Clause{Subject: model.PhraseNominal(DogNP), Predicate: RunningVP}
}

func DogChasingCatClause() model.Clause {
	cat := model.PhraseNominal(model.NounPhrase{Article: model.ArticleA, Noun: "cat", Number: model.Singular})
	return model.Clause{
		Subject:   model.PhraseNominal(DogNP),
		Predicate: model.VerbPhrase{Verb: "chase", Tense: model.Present},
		Object:    &cat,
	}
}

func DogRunsSentence() model.Sentence {
	return model.Sentence{Type: model.Declarative, MainClause: simple(the("dog", model.Singular), "run", model.Present)}
}

// ReportedSentence has a subordinate clause introduced by "that".
func ReportedSentence() model.Sentence {
	return model.Sentence{
		Type:               model.Declarative,
		MainClause:         simple(the("boy", model.Singular), "say", model.Past),
		SubordinateClauses: []model.Clause{simple(the("dog", model.Singular), "run", model.Past)},
		Conjunction:        model.That,
	}
}

// CompoundSentence joins two past-tense clauses with "and".
func CompoundSentence() model.Sentence {
	return model.Sentence{
		Type:               model.Declarative,
		MainClause:         simple(the("sun", model.Singular), "shine", model.Past),
		SubordinateClauses: []model.Clause{simple(the("birds", model.Plural), "sing", model.Past)},
		Conjunction:        model.And,
	}
}

func SampleParagraph() model.Paragraph {
	return model.Paragraph{DogRunsSentence(), CompoundSentence()}
}

func CatSleepsSentence() model.Sentence {
	return model.Sentence{Type: model.Declarative, MainClause: simple(the("cat", model.Singular), "sleep", model.Present)}
}

// TeacherQuestion is an interrogative without subject-auxiliary inversion.
func TeacherQuestion() model.Sentence {
	question := model.PhraseNominal(model.NounPhrase{Article: model.ArticleA, Noun: "question", Number: model.Singular})
	c := simple(the("teacher", model.Singular), "ask", model.Present)
	c.Object = &question
	return model.Sentence{Type: model.Interrogative, MainClause: c}
}

// Statements are the simple statement word order patterns.
var Statements = []struct {
	Statement model.Statement
	Want      string
}{
	{model.Statement{Who: "The policeman", Verb: "arrested", What: "the thief"}, "The policeman arrested the thief."},
	{model.Statement{Who: "The thief", Verb: "arrested", What: "the policeman"}, "The thief arrested the policeman."},
	{
		model.Statement{Who: "The boy", Verb: "played", What: "football", Where: "in the park", How: "happily", When: "yesterday", TimePosition: model.TimeAtEnd},
		"The boy played football in the park happily yesterday.",
	},
	{
		model.Statement{Who: "the girl", Verb: "reads", What: "books", Where: "in the library", How: "quietly", When: "every day", TimePosition: model.TimeAtBeginning},
		"Every day, the girl reads books in the library quietly.",
	},
	{model.Statement{Who: "The sun", Verb: "rises", Where: "in the east"}, "The sun rises in the east."},
}

// Examples returns the whole corpus in a fixed order.
func Examples() []Example {
	ex := []Example{
		{"Dog NP", "the dog", func() string { return render.NounPhrase(DogNP) }},
		{"Big Red Dog NP", "a big red dog", func() string { return render.NounPhrase(BigRedDogNP) }},
		{"Running VP", "run quickly", func() string { return render.VerbPhrase(RunningVP, nil) }},
		{"In The House PP", "in the house", func() string { return render.PrepositionalPhrase(InTheHousePP) }},
		{"Dog Running Clause", "the dog runs quickly", func() string { return render.Clause(DogRunningClause()) }},
		{"Dog Chasing Cat Clause", "the dog chases a cat", func() string { return render.Clause(DogChasingCatClause()) }},
		{"Dog Runs Sentence", "The dog runs.", func() string { return render.Sentence(DogRunsSentence()) }},
		{"Complex Sentence", "The boy said that the dog ran.", func() string { return render.Sentence(ReportedSentence()) }},
		{"Compound Sentence", "The sun shone and the birds sang.", func() string { return render.Sentence(CompoundSentence()) }},
		{"Sample Paragraph", "The dog runs. The sun shone and the birds sang.", func() string { return render.Paragraph(SampleParagraph()) }},
		{"Concise Sentence", "The cat sleeps.", func() string { return render.Sentence(CatSleepsSentence()) }},
		{"Complex Composition", "The teacher asks a question?", func() string { return render.Sentence(TeacherQuestion()) }},
		{"Conjugated Verb", "walked", func() string { return inflect.Conjugate("walk", model.Past, nil) }},
		{"Declined Noun", "children's", func() string { return inflect.Decline("child", model.Plural, model.Possessive) }},
	}
	for i, s := range Statements {
		st := s.Statement
		ex = append(ex, Example{fmt.Sprintf("Statement %d", i+1), s.Want, func() string { return render.Statement(st) }})
	}
	return ex
}

// Run renders every example, reports each outcome to w and returns the
// number of mismatches.
func Run(w io.Writer) int {
	failed := 0
	for _, ex := range Examples() {
		got := ex.Render()
		if got == ex.Want {
			fmt.Fprintf(w, "ok   %-24s %q\n", ex.Name, got)
			continue
		}
		failed++
		fmt.Fprintf(w, "FAIL %-24s\n  expected: %q\n  actual:   %q\n", ex.Name, ex.Want, got)
	}
	return failed
}
