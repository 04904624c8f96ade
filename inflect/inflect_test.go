package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"englishgrammar/dictionary"
	"englishgrammar/model"
)

func singular(noun string) *model.Nominal {
	n := model.PhraseNominal(model.NounPhrase{Article: model.ArticleThe, Noun: noun, Number: model.Singular})
	return &n
}

func TestThirdPersonSingular(t *testing.T) {
	tests := []struct {
		verb string
		want string
	}{
		{"run", "runs"},
		{"chase", "chases"},
		{"miss", "misses"},
		{"fix", "fixes"},
		{"watch", "watches"},
		{"wash", "washes"},
		{"carry", "carries"},
		{"play", "plays"},
		{"go", "gos"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ThirdPersonSingular(tt.verb), tt.verb)
	}
}

func TestConjugatePresentAgreement(t *testing.T) {
	plural := model.PhraseNominal(model.NounPhrase{Noun: "dogs", Number: model.Plural})
	unnumbered := model.PhraseNominal(model.NounPhrase{Article: model.ArticleThe, Noun: "dog"})
	he := model.PronounNominal(model.He)

	assert.Equal(t, "runs", Conjugate("run", model.Present, singular("dog")))
	assert.Equal(t, "run", Conjugate("run", model.Present, &plural))
	assert.Equal(t, "run", Conjugate("run", model.Present, &unnumbered))
	assert.Equal(t, "run", Conjugate("run", model.Present, nil))
	assert.Equal(t, "run", Conjugate("run", model.Present, &he))
	assert.Equal(t, "run", Conjugate("run", model.Present, singular("I")))
	assert.Equal(t, "run", Conjugate("run", model.Present, singular("you")))
	assert.Equal(t, "tries", Conjugate("try", model.Present, singular("cat")))
}

func TestConjugatePastUsesIrregularTable(t *testing.T) {
	for _, verb := range dictionary.Verbs() {
		want, _ := dictionary.IrregularPast(verb)
		assert.Equal(t, want, Conjugate(verb, model.Past, singular("dog")), verb)
	}
}

func TestConjugatePastRegular(t *testing.T) {
	tests := []struct {
		verb string
		want string
	}{
		{"walk", "walked"},
		{"chase", "chased"},
		{"carry", "carried"},
		{"play", "played"},
		{"ask", "asked"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Conjugate(tt.verb, model.Past, singular("dog")), tt.verb)
	}
}

func TestConjugateCompoundTenses(t *testing.T) {
	subj := singular("dog")
	assert.Equal(t, "will run", Conjugate("run", model.Future, subj))
	assert.Equal(t, "have gone", Conjugate("go", model.PresentPerfect, subj))
	assert.Equal(t, "had gone", Conjugate("go", model.PastPerfect, subj))
	assert.Equal(t, "will have gone", Conjugate("go", model.FuturePerfect, subj))
	assert.Equal(t, "have walked", Conjugate("walk", model.PresentPerfect, subj))
	assert.Equal(t, "had studied", Conjugate("study", model.PastPerfect, subj))
	assert.Equal(t, "run", Conjugate("run", model.Tense("aorist"), subj))
}

func TestPastParticiple(t *testing.T) {
	assert.Equal(t, "gone", PastParticiple("go"))
	assert.Equal(t, "been", PastParticiple("be"))
	assert.Equal(t, "written", PastParticiple("write"))
	assert.Equal(t, "danced", PastParticiple("dance"))
	assert.Equal(t, "cried", PastParticiple("cry"))
	assert.Equal(t, "stayed", PastParticiple("stay"))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "dogs", Pluralize("dog"))
	assert.Equal(t, "birds", Pluralize("birds"))
	assert.Equal(t, "bus", Pluralize("bus"))
	assert.Equal(t, "childs", Pluralize("child"))
}

func TestDecline(t *testing.T) {
	tests := []struct {
		noun   string
		number model.Number
		c      model.Case
		want   string
	}{
		{"child", model.Plural, model.Possessive, "children's"},
		{"child", model.Singular, model.Possessive, "child's"},
		{"dog", model.Plural, model.Possessive, "dogs'"},
		{"dog", model.Plural, model.Nominative, "dogs"},
		{"boss", model.Singular, model.Possessive, "boss's"},
		{"mouse", model.Plural, model.Objective, "mice"},
		{"children", model.Plural, model.Possessive, "children's"},
		{"children", model.Plural, model.Nominative, "children"},
		{"men", model.Plural, model.Possessive, "men's"},
		{"geese", model.Plural, model.Objective, "geese"},
		{"dog", "", model.Nominative, "dog"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Decline(tt.noun, tt.number, tt.c), "%s %s %s", tt.noun, tt.number, tt.c)
	}
}
