// Package inflect implements the word-level morphology used by the
// renderer: verb conjugation by tense, subject-verb agreement,
// pluralization and noun declension.
//
// Every function is total. Input it has no rule for comes back in the
// closest regular form rather than as an error.
package inflect

import (
	"strings"

	"englishgrammar/dictionary"
	"englishgrammar/model"
)

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// endsInConsonantY reports whether w ends in a y not preceded by a vowel.
func endsInConsonantY(w string) bool {
	if !strings.HasSuffix(w, "y") {
		return false
	}
	return len(w) < 2 || !isVowel(w[len(w)-2])
}

// regularPast applies the -d / -ied / -ed rule shared by the simple past
// and the past participle.
func regularPast(verb string) string {
	switch {
	case strings.HasSuffix(verb, "e"):
		return verb + "d"
	case endsInConsonantY(verb):
		return verb[:len(verb)-1] + "ied"
	default:
		return verb + "ed"
	}
}

// Past returns the simple past of verb.
func Past(verb string) string {
	if p, ok := dictionary.IrregularPast(verb); ok {
		return p
	}
	return regularPast(verb)
}

// PastParticiple returns the past participle of verb. The participle table
// is separate from the past table (go: went / gone).
func PastParticiple(verb string) string {
	if p, ok := dictionary.IrregularParticiple(verb); ok {
		return p
	}
	return regularPast(verb)
}

// ThirdPersonSingular returns the present tense form agreeing with a third
// person singular subject.
func ThirdPersonSingular(verb string) string {
	switch {
	case strings.HasSuffix(verb, "s"), strings.HasSuffix(verb, "x"),
		strings.HasSuffix(verb, "ch"), strings.HasSuffix(verb, "sh"):
		return verb + "es"
	case endsInConsonantY(verb):
		return verb[:len(verb)-1] + "ies"
	default:
		return verb + "s"
	}
}

// IsThirdPersonSingular reports whether subject triggers -s agreement in
// the present tense. Only a singular noun phrase does; pronoun subjects and
// a missing subject leave the verb bare, as do noun phrases whose noun is
// literally "I" or "you".
func IsThirdPersonSingular(subject *model.Nominal) bool {
	if subject == nil || subject.Phrase == nil {
		return false
	}
	np := subject.Phrase
	return np.Number == model.Singular && np.Noun != string(model.I) && np.Noun != string(model.You)
}

// Conjugate returns verb inflected for tense, agreeing with subject. A nil
// subject is allowed and is treated as not third person singular.
func Conjugate(verb string, tense model.Tense, subject *model.Nominal) string {
	switch tense {
	case model.Present:
		if IsThirdPersonSingular(subject) {
			return ThirdPersonSingular(verb)
		}
		return verb
	case model.Past:
		return Past(verb)
	case model.Future:
		return "will " + verb
	case model.PresentPerfect:
		return "have " + PastParticiple(verb)
	case model.PastPerfect:
		return "had " + PastParticiple(verb)
	case model.FuturePerfect:
		return "will have " + PastParticiple(verb)
	default:
		return verb
	}
}

// Pluralize appends s unless noun already ends in s. Irregular plurals are
// not handled; callers pass the plural noun themselves.
func Pluralize(noun string) string {
	if strings.HasSuffix(noun, "s") {
		return noun
	}
	return noun + "s"
}

// Decline returns noun in the given number and case. Unlike Pluralize it
// knows the few irregular plurals in the dictionary: child declines to
// children and children's, and a noun that is already such a plural, like
// children, is kept as it is.
func Decline(noun string, number model.Number, c model.Case) string {
	form := noun
	if number == model.Plural {
		switch p, ok := dictionary.IrregularPlural(noun); {
		case ok:
			form = p
		case dictionary.IsIrregularPlural(noun):
		default:
			form = Pluralize(noun)
		}
	}
	if c != model.Possessive {
		return form
	}
	if number == model.Plural && strings.HasSuffix(form, "s") {
		return form + "'"
	}
	return form + "'s"
}
