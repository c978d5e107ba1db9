// Package keys canonicalizes free-text labels into field keys.
package keys

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/init-pkg/sheet-export/domain/fields"
)

type Normalizer struct {
	synonyms map[string]string
}

func New(vocabulary fields.Vocabulary) *Normalizer {
	return &Normalizer{synonyms: vocabulary.Synonyms}
}

// Normalize returns the canonical key for text, or "" when nothing
// alphanumeric is left.
func (this *Normalizer) Normalize(text string) string {
	token := Tokenize(text)
	if token == "" {
		return ""
	}
	if canonical, ok := this.synonyms[token]; ok {
		return canonical
	}
	return token
}

// Tokenize lowercases, folds diacritics and joins alphanumeric runs with a
// single underscore.
func Tokenize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}
