package affect

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bbalet/stopwords"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// cleanText normalizes raw message text for keyword scoring. It lowercases
// the text, strips everything except letters and whitespace, and collapses
// whitespace runs into single spaces.
func cleanText(text string) string {
	lowered := strings.ToLower(text)
	letters := nonLetterRE.ReplaceAllString(lowered, "")
	return strings.TrimSpace(spaceRE.ReplaceAllString(letters, " "))
}

// salientTerms returns the distinct content words of the text with English
// stop words removed, in first-occurrence order.
func salientTerms(text string) []string {
	cleaned := stopwords.CleanString(cleanText(text), "en", false)
	seen := make(map[string]bool)
	var terms []string
	for _, term := range strings.Fields(cleaned) {
		if !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}
	return terms
}

// sentenceSplitter segments raw text into sentences using the pre-trained
// English Punkt model.
type sentenceSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func newSentenceSplitter() (*sentenceSplitter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("error loading sentence tokenizer: %w", err)
	}
	return &sentenceSplitter{tokenizer: tokenizer}, nil
}

// split returns the non-empty sentences of text.
func (s *sentenceSplitter) split(text string) []string {
	var out []string
	for _, sentence := range s.tokenizer.Tokenize(text) {
		trimmed := strings.TrimSpace(sentence.Text)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

var (
	nonLetterRE = regexp.MustCompile(`[^a-zA-Z\s]`)
	spaceRE     = regexp.MustCompile(`\s+`)
)
