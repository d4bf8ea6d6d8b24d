package affect

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
)

// An EmotionCategory pairs an emotion label with the keywords that signal
// it. Categories are consulted in declaration order, so earlier entries win
// ties during detection.
type EmotionCategory struct {
	Label    Emotion
	Keywords []string
}

// An IntentCategory pairs an intent label with the keywords that signal it.
type IntentCategory struct {
	Label    Intent
	Keywords []string
}

// A Lexicon holds the word lists, keyword lists and compiled patterns the
// analyzer consults. It is assembled once and never mutated afterwards, so
// a single Lexicon can be shared across goroutines.
type Lexicon struct {
	positiveWords map[string]bool
	negativeWords map[string]bool

	positiveKeywords []string
	negativeKeywords []string

	positivePatterns []*regexp.Regexp
	negativePatterns []*regexp.Regexp

	emotions []EmotionCategory
	intents  []IntentCategory
}

// ExternalLexicon mirrors the JSON schema for lexicon overlay files. Every
// field is optional; entries extend the built-in defaults.
type ExternalLexicon struct {
	PositiveWords    []string            `json:"positive_words,omitempty"`
	NegativeWords    []string            `json:"negative_words,omitempty"`
	PositiveKeywords []string            `json:"positive_keywords,omitempty"`
	NegativeKeywords []string            `json:"negative_keywords,omitempty"`
	PositivePatterns []string            `json:"positive_patterns,omitempty"`
	NegativePatterns []string            `json:"negative_patterns,omitempty"`
	Emotions         map[string][]string `json:"emotions,omitempty"`
	Intents          map[string][]string `json:"intents,omitempty"`
}

// DefaultLexicon returns the built-in lexicon for English wellness chat.
func DefaultLexicon() *Lexicon {
	lex := &Lexicon{
		positiveWords:    make(map[string]bool),
		negativeWords:    make(map[string]bool),
		positiveKeywords: append([]string(nil), defaultPositiveKeywords...),
		negativeKeywords: append([]string(nil), defaultNegativeKeywords...),
	}

	for _, word := range defaultPositiveWords {
		lex.positiveWords[word] = true
	}
	for _, word := range defaultNegativeWords {
		lex.negativeWords[word] = true
	}

	for _, pattern := range defaultPositivePatterns {
		lex.positivePatterns = append(lex.positivePatterns, regexp.MustCompile(pattern))
	}
	for _, pattern := range defaultNegativePatterns {
		lex.negativePatterns = append(lex.negativePatterns, regexp.MustCompile(pattern))
	}

	for _, cat := range defaultEmotions {
		lex.emotions = append(lex.emotions, EmotionCategory{
			Label:    cat.Label,
			Keywords: append([]string(nil), cat.Keywords...),
		})
	}
	for _, cat := range defaultIntents {
		lex.intents = append(lex.intents, IntentCategory{
			Label:    cat.Label,
			Keywords: append([]string(nil), cat.Keywords...),
		})
	}

	return lex
}

// LoadLexicon builds a lexicon from the defaults overlaid with the JSON
// file at path. An empty path returns the defaults unchanged.
func LoadLexicon(path string) (*Lexicon, error) {
	lex := DefaultLexicon()
	if path == "" {
		return lex, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon file: %w", err)
	}

	var ext ExternalLexicon
	if err := json.Unmarshal(data, &ext); err != nil {
		return nil, fmt.Errorf("error parsing lexicon file: %w", err)
	}

	if err := lex.merge(ext); err != nil {
		return nil, err
	}
	return lex, nil
}

// merge overlays external entries onto the lexicon. Word and keyword lists
// are extended, patterns are compiled and appended, and emotion or intent
// categories either grow an existing label or are added after the built-in
// ones in sorted label order.
func (l *Lexicon) merge(ext ExternalLexicon) error {
	for _, word := range ext.PositiveWords {
		l.positiveWords[word] = true
	}
	for _, word := range ext.NegativeWords {
		l.negativeWords[word] = true
	}

	l.positiveKeywords = appendMissing(l.positiveKeywords, ext.PositiveKeywords)
	l.negativeKeywords = appendMissing(l.negativeKeywords, ext.NegativeKeywords)

	for _, pattern := range ext.PositivePatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("error compiling positive pattern %q: %w", pattern, err)
		}
		l.positivePatterns = append(l.positivePatterns, re)
	}
	for _, pattern := range ext.NegativePatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("error compiling negative pattern %q: %w", pattern, err)
		}
		l.negativePatterns = append(l.negativePatterns, re)
	}

	for _, label := range sortedKeys(ext.Emotions) {
		keywords := ext.Emotions[label]
		merged := false
		for i := range l.emotions {
			if l.emotions[i].Label == Emotion(label) {
				l.emotions[i].Keywords = appendMissing(l.emotions[i].Keywords, keywords)
				merged = true
				break
			}
		}
		if !merged {
			l.emotions = append(l.emotions, EmotionCategory{
				Label:    Emotion(label),
				Keywords: appendMissing(nil, keywords),
			})
		}
	}

	for _, label := range sortedKeys(ext.Intents) {
		keywords := ext.Intents[label]
		merged := false
		for i := range l.intents {
			if l.intents[i].Label == Intent(label) {
				l.intents[i].Keywords = appendMissing(l.intents[i].Keywords, keywords)
				merged = true
				break
			}
		}
		if !merged {
			l.intents = append(l.intents, IntentCategory{
				Label:    Intent(label),
				Keywords: appendMissing(nil, keywords),
			})
		}
	}

	return nil
}

// EmotionLabels returns every emotion category label in priority order.
func (l *Lexicon) EmotionLabels() []Emotion {
	labels := make([]Emotion, 0, len(l.emotions))
	for _, cat := range l.emotions {
		labels = append(labels, cat.Label)
	}
	return labels
}

// IntentLabels returns every intent category label in priority order.
func (l *Lexicon) IntentLabels() []Intent {
	labels := make([]Intent, 0, len(l.intents))
	for _, cat := range l.intents {
		labels = append(labels, cat.Label)
	}
	return labels
}

// PatternCounts reports how many positive and negative patterns are loaded.
func (l *Lexicon) PatternCounts() (positive, negative int) {
	return len(l.positivePatterns), len(l.negativePatterns)
}

// Helper functions

func appendMissing(list []string, extra []string) []string {
	seen := make(map[string]bool, len(list))
	for _, item := range list {
		seen[item] = true
	}
	for _, item := range extra {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		list = append(list, item)
	}
	return list
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Default word lists and categories for English wellness chat.
var (
	defaultPositiveWords = []string{
		"happy", "good", "great", "wonderful", "excellent", "amazing", "love", "joy",
	}

	defaultNegativeWords = []string{
		"sad", "bad", "terrible", "awful", "hate", "angry", "depressed", "suicidal",
	}

	defaultPositiveKeywords = []string{
		"happy", "good", "great", "wonderful", "excellent", "amazing", "love", "joy",
		"grateful", "hopeful", "better", "calm", "peaceful", "proud",
	}

	defaultNegativeKeywords = []string{
		"sad", "bad", "terrible", "awful", "hate", "angry", "depressed", "suicidal",
		"hopeless", "worthless", "anxious", "scared", "lonely", "exhausted", "miserable",
	}

	defaultEmotions = []EmotionCategory{
		{EmotionSuicidal, []string{"suicide", "kill myself", "end it all", "want to die", "better off dead"}},
		{EmotionAnxiety, []string{"anxious", "worried", "nervous", "scared", "fear", "panic", "stress"}},
		{EmotionDepression, []string{"sad", "depressed", "hopeless", "worthless", "empty", "tired", "exhausted"}},
		{EmotionAnger, []string{"angry", "mad", "furious", "irritated", "frustrated", "hate"}},
		{EmotionHappiness, []string{"happy", "joy", "excited", "pleased", "content", "grateful"}},
		{EmotionLoneliness, []string{"alone", "lonely", "isolated", "abandoned", "left out"}},
	}

	defaultIntents = []IntentCategory{
		{IntentHelpRequest, []string{"help", "support", "need", "struggling", "crisis"}},
		{IntentGreeting, []string{"hello", "hi", "how are you", "feeling", "doing"}},
		{IntentGratitude, []string{"thank", "thanks", "appreciate"}},
		{IntentMeditation, []string{"meditate", "breathing", "calm", "relax", "mindfulness"}},
		{IntentSleep, []string{"sleep", "insomnia", "tired", "rest", "bed"}},
		{IntentGeneral, []string{"general", "talk", "chat", "conversation"}},
	}

	defaultPositivePatterns = []string{
		`(?i)\bi (feel|am|am feeling) (happy|good|great|better|wonderful|excited|grateful|hopeful)\b`,
		`(?i)\bi'?m (feeling )?(happy|good|great|better|wonderful|excited|grateful|hopeful)\b`,
		`(?i)\b(love|enjoy|appreciate) (my|this|the|it)\b`,
		`(?i)\bthank(s| you)\b`,
		`(?i)\b(feeling|getting) better\b`,
	}

	defaultNegativePatterns = []string{
		`(?i)\bi want to (die|kill myself|end it all|disappear|give up)\b`,
		`(?i)\bi (feel|am|am feeling) (sad|depressed|hopeless|worthless|empty|anxious|scared|alone|exhausted|terrible|awful)\b`,
		`(?i)\bi'?m (feeling )?(sad|depressed|hopeless|worthless|empty|anxious|scared|alone|exhausted|terrible|awful)\b`,
		`(?i)\bi (hate|can'?t stand) (myself|my life|everything)\b`,
		`(?i)\bcan'?t (take|do|handle) (it|this)( anymore)?\b`,
		`(?i)\bno one (cares|understands|loves me)\b`,
	}
)
