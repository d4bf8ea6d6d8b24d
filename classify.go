package affect

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// Config holds the thresholds for rule-based sentiment scoring.
type Config struct {
	CompoundThreshold float64 // Lexical compound beyond which text counts as polar
	RatioThreshold    float64 // Keyword ratio beyond which text counts as polar
}

// DefaultConfig returns the standard scoring thresholds.
func DefaultConfig() Config {
	return Config{
		CompoundThreshold: 0.1,
		RatioThreshold:    0.3,
	}
}

// An Analyzer classifies wellness-chat messages by sentiment, emotion and
// intent, grades crisis risk and selects reply templates. It is safe for
// concurrent use once constructed, except for the reply selection methods,
// which draw from a shared random source.
type Analyzer struct {
	lexicon   *Lexicon
	responses *ResponseSet
	model     SentimentModel
	splitter  *sentenceSplitter
	config    Config
	rng       *rand.Rand
}

// Option configures an Analyzer during construction.
type Option func(*Analyzer)

// UsingLexicon attaches a custom lexicon in place of the defaults.
func UsingLexicon(lexicon *Lexicon) Option {
	return func(a *Analyzer) { a.lexicon = lexicon }
}

// UsingResponses attaches a custom response set in place of the defaults.
func UsingResponses(responses *ResponseSet) Option {
	return func(a *Analyzer) { a.responses = responses }
}

// UsingModel attaches an external sentiment model. When the model succeeds
// its verdict replaces the rule-based scorers; when it fails the analyzer
// falls back to them.
func UsingModel(model SentimentModel) Option {
	return func(a *Analyzer) { a.model = model }
}

// WithConfig overrides the scoring thresholds.
func WithConfig(config Config) Option {
	return func(a *Analyzer) { a.config = config }
}

// WithSeed fixes the random source used for reply selection.
func WithSeed(seed int64) Option {
	return func(a *Analyzer) { a.rng = rand.New(rand.NewSource(seed)) }
}

// NewAnalyzer creates an analyzer with the default lexicon, responses and
// configuration, modified by any options. It fails if the sentence
// tokenizer cannot load or the response set has gaps.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		lexicon:   DefaultLexicon(),
		responses: DefaultResponses(),
		config:    DefaultConfig(),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(a)
	}

	splitter, err := newSentenceSplitter()
	if err != nil {
		return nil, err
	}
	a.splitter = splitter

	if err := a.responses.Validate(); err != nil {
		return nil, fmt.Errorf("error validating responses: %w", err)
	}

	return a, nil
}

// Classify scores a single message and returns the combined verdict. It is
// total: empty or unrecognizable text comes back neutral with confidence 0,
// and identical input always produces an identical result.
func (a *Analyzer) Classify(text string) Classification {
	return a.Analyze(text).Classification
}

// Analyze runs the full pipeline on one message and returns the verdict
// together with the evidence behind it.
func (a *Analyzer) Analyze(text string) Analysis {
	cleaned := cleanText(text)
	if cleaned == "" {
		return Analysis{
			Classification: Classification{
				Sentiment: Neutral,
				Emotion:   EmotionNeutral,
				Intent:    IntentGeneral,
			},
			Text:   text,
			Method: MethodRules,
		}
	}

	// Step 1: Detect emotion and intent from keyword presence
	emotion, emotionHits := a.detectEmotion(cleaned)
	intent, intentHits := a.detectIntent(cleaned)

	// Step 2: Score sentiment, preferring an attached model
	var (
		sentiment Sentiment
		combined  float64
		method    = MethodRules
		signals   []ScorerResult
	)
	if a.model != nil {
		if pred, err := a.model.Predict(text); err == nil {
			sentiment = normalizeSentiment(pred.Sentiment)
			combined = clampFloat(pred.Confidence, 0, 1)
			method = MethodModel
		}
	}
	if method == MethodRules {
		signals = []ScorerResult{
			a.scoreLexical(cleaned),
			a.scoreKeywords(cleaned),
			a.scorePatterns(text),
		}
		sentiment, combined = combineSignals(signals)
	}

	// Step 3: Calibrate confidence against the detected categories
	confidence := calibrate(combined, emotion, intent)

	return Analysis{
		Classification: Classification{
			Sentiment:  sentiment,
			Emotion:    emotion,
			Intent:     intent,
			Confidence: confidence,
		},
		Text:            text,
		Method:          method,
		Signals:         signals,
		EmotionKeywords: emotionHits,
		IntentKeywords:  intentHits,
		SalientTerms:    salientTerms(text),
		SentenceCount:   len(a.splitter.split(text)),
	}
}

// detectEmotion finds the emotion category with the most keyword hits in
// the cleaned text. Each keyword counts once. Categories earlier in the
// lexicon win ties, and text with no hits at all stays neutral.
func (a *Analyzer) detectEmotion(cleaned string) (Emotion, map[Emotion][]string) {
	found := make(map[Emotion][]string)
	winner := EmotionNeutral
	best := 0
	for _, cat := range a.lexicon.emotions {
		var hits []string
		for _, keyword := range cat.Keywords {
			if strings.Contains(cleaned, keyword) {
				hits = append(hits, keyword)
			}
		}
		if len(hits) == 0 {
			continue
		}
		found[cat.Label] = hits
		if len(hits) > best {
			best = len(hits)
			winner = cat.Label
		}
	}
	return winner, found
}

// detectIntent finds the intent category with the most keyword hits in the
// cleaned text, defaulting to general conversation.
func (a *Analyzer) detectIntent(cleaned string) (Intent, map[Intent][]string) {
	found := make(map[Intent][]string)
	winner := IntentGeneral
	best := 0
	for _, cat := range a.lexicon.intents {
		var hits []string
		for _, keyword := range cat.Keywords {
			if strings.Contains(cleaned, keyword) {
				hits = append(hits, keyword)
			}
		}
		if len(hits) == 0 {
			continue
		}
		found[cat.Label] = hits
		if len(hits) > best {
			best = len(hits)
			winner = cat.Label
		}
	}
	return winner, found
}

// calibrate converts combined signal agreement to the 0-100 confidence
// scale, boosted when the detected emotion or intent marks the message as
// urgent. The result is a reporting heuristic, not a probability.
func calibrate(combined float64, emotion Emotion, intent Intent) float64 {
	confidence := combined * 100

	switch emotion {
	case EmotionSuicidal:
		confidence += 20
	case EmotionDepression, EmotionAnxiety:
		confidence += 10
	}

	switch intent {
	case IntentHelpRequest:
		confidence += 15
	case IntentMeditation, IntentSleep:
		confidence += 10
	}

	return clampFloat(confidence, 0, 100)
}

// Helper functions

func normalizeSentiment(s Sentiment) Sentiment {
	switch s {
	case Positive, Negative, Neutral:
		return s
	}
	return Neutral
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
