package affect

// Sentiment represents the polarity assigned to a piece of text.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// Emotion represents the dominant emotional category of a message.
type Emotion string

const (
	EmotionSuicidal   Emotion = "suicidal"
	EmotionAnxiety    Emotion = "anxiety"
	EmotionDepression Emotion = "depression"
	EmotionAnger      Emotion = "anger"
	EmotionHappiness  Emotion = "happiness"
	EmotionLoneliness Emotion = "loneliness"
	EmotionNeutral    Emotion = "neutral"
)

// Intent represents the conversational intent of a message.
type Intent string

const (
	IntentHelpRequest Intent = "help_request"
	IntentGreeting    Intent = "greeting"
	IntentGratitude   Intent = "gratitude"
	IntentMeditation  Intent = "meditation"
	IntentSleep       Intent = "sleep"
	IntentGeneral     Intent = "general"
)

// SignalSource identifies which scorer produced a ScorerResult.
type SignalSource string

const (
	SignalLexical SignalSource = "lexical"
	SignalRatio   SignalSource = "keyword_ratio"
	SignalPattern SignalSource = "pattern"
)

// Methods recorded on an Analysis.
const (
	MethodRules = "rules" // keyword and pattern scoring
	MethodModel = "model" // external sentiment model
)

// A ScorerResult is the verdict of a single sentiment signal.
type ScorerResult struct {
	Source       SignalSource `json:"source"`
	Label        Sentiment    `json:"label"`
	Score        float64      `json:"score"` // Signal-specific strength, see each scorer
	PositiveHits int          `json:"positive_hits"`
	NegativeHits int          `json:"negative_hits"`
}

// A Classification is the combined verdict for a single message.
//
// Confidence is a calibrated heuristic on a 0-100 scale. It reflects
// signal agreement adjusted for emotional urgency, not a probability.
type Classification struct {
	Sentiment  Sentiment `json:"sentiment"`
	Emotion    Emotion   `json:"emotion"`
	Intent     Intent    `json:"intent"`
	Confidence float64   `json:"confidence"`
}

// An Analysis is a Classification together with the evidence behind it.
type Analysis struct {
	Classification
	Text            string               `json:"text"`
	Method          string               `json:"method"`
	Signals         []ScorerResult       `json:"signals,omitempty"`
	EmotionKeywords map[Emotion][]string `json:"emotion_keywords_found,omitempty"`
	IntentKeywords  map[Intent][]string  `json:"intent_keywords_found,omitempty"`
	SalientTerms    []string             `json:"salient_terms,omitempty"`
	SentenceCount   int                  `json:"sentence_count"`
}

// CrisisFlag marks the severity tier of a crisis assessment.
type CrisisFlag string

const (
	FlagSuicidal CrisisFlag = "suicidal"
	FlagCrisis   CrisisFlag = "crisis"
	FlagNone     CrisisFlag = ""
)

// A CrisisAssessment grades how urgently a message needs attention.
// Level runs from 0 (no concern) to 5 (immediate danger).
type CrisisAssessment struct {
	Level   int        `json:"level"`
	Flag    CrisisFlag `json:"flag,omitempty"`
	Factors []string   `json:"factors,omitempty"`
}

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// A Message is one turn in a conversation transcript.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	Classification
}

// A ConversationTrend summarizes the user-authored side of a conversation.
type ConversationTrend struct {
	TotalMessages     int               `json:"total_messages"`
	SentimentCounts   map[Sentiment]int `json:"sentiment_distribution"`
	EmotionCounts     map[Emotion]int   `json:"emotion_distribution"`
	DominantSentiment Sentiment         `json:"dominant_sentiment,omitempty"`
	DominantEmotion   Emotion           `json:"dominant_emotion,omitempty"`
	AverageConfidence float64           `json:"avg_confidence"`
	Stability         float64           `json:"stability"` // 1/(1+variance) of confidences
}
