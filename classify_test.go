package affect

import (
	"math"
	"testing"
)

func TestClassifyScenarios(t *testing.T) {
	tests := []struct {
		text      string
		sentiment Sentiment
		emotion   Emotion
		intent    Intent
		desc      string
	}{
		{"I am happy and grateful", Positive, EmotionHappiness, IntentGeneral, "Grateful check-in"},
		{"I want to kill myself", Neutral, EmotionSuicidal, IntentGeneral, "Suicidal ideation"},
		{"I am feeling anxious about work", Negative, EmotionAnxiety, IntentGreeting, "Work anxiety"},
		{"Thanks for listening", Neutral, EmotionNeutral, IntentGratitude, "Plain gratitude"},
		{"", Neutral, EmotionNeutral, IntentGeneral, "Empty text"},
		{"   ", Neutral, EmotionNeutral, IntentGeneral, "Whitespace only"},
		{"123 !!!", Neutral, EmotionNeutral, IntentGeneral, "No letters"},
	}

	analyzer, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := analyzer.Classify(tt.text)
			if got.Sentiment != tt.sentiment {
				t.Errorf("Text: %q\nExpected sentiment %s, got %s", tt.text, tt.sentiment, got.Sentiment)
			}
			if got.Emotion != tt.emotion {
				t.Errorf("Text: %q\nExpected emotion %s, got %s", tt.text, tt.emotion, got.Emotion)
			}
			if got.Intent != tt.intent {
				t.Errorf("Text: %q\nExpected intent %s, got %s", tt.text, tt.intent, got.Intent)
			}
		})
	}
}

func TestClassifyConfidence(t *testing.T) {
	tests := []struct {
		text     string
		expected float64
		delta    float64
		desc     string
	}{
		{"I am happy and grateful", 100, 0.001, "Unanimous positive, no boosts"},
		{"I want to kill myself", 86.667, 0.01, "Split vote with suicidal boost"},
		{"I am feeling anxious about work", 76.667, 0.01, "Majority vote with anxiety boost"},
		{"I need help with my sleep", 100, 0.001, "Help request boost clamped at the ceiling"},
		{"", 0, 0.001, "Empty text"},
	}

	analyzer, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := analyzer.Classify(tt.text)
			if math.Abs(got.Confidence-tt.expected) > tt.delta {
				t.Errorf("Text: %q\nExpected confidence %.3f ± %.3f\nGot: %.3f",
					tt.text, tt.expected, tt.delta, got.Confidence)
			}
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	texts := []string{
		"I am happy and grateful",
		"I want to kill myself",
		"I am feeling anxious about work",
		"Thanks for listening",
		"",
	}

	analyzer, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}

	for _, text := range texts {
		first := analyzer.Classify(text)
		second := analyzer.Classify(text)
		if first != second {
			t.Errorf("Text: %q\nFirst:  %+v\nSecond: %+v", text, first, second)
		}
	}
}

func TestConfidenceInRange(t *testing.T) {
	texts := []string{
		"Please help me, I am struggling with a crisis and I want to die",
		"I am so happy, grateful, excited and calm today",
		"I hate everything, this is terrible and awful and I feel hopeless",
		"The meeting is at noon tomorrow",
		"ok",
		"",
	}

	analyzer, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}

	for _, text := range texts {
		got := analyzer.Classify(text)
		if got.Confidence < 0 || got.Confidence > 100 {
			t.Errorf("Text: %q\nConfidence %.3f out of range", text, got.Confidence)
		}
	}
}

func TestDetectionTieBreaks(t *testing.T) {
	tests := []struct {
		text    string
		emotion Emotion
		intent  Intent
		desc    string
	}{
		{"I feel worried and sad", EmotionAnxiety, IntentGeneral, "Anxiety outranks depression on a tie"},
		{"suicide and sadness weigh on me", EmotionSuicidal, IntentGeneral, "Suicidal outranks depression on a tie"},
		{"Thank you for your support", EmotionNeutral, IntentHelpRequest, "Help request outranks gratitude on a tie"},
		{"I am worried, nervous and tired", EmotionAnxiety, IntentSleep, "Majority beats priority order"},
	}

	analyzer, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := analyzer.Classify(tt.text)
			if got.Emotion != tt.emotion {
				t.Errorf("Text: %q\nExpected emotion %s, got %s", tt.text, tt.emotion, got.Emotion)
			}
			if got.Intent != tt.intent {
				t.Errorf("Text: %q\nExpected intent %s, got %s", tt.text, tt.intent, got.Intent)
			}
		})
	}
}

func TestAnalyzeDetails(t *testing.T) {
	analyzer, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}

	an := analyzer.Analyze("I am sad. I need help with sleep.")

	if an.Method != MethodRules {
		t.Errorf("Expected method %s, got %s", MethodRules, an.Method)
	}
	if len(an.Signals) != 3 {
		t.Fatalf("Expected 3 signals, got %d", len(an.Signals))
	}
	for i, source := range []SignalSource{SignalLexical, SignalRatio, SignalPattern} {
		if an.Signals[i].Source != source {
			t.Errorf("Expected signal %d from %s, got %s", i, source, an.Signals[i].Source)
		}
	}
	if an.SentenceCount != 2 {
		t.Errorf("Expected 2 sentences, got %d", an.SentenceCount)
	}
	if hits := an.EmotionKeywords[EmotionDepression]; len(hits) != 1 || hits[0] != "sad" {
		t.Errorf("Expected depression hit [sad], got %v", hits)
	}
	if hits := an.IntentKeywords[IntentHelpRequest]; len(hits) != 2 {
		t.Errorf("Expected two help_request hits, got %v", hits)
	}
	if len(an.SalientTerms) == 0 {
		t.Error("Expected salient terms for non-trivial text")
	}

	empty := analyzer.Analyze("")
	if empty.Signals != nil || empty.SentenceCount != 0 || empty.Confidence != 0 {
		t.Errorf("Expected bare analysis for empty text, got %+v", empty)
	}
}

func BenchmarkClassify(b *testing.B) {
	texts := []string{
		"I am happy and grateful for today",
		"I am feeling anxious about work",
		"I want to kill myself",
		"The weather report is on television",
	}

	analyzer, err := NewAnalyzer()
	if err != nil {
		b.Fatalf("Failed to create analyzer: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = analyzer.Classify(texts[i%len(texts)])
	}
}
