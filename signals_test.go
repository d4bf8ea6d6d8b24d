package affect

import (
	"math"
	"testing"
)

func TestScoreLexical(t *testing.T) {
	tests := []struct {
		text  string
		label Sentiment
		score float64
		desc  string
	}{
		{"I am happy and grateful", Positive, 0.2, "One positive token in five"},
		{"This is sad and terrible", Negative, -0.4, "Two negative tokens in five"},
		{"The weather is mild today", Neutral, 0.0, "No polar tokens"},
		{"happy", Positive, 1.0, "Single positive token"},
		{"happy about the way things might turn out for us", Neutral, 0.1, "Exactly at the threshold stays neutral"},
		{"love and hate", Neutral, 0.0, "Balanced polarity"},
	}

	analyzer, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := analyzer.scoreLexical(cleanText(tt.text))
			if got.Source != SignalLexical {
				t.Errorf("Expected source %s, got %s", SignalLexical, got.Source)
			}
			if got.Label != tt.label {
				t.Errorf("Text: %q\nExpected label %s, got %s", tt.text, tt.label, got.Label)
			}
			if math.Abs(got.Score-tt.score) > 0.001 {
				t.Errorf("Text: %q\nExpected score %.3f\nGot: %.3f", tt.text, tt.score, got.Score)
			}
		})
	}
}

func TestScoreKeywords(t *testing.T) {
	tests := []struct {
		text  string
		label Sentiment
		score float64
		pos   int
		neg   int
		desc  string
	}{
		{"happy happy happy", Positive, 1.0, 1, 0, "Repeated keyword counts once"},
		{"good but sad", Neutral, 0.0, 1, 1, "Balanced hits stay neutral"},
		{"grateful and calm but exhausted", Positive, 1.0 / 3, 2, 1, "Two against one crosses the threshold"},
		{"nothing to report", Neutral, 0.0, 0, 0, "No hits at all"},
		{"sad and hopeless and scared", Negative, -1.0, 0, 3, "All negative"},
	}

	analyzer, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := analyzer.scoreKeywords(cleanText(tt.text))
			if got.Source != SignalRatio {
				t.Errorf("Expected source %s, got %s", SignalRatio, got.Source)
			}
			if got.Label != tt.label {
				t.Errorf("Text: %q\nExpected label %s, got %s", tt.text, tt.label, got.Label)
			}
			if math.Abs(got.Score-tt.score) > 0.001 {
				t.Errorf("Text: %q\nExpected score %.3f\nGot: %.3f", tt.text, tt.score, got.Score)
			}
			if got.PositiveHits != tt.pos || got.NegativeHits != tt.neg {
				t.Errorf("Text: %q\nExpected hits %d/%d\nGot: %d/%d",
					tt.text, tt.pos, tt.neg, got.PositiveHits, got.NegativeHits)
			}
		})
	}
}

func TestScorePatterns(t *testing.T) {
	tests := []struct {
		text  string
		label Sentiment
		score float64
		desc  string
	}{
		{"I want to kill myself", Negative, 1.0, "Self-harm phrasing"},
		{"I'm feeling better, thank you", Positive, 1.0, "Recovery phrasing"},
		{"I am happy but I can't take it anymore", Neutral, 0.5, "One match on each side"},
		{"The sky is blue", Neutral, 0.5, "No matches at all"},
	}

	analyzer, err := NewAnalyzer()
	if err != nil {
		t.Fatalf("Failed to create analyzer: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := analyzer.scorePatterns(tt.text)
			if got.Source != SignalPattern {
				t.Errorf("Expected source %s, got %s", SignalPattern, got.Source)
			}
			if got.Label != tt.label {
				t.Errorf("Text: %q\nExpected label %s, got %s", tt.text, tt.label, got.Label)
			}
			if math.Abs(got.Score-tt.score) > 0.001 {
				t.Errorf("Text: %q\nExpected score %.3f\nGot: %.3f", tt.text, tt.score, got.Score)
			}
		})
	}
}

func TestCombineSignals(t *testing.T) {
	tests := []struct {
		labels     []Sentiment
		expected   Sentiment
		confidence float64
		desc       string
	}{
		{[]Sentiment{Positive, Positive, Positive}, Positive, 1.0, "Unanimous positive"},
		{[]Sentiment{Negative, Negative, Neutral}, Negative, 2.0 / 3, "Negative majority"},
		{[]Sentiment{Positive, Negative, Neutral}, Positive, 1.0 / 3, "Three-way tie resolves positive"},
		{[]Sentiment{Negative, Neutral, Neutral}, Neutral, 2.0 / 3, "Neutral majority"},
		{[]Sentiment{Negative, Negative, Positive}, Negative, 2.0 / 3, "Negative outvotes positive"},
		{[]Sentiment{Negative, Neutral}, Negative, 0.5, "Negative beats neutral on a tie"},
		{nil, Neutral, 0.0, "No signals"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			var signals []ScorerResult
			for _, label := range tt.labels {
				signals = append(signals, ScorerResult{Label: label})
			}

			sentiment, confidence := combineSignals(signals)
			if sentiment != tt.expected {
				t.Errorf("Labels: %v\nExpected %s, got %s", tt.labels, tt.expected, sentiment)
			}
			if math.Abs(confidence-tt.confidence) > 0.001 {
				t.Errorf("Labels: %v\nExpected confidence %.3f\nGot: %.3f",
					tt.labels, tt.confidence, confidence)
			}
		})
	}
}
