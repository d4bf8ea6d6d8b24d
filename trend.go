package affect

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Aggregate folds a conversation transcript into a trend summary. Only
// user-authored messages count; bot turns are skipped. The fold is total
// and repeatable: the same transcript always produces the same trend, and
// an empty one produces empty distributions with no dominant labels.
func (a *Analyzer) Aggregate(messages []Message) ConversationTrend {
	trend := ConversationTrend{
		SentimentCounts: make(map[Sentiment]int),
		EmotionCounts:   make(map[Emotion]int),
	}

	var confidences []float64
	for _, msg := range messages {
		if msg.Role != RoleUser {
			continue
		}
		trend.TotalMessages++
		trend.SentimentCounts[msg.Sentiment]++
		trend.EmotionCounts[msg.Emotion]++
		confidences = append(confidences, msg.Confidence)
	}

	if trend.TotalMessages == 0 {
		return trend
	}

	trend.DominantSentiment = dominantSentiment(trend.SentimentCounts)
	trend.DominantEmotion = a.dominantEmotion(trend.EmotionCounts)
	trend.AverageConfidence = stat.Mean(confidences, nil)

	variance := 0.0
	if len(confidences) > 1 {
		variance = stat.Variance(confidences, nil)
	}
	trend.Stability = 1 / (1 + variance)

	return trend
}

// dominantSentiment picks the most frequent sentiment, resolving ties
// positive before negative before neutral like the signal combiner.
func dominantSentiment(counts map[Sentiment]int) Sentiment {
	winner := Neutral
	best := 0
	for _, label := range []Sentiment{Positive, Negative, Neutral} {
		if counts[label] > best {
			best = counts[label]
			winner = label
		}
	}
	return winner
}

// dominantEmotion picks the most frequent emotion, resolving ties in
// lexicon priority order with neutral considered last.
func (a *Analyzer) dominantEmotion(counts map[Emotion]int) Emotion {
	winner := EmotionNeutral
	best := 0
	for _, cat := range a.lexicon.emotions {
		if counts[cat.Label] > best {
			best = counts[cat.Label]
			winner = cat.Label
		}
	}
	if counts[EmotionNeutral] > best {
		winner = EmotionNeutral
	}
	return winner
}

// Summary renders the trend as a short human-readable line.
func (t ConversationTrend) Summary() string {
	if t.TotalMessages == 0 {
		return "no user messages yet"
	}
	return fmt.Sprintf("%d message(s), mostly %s/%s, avg confidence %.1f, stability %.2f",
		t.TotalMessages, t.DominantSentiment, t.DominantEmotion, t.AverageConfidence, t.Stability)
}
