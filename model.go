package affect

// A SentimentPrediction is the verdict of an external sentiment model.
type SentimentPrediction struct {
	Sentiment  Sentiment // Predicted polarity label
	Confidence float64   // Model confidence in the 0-1 range
}

// A SentimentModel scores raw text with an externally trained classifier,
// for example a client wrapping a served model. Implementations return an
// error when they cannot produce a verdict; the analyzer then falls back
// to its rule-based scorers.
type SentimentModel interface {
	Predict(text string) (SentimentPrediction, error)
}

// ModelFunc adapts a plain function to the SentimentModel interface.
type ModelFunc func(text string) (SentimentPrediction, error)

// Predict calls f.
func (f ModelFunc) Predict(text string) (SentimentPrediction, error) {
	return f(text)
}
