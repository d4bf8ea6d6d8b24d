package affect

// AssessCrisis grades a classified message on the 0-5 crisis scale.
// Scoring is additive: polarity, emotional category, calibrated confidence
// and help-seeking intent each contribute, and the total is clamped into
// range. The returned factors name every rule that fired, in order.
func (a *Analyzer) AssessCrisis(c Classification) CrisisAssessment {
	level := 0
	var factors []string

	switch c.Sentiment {
	case Negative:
		level++
		factors = append(factors, "negative sentiment")
	case Positive:
		level--
		factors = append(factors, "positive sentiment")
	}

	switch c.Emotion {
	case EmotionSuicidal:
		level += 5
		factors = append(factors, "suicidal ideation")
	case EmotionDepression:
		level += 3
		factors = append(factors, "depression indicators")
	case EmotionAnxiety:
		level += 2
		factors = append(factors, "anxiety indicators")
	case EmotionAnger:
		level += 2
		factors = append(factors, "anger indicators")
	case EmotionLoneliness:
		level++
		factors = append(factors, "loneliness indicators")
	}

	if c.Confidence > 80 {
		level++
		factors = append(factors, "high confidence")
	}
	if c.Confidence > 90 {
		level++
		factors = append(factors, "very high confidence")
	}

	if c.Intent == IntentHelpRequest {
		level++
		factors = append(factors, "help request")
	}

	assessment := CrisisAssessment{
		Level:   clampInt(level, 0, 5),
		Factors: factors,
	}
	switch {
	case assessment.Level >= 5:
		assessment.Flag = FlagSuicidal
	case assessment.Level > 0:
		assessment.Flag = FlagCrisis
	}

	return assessment
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
