package affect

import "strings"

// scoreLexical rates cleaned text by counting polar word tokens. The
// compound score is (positive - negative) / token count, so longer neutral
// text dilutes a single polar word.
func (a *Analyzer) scoreLexical(cleaned string) ScorerResult {
	tokens := strings.Fields(cleaned)

	pos, neg := 0, 0
	for _, token := range tokens {
		if a.lexicon.positiveWords[token] {
			pos++
		}
		if a.lexicon.negativeWords[token] {
			neg++
		}
	}

	denom := len(tokens)
	if denom < 1 {
		denom = 1
	}
	compound := float64(pos-neg) / float64(denom)

	label := Neutral
	switch {
	case compound > a.config.CompoundThreshold:
		label = Positive
	case compound < -a.config.CompoundThreshold:
		label = Negative
	}

	return ScorerResult{
		Source:       SignalLexical,
		Label:        label,
		Score:        compound,
		PositiveHits: pos,
		NegativeHits: neg,
	}
}

// scoreKeywords rates cleaned text by which polar keywords appear in it.
// Each keyword counts once no matter how often it occurs. The score is the
// normalized hit difference, (positive - negative) / (positive + negative).
func (a *Analyzer) scoreKeywords(cleaned string) ScorerResult {
	pos, neg := 0, 0
	for _, keyword := range a.lexicon.positiveKeywords {
		if strings.Contains(cleaned, keyword) {
			pos++
		}
	}
	for _, keyword := range a.lexicon.negativeKeywords {
		if strings.Contains(cleaned, keyword) {
			neg++
		}
	}

	result := ScorerResult{
		Source:       SignalRatio,
		Label:        Neutral,
		PositiveHits: pos,
		NegativeHits: neg,
	}
	if pos == 0 && neg == 0 {
		return result
	}

	result.Score = float64(pos-neg) / float64(pos+neg)
	switch {
	case result.Score > a.config.RatioThreshold:
		result.Label = Positive
	case result.Score < -a.config.RatioThreshold:
		result.Label = Negative
	}

	return result
}

// scorePatterns rates raw text against the lexicon's phrase patterns.
// Patterns see the original text, punctuation and casing included, so they
// can catch phrasing the cleaned-text scorers cannot. The majority side
// wins with confidence winning/total; any tie is neutral at 0.5.
func (a *Analyzer) scorePatterns(raw string) ScorerResult {
	pos, neg := 0, 0
	for _, re := range a.lexicon.positivePatterns {
		if re.MatchString(raw) {
			pos++
		}
	}
	for _, re := range a.lexicon.negativePatterns {
		if re.MatchString(raw) {
			neg++
		}
	}

	result := ScorerResult{
		Source:       SignalPattern,
		PositiveHits: pos,
		NegativeHits: neg,
	}
	switch {
	case pos > neg:
		result.Label = Positive
		result.Score = float64(pos) / float64(pos+neg)
	case neg > pos:
		result.Label = Negative
		result.Score = float64(neg) / float64(pos+neg)
	default:
		result.Label = Neutral
		result.Score = 0.5
	}

	return result
}

// combineSignals merges scorer verdicts by majority vote. Confidence is the
// winning vote share. A split vote resolves positive before negative before
// neutral.
func combineSignals(signals []ScorerResult) (Sentiment, float64) {
	if len(signals) == 0 {
		return Neutral, 0
	}

	votes := make(map[Sentiment]int)
	for _, signal := range signals {
		votes[signal.Label]++
	}

	winner := Neutral
	best := 0
	for _, label := range []Sentiment{Positive, Negative, Neutral} {
		if votes[label] > best {
			best = votes[label]
			winner = label
		}
	}

	return winner, float64(best) / float64(len(signals))
}
