package affect

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fallbackResponse is returned when no template exists for a pair even
// after falling back to the general intent.
const fallbackResponse = "I'm here to help. Please let me know how I can assist you."

// A ResponseSet maps intent and sentiment pairs to reply templates.
type ResponseSet struct {
	templates map[Intent]map[Sentiment][]string
}

// externalResponses mirrors the YAML schema for response template files.
type externalResponses struct {
	Responses map[string]map[string][]string `yaml:"responses"`
}

// DefaultResponses returns the built-in wellness-chat reply templates.
func DefaultResponses() *ResponseSet {
	return &ResponseSet{
		templates: map[Intent]map[Sentiment][]string{
			IntentHelpRequest: {
				Positive: {
					"I'm glad you're reaching out. What kind of support would be most helpful right now?",
					"It takes strength to ask for help. Tell me what you need.",
				},
				Negative: {
					"You don't have to face this alone. What's weighing on you the most?",
					"I'm here with you. Can you tell me more about what's been hardest?",
				},
				Neutral: {
					"I'm here to support you. What would you like help with?",
					"Let's take this one step at a time. What's going on?",
				},
			},
			IntentGreeting: {
				Positive: {
					"Hello! It's lovely to hear from you. What's been going well?",
					"Hi there! You sound upbeat today. What's on your mind?",
				},
				Negative: {
					"Hello. I'm glad you reached out today. How are you holding up?",
					"Hi. Thank you for checking in, even on a hard day. How are you feeling?",
				},
				Neutral: {
					"Hello! How are you feeling today?",
					"Hi there! What's on your mind?",
				},
			},
			IntentGratitude: {
				Positive: {
					"You're very welcome! It makes me happy to know this helped.",
					"Thank you for the kind words. I'm glad to be here with you.",
				},
				Negative: {
					"You're welcome. Even on tough days, I'm glad you reached out.",
					"I appreciate you saying that. I'm here whenever you need me.",
				},
				Neutral: {
					"You're welcome! I'm always here if you need anything.",
					"Happy to help. Is there anything else on your mind?",
				},
			},
			IntentMeditation: {
				Positive: {
					"That's a great headspace for practice. Would you like a short guided breathing exercise?",
					"Wonderful. Let's build on that calm: breathe in for four counts, hold for four, and out for four.",
				},
				Negative: {
					"Let's slow things down together. Breathe in gently for four counts, hold, and release for six.",
					"When everything feels like a lot, grounding helps. Can you name five things you can see right now?",
				},
				Neutral: {
					"Let's try a simple exercise: breathe in for four counts, hold for four, and breathe out for four.",
					"A few minutes of mindful breathing can reset your day. Want to try one together?",
				},
			},
			IntentSleep: {
				Positive: {
					"Good sleep makes everything easier. Keeping a steady bedtime will help you hold onto that.",
					"That's great progress. A wind-down routine will help those good nights continue.",
				},
				Negative: {
					"Sleepless nights are exhausting. Try putting screens away an hour before bed and dimming the lights.",
					"I'm sorry sleep has been rough. A slow breathing exercise in bed can quiet a racing mind.",
				},
				Neutral: {
					"A regular sleep schedule helps more than most people expect. What does your evening routine look like?",
					"Rest matters. Try to keep your bedroom cool, dark and quiet tonight.",
				},
			},
			IntentGeneral: {
				Positive: {
					"That's really good to hear. What else has been going on for you?",
					"I'm glad things are looking up. Tell me more.",
				},
				Negative: {
					"That sounds difficult. I'm listening, take your time.",
					"Thank you for sharing that with me. What's been the hardest part?",
				},
				Neutral: {
					"I'm listening. Tell me more about that.",
					"Thanks for sharing. How does that make you feel?",
				},
			},
		},
	}
}

// LoadResponses reads reply templates from a YAML file and merges them over
// the defaults. A list given in the file replaces the default list for that
// intent and sentiment pair; blank templates are dropped.
func LoadResponses(path string) (*ResponseSet, error) {
	rs := DefaultResponses()
	if path == "" {
		return rs, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading response file: %w", err)
	}

	var ext externalResponses
	if err := yaml.Unmarshal(data, &ext); err != nil {
		return nil, fmt.Errorf("error parsing response file: %w", err)
	}

	for intentLabel, bySentiment := range ext.Responses {
		intent := Intent(intentLabel)
		if rs.templates[intent] == nil {
			rs.templates[intent] = make(map[Sentiment][]string)
		}
		for sentimentLabel, list := range bySentiment {
			var kept []string
			for _, template := range list {
				if strings.TrimSpace(template) != "" {
					kept = append(kept, template)
				}
			}
			rs.templates[intent][Sentiment(sentimentLabel)] = kept
		}
	}

	return rs, nil
}

// Validate checks that every built-in intent and sentiment pair has at
// least one template. Custom intents from a lexicon overlay are exempt;
// selection falls back to the general intent for those.
func (rs *ResponseSet) Validate() error {
	var missing []string
	for _, intent := range builtinIntents {
		for _, sentiment := range builtinSentiments {
			if len(rs.templates[intent][sentiment]) == 0 {
				missing = append(missing, fmt.Sprintf("%s/%s", intent, sentiment))
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("no response template for: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Select picks a template for the pair, falling back first to the general
// intent and then to a stock reply. It never returns an empty string. A nil
// random source selects the first template.
func (rs *ResponseSet) Select(intent Intent, sentiment Sentiment, rng *rand.Rand) string {
	candidates := rs.templates[intent][sentiment]
	if len(candidates) == 0 {
		candidates = rs.templates[IntentGeneral][sentiment]
	}
	if len(candidates) == 0 {
		return fallbackResponse
	}
	if rng == nil {
		return candidates[0]
	}
	return candidates[rng.Intn(len(candidates))]
}

// Count returns the total number of loaded templates.
func (rs *ResponseSet) Count() int {
	n := 0
	for _, bySentiment := range rs.templates {
		for _, list := range bySentiment {
			n += len(list)
		}
	}
	return n
}

// SelectResponse returns a reply template for the detected intent and
// sentiment pair.
func (a *Analyzer) SelectResponse(intent Intent, sentiment Sentiment) string {
	return a.responses.Select(intent, sentiment, a.rng)
}

// ComposeReply builds a complete reply for an analyzed message. The
// selected template is wrapped with an empathetic lead-in when the message
// signals distress. Suicidal ideation takes priority over everything else,
// whatever the sentiment verdict.
func (a *Analyzer) ComposeReply(an Analysis) string {
	base := a.SelectResponse(an.Intent, an.Sentiment)

	if an.Emotion == EmotionSuicidal {
		return fmt.Sprintf("I'm very concerned about what you're saying. %s Please know that you're not alone and there are people who care about you. If you're having thoughts of self-harm, please call a crisis hotline immediately.", base)
	}

	if an.Sentiment == Negative && an.Confidence > 30 {
		switch an.Emotion {
		case EmotionDepression, EmotionLoneliness:
			return fmt.Sprintf("I can sense you're going through a difficult time. %s It's okay to feel this way, and I'm here to listen.", base)
		case EmotionAnxiety:
			return fmt.Sprintf("I understand this might be causing you anxiety. %s Let's work through this together.", base)
		default:
			return fmt.Sprintf("I hear that you're feeling down. %s", base)
		}
	}

	if an.Sentiment == Positive && an.Confidence > 30 {
		return fmt.Sprintf("That's wonderful to hear! %s", base)
	}

	return base
}

var (
	builtinIntents = []Intent{
		IntentHelpRequest, IntentGreeting, IntentGratitude,
		IntentMeditation, IntentSleep, IntentGeneral,
	}
	builtinSentiments = []Sentiment{Positive, Negative, Neutral}
)
