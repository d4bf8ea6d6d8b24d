package main

import (
	"fmt"

	"github.com/serenechat/affect"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check lexicon and response configuration",
	Long: `Validate loads the lexicon and response overlays, compiles every
pattern and confirms that each built-in intent and sentiment pair has at
least one reply template. A missing template is a configuration error that
should be caught here rather than at reply time.

Examples:
  affect validate
  affect --lexicon custom.json --responses replies.yaml validate`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	lexicon, err := affect.LoadLexicon(viper.GetString("lexicon"))
	if err != nil {
		return fmt.Errorf("lexicon invalid: %w", err)
	}

	responses, err := affect.LoadResponses(viper.GetString("responses"))
	if err != nil {
		return fmt.Errorf("responses invalid: %w", err)
	}
	if err := responses.Validate(); err != nil {
		return fmt.Errorf("responses incomplete: %w", err)
	}

	positive, negative := lexicon.PatternCounts()
	log.WithFields(logrus.Fields{
		"emotions":          len(lexicon.EmotionLabels()),
		"intents":           len(lexicon.IntentLabels()),
		"positive_patterns": positive,
		"negative_patterns": negative,
		"templates":         responses.Count(),
	}).Info("configuration valid")

	fmt.Fprintln(cmd.OutOrStdout(), "OK")
	return nil
}
