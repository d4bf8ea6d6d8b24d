package main

import (
	"fmt"

	"github.com/serenechat/affect"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logrus.New()

// Persistent flags shared by every subcommand.
var (
	lexiconPath   string
	responsesPath string
	randomSeed    int64
	verbose       bool
)

// rootCmd is the base command for the affect CLI.
var rootCmd = &cobra.Command{
	Use:   "affect",
	Short: "Classify wellness-chat messages and grade crisis risk",
	Long: `Affect scores chat messages for sentiment, emotion and intent, grades
crisis risk on a 0-5 scale and suggests reply templates.

Lexicon keywords and reply templates can be replaced without rebuilding:
point --lexicon at a JSON overlay and --responses at a YAML template file.
Every flag can also be set through the environment with an AFFECT_ prefix,
for example AFFECT_LEXICON=custom.json.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the CLI and returns the first command error.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", "", "Path to a JSON lexicon overlay")
	rootCmd.PersistentFlags().StringVar(&responsesPath, "responses", "", "Path to a YAML response template file")
	rootCmd.PersistentFlags().Int64Var(&randomSeed, "seed", 0, "Random seed for reply selection (0 uses the clock)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	viper.SetEnvPrefix("AFFECT")
	viper.AutomaticEnv()
	viper.BindPFlag("lexicon", rootCmd.PersistentFlags().Lookup("lexicon"))
	viper.BindPFlag("responses", rootCmd.PersistentFlags().Lookup("responses"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
}

// buildAnalyzer assembles an analyzer from the persistent flags, loading
// any lexicon and response overlays first.
func buildAnalyzer() (*affect.Analyzer, error) {
	lexicon, err := affect.LoadLexicon(viper.GetString("lexicon"))
	if err != nil {
		return nil, fmt.Errorf("error loading lexicon: %w", err)
	}

	responses, err := affect.LoadResponses(viper.GetString("responses"))
	if err != nil {
		return nil, fmt.Errorf("error loading responses: %w", err)
	}

	opts := []affect.Option{
		affect.UsingLexicon(lexicon),
		affect.UsingResponses(responses),
	}
	if seed := viper.GetInt64("seed"); seed != 0 {
		opts = append(opts, affect.WithSeed(seed))
	}

	log.WithFields(logrus.Fields{
		"lexicon":   viper.GetString("lexicon"),
		"responses": viper.GetString("responses"),
	}).Debug("building analyzer")

	return affect.NewAnalyzer(opts...)
}
