package main

import (
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/serenechat/affect"
	"github.com/spf13/cobra"
)

var classifyFile string

// classifyOutput is the JSON document printed for one classified message.
type classifyOutput struct {
	Analysis affect.Analysis         `json:"analysis"`
	Crisis   affect.CrisisAssessment `json:"crisis"`
	Reply    string                  `json:"reply"`
}

var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Classify a single message",
	Long: `Classify scores one message and prints the full analysis as JSON:
the sentiment, emotion and intent verdict, the per-signal scorer evidence,
the crisis assessment and a suggested reply.

Examples:
  affect classify "I feel anxious about tomorrow"
  affect classify --file message.txt
  affect --lexicon custom.json classify "everything is too much"`,
	Args: cobra.ArbitraryArgs,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVarP(&classifyFile, "file", "f", "", "Read the message text from a file")
}

func runClassify(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if classifyFile != "" {
		data, err := os.ReadFile(classifyFile)
		if err != nil {
			return err
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return errors.New("no text to classify: pass it as an argument or with --file")
	}

	analyzer, err := buildAnalyzer()
	if err != nil {
		return err
	}

	analysis := analyzer.Analyze(text)
	output := classifyOutput{
		Analysis: analysis,
		Crisis:   analyzer.AssessCrisis(analysis.Classification),
		Reply:    analyzer.ComposeReply(analysis),
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
