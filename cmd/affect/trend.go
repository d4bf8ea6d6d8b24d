package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/serenechat/affect"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var trendSummary bool

var trendCmd = &cobra.Command{
	Use:   "trend <transcript>",
	Short: "Aggregate a saved transcript into a conversation trend",
	Long: `Trend reads a transcript saved by the chat command, one JSON message
per line, and folds the user messages into sentiment and emotion
distributions, dominant labels and confidence statistics.

Examples:
  affect trend session.jsonl
  affect trend --summary session.jsonl
  affect trend --min-messages 5 session.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runTrend,
}

func init() {
	rootCmd.AddCommand(trendCmd)

	trendCmd.Flags().BoolVar(&trendSummary, "summary", false, "Print a one-line summary instead of JSON")
	trendCmd.Flags().Int("min-messages", 3, "Minimum user messages required for a trend")
	viper.BindPFlag("min_messages", trendCmd.Flags().Lookup("min-messages"))
	viper.SetDefault("min_messages", 3)
}

func runTrend(cmd *cobra.Command, args []string) error {
	messages, err := readTranscript(args[0])
	if err != nil {
		return err
	}

	analyzer, err := buildAnalyzer()
	if err != nil {
		return err
	}

	trend := analyzer.Aggregate(messages)
	minMessages := viper.GetInt("min_messages")
	if trend.TotalMessages < minMessages {
		return fmt.Errorf("need at least %d user messages for a trend, got %d", minMessages, trend.TotalMessages)
	}

	if trendSummary {
		fmt.Fprintln(cmd.OutOrStdout(), trend.Summary())
		return nil
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(trend)
}

// readTranscript loads a JSONL transcript, skipping blank lines.
func readTranscript(path string) ([]affect.Message, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening transcript: %w", err)
	}
	defer file.Close()

	var messages []affect.Message
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var msg affect.Message
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			return nil, fmt.Errorf("error parsing transcript line %d: %w", line, err)
		}
		messages = append(messages, msg)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading transcript: %w", err)
	}
	return messages, nil
}
