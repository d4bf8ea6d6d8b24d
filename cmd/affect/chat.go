package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/serenechat/affect"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var chatTranscript string

// transcriptEntry is one JSONL line in a saved chat transcript. The
// embedded message keeps the format readable by the trend command, which
// ignores the id fields.
type transcriptEntry struct {
	affect.Message
	ID             string `json:"id"`
	ConversationID string `json:"conversation_id"`
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Hold an interactive conversation",
	Long: `Chat reads messages from standard input and replies in a loop. Each
message is classified, graded for crisis risk and answered with a template
matched to its intent and sentiment. Once enough user messages accumulate,
a running trend summary is printed after each reply.

Type "exit" or press Ctrl-D to end the session.

Examples:
  affect chat
  affect chat --transcript session.jsonl
  affect --seed 42 chat`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVarP(&chatTranscript, "transcript", "t", "", "Append the conversation to a JSONL transcript file")
}

func runChat(cmd *cobra.Command, args []string) error {
	analyzer, err := buildAnalyzer()
	if err != nil {
		return err
	}

	var transcript *json.Encoder
	if chatTranscript != "" {
		file, err := os.OpenFile(chatTranscript, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("error opening transcript: %w", err)
		}
		defer file.Close()
		transcript = json.NewEncoder(file)
	}

	conversationID := uuid.NewString()
	log.WithField("conversation_id", conversationID).Debug("starting chat session")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Hello! How are you feeling today? (type \"exit\" to end)")

	var history []affect.Message
	minMessages := viper.GetInt("min_messages")
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" {
			break
		}

		analysis := analyzer.Analyze(text)
		crisis := analyzer.AssessCrisis(analysis.Classification)
		reply := analyzer.ComposeReply(analysis)

		if crisis.Flag != affect.FlagNone {
			log.WithFields(logrus.Fields{
				"level":   crisis.Level,
				"flag":    crisis.Flag,
				"factors": strings.Join(crisis.Factors, "; "),
			}).Warn("crisis indicators detected")
		}

		userMsg := affect.Message{
			Role:           affect.RoleUser,
			Content:        text,
			Classification: analysis.Classification,
		}
		botMsg := affect.Message{
			Role:    affect.RoleBot,
			Content: reply,
		}
		history = append(history, userMsg, botMsg)

		if transcript != nil {
			for _, msg := range []affect.Message{userMsg, botMsg} {
				entry := transcriptEntry{
					Message:        msg,
					ID:             uuid.NewString(),
					ConversationID: conversationID,
				}
				if err := transcript.Encode(entry); err != nil {
					return fmt.Errorf("error writing transcript: %w", err)
				}
			}
		}

		fmt.Fprintf(out, "bot> %s\n", reply)

		if trend := analyzer.Aggregate(history); trend.TotalMessages >= minMessages {
			fmt.Fprintf(out, "     [trend: %s]\n", trend.Summary())
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	fmt.Fprintln(out, "Take care of yourself. I'm here whenever you want to talk.")
	return nil
}
