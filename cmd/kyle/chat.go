package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Ask Kyle a single question",
	Long:  "Send one message to the assistant. The CLI holds no conversation history; multi-turn context belongs to callers that keep their own window, such as the web UI.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	a, err := newAssistant(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	reply, err := a.Chat(cmd.Context(), nil, strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}
