// ABOUTME: Interactive coaching chat REPL.
// ABOUTME: History is kept in memory for the session only, never persisted.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sehatsense/sehat/internal/models"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Chat with your AI health coach",
	Long: `Start a coaching conversation. The coach knows your profile and gives
practical, India-specific advice.

With a message argument, sends a single message and prints the reply.
Without arguments, starts an interactive session (Ctrl-D to leave).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := requireProfile()
		if err != nil {
			return err
		}
		gw, err := newGateway()
		if err != nil {
			return err
		}

		// Session-only history; dropped when the command exits.
		var history []models.ChatMessage

		send := func(text string) error {
			reply, err := gw.Chat(cmd.Context(), text, p, history)
			if err != nil {
				return describeGatewayError(err)
			}
			history = append(history,
				models.NewChatMessage(models.SenderUser, text),
				models.NewChatMessage(models.SenderAI, reply),
			)
			color.Green("coach: %s", reply)
			return nil
		}

		if len(args) > 0 {
			return send(strings.Join(args, " "))
		}

		color.Cyan("Chatting with your health coach. Ctrl-D to leave.")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("you: ")
			if !scanner.Scan() {
				fmt.Println()
				return scanner.Err()
			}
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			if err := send(text); err != nil {
				// Keep the session alive; the turn simply failed.
				color.Red("%v", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
