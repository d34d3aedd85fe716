// Package ask runs grounded Q&A over an indexed playlist.
package ask

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"yt-digest/internal/app"
	"yt-digest/internal/app/chat"
	"yt-digest/internal/app/model"
)

var (
	playlistID     string
	conversationID string
)

func init() {
	Cmd.Flags().StringVarP(&playlistID, "playlist", "p", "", "playlist id to ask about (required for a new conversation)")
	Cmd.Flags().StringVarP(&conversationID, "conversation", "c", "", "continue an existing conversation")
}

// Cmd represents the ask command
var Cmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question grounded in a playlist's transcripts",
	Long: `Ask a question grounded in a playlist's transcripts

The question is rewritten against the conversation history, matched against
the playlist's chunk index, and answered strictly from the retrieved excerpts
with video and timestamp citations. Without a question argument an
interactive session starts; each turn stays in the same conversation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := cmd.Root().PersistentFlags()
		development, _ := root.GetBool("verbose")
		mock, _ := root.GetBool("mock")
		enginePath, _ := root.GetString("engine-config")

		a, err := app.InitializeApp(cmd.Context(), app.Options{
			Development: development,
			EnginePath:  enginePath,
			Mock:        mock,
		})
		if err != nil {
			return err
		}
		defer a.Close()

		if len(args) > 0 {
			return askOnce(cmd, a, strings.Join(args, " "))
		}
		return interactive(cmd, a)
	},
}

func askOnce(cmd *cobra.Command, a *app.App, question string) error {
	resp, err := a.Chat.Ask(cmd.Context(), chat.Request{
		ConversationID: conversationID,
		PlaylistID:     playlistID,
		Question:       question,
	})
	if err != nil {
		return err
	}
	conversationID = resp.ConversationID

	fmt.Println(resp.Answer)
	printSources(resp.Sources)
	fmt.Fprintf(os.Stderr, "conversation: %s\n", resp.ConversationID)
	return nil
}

func interactive(cmd *cobra.Command, a *app.App) error {
	fmt.Fprintln(os.Stderr, "interactive session; empty line or Ctrl-D ends it")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprint(os.Stderr, "> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			break
		}
		if err := askOnce(cmd, a, question); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func printSources(sources []model.SearchResult) {
	if len(sources) == 0 {
		return
	}
	fmt.Println("\nsources:")
	for _, s := range sources {
		meta := s.Chunk.Metadata
		fmt.Printf("  [%s @ %s] %s (score %.3f)\n",
			meta.VideoID, model.Timestamp(meta.StartTime), meta.VideoTitle, s.Score)
	}
}
