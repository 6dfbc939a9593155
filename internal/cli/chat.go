package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DSado88/Grocery/internal/core/chat"
)

// Shown when the session dies and conversation context is lost. The
// user's message was not delivered and must be resent.
const sessionDeathNotice = "[Session died - respawning fresh session. Please resend your last message.]"

func (a *App) newChatCommand() *cobra.Command {
	var model string
	var once bool

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Chat with Cart Blanche (assistant + household context)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := ""
			if len(args) > 0 {
				initial = args[0]
			}
			if err := a.runChat(cmd.Context(), initial, model, once); err != nil {
				return errors.New(formatUserFacingError(err))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "model override")
	cmd.Flags().BoolVar(&once, "once", false, "single turn: print response and exit (no REPL)")

	return cmd
}

// formatUserFacingError adds actionable guidance for spawn failures;
// everything else passes through unchanged.
func formatUserFacingError(err error) string {
	var spawnErr *chat.SpawnError
	if errors.As(err, &spawnErr) {
		return fmt.Sprintf(
			"Failed to start the assistant: %v\nIs 'claude' installed and in your PATH?\nInstall from: https://claude.ai/download",
			spawnErr.Err,
		)
	}
	return err.Error()
}

func (a *App) newChatProvider() chat.Provider {
	if a.cfg.Chat.Provider == "openrouter" {
		return chat.NewOpenRouterProvider(a.cfg.Chat.APIKey, a.cfg.Chat.Model, a.cfg.Chat.MaxTokens)
	}
	return chat.NewClaudeProvider()
}

func (a *App) chatOptions(systemContext, model string) chat.Options {
	if model == "" {
		model = a.cfg.Chat.Model
	}
	return chat.Options{
		AppendSystemPrompt: systemContext,
		Model:              model,
		MaxTurns:           a.cfg.Chat.MaxTurns,
		AllowedTools:       []string{"Read", "Grep", "Glob"},
	}
}

func (a *App) runChat(ctx context.Context, initialMessage, model string, once bool) error {
	household, err := a.loadHousehold()
	if err != nil {
		return err
	}
	collection, err := a.loadCollection()
	if err != nil {
		return err
	}

	householdContext := chat.BuildHouseholdContext(household, collection, a.cfg.Data.Dir)
	opts := a.chatOptions(householdContext, model)
	provider := a.newChatProvider()

	if once {
		prompt := initialMessage
		if prompt == "" {
			prompt = "What can you help me with?"
		}
		return a.runSingleTurn(ctx, provider, opts, prompt)
	}

	fmt.Fprintln(os.Stderr, "Cart Blanche REPL (type 'quit' to exit)")
	fmt.Fprintln(os.Stderr)

	fmt.Fprintln(os.Stderr, "Warming up assistant session...")
	assistant, err := chat.NewAssistant(ctx, provider, opts)
	if err != nil {
		return err
	}
	defer assistant.Close()
	assistant.OnRespawn = func() {
		fmt.Fprintln(os.Stderr, sessionDeathNotice)
	}
	fmt.Fprintln(os.Stderr, "Ready.")
	fmt.Fprintln(os.Stderr)

	if initialMessage != "" {
		fmt.Fprintf(os.Stderr, "you> %s\n", initialMessage)
		if err := a.sendAndStream(ctx, assistant, initialMessage); err != nil {
			return err
		}
		fmt.Println()
	}

	return a.replLoop(ctx, assistant)
}

func (a *App) runSingleTurn(ctx context.Context, provider chat.Provider, opts chat.Options, prompt string) error {
	session, err := provider.NewSession(ctx, opts)
	if err != nil {
		return err
	}
	defer session.Close()

	chunks, err := session.Send(ctx, prompt)
	if err != nil {
		return err
	}
	_, err = streamToStdout(chunks)
	return err
}

func (a *App) replLoop(ctx context.Context, assistant *chat.Assistant) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprint(os.Stderr, "you> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				fmt.Fprintf(os.Stderr, "[Input error: %v. Try again.]\n", err)
				scanner = bufio.NewScanner(os.Stdin)
				continue
			}
			// EOF (ctrl-d)
			fmt.Fprintln(os.Stderr, "Goodbye!")
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "quit") || strings.EqualFold(line, "exit") {
			fmt.Fprintln(os.Stderr, "Goodbye!")
			return nil
		}

		if err := a.sendAndStream(ctx, assistant, line); err != nil {
			return err
		}
		fmt.Println()
	}
}

// sendAndStream delivers one message and prints the response. Session
// death (on send or mid-stream) respawns via the assistant and asks
// the user to resend; it is not a fatal error.
func (a *App) sendAndStream(ctx context.Context, assistant *chat.Assistant, message string) error {
	chunks, err := assistant.Send(ctx, message)
	if err != nil {
		if errors.Is(err, chat.ErrSessionDead) {
			return nil
		}
		return err
	}

	hadText, err := streamToStdout(chunks)
	if err != nil {
		if errors.Is(err, chat.ErrSessionDead) {
			if hadText {
				fmt.Println()
			}
			return assistant.RecoverStream(ctx)
		}
		return err
	}
	return nil
}

// streamToStdout prints text chunks as they arrive and result metadata
// to stderr. Reports whether any text was printed.
func streamToStdout(chunks <-chan chat.Chunk) (bool, error) {
	hadText := false
	for chunk := range chunks {
		if chunk.Err != nil {
			return hadText, chunk.Err
		}
		if chunk.Text != "" {
			fmt.Print(chunk.Text)
			hadText = true
		}
		if chunk.Final {
			if hadText {
				fmt.Println()
			}
			if chunk.NumTurns > 0 {
				fmt.Fprintf(os.Stderr, "[$%.4f | %.1fs | %d turns]\n",
					chunk.CostUSD, float64(chunk.DurationMS)/1000.0, chunk.NumTurns)
			}
		}
	}
	return hadText, nil
}
