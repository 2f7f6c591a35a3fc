// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Line-mode chat REPL for nexus-tui.
//
// USABILITY: Markdown-lite rendering and input history for non-TTY friendly use
//
// Runs when the terminal cannot host the full-screen TUI (or --plain is
// set). Provides the same conversation session semantics over a plain
// readline loop.
//
// Interactive Commands (during chat):
//   /help, /h           Show available commands
//   /new, /n            Start a new conversation
//   /list, /l           List conversations
//   /switch N           Switch to conversation N (from /list)
//   /delete N           Delete conversation N (from /list)
//   /status, /s         Show session status
//   /quit, /q           Exit chat
//   Ctrl+C, Ctrl+D      Exit chat
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/nexusai/nexus-tui/internal/config"
	"github.com/nexusai/nexus-tui/internal/model"
	"github.com/nexusai/nexus-tui/internal/nexus"
	"github.com/nexusai/nexus-tui/internal/render"
	"github.com/nexusai/nexus-tui/internal/session"
	"github.com/nexusai/nexus-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	// Prompt style
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	// Welcome banner style
	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)

	// Info style
	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	// Command style
	commandStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	// Warning style
	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)

	// Assistant name style
	assistantStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// InputReader provides input history and line editing for the chat REPL.
// USABILITY: Supports arrow keys for history navigation and line editing.
type InputReader struct {
	line        *liner.State
	historyFile string
}

// NewInputReader creates an InputReader with input history support.
func NewInputReader() *InputReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		// Fallback to temp directory if config dir unavailable
		configDir = os.TempDir()
	}
	historyFile := filepath.Join(configDir, "chat_history")

	r := &InputReader{
		line:        line,
		historyFile: historyFile,
	}
	r.LoadHistory()
	return r
}

// LoadHistory loads input history from file.
func (r *InputReader) LoadHistory() {
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
// Supports history navigation with arrow keys.
func (r *InputReader) ReadInput(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}

	return input, nil
}

// SaveHistory persists input history to file with secure permissions.
func (r *InputReader) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}

	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	r.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (r *InputReader) Close() {
	r.SaveHistory()
	r.line.Close()
}

// =============================================================================
// REPL
// =============================================================================

// REPL is the line-mode chat loop over a conversation session.
type REPL struct {
	ctrl   *session.Controller
	client *nexus.Client
	cfg    *config.Config
	input  *InputReader

	// listing holds the conversation order from the last /list, so that
	// /switch and /delete indexes stay stable between commands.
	listing []*model.Conversation
}

// NewREPL creates the line-mode chat loop.
func NewREPL(ctrl *session.Controller, client *nexus.Client, cfg *config.Config) *REPL {
	return &REPL{
		ctrl:   ctrl,
		client: client,
		cfg:    cfg,
		input:  NewInputReader(),
	}
}

// Run executes the REPL until the user exits.
func (r *REPL) Run(ctx context.Context) error {
	defer r.input.Close()

	r.printWelcome(ctx)

	for {
		input, err := r.input.ReadInput(promptStyle.Render("you> "))
		if err != nil {
			// liner.ErrPromptAborted is Ctrl+C, anything else is EOF
			fmt.Println()
			r.printExitSummary()
			if err == liner.ErrPromptAborted {
				return nil
			}
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			keepGoing, err := r.handleSlashCommand(input)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
			}
			if !keepGoing {
				r.printExitSummary()
				return nil
			}
			continue
		}

		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			r.printExitSummary()
			return nil
		}

		r.processMessage(ctx, input)
	}
}

// =============================================================================
// MESSAGE PROCESSING
// =============================================================================

// processMessage runs one send round trip and prints the assistant reply.
// Failures surface as an in-conversation notice, exactly as in the TUI.
func (r *REPL) processMessage(ctx context.Context, input string) {
	fmt.Println(infoStyle.Render("thinking..."))

	r.ctrl.Send(ctx, input)

	messages := r.ctrl.ActiveMessages()
	if len(messages) == 0 {
		return
	}

	last := messages[len(messages)-1]
	if last.Role != model.RoleAssistant {
		return
	}

	name := assistantStyle.Render(model.RoleAssistant.DisplayName() + ":")
	if last.Content == session.FailureNotice {
		fmt.Printf("%s %s\n\n", name, warningStyle.Render(last.Content))
		return
	}

	fmt.Printf("%s %s\n\n", name, render.Inline(last.Content))
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleSlashCommand dispatches a /command. Returns false to exit the loop.
func (r *REPL) handleSlashCommand(input string) (bool, error) {
	fields := strings.Fields(input)
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "/help", "/h":
		r.printHelp()
		return true, nil

	case "/new", "/n":
		conv := r.ctrl.NewConversation()
		fmt.Println(infoStyle.Render("Started " + conv.GetTitle()))
		return true, nil

	case "/list", "/l":
		r.printConversationList()
		return true, nil

	case "/switch":
		if len(fields) < 2 {
			return true, fmt.Errorf("usage: /switch N (run /list first)")
		}
		conv, err := r.conversationByIndex(fields[1])
		if err != nil {
			return true, err
		}
		r.ctrl.SetActive(conv.ID)
		fmt.Println(infoStyle.Render("Switched to " + conv.GetTitle()))
		return true, nil

	case "/delete":
		if len(fields) < 2 {
			return true, fmt.Errorf("usage: /delete N (run /list first)")
		}
		conv, err := r.conversationByIndex(fields[1])
		if err != nil {
			return true, err
		}
		r.ctrl.Delete(conv.ID)
		r.listing = nil
		fmt.Println(infoStyle.Render("Deleted " + conv.GetTitle()))
		return true, nil

	case "/status", "/s":
		r.printStatus()
		return true, nil

	case "/quit", "/q", "/exit":
		return false, nil

	default:
		return true, fmt.Errorf("unknown command %s (try /help)", cmd)
	}
}

// conversationByIndex resolves a 1-based index from the last /list.
func (r *REPL) conversationByIndex(arg string) (*model.Conversation, error) {
	if r.listing == nil {
		r.listing = r.ctrl.Conversations()
	}

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(r.listing) {
		return nil, fmt.Errorf("no conversation %q (run /list)", arg)
	}
	return r.listing[n-1], nil
}

// =============================================================================
// OUTPUT
// =============================================================================

func (r *REPL) printWelcome(ctx context.Context) {
	fmt.Println(welcomeStyle.Render("NexusAI chat"))
	fmt.Println(infoStyle.Render("Backend: " + r.cfg.Backend.URL))

	if err := r.client.CheckRunning(ctx); err != nil {
		fmt.Println(styles.RenderWarning("backend is not reachable; messages will queue a notice"))
	} else {
		fmt.Println(styles.RenderSuccess("backend online"))
	}

	fmt.Println(infoStyle.Render("Type a message, or /help for commands."))
	fmt.Println()
}

func (r *REPL) printHelp() {
	help := [][2]string{
		{"/help, /h", "Show this help"},
		{"/new, /n", "Start a new conversation"},
		{"/list, /l", "List conversations"},
		{"/switch N", "Switch to conversation N"},
		{"/delete N", "Delete conversation N"},
		{"/status, /s", "Show session status"},
		{"/quit, /q", "Exit chat"},
	}

	fmt.Println(welcomeStyle.Render("Commands:"))
	for _, h := range help {
		fmt.Printf("  %s  %s\n", commandStyle.Render(fmt.Sprintf("%-12s", h[0])), infoStyle.Render(h[1]))
	}
	fmt.Println()
}

func (r *REPL) printConversationList() {
	r.listing = r.ctrl.Conversations()

	if len(r.listing) == 0 {
		fmt.Println(infoStyle.Render("No conversations yet."))
		return
	}

	activeID := r.ctrl.ActiveID()
	for i, conv := range r.listing {
		marker := "  "
		if conv.ID == activeID {
			marker = styles.StatusIndicators.Active + " "
		}
		fmt.Printf("%s%2d. %s (%d messages)\n",
			marker, i+1, conv.GetTitle(), conv.MessageCount())
	}
	fmt.Println()
}

func (r *REPL) printStatus() {
	status := r.ctrl.GetStatus()

	fmt.Println(welcomeStyle.Render("Session status:"))
	fmt.Printf("  %s %s\n", infoStyle.Render("Session:"), status.SessionID)
	fmt.Printf("  %s %s\n", infoStyle.Render("Uptime:"), status.Duration.Round(time.Second).String())
	fmt.Printf("  %s %d\n", infoStyle.Render("Conversations:"), status.Conversations)
	fmt.Println()
}

func (r *REPL) printExitSummary() {
	status := r.ctrl.GetStatus()
	fmt.Println(infoStyle.Render(fmt.Sprintf(
		"Goodbye. %d conversation(s) this session.", status.Conversations)))
}
