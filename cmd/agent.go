package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/aquarium-mcp/internal/agent"
	"github.com/crystaldolphin/aquarium-mcp/internal/shared/cmdutils"
)

var (
	agentMessage string
	agentSession string
	agentMCPURL  string
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Chat with the Aquarium assistant",
	RunE:  runAgent,
}

func init() {
	agentCmd.Flags().StringVarP(&agentMessage, "message", "m", "", "Send a single message and exit")
	agentCmd.Flags().StringVarP(&agentSession, "session", "s", "cli:direct", "Session ID; history is kept across runs")
	agentCmd.Flags().StringVar(&agentMCPURL, "mcp-url", "", "Use the tools of a remote MCP server, e.g. http://localhost:8000/mcp")
}

var exitCommands = map[string]bool{
	"exit":  true,
	"quit":  true,
	"/exit": true,
	"/quit": true,
	":q":    true,
}

func runAgent(_ *cobra.Command, _ []string) error {
	if agentMCPURL != "" {
		appConfig.Agent.MCPURL = agentMCPURL
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := newContainer()
	if err != nil {
		return err
	}
	factory, closeTools, err := container.AgentFactory(ctx)
	if err != nil {
		return err
	}
	defer closeTools()

	sessions, err := container.Sessions()
	if err != nil {
		return err
	}
	sess := sessions.GetOrCreate(agentSession)

	a := factory.NewAgent()
	a.Restore(sess.History())
	save := func() {
		sess.Replace(a.History())
		if err := sessions.Save(sess); err != nil {
			slog.Warn("Failed to save session", "key", sess.Key, "error", err)
		}
	}

	if agentMessage != "" {
		return runSingleMessage(ctx, a, save)
	}
	return runInteractive(ctx, a, save)
}

// runSingleMessage sends one message to the agent and prints the response.
func runSingleMessage(ctx context.Context, a *agent.Agent, save func()) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	fmt.Fprintf(os.Stderr, "  ↳ thinking...\n")
	cmdutils.PrintResponse(a.Process(ctx, agentMessage, printProgress))
	save()
	return nil
}

// runInteractive starts the REPL loop: reads lines from stdin and answers
// each before prompting again.
func runInteractive(ctx context.Context, a *agent.Agent, save func()) error {
	fmt.Printf("%s Interactive mode (type 'exit' or Ctrl+C to quit, '/new' to start over)\n\n", logo)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		fmt.Print("You: ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Println("\nGoodbye!")
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Println("\nGoodbye!")
				return nil
			}
			line = strings.TrimSpace(l)
		}

		switch {
		case line == "":
			continue
		case exitCommands[strings.ToLower(line)]:
			fmt.Println("Goodbye!")
			return nil
		case line == "/new":
			a.Reset()
			save()
			fmt.Println("New conversation started.")
			continue
		}

		cmdutils.PrintResponse(a.Process(ctx, line, printProgress))
		save()
	}
}

func printProgress(tool string) {
	fmt.Printf("  ↳ %s\n", tool)
}
