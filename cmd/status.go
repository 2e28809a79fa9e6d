package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show aquarium-mcp status",
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfgPath := effectiveConfigPath()
	cfg := appConfig

	fmt.Printf("%s aquarium-mcp Status\n\n", logo)

	_, statErr := os.Stat(cfgPath)
	fmt.Printf("Config:    %s %s\n", cfgPath, mark(statErr == nil))
	fmt.Printf("Env:       %s (debug %v)\n\n", cfg.AppEnv, cfg.Debug)

	fmt.Println("Aquarium:")
	if cfg.Aquarium.Configured() {
		fmt.Printf("  Endpoint  ✓ %s\n", cfg.Aquarium.Endpoint)
	} else {
		fmt.Println("  Endpoint  (not set)")
	}
	fmt.Printf("  Username  %s\n", orNotSet(cfg.Aquarium.Username))
	fmt.Printf("  Timeout   %s\n\n", cfg.Aquarium.Timeout())

	fmt.Println("Server:")
	fmt.Printf("  Listen    %s:%d\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("  Public    %s\n\n", orNotSet(cfg.Server.PublicURL))

	fmt.Println("Agent:")
	fmt.Printf("  Model     %s\n", cfg.Agent.Model)
	fmt.Printf("  API key   %s\n", mark(cfg.Agent.APIKey != ""))
	if cfg.Agent.APIBase != "" {
		fmt.Printf("  API base  %s\n", cfg.Agent.APIBase)
	}
	if cfg.Agent.MCPURL != "" {
		fmt.Printf("  MCP URL   %s (timeout %s)\n", cfg.Agent.MCPURL, cfg.Agent.MCPTimeout())
	}

	container, err := newContainer()
	if err != nil {
		return err
	}
	sessions, err := container.Sessions()
	if err != nil {
		fmt.Printf("\nSessions:  %s\n", mark(false))
		return nil
	}
	list := sessions.ListSessions()
	fmt.Printf("\nSessions:  %d\n", len(list))
	if len(list) > 0 {
		fmt.Printf("  Latest    %s (%s)\n", list[0].Key, list[0].UpdatedAt)
	}
	return nil
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
