// Package cmd implements the aquarium-mcp CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/aquarium-mcp/internal/config"
	"github.com/crystaldolphin/aquarium-mcp/internal/dependency"
	"github.com/crystaldolphin/aquarium-mcp/internal/logging"
)

const version = "0.1.0"
const logo = "🐠"

var (
	configPath string
	logLevel   string
	logJSON    bool

	appConfig *config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:               "aquarium-mcp",
	Short:             logo + " aquarium-mcp: Aquarium CRM tools over MCP and REST",
	Long:              logo + " aquarium-mcp exposes the Aquarium SOAP CRM as MCP tools, REST endpoints and an LLM agent",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "Config file (default "+config.ConfigPath()+")")
	pf.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.BoolVar(&logJSON, "log-json", false, "Log as JSON")

	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(statusCmd)
}

// setup loads the config and installs the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
		cfg.Debug = false
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON = logJSON
	}
	logging.Setup(logging.Options{Level: cfg.LogLevel(), JSON: cfg.Log.JSON})

	appConfig = cfg
	return nil
}

func newContainer() (*dependency.ServiceContainer, error) {
	return dependency.New(appConfig, version)
}

func effectiveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.ConfigPath()
}
