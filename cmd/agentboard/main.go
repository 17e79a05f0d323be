package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentboard/agentboard/client"
	"github.com/agentboard/agentboard/internal/config"
	"github.com/agentboard/agentboard/internal/tui"
	"github.com/agentboard/agentboard/session"
)

var version = "dev"

var (
	flagServer string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:          "agentboard",
	Short:        "Terminal dashboard for agent task briefs",
	Long:         "agentboard tracks tasks derived from your project briefs and lets you review or delete them.",
	SilenceUsage: true,
	RunE:         run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the agentboard version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("agentboard", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "dump HTTP traffic to the log")
	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	dir, err := config.DefaultDir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	if flagServer != "" {
		cfg.ServerURL = flagServer
	}
	if flagDebug {
		cfg.Debug = true
	}

	logFile, err := os.OpenFile(
		filepath.Join(dir, "agentboard.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600,
	)
	logger := zerolog.Nop()
	if err == nil {
		defer logFile.Close()
		logger = zerolog.New(logFile).With().Timestamp().Logger()
	}

	store := session.NewStore(dir)
	c, err := client.New(cfg.ServerURL, store,
		client.WithHTTPTimeout(time.Duration(cfg.HTTPTimeoutSeconds)*time.Second),
		client.WithDebugLogging(cfg.Debug),
		client.WithLogger(logger),
		client.FromEnv(),
	)
	if err != nil {
		return err
	}

	// Quick reachability probe; the UI copes with an absent server, this
	// just shortens the first feedback loop when it is booting.
	probeCtx, cancel := context.WithTimeout(cmd.Context(), 3*time.Second)
	if err := c.WaitForServer(probeCtx); err != nil {
		logger.Warn().Err(err).Str("server", cfg.ServerURL).Msg("server not reachable at startup")
	}
	cancel()

	p := tea.NewProgram(tui.NewModel(c, store), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
