package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/saravenpi/parley/internal/chat"
	"github.com/saravenpi/parley/internal/config"
	"github.com/saravenpi/parley/internal/logger"
	"github.com/saravenpi/parley/internal/seed"
	"github.com/saravenpi/parley/internal/ui"
)

const version = "1.0.0"

var (
	configPath      string
	logPath         string
	debugMode       bool
	perConversation bool
)

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "Terminal chat screen with sample conversations",
	Long: `Parley - Terminal Chat Screen

A conversation list, a message thread and a call dialog over built-in sample
data. Nothing leaves the process: messages live in memory and calls never
connect.

Navigation:
  ↑/↓ or j/k        Navigate conversations
  Enter             Open conversation
  /                 Search
  Tab               Switch between list and composer
  Enter or ctrl+s   Send message (while composing)
  ESC               Leave composer or search, back to list on narrow terminals
  alt+a / alt+v     Audio / video call
  alt+1..alt+4      Chats, calls, conference, settings
  h or ESC          Hang up
  q                 Quit from the list
  ctrl+c            Force quit

Config:
  ~/.config/parley/config.toml, or PARLEY_CONFIG, with PARLEY_* env overrides.`,
	Version:       version,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", "", "Debug log file (overrides log.path)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&perConversation, "per-conversation", false, "Keep a separate thread per conversation")
	rootCmd.SetVersionTemplate("Parley v{{.Version}}\n")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// options merges flags over the loaded config.
func options(cmd *cobra.Command, cfg config.Config) config.Config {
	if logPath != "" {
		cfg.Log.Path = logPath
	}
	if cmd.Flags().Changed("debug") {
		cfg.Log.Debug = debugMode
	}
	if cmd.Flags().Changed("per-conversation") {
		cfg.Thread.PerConversation = perConversation
	}
	return cfg
}

func newScreen(cfg config.Config) (ui.ChatScreen, error) {
	data, err := seed.Load()
	if err != nil {
		return ui.ChatScreen{}, fmt.Errorf("failed to load sample data: %w", err)
	}

	state := chat.New(data, chat.Options{
		PerConversationThreads: cfg.Thread.PerConversation,
		SearchFilter:           cfg.UI.SearchFilter,
		SearchMaxDistance:      cfg.UI.SearchMaxDistance,
		TimeFormat:             cfg.UI.TimeFormat,
		Logger:                 logger.Get(),
	})
	return ui.NewChatScreen(state, cfg.UI.NarrowWidth), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	cfg = options(cmd, cfg)

	logger.SetDebug(cfg.Log.Debug)
	if err := logger.Init(cfg.Log.Path); err != nil {
		return err
	}
	defer logger.Close()

	m, err := newScreen(cfg)
	if err != nil {
		return err
	}

	logger.Get().Info("starting",
		"version", version,
		"per_conversation", cfg.Thread.PerConversation,
		"search_filter", cfg.UI.SearchFilter)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
