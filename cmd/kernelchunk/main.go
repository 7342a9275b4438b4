package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"kernelchunk/internal/deck"
	"kernelchunk/internal/ui"
)

var (
	verbose bool

	logger *zap.Logger
)

// rootCmd launches the interactive two-pane window.
var rootCmd = &cobra.Command{
	Use:   "kernelchunk",
	Short: "Split kernel decks into clipboard-sized chunks",
	Long: `kernelchunk splits a kernel deck JSON document into an ordered
sequence of chunks so each can be copied to the clipboard one at a time
and pasted into another tool.

Run without arguments for the interactive window; use "split" for a
one-shot headless run.`,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWindow()
	},
}

// splitCmd chunks a deck file without a terminal UI.
var splitCmd = &cobra.Command{
	Use:   "split [deck-file]",
	Short: "Chunk a deck and print each chunk to stdout",
	Long: `Reads a kernel deck from the given file (or stdin when omitted),
derives the chunk sequence, and prints each chunk as pretty-printed JSON
separated by "---" lines.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// The interactive window logs to a file instead; see runWindow.
		if cmd == rootCmd {
			return nil
		}
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	}
}

func runWindow() error {
	set, err := ui.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// Log to a file so output never corrupts the alternate screen.
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{set.LogFile}
	config.ErrorOutputPaths = []string{set.LogFile}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	windowLogger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer windowLogger.Sync()

	windowLogger.Info("starting interactive window")
	p := tea.NewProgram(ui.New(windowLogger, set), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("window error: %w", err)
	}
	return nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	var raw []byte
	var err error
	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read deck: %w", err)
		}
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	res, err := deck.Parse(string(raw))
	if err != nil {
		return err
	}
	logger.Debug("deck parsed", zap.Int("chunks", len(res.Chunks)))

	out := cmd.OutOrStdout()
	for i, chunk := range res.Chunks {
		if i > 0 {
			fmt.Fprintln(out, "---")
		}
		text, err := deck.EncodeChunk(chunk)
		if err != nil {
			return fmt.Errorf("failed to encode chunk %d: %w", i, err)
		}
		fmt.Fprintln(out, text)
	}
	return nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(splitCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
