package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/pluqqy/usernamer/cmd/commands"
	"github.com/pluqqy/usernamer/internal/cli"
	"github.com/pluqqy/usernamer/pkg/clipboard"
	"github.com/pluqqy/usernamer/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	configPath string
	quiet      bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "usernamer",
	Short: "Generate usernames from a seed word in your terminal",
	Long: `Usernamer asks a generative text model for usernames built around a seed word.
Pick a category and whether the seed word comes first, mark favorites, copy
names to the clipboard and run a simulated availability check.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor)
		if noColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := cli.NewCommandContext(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		defer ctx.Close()

		gen, err := ctx.BuildGenerator()
		if err != nil {
			return err
		}

		deps := tui.Dependencies{
			Generator:      gen,
			Checker:        ctx.BuildChecker(),
			Clipboard:      clipboard.System{},
			Logger:         ctx.Logger,
			RequestTimeout: ctx.Settings.RequestTimeout,
			CopyReset:      ctx.Settings.CopyReset,
		}
		if clipboard.Unsupported() {
			ctx.Logger.Warn("system clipboard not available; copies stay in memory")
			deps.Clipboard = &clipboard.Memory{}
			deps.Status = "Clipboard not available on this system; copied names are kept in memory only"
		}
		if ctx.Settings.APIKey == "" {
			cli.PrintWarning("no API key configured; generation will fail")
			deps.Status = "No API key configured; set USERNAMER_API_KEY or GEMINI_API_KEY"
		}

		app := tui.NewApp(deps)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			ctx.Logger.Error("tui exited with error", "error", err)
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Usernamer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Usernamer version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $HOME/.config/usernamer/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewGenerateCommand(nil))
	rootCmd.AddCommand(commands.NewCategoriesCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
