package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/handydiet/internal/app"
)

var (
	configPath string
	prefsPath  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "handydiet",
	Short: "Weekly meal plan viewer",
	Long: `handydiet shows a weekly meal plan served by the diet API.

Run without arguments to open the interactive viewer. The subcommands work
on the same stored choices without a terminal UI.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.RunTUI(cmd.Context(), options())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the diet data file and the static front end",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.RunServe(cmd.Context(), options())
	},
}

var shoppingOpts app.ShoppingOptions

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Print the shopping list for a day or the whole week",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withSession(func(s *app.Session) error {
			return s.Shopping(cmd.Context(), shoppingOpts, cmd.OutOrStdout())
		})
	},
}

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Find dishes and alternatives by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *app.Session) error {
			return s.Search(cmd.Context(), args[0], cmd.OutOrStdout())
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Export the selected alternatives as JSON (\"-\" for stdout)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := app.DefaultExportFile
		if len(args) == 1 {
			path = args[0]
		}
		return withSession(func(s *app.Session) error {
			return s.Export(path, cmd.OutOrStdout())
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace the selected alternatives with an exported file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withSession(func(s *app.Session) error {
			return s.Import(args[0])
		})
	},
}

var resetDayCmd = &cobra.Command{
	Use:   "reset-day DAY",
	Short: "Clear every alternative chosen for a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *app.Session) error {
			return s.ResetDay(cmd.Context(), args[0])
		})
	},
}

var logLines int

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the interactive viewer's log file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Logs(options(), logLines, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/handydiet/config.toml)")
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", "", "viewer preferences path (default ~/.config/handydiet/prefs.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	shoppingCmd.Flags().StringVar(&shoppingOpts.Day, "day", "", "day to list (default first day)")
	shoppingCmd.Flags().BoolVar(&shoppingOpts.Week, "week", false, "list the whole week")
	shoppingCmd.Flags().BoolVar(&shoppingOpts.Grouped, "grouped", false, "group items by category")
	shoppingCmd.MarkFlagsMutuallyExclusive("day", "week")

	logsCmd.Flags().IntVarP(&logLines, "lines", "n", app.DefaultLogLines, "lines to show, -1 for the whole file")

	rootCmd.AddCommand(serveCmd, shoppingCmd, searchCmd, exportCmd, importCmd, resetDayCmd, logsCmd)
}

func options() app.Options {
	return app.Options{ConfigPath: configPath, PrefsPath: prefsPath, Verbose: verbose}
}

// withSession opens a headless session logging to stderr.
func withSession(fn func(*app.Session) error) error {
	s, err := app.Open(options())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	return fn(s)
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "handydiet: %v\n", err)
		return 1
	}
	return 0
}
