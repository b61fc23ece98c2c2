// Command tabiew is a terminal explorer for tabular data files: CSV, TSV,
// fixed-width text, JSON, JSON Lines, Parquet, Arrow IPC, and SQLite
// databases. Each file given on the command line is imported into its own
// tab, queryable with SQL against the whole catalog.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tabiew-go/tabiew/internal/action"
	"github.com/tabiew-go/tabiew/internal/catalog"
	"github.com/tabiew-go/tabiew/internal/config"
	"github.com/tabiew-go/tabiew/internal/sqlengine"
	"github.com/tabiew-go/tabiew/internal/theme"
	"github.com/tabiew-go/tabiew/internal/tracelog"
	"github.com/tabiew-go/tabiew/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		separatorFlag string
		noHeaderFlag  bool
		configFlag    string
		traceFlag     string
	)

	rootCmd := &cobra.Command{
		Use:   "tabiew [files...]",
		Short: "A terminal tabular data explorer",
		Long: `tabiew imports one or more tabular data files into a single
session and lets you browse, search, and query them with SQL.

Examples:
  tabiew data.csv                  # browse a single CSV
  tabiew a.csv b.parquet c.json    # each file gets its own tab
  tabiew --no-header raw.csv       # first row is data, not a header`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			var err error
			if configFlag != "" {
				cfg, err = config.Load(configFlag)
			} else {
				cfg, err = config.LoadDefault()
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not load config: %v\n", err)
				cfg = config.DefaultConfig()
			}
			if t := theme.Get(cfg.Theme); t != nil {
				theme.Current = t
			}

			configPath := configFlag
			if configPath == "" {
				if dir, err := config.ConfigDir(); err == nil {
					configPath = filepath.Join(dir, "config.yaml")
				}
			}

			var trace *tracelog.Logger
			if traceFlag != "" {
				trace, err = tracelog.New(traceFlag, 10)
				if err != nil {
					fmt.Fprintf(os.Stderr, "warning: could not open trace log: %v\n", err)
				}
			}
			if trace != nil {
				defer trace.Close()
			}

			cat := catalog.New(sqlengine.New())
			model := tui.New(cat, cfg, configPath, trace)

			imports := importActionsFor(args, separatorFlag, !noHeaderFlag)

			p := tea.NewProgram(model, tea.WithAltScreen())

			for _, act := range imports {
				act := act
				go func() { p.Send(act) }()
			}

			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running tabiew: %w", err)
			}
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&separatorFlag, "separator", "s", ",", "field separator for CSV/TSV files")
	rootCmd.Flags().BoolVar(&noHeaderFlag, "no-header", false, "treat the first row of delimited files as data, not a header")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "config file path")
	rootCmd.Flags().StringVar(&traceFlag, "trace", "", "write an action trace log to this path")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tabiew %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// importActionsFor maps each file path to an action.Action chosen by file
// extension, the dispatch loop's only import-time heuristic: everything else
// about the file (delimiter, header) is passed through unchanged from flags.
func importActionsFor(paths []string, separator string, hasHeader bool) []action.Action {
	sep := ','
	if len(separator) > 0 {
		sep = rune(separator[0])
	}

	var acts []action.Action
	for _, p := range paths {
		acts = append(acts, importActionFor(p, sep, hasHeader))
	}
	return acts
}

func importActionFor(path string, separator rune, hasHeader bool) action.Action {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv":
		return action.ImportCSV{Path: path, Separator: '\t', Quote: '"', HasHeader: hasHeader}
	case ".json":
		return action.ImportJSON{Path: path}
	case ".jsonl", ".ndjson":
		return action.ImportJSONLines{Path: path}
	case ".parquet":
		return action.ImportParquet{Path: path}
	case ".arrow", ".ipc":
		return action.ImportArrow{Path: path}
	case ".sqlite", ".sqlite3", ".db":
		return action.ImportSQLite{Path: path}
	default:
		return action.ImportCSV{Path: path, Separator: separator, Quote: '"', HasHeader: hasHeader}
	}
}
