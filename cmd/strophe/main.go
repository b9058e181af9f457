// Package main provides the CLI entrypoint for strophe.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/strophe/internal/analysis"
	"github.com/verte-zerg/strophe/internal/config"
	"github.com/verte-zerg/strophe/internal/lexicon"
	"github.com/verte-zerg/strophe/internal/model"
	"github.com/verte-zerg/strophe/internal/report"
	"github.com/verte-zerg/strophe/internal/store"
	"github.com/verte-zerg/strophe/internal/tui"
)

var (
	analyzeOutput  string
	analyzeVerbose bool
	analyzeSave    bool
	analyzePosPath string
	analyzeNegPath string

	historySource string
	historySince  string
	historyLast   int

	lexiconForce bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "strophe [file]",
		Short:         "Heuristic poem analyzer",
		Long:          "Analyze a poem's meter, rhyme scheme, literary devices, and sentiment.\nWith a file argument the analysis is printed once; without one an\ninteractive composer opens.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runAnalyzeCmd,
	}

	rootCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "write a TOML dump of the analysis to this path")
	rootCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "show all detected devices instead of a preview")
	rootCmd.Flags().BoolVar(&analyzeSave, "save", false, "record the analysis in history")
	rootCmd.Flags().StringVar(&analyzePosPath, "positive", "", "path to a positive lexicon file")
	rootCmd.Flags().StringVar(&analyzeNegPath, "negative", "", "path to a negative lexicon file")

	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLexiconCmd())

	return rootCmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "positive", &analyzePosPath, fileCfg.Analysis.PositiveLexicon)
	applyStringConfig(cmd, "negative", &analyzeNegPath, fileCfg.Analysis.NegativeLexicon)
	applyBoolConfig(cmd, "verbose", &analyzeVerbose, fileCfg.Report.Verbose)

	lex, err := buildLexicon(analyzePosPath, analyzeNegPath)
	if err != nil {
		return err
	}
	analyzer := analysis.New(lex)

	if len(args) == 0 {
		return runComposer(analyzer)
	}

	path := args[0]
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read poem: %w", err)
	}
	result, err := analyzer.Analyze(string(raw))
	if err != nil {
		return err
	}

	if analyzeOutput != "" {
		if err := report.WriteAnalysis(analyzeOutput, result); err != nil {
			return err
		}
		logErrf("Analysis saved to %s\n", analyzeOutput)
	}
	if analyzeOutput == "" || analyzeVerbose {
		if err := report.RenderAnalysis(cmd.OutOrStdout(), result, analyzeVerbose); err != nil {
			return fmt.Errorf("failed to render analysis: %w", err)
		}
	}

	if analyzeSave {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		rec := analysis.Summarize(string(raw), path, result, time.Now())
		if _, err := st.InsertAnalysis(context.Background(), rec); err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
		logErrln("Saved to history.")
	}
	return nil
}

func runComposer(analyzer *analysis.Analyzer) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open db, saving disabled: %v\n", err)
		st = nil
	} else {
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}

	m := tui.NewModel(analyzer, st, analyzeVerbose)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func buildLexicon(posPath, negPath string) (lexicon.Lexicon, error) {
	lex := lexicon.Default()
	if posPath != "" {
		set, err := lexicon.Load(posPath)
		if err != nil {
			return lexicon.Lexicon{}, fmt.Errorf("failed to load positive lexicon: %w", err)
		}
		lex.Positive = set
	}
	if negPath != "" {
		set, err := lexicon.Load(negPath)
		if err != nil {
			return lexicon.Lexicon{}, fmt.Errorf("failed to load negative lexicon: %w", err)
		}
		lex.Negative = set
	}
	return lex, nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past analyses",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySource, "source", "", "source filter (file path or \"interactive\")")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N analyses")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.HistoryConfig{
		Source: historySource,
		Since:  sinceTime,
		Last:   historyLast,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	records, err := report.BuildHistory(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if err := report.RenderHistory(cmd.OutOrStdout(), records, report.TerminalWidth()); err != nil {
		return fmt.Errorf("failed to render history: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLexiconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Manage sentiment lexicons",
	}
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the built-in lexicons to editable files",
		Args:  cobra.NoArgs,
		RunE:  runLexiconExportCmd,
	}
	exportCmd.Flags().BoolVar(&lexiconForce, "force", false, "overwrite existing files")
	cmd.AddCommand(exportCmd)
	return cmd
}

func runLexiconExportCmd(_ *cobra.Command, _ []string) error {
	lex := lexicon.Default()
	exports := []struct {
		name string
		set  lexicon.Set
	}{
		{"positive", lex.Positive},
		{"negative", lex.Negative},
	}
	for _, exp := range exports {
		path := config.DefaultLexiconPath(exp.name)
		if err := lexicon.Export(path, exp.set, lexiconForce); err != nil {
			return err
		}
		logErrf("Wrote %s\n", path)
	}
	logErrln("Point [analysis] positive/negative in the config at these files to use them.")
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return `# strophe configuration
# Uncomment a value to enable it. CLI flags override config values.

[analysis]
# positive = ""           # Path to a positive lexicon file (one word per line)
# negative = ""           # Path to a negative lexicon file (one word per line)

[report]
# verbose = false         # Show all detected devices instead of a preview
`
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
