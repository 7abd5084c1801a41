package main

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"textsum/internal/config"
	"textsum/internal/domain"
	"textsum/internal/frequency"
	"textsum/internal/logging"
	"textsum/internal/report"
	"textsum/internal/service"
	"textsum/internal/stopwords"
	"textsum/internal/summarizer"
	"textsum/internal/tui"
)

const topTerms = 10

type rootOptions struct {
	configPath string
	sentences  int
	tui        bool
	scores     bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "textsum [file.txt ...]",
		Short: "Extractive text summarizer",
		Long: "textsum picks the sentences that carry the most frequent content words and\n" +
			"prints them in their original order. Without file arguments the text is read\n" +
			"from standard input until an empty line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd, opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file path (default ./textsum.yaml or ~/.config/textsum/config.yaml)")
	rootCmd.Flags().IntVarP(&opts.sentences, "sentences", "n", 0, "Number of sentences in the summary (0 = auto)")
	rootCmd.Flags().BoolVar(&opts.tui, "tui", false, "Start the interactive terminal UI")
	rootCmd.Flags().BoolVar(&opts.scores, "scores", false, "Print per-sentence scores and top terms")

	rootCmd.AddCommand(newConfigCommand(opts))
	return rootCmd
}

func loadConfig(path string) (*config.AppConfig, string, error) {
	if path == "" {
		return config.LoadDefault()
	}
	cfg, err := config.Load(path)
	return cfg, path, err
}

func buildService(cfg *config.AppConfig, logger *slog.Logger) *service.SummaryService {
	sum := summarizer.NewFrequencySummarizer(
		summarizer.WithStopwords(stopwords.Default().With(cfg.Summarizer.ExtraStopwords...)),
		summarizer.WithMinTokenLength(cfg.Summarizer.MinTokenLength),
		summarizer.WithAutoRatio(cfg.Summarizer.AutoRatio),
	)
	return service.NewSummaryService(sum, logger, cfg.Summarizer.Sentences)
}

func runSummarize(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, cfgPath, err := loadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cmd.ErrOrStderr(), logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	logger.Debug("configuration loaded", slog.String("path", cfgPath))
	svc := buildService(cfg, logger)

	n := svc.DefaultSentences()
	if cmd.Flags().Changed("sentences") {
		n = opts.sentences
	}

	switch {
	case len(args) > 0:
		ranking, err := svc.RankFiles(args, n)
		if err != nil {
			logger.Error("summarize files failed", slog.Any("err", err))
			return err
		}
		printResult(cmd.OutOrStdout(), ranking, opts.scores)
		return nil
	case opts.tui || cfg.UI.Mode == "tui":
		p := tea.NewProgram(tui.New(svc, "", n), tea.WithAltScreen(),
			tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
		_, err := p.Run()
		return err
	default:
		return runPrompt(cmd, svc, opts, n)
	}
}

func printResult(w io.Writer, r domain.Ranking, scores bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Summary ---")
	fmt.Fprintln(w, r.Summary)
	if !scores || len(r.Sentences) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, report.Scores(r))
	if terms := report.Terms(frequency.Table(r.Frequencies), topTerms); terms != "" {
		fmt.Fprintln(w, terms)
	}
}
