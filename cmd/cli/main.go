// Command cli builds biomass facility reports from completed run documents.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"biomass-report/internal/config"
	"biomass-report/internal/data"
	"biomass-report/internal/export"
	"biomass-report/internal/report"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/spf13/cobra"
)

var errIncomplete = errors.New("run is incomplete; no report produced")

var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "cli",
	Short:         "Build multi-year result reports for biomass facility runs",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetHandler(text.New(os.Stderr))
		level, _ := cmd.Flags().GetString("log-level")
		lvl, err := log.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		log.SetLevel(lvl)

		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = os.Getenv("REPORT_CONFIG")
		}
		if path == "" {
			cfg = config.Default()
			return nil
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config path (default: $REPORT_CONFIG or built-in defaults)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("run", "", "path to a run JSON document")
	rootCmd.PersistentFlags().String("run-id", "", "run id to fetch from the results service instead of --run")
	rootCmd.PersistentFlags().String("results-url", os.Getenv("RESULTS_URL"), "results service base URL")
	rootCmd.PersistentFlags().Int("years", 0, "operating years a complete run must cover (0 = config, then economic life)")

	reportCmd.Flags().String("out", "", "output xlsx path (default: report.file_name from config)")
	reportCmd.Flags().Bool("no-chart", false, "omit the sensitivity chart and legend")

	ledgerCmd.Flags().String("out", "", "output CSV path (default: stdout)")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(ledgerCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the xlsx report for a completed run",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, builder, err := prepare(cmd)
		if err != nil {
			return err
		}
		noChart, _ := cmd.Flags().GetBool("no-chart")
		var ch report.Chart
		if !noChart {
			ch = doc.Chart()
		}

		layout, err := builder.Build(cmd.Context(), doc.Run, ch)
		if err != nil {
			return err
		}
		if layout == nil {
			return incompleteError(doc, builder)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = cfg.Report.FileName
		}
		wb, err := export.Render(layout)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, wb, 0o644); err != nil {
			return err
		}
		log.WithFields(log.Fields{"out": out, "images": len(layout.Images)}).Info("report written")
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the report tables for a completed run",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, builder, err := prepare(cmd)
		if err != nil {
			return err
		}
		layout, err := builder.Build(cmd.Context(), doc.Run, nil)
		if err != nil {
			return err
		}
		if layout == nil {
			return incompleteError(doc, builder)
		}
		return printSummary(cmd.OutOrStdout(), doc, layout)
	},
}

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Write the per-year values of a run as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadRun(cmd)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return export.WriteLedgerCSV(cmd.OutOrStdout(), doc.Run.YearlyResults)
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := export.WriteLedgerCSV(f, doc.Run.YearlyResults); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

func prepare(cmd *cobra.Command) (*data.RunDocument, *report.Builder, error) {
	doc, err := loadRun(cmd)
	if err != nil {
		return nil, nil, err
	}
	years, _ := cmd.Flags().GetInt("years")
	rc := config.MergeReport(cfg.Report, config.ReportConfig{YearsToRun: years})
	builder := report.NewBuilder(rc.YearsToRun)
	builder.ChartWidth, builder.ChartHeight = rc.ChartWidth, rc.ChartHeight
	return doc, builder, nil
}

func loadRun(cmd *cobra.Command) (*data.RunDocument, error) {
	path, _ := cmd.Flags().GetString("run")
	id, _ := cmd.Flags().GetString("run-id")
	switch {
	case path != "" && id != "":
		return nil, errors.New("use either --run or --run-id, not both")
	case path != "":
		return data.LoadRun(path)
	case id != "":
		url, _ := cmd.Flags().GetString("results-url")
		return data.NewResultsClient(url, os.Getenv("RESULTS_API_KEY")).FetchRun(cmd.Context(), id)
	default:
		return nil, errors.New("--run or --run-id is required")
	}
}

func incompleteError(doc *data.RunDocument, b *report.Builder) error {
	return fmt.Errorf("%w (%d of %d years)", errIncomplete, len(doc.Run.YearlyResults), b.YearsFor(doc.Run))
}

func printSummary(w io.Writer, doc *data.RunDocument, l *report.Layout) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s (%s), %d years\n\n", doc.Run.TeaModel.Label(), doc.Run.TeaModel, len(doc.Run.YearlyResults))
	for _, s := range l.Sections {
		for _, t := range s.Tables {
			fmt.Fprintf(tw, "[%s] %s\n", t.Anchor, strings.Join(t.Columns, "\t"))
			for _, row := range t.Rows {
				cells := make([]string, len(row))
				for i, c := range row {
					cells[i] = fmt.Sprint(c)
				}
				fmt.Fprintf(tw, "\t%s\n", strings.Join(cells, "\t"))
			}
			fmt.Fprintln(tw)
		}
	}
	fmt.Fprintln(tw, "Escalation / Inflation")
	for _, r := range report.EscalationRows(doc.Run.TeaInputs) {
		fmt.Fprintf(tw, "\t%s\t%s\n", r.Label, r.Value)
	}
	return tw.Flush()
}
