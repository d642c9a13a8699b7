package cmd

import (
	"context"
	"fmt"

	"data-integrity/core/frame"
	"data-integrity/core/loader"
	"data-integrity/core/render"
	"data-integrity/feature/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	checkColumns    []string
	checkColumn     string
	checkReference  string
	checkThreshold  float64
	checkConfidence float64
	checkPlotDir    string
)

// checkCmd is the parent command for all anomaly checks.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run anomaly checks against a dataset",
	Long: `Check runs a single anomaly check against a dataset and prints the
offending rows (or a classification for the benford check).`,
}

var checkDuplicatesCmd = &cobra.Command{
	Use:   "duplicates <dataset>",
	Short: "Report duplicated rows (full row or a column subset)",
	Args:  cobra.ExactArgs(1),
	RunE: runCheck(func(data *frame.Frame, l *zap.Logger) (*frame.Frame, error) {
		return checks.Duplicates(data, checkColumns...)
	}),
}

var checkMissingIDCmd = &cobra.Command{
	Use:   "missing-id <dataset>",
	Short: "Report rows whose identifier columns are all missing",
	Args:  cobra.ExactArgs(1),
	RunE: runCheck(func(data *frame.Frame, l *zap.Logger) (*frame.Frame, error) {
		return checks.MissingIdentifier(data, checkColumns)
	}),
}

var checkMissingCmd = &cobra.Command{
	Use:   "missing <dataset>",
	Short: "Report rows where a column is missing or a sentinel",
	Args:  cobra.ExactArgs(1),
	RunE: runCheck(func(data *frame.Frame, l *zap.Logger) (*frame.Frame, error) {
		return checks.MissingValues(data, checkColumn)
	}),
}

var checkFutureDatesCmd = &cobra.Command{
	Use:   "future-dates <dataset>",
	Short: "Report rows with dates past a reference date",
	Args:  cobra.ExactArgs(1),
	RunE: runCheck(func(data *frame.Frame, l *zap.Logger) (*frame.Frame, error) {
		return checks.FutureDates(data, checkColumns, checkReference)
	}),
}

var checkVolumeCmd = &cobra.Command{
	Use:   "volume <dataset>",
	Short: "Report rows holding an outsized share of a column's total",
	Args:  cobra.ExactArgs(1),
	RunE: runCheck(func(data *frame.Frame, l *zap.Logger) (*frame.Frame, error) {
		return checks.VolumeAnomaly(data, checkColumn, checkThreshold)
	}),
}

var checkNumericCmd = &cobra.Command{
	Use:   "numeric <dataset>",
	Short: "Report rows whose z-score exceeds a threshold",
	Args:  cobra.ExactArgs(1),
	RunE: runCheck(func(data *frame.Frame, l *zap.Logger) (*frame.Frame, error) {
		opts := checks.NumericOptions{}
		if checkPlotDir != "" {
			opts.Renderer = render.PlotRenderer{}
			opts.DistributionPath = checkPlotDir + "/distribution.png"
			opts.BoxPath = checkPlotDir + "/box.png"
		}
		return checks.NumericAnomaly(data, checkColumn, checkThreshold, opts)
	}),
}

var checkTypesCmd = &cobra.Command{
	Use:   "types <dataset>",
	Short: "Report the runtime value-type distribution of a column",
	Args:  cobra.ExactArgs(1),
	RunE: runCheck(func(data *frame.Frame, l *zap.Logger) (*frame.Frame, error) {
		return checks.TypeDistribution(data, checkColumn)
	}),
}

var checkBenfordCmd = &cobra.Command{
	Use:   "benford <dataset>",
	Short: "Test a column's first digits against Benford's law",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, l, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		result, err := checks.Benford(data, checkColumn, checkConfidence)
		if err != nil {
			return err
		}
		l.Info("Benford check complete",
			zap.String("column", checkColumn),
			zap.String("result", result),
		)
		fmt.Println(result)
		return nil
	},
}

func init() {
	checkDuplicatesCmd.Flags().StringSliceVar(&checkColumns, "columns", nil, "Restrict row identity to these columns")

	checkMissingIDCmd.Flags().StringSliceVar(&checkColumns, "columns", nil, "Identifier columns (required)")
	_ = checkMissingIDCmd.MarkFlagRequired("columns")

	checkMissingCmd.Flags().StringVar(&checkColumn, "column", "", "Column to check (required)")
	_ = checkMissingCmd.MarkFlagRequired("column")

	checkFutureDatesCmd.Flags().StringSliceVar(&checkColumns, "columns", nil, "Date columns to check (required)")
	checkFutureDatesCmd.Flags().StringVar(&checkReference, "reference", "", "Reference date; rows after it are reported (required)")
	_ = checkFutureDatesCmd.MarkFlagRequired("columns")
	_ = checkFutureDatesCmd.MarkFlagRequired("reference")

	checkVolumeCmd.Flags().StringVar(&checkColumn, "column", "", "Numeric column to check (required)")
	checkVolumeCmd.Flags().Float64Var(&checkThreshold, "threshold", 10, "Maximum share of the column total, in percent")
	_ = checkVolumeCmd.MarkFlagRequired("column")

	checkNumericCmd.Flags().StringVar(&checkColumn, "column", "", "Numeric column to check (required)")
	checkNumericCmd.Flags().Float64Var(&checkThreshold, "threshold", 3, "Maximum absolute z-score")
	checkNumericCmd.Flags().StringVar(&checkPlotDir, "plot-dir", "", "Write distribution and box plots into this directory")
	_ = checkNumericCmd.MarkFlagRequired("column")

	checkTypesCmd.Flags().StringVar(&checkColumn, "column", "", "Column to check (required)")
	_ = checkTypesCmd.MarkFlagRequired("column")

	checkBenfordCmd.Flags().StringVar(&checkColumn, "column", "", "Numeric column to check (required)")
	checkBenfordCmd.Flags().Float64Var(&checkConfidence, "confidence", checks.DefaultConfidence, "Confidence level of the chi-squared test")
	_ = checkBenfordCmd.MarkFlagRequired("column")

	checkCmd.AddCommand(
		checkDuplicatesCmd,
		checkMissingIDCmd,
		checkMissingCmd,
		checkFutureDatesCmd,
		checkVolumeCmd,
		checkNumericCmd,
		checkTypesCmd,
		checkBenfordCmd,
	)
	RootCmd.AddCommand(checkCmd)
}

// runCheck wraps a row-returning check into a cobra handler: load the
// dataset, run the check, log the count and print the offending rows.
func runCheck(check func(*frame.Frame, *zap.Logger) (*frame.Frame, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		data, l, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		rows, err := check(data, l)
		if err != nil {
			return err
		}

		l.Info("Check complete",
			zap.String("check", cmd.Name()),
			zap.Int("offending_rows", rows.NumRows()),
		)
		if rows.NumRows() > 0 {
			fmt.Println(rows)
		}
		return nil
	}
}

func loadDataset(ref string) (*frame.Frame, *zap.Logger, error) {
	cfg, l, err := setup()
	if err != nil {
		return nil, nil, err
	}
	data, err := loader.Load(context.Background(), sources(cfg), ref)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return data, l, nil
}
