package cmd

import (
	"context"
	"fmt"

	"data-integrity/core/loader"
	"data-integrity/feature/reconcile"

	"github.com/spf13/cobra"
)

var (
	reconcileIDColumns      []string
	reconcileKeepDuplicates bool
	reconcileKeepMissing    bool
	reconcileShowRows       bool
)

// reconcileCmd matches two datasets row by row.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile <source> <output>",
	Short: "Reconcile two datasets by a derived row identifier",
	Long: `Reconcile joins two datasets on one or more identifier columns and
classifies every row as matched, source-only or output-only.

Examples:
  # Reconcile two CSV files on a single key
  data-integrity reconcile source.csv output.csv --id id

  # Composite key, keeping duplicate rows
  data-integrity reconcile db://ledger export.csv --id account,date --keep-duplicates

  # Print the mismatching rows as well as the counts
  data-integrity reconcile source.csv output.csv --id id --show-rows`,
	Args: cobra.ExactArgs(2),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringSliceVar(&reconcileIDColumns, "id", nil, "Identifier column(s) forming the join key (required)")
	reconcileCmd.Flags().BoolVar(&reconcileKeepDuplicates, "keep-duplicates", false, "Keep exact duplicate rows instead of dropping them before the join")
	reconcileCmd.Flags().BoolVar(&reconcileKeepMissing, "keep-missing", false, "Keep rows with missing values instead of dropping them before the join")
	reconcileCmd.Flags().BoolVar(&reconcileShowRows, "show-rows", false, "Print the source-only and output-only rows")
	_ = reconcileCmd.MarkFlagRequired("id")
	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}

	ctx := context.Background()
	src := sources(cfg)

	source, err := loader.Load(ctx, src, args[0])
	if err != nil {
		return fmt.Errorf("failed to load source dataset: %w", err)
	}
	output, err := loader.Load(ctx, src, args[1])
	if err != nil {
		return fmt.Errorf("failed to load output dataset: %w", err)
	}

	opts := reconcile.Options{
		DropDuplicates: !reconcileKeepDuplicates,
		DropMissing:    !reconcileKeepMissing,
	}
	result, err := reconcile.Reconcile(l, source, output, reconcileIDColumns, opts)
	if err != nil {
		return err
	}

	if reconcileShowRows {
		if result.SourceOnly.NumRows() > 0 {
			fmt.Println("source-only rows:")
			fmt.Println(result.SourceOnly)
		}
		if result.OutputOnly.NumRows() > 0 {
			fmt.Println("output-only rows:")
			fmt.Println(result.OutputOnly)
		}
	}
	return nil
}
