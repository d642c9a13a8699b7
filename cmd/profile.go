package cmd

import (
	"context"
	"fmt"

	"data-integrity/core/loader"
	"data-integrity/feature/profile"

	"github.com/spf13/cobra"
)

var profileOutput string

// profileCmd profiles a single dataset's columns.
var profileCmd = &cobra.Command{
	Use:   "profile <dataset>",
	Short: "Profile a dataset's columns (types, uniqueness, missing values)",
	Long: `Profile computes per-column statistics for a dataset: the runtime type
composition, the types each column could be converted to, and
unique/duplicate/missing counts with a missing-sentinel breakdown.

Examples:
  # Print the profile table
  data-integrity profile data.csv

  # Profile a database table and save the results as a spreadsheet
  data-integrity profile db://customers --output profile.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringVarP(&profileOutput, "output", "o", "", "Write the profile to an xlsx file instead of printing it")
	RootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}

	data, err := loader.Load(context.Background(), sources(cfg), args[0])
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	p := profile.New(l)
	if profileOutput != "" {
		return p.AutoProfileToFile(data, profileOutput)
	}

	result, err := p.AutoProfile(data)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}
