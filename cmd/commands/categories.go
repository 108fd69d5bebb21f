package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/usernamer/internal/cli"
	"github.com/pluqqy/usernamer/pkg/models"
)

// CategoriesResult represents the output structure for the categories command
type CategoriesResult struct {
	Default    models.Category   `json:"default" yaml:"default"`
	Categories []models.Category `json:"categories" yaml:"categories"`
}

// NewCategoriesCommand creates the categories command
func NewCategoriesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the username categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateOutputFormat(format); err != nil {
				return err
			}

			result := CategoriesResult{
				Default:    models.DefaultCategory,
				Categories: models.Categories(),
			}
			if format != "text" {
				return cli.OutputResults(cmd.OutOrStdout(), format, result)
			}

			out := cmd.OutOrStdout()
			for _, c := range result.Categories {
				marker := ""
				if c == result.Default {
					marker = " (default)"
				}
				fmt.Fprintf(out, "%s%s\n", strings.ToLower(string(c)), marker)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json, yaml)")

	return cmd
}
