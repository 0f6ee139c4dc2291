package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValuesCmd())
}

func newValuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values <path>",
		Short: "List values of a registry key",
		Long: `The values command lists every value stored under a registry key,
including the default value when set (shown with an empty name).

Example:
  regctl values "HKCU\Environment"
  regctl values "HKLM\Software\MyApp" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValues(args)
		},
	}
	return cmd
}

func runValues(args []string) error {
	keyPath := args[0]

	reg, _, err := openRegistry()
	if err != nil {
		return err
	}

	p, err := resolvePath(reg, keyPath)
	if err != nil {
		return err
	}
	defer p.Close()

	items, err := p.Items()
	if err != nil {
		return fmt.Errorf("failed to list values: %w", err)
	}

	if jsonOut {
		m := make(map[string]interface{}, len(items))
		for _, item := range items {
			m[item.Name] = item.Data
		}
		return printJSON(map[string]interface{}{
			"path":   p.String(),
			"values": m,
			"count":  len(items),
		})
	}

	for _, item := range items {
		printInfo("%q = %v\n", item.Name, item.Data)
	}
	printVerbose("\nTotal: %d values\n", len(items))
	return nil
}
