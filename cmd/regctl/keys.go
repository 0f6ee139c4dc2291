package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <path>",
		Short: "List sub-keys at a given path",
		Long: `The keys command lists the direct sub-keys of a registry key.

Example:
  regctl keys "HKLM\Software"
  regctl keys "HKCU" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
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

	names, err := p.ListNames()
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":  p.String(),
			"keys":  names,
			"count": len(names),
		})
	}

	for _, name := range names {
		printInfo("%s\n", name)
	}
	printVerbose("\nTotal: %d keys\n", len(names))
	return nil
}
