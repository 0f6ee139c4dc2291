package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDeleteValueCmd())
}

func newDeleteValueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-value <path> <name>",
		Short: "Delete a registry value",
		Long: `The delete-value command removes a single value from a registry key.

Example:
  regctl delete-value "HKLM\Software\MyApp" "Obsolete"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteValue(args)
		},
	}
	return cmd
}

func runDeleteValue(args []string) error {
	keyPath := args[0]
	valueName := args[1]

	reg, save, err := openRegistry()
	if err != nil {
		return err
	}

	p, err := resolvePath(reg, keyPath)
	if err != nil {
		return err
	}
	defer p.Close()

	if err := p.DeleteValue(valueName); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	if err := save(); err != nil {
		return err
	}

	printInfo("Deleted %s[%q]\n", p, valueName)
	return nil
}
