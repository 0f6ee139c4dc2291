package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <path> [name]",
		Short: "Get a registry value",
		Long: `The get command reads a value from a registry key. Without a name
argument it reads the key's default value.

Example:
  regctl get "HKLM\Software\MyApp" "Version"
  regctl get "HKCU\Environment" "Path" --json
  regctl --store app.img get "HKLM\Software\MyApp" "Version"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	keyPath := args[0]
	var valueName string
	if len(args) > 1 {
		valueName = args[1]
	}

	reg, _, err := openRegistry()
	if err != nil {
		return err
	}

	p, err := resolvePath(reg, keyPath)
	if err != nil {
		return err
	}
	defer p.Close()

	data, err := p.GetValue(valueName)
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path": p.String(),
			"name": valueName,
			"data": data,
		})
	}

	printInfo("%v\n", data)
	return nil
}
