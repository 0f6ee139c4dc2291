package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newExistsCmd())
}

func newExistsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exists <path>",
		Short: "Check whether a registry key exists",
		Long: `The exists command reports whether a registry key is present. The
exit status is 0 when the key exists and 1 when it does not.

Example:
  regctl exists "HKLM\Software\MyApp"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExists(args)
		},
	}
	return cmd
}

func runExists(args []string) error {
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

	ok, err := p.Exists()
	if err != nil {
		return fmt.Errorf("failed to check key: %w", err)
	}

	if jsonOut {
		if err := printJSON(map[string]interface{}{
			"path":   p.String(),
			"exists": ok,
		}); err != nil {
			return err
		}
	} else {
		printInfo("%t\n", ok)
	}

	if !ok {
		return errNotExists
	}
	return nil
}

// errNotExists maps an absent key to exit status 1 without the usual error
// prefix noise.
var errNotExists = fmt.Errorf("key does not exist")
