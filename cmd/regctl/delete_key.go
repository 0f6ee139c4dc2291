package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteRecursive bool

func init() {
	cmd := newDeleteKeyCmd()
	cmd.Flags().BoolVarP(&deleteRecursive, "recursive", "r", false, "Delete the whole subtree")
	rootCmd.AddCommand(cmd)
}

func newDeleteKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-key <path>",
		Short: "Delete a registry key",
		Long: `The delete-key command removes a registry key. Without --recursive the
key must have no sub-keys.

Example:
  regctl delete-key "HKLM\Software\MyApp\Settings"
  regctl delete-key "HKLM\Software\MyApp" --recursive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteKey(args)
		},
	}
	return cmd
}

func runDeleteKey(args []string) error {
	keyPath := args[0]

	reg, save, err := openRegistry()
	if err != nil {
		return err
	}

	p, err := resolvePath(reg, keyPath)
	if err != nil {
		return err
	}

	if deleteRecursive {
		err = p.RemoveAll()
	} else {
		err = p.Remove()
	}
	if err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}
	if err := save(); err != nil {
		return err
	}

	printInfo("Deleted %s\n", p)
	return nil
}
