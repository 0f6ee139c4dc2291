package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neko-neko-nyan/regpath/pkg/regpath"
)

var (
	mkdirParents bool
	mkdirExistOK bool
)

func init() {
	cmd := newMkdirCmd()
	cmd.Flags().BoolVarP(&mkdirParents, "parents", "p", true, "Create missing parent keys")
	cmd.Flags().BoolVar(&mkdirExistOK, "exist-ok", true, "Do not fail when the key already exists")
	rootCmd.AddCommand(cmd)
}

func newMkdirCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a registry key",
		Long: `The mkdir command creates a registry key. By default missing parents
are created and an already existing key is not an error.

Example:
  regctl mkdir "HKLM\Software\MyApp\Settings"
  regctl mkdir "HKLM\Software\MyApp" --parents=false --exist-ok=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMkdir(args)
		},
	}
	return cmd
}

func runMkdir(args []string) error {
	keyPath := args[0]

	reg, save, err := openRegistry()
	if err != nil {
		return err
	}

	p, err := resolvePath(reg, keyPath)
	if err != nil {
		return err
	}
	defer p.Close()

	opts := &regpath.MkdirOptions{Parents: mkdirParents, ExistOK: mkdirExistOK}
	if err := p.Mkdir(opts); err != nil {
		return fmt.Errorf("failed to create key: %w", err)
	}
	if err := save(); err != nil {
		return err
	}

	printInfo("Created %s\n", p)
	return nil
}
