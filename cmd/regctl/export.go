package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neko-neko-nyan/regpath/pkg/regpath"
)

func init() {
	rootCmd.AddCommand(newExportCmd())
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Export a registry subtree as JSON",
		Long: `The export command walks a registry subtree and prints it as JSON:
each key becomes an object with its values and its sub-keys.

Example:
  regctl export "HKLM\Software\MyApp"
  regctl --store app.img export "HKLM\Software" > software.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
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

	tree, err := exportTree(p)
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	return printJSON(map[string]interface{}{
		"path": p.String(),
		"tree": tree,
	})
}

func exportTree(p *regpath.Path) (map[string]interface{}, error) {
	values, err := p.Map()
	if err != nil {
		return nil, err
	}

	children, err := p.ListDir()
	if err != nil {
		return nil, err
	}
	keys := make(map[string]interface{}, len(children))
	for _, child := range children {
		sub, err := exportTree(child)
		child.Close()
		if err != nil {
			return nil, err
		}
		keys[child.Name()] = sub
	}

	return map[string]interface{}{
		"values": values,
		"keys":   keys,
	}, nil
}
