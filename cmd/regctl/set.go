package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neko-neko-nyan/regpath/pkg/regpath"
)

var setType string

func init() {
	cmd := newSetCmd()
	cmd.Flags().
		StringVar(&setType, "type", "", "Value type (sz, expand_sz, multi_sz, dword, qword, binary); inferred when omitted")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <path> <name> <value>",
		Short: "Set a registry value",
		Long: `The set command writes a value under a registry key, creating the key
if needed. Without --type the type is inferred: decimal integers become
DWORD or QWORD by range, everything else is a string. multi_sz values are
comma-separated; binary values are hex-encoded.

Example:
  regctl set "HKLM\Software\MyApp" "Version" "1.0.0"
  regctl set "HKLM\Software\MyApp" "Enabled" 1 --type dword
  regctl set "HKLM\Software\MyApp" "Servers" "a,b,c" --type multi_sz
  regctl set "HKLM\Software\MyApp" "Blob" 0102ff --type binary`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

// parseValue converts the command-line string form into a typed value and
// hint for the write.
func parseValue(raw, typeName string) (interface{}, regpath.Hint, error) {
	typeName = strings.ToUpper(typeName)
	switch typeName {
	case "":
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n, regpath.NoHint(), nil
		}
		if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return n, regpath.NoHint(), nil
		}
		return raw, regpath.NoHint(), nil
	case "SZ", "EXPAND_SZ", "LINK":
		return raw, regpath.HintName(typeName), nil
	case "MULTI_SZ":
		return strings.Split(raw, ","), regpath.HintName(typeName), nil
	case "DWORD", "QWORD":
		n, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return nil, regpath.Hint{}, fmt.Errorf("invalid %s value %q: %w", typeName, raw, err)
		}
		return n, regpath.HintName(typeName), nil
	case "BINARY":
		data, err := hex.DecodeString(raw)
		if err != nil {
			return nil, regpath.Hint{}, fmt.Errorf("invalid binary value %q: %w", raw, err)
		}
		return data, regpath.HintName(typeName), nil
	case "NONE":
		return nil, regpath.HintName(typeName), nil
	default:
		return nil, regpath.Hint{}, fmt.Errorf("unknown value type %q", typeName)
	}
}

func runSet(args []string) error {
	keyPath := args[0]
	valueName := args[1]
	valueStr := args[2]

	value, hint, err := parseValue(valueStr, setType)
	if err != nil {
		return err
	}

	reg, save, err := openRegistry()
	if err != nil {
		return err
	}

	p, err := resolvePath(reg, keyPath)
	if err != nil {
		return err
	}
	defer p.Close()

	if err := p.Mkdir(nil); err != nil {
		return fmt.Errorf("failed to create key: %w", err)
	}
	if err := p.SetValueTyped(valueName, value, hint); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	if err := save(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":    p.String(),
			"name":    valueName,
			"data":    value,
			"success": true,
		})
	}

	printInfo("Set %s[%q]\n", p, valueName)
	return nil
}
