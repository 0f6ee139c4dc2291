package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/neko-neko-nyan/regpath/pkg/memreg"
	"github.com/neko-neko-nyan/regpath/pkg/regpath"
)

var (
	// Global flags
	storeFile  string
	remoteHost string
	verbose    bool
	quiet      bool
	jsonOut    bool
)

var rootCmd = &cobra.Command{
	Use:   "regctl",
	Short: "Inspect and manipulate registry keys and values",
	Long: `regctl works with registry keys and values addressed by path, for
example "HKLM\Software\MyApp". On Windows it operates on the live system
registry; with --store it operates on a portable store image file instead,
on any platform.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&storeFile, "store", "", "Operate on a store image file instead of the system registry")
	rootCmd.PersistentFlags().
		StringVar(&remoteHost, "remote", "", "Resolve paths against a remote host")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openRegistry selects the backend: a store image when --store is given
// (a missing file starts an empty store), otherwise the live system
// registry. The returned save function persists the store back to the
// image file after a mutating command; it is a no-op for the live registry.
func openRegistry() (*regpath.Registry, func() error, error) {
	if storeFile == "" {
		reg, err := regpath.System()
		if err != nil {
			return nil, nil, err
		}
		return reg, func() error { return nil }, nil
	}

	store, err := memreg.LoadImage(storeFile)
	if errors.Is(err, fs.ErrNotExist) {
		printVerbose("Store %s does not exist, starting empty\n", storeFile)
		store = memreg.New()
	} else if err != nil {
		return nil, nil, err
	}
	return regpath.New(store), func() error { return store.SaveImage(storeFile) }, nil
}

// resolvePath applies the --remote flag to path resolution.
func resolvePath(reg *regpath.Registry, path string) (*regpath.Path, error) {
	return reg.ResolveRemote(path, remoteHost)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
