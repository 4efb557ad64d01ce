// Command phylo is a thin, stateless driver over one genealogy.Core
// instance per invocation: it loads a tree file, applies one mutation or
// query, and (for mutating subcommands) rewrites the file before exiting.
// It holds no state across invocations and performs no I/O beyond the
// tree file, the optional --config file, and its own output and log
// lines.
package main

import (
	"fmt"
	"os"

	log "github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kurosakiaduma/phylo-sub002/internal/cliconfig"
)

var (
	treePath   string
	configFile string
	cfg        cliconfig.Defaults
)

var rootCmd = &cobra.Command{
	Use:   "phylo",
	Short: "Headless genealogy engine CLI",
	Long: `phylo is a command-line driver over the genealogy core library.

Each invocation loads a tree from --tree, applies one operation, and (for
commands that mutate the tree) saves the result back to the same file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if treePath == "" {
			return fmt.Errorf("--tree is required")
		}

		loaded, err := cliconfig.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&treePath, "tree", "", "path to the tree JSON file (required)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a TreeSettings defaults file (YAML/JSON)")

	rootCmd.AddCommand(memberCmd)
	rootCmd.AddCommand(spouseCmd)
	rootCmd.AddCommand(childCmd)
	rootCmd.AddCommand(relationshipCmd)
	rootCmd.AddCommand(relationsCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(validateCmd)
}

// Execute runs the root command and logs the terminal outcome.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("phylo: %v", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newTreeID() string {
	return uuid.New().String()
}
