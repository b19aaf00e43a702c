package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"octavia-hq/vela/pkg/catalog"
	"octavia-hq/vela/pkg/compile"
)

var compileCmd = &cobra.Command{
	Use:   "compile [catalog]",
	Short: "Compile every descriptor in a catalog",
	Long: `Compile loads the descriptor catalog (a YAML file or a directory of
them), compiles every descriptor, and prints one line per operation with the
assigned complexity tier, the selected backend and the artifact ID.

Without an argument the catalog path from the configuration is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		path := cfg.Catalog.Path
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return fmt.Errorf("no catalog path: pass one or set catalog.path in the config")
		}

		descriptors, err := catalog.NewFileSource(path, logger).Load(context.Background())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "OPERATION\tTIER\tBACKEND\tID")
		failures := 0
		for _, d := range descriptors {
			op, err := compile.Compile(d)
			if err != nil {
				failures++
				fmt.Fprintf(w, "%s\terror\t-\t%v\n", d.FullName(), err)
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.FullName(), op.Tier, op.Backend(), op.ID)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if failures > 0 {
			return fmt.Errorf("%d of %d descriptors failed to compile", failures, len(descriptors))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
