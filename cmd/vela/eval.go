package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"octavia-hq/vela/pkg/catalog"
	"octavia-hq/vela/pkg/exec"
	"octavia-hq/vela/pkg/perm"
	"octavia-hq/vela/pkg/registry"
)

var (
	evalOp      string
	evalCatalog string
	evalParams  []string
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Compile and invoke one operation",
	Long: `Eval resolves an operation from the catalog, compiles it (or fetches the
cached artifact) and invokes it with the given runtime parameters.

Parameters are passed as --param name=value, where value is a class index or
a comma-separated integer list for reductions:

	vela eval --catalog ./catalog --op ring/add --param value=90
	vela eval --catalog ./catalog --op ring/reduce --param values=1,2,3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		namespace, name, ok := strings.Cut(evalOp, "/")
		if !ok || namespace == "" || name == "" {
			return fmt.Errorf("--op must be namespace/name, got %q", evalOp)
		}

		path := cfg.Catalog.Path
		if evalCatalog != "" {
			path = evalCatalog
		}
		if path == "" {
			return fmt.Errorf("no catalog path: pass --catalog or set catalog.path in the config")
		}

		execArgs, err := parseParams(evalParams)
		if err != nil {
			return err
		}

		reg, err := registry.New(cfg, registry.Options{Logger: logger})
		if err != nil {
			return err
		}
		defer reg.Close()

		descriptors, err := catalog.NewFileSource(path, logger).Load(context.Background())
		if err != nil {
			return err
		}
		if err := reg.Sync(descriptors); err != nil {
			return err
		}

		value, err := reg.Invoke(namespace, name, execArgs)
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

// parseParams turns name=value flags into runtime arguments. A bare integer
// is a class index; a comma-separated list is an integer list.
func parseParams(raw []string) (exec.Args, error) {
	args := make(exec.Args, len(raw))
	for _, pair := range raw {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("--param must be name=value, got %q", pair)
		}

		if strings.Contains(value, ",") {
			parts := strings.Split(value, ",")
			ints := make([]int, len(parts))
			for i, part := range parts {
				n, err := strconv.Atoi(strings.TrimSpace(part))
				if err != nil {
					return nil, fmt.Errorf("parameter %q: %q is not an integer", name, part)
				}
				ints[i] = n
			}
			args[name] = exec.IntsValue(ints)
			continue
		}

		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %q is not an integer", name, value)
		}
		args[name] = exec.ClassValue(perm.ClassIndex(n))
	}
	return args, nil
}

func init() {
	evalCmd.Flags().StringVar(&evalOp, "op", "", "operation to invoke, as namespace/name")
	evalCmd.Flags().StringVar(&evalCatalog, "catalog", "", "catalog path (overrides the config)")
	evalCmd.Flags().StringArrayVar(&evalParams, "param", nil, "runtime parameter, name=value (repeatable)")
	if err := evalCmd.MarkFlagRequired("op"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(evalCmd)
}
