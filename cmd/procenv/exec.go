package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pgavlin/procenv"
	"github.com/pgavlin/procenv/osstr"
)

func validVarName(name string) error {
	if name == "" || strings.ContainsAny(name, "=\x00") {
		return fmt.Errorf("invalid environment variable name %q", name)
	}
	return nil
}

func newExecCommand() *cobra.Command {
	var (
		set     []string
		unset   []string
		prepend []string
	)

	cmd := &cobra.Command{
		Use:   "exec [flags] -- COMMAND [ARG...]",
		Short: "Run a command with a modified environment",
		Long: `Apply environment mutations, then run a command that inherits the
result. Variables are set with -s NAME=VALUE and removed with -u NAME;
-p DIR prepends a directory to the PATH variable. The command's exit code
is propagated.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, kv := range set {
				name, value, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("expected NAME=VALUE, got %q", kv)
				}
				if err := validVarName(name); err != nil {
					return err
				}
				procenv.SetVar(osstr.String(name), osstr.String(value))
			}
			for _, name := range unset {
				if err := validVarName(name); err != nil {
					return err
				}
				procenv.RemoveVar(osstr.String(name))
			}

			if len(prepend) > 0 {
				if err := prependPath(prepend); err != nil {
					return err
				}
			}

			path, ok := procenv.LookPath(args[0])
			if !ok {
				return fmt.Errorf("%s: executable not found", args[0])
			}

			child := exec.Command(path, args[1:]...)
			child.Stdin, child.Stdout, child.Stderr = os.Stdin, os.Stdout, os.Stderr
			err := child.Run()
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				os.Exit(exitErr.ExitCode())
			}
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&set, "set", "s", nil, "set NAME=VALUE before running the command")
	cmd.Flags().StringArrayVarP(&unset, "unset", "u", nil, "remove NAME before running the command")
	cmd.Flags().StringArrayVarP(&prepend, "prepend-path", "p", nil, "prepend DIR to the PATH variable")
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// prependPath rebuilds the PATH variable with dirs in front, preserving the
// existing entries.
func prependPath(dirs []string) error {
	var entries []osstr.String
	for _, dir := range dirs {
		entries = append(entries, osstr.String(dir))
	}
	if existing, ok := procenv.VarOs("PATH"); ok {
		entries = append(entries, procenv.SplitPaths(existing)...)
	}

	list, err := procenv.JoinPaths(entries)
	if err != nil {
		return err
	}
	procenv.SetVar("PATH", list)
	return nil
}
