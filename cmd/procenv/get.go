package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgavlin/procenv"
	"github.com/pgavlin/procenv/osstr"
)

var getOs bool

var getCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "Print the value of an environment variable",
	Long: `Print the value of a single environment variable.

An unset variable is an error, distinguishing it from a variable set to the
empty string. A value that is not valid Unicode is an error unless --os is
passed, in which case it is decoded lossily.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		key := osstr.String(args[0])

		if getOs {
			value, ok := procenv.VarOs(key)
			if !ok {
				return fmt.Errorf("%s is not set", args[0])
			}
			fmt.Println(value.Lossy())
			return nil
		}

		value, err := procenv.Var(key)
		if errors.Is(err, procenv.ErrNotPresent) {
			return fmt.Errorf("%s is not set", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

func init() {
	getCmd.Flags().BoolVar(&getOs, "os", false, "decode non-Unicode data lossily instead of failing")
}
