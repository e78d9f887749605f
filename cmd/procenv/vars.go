package main

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	fxs "github.com/pgavlin/fx/v2/slices"
	"github.com/spf13/cobra"
	"github.com/sugawarayuuta/sonnet"

	"github.com/pgavlin/procenv"
)

var varsOs bool

type varDescription struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "List the environment variables",
	Long: `List a snapshot of the process's environment variables, sorted by name.

Values of variables whose names match a redaction pattern are hidden. By
default variables must be valid Unicode; pass --os to decode arbitrary
bytes lossily instead of failing.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		var vars []varDescription
		if varsOs {
			for k, v := range procenv.VarsOs().All() {
				vars = append(vars, varDescription{Name: k.Lossy(), Value: v.Lossy()})
			}
		} else {
			for k, v := range procenv.Vars().All() {
				vars = append(vars, varDescription{Name: k, Value: v})
			}
		}
		slices.SortFunc(vars, func(a, b varDescription) int {
			return strings.Compare(a.Name, b.Name)
		})

		redacted := slices.Collect(fxs.Map(vars, func(v varDescription) varDescription {
			return varDescription{Name: v.Name, Value: redactor.value(v.Name, v.Value)}
		}))

		if outputJSON {
			enc := sonnet.NewEncoder(os.Stdout)
			enc.SetIndent("", "    ")
			return enc.Encode(redacted)
		}

		name := color.New(color.FgCyan).SprintFunc()
		w := tabwriter.NewWriter(os.Stdout, 0, 2, 1, ' ', 0)
		for _, v := range redacted {
			fmt.Fprintf(w, "%s\t%s\n", name(v.Name), v.Value)
		}
		return w.Flush()
	},
}

func init() {
	varsCmd.Flags().BoolVar(&varsOs, "os", false, "decode non-Unicode data lossily instead of failing")
}
