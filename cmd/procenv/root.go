package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/pgavlin/procenv"
)

var (
	version = "development"

	configPath string
	outputJSON bool

	conf     = defaultConfig()
	redactor *varRedactor
)

var rootCmd = &cobra.Command{
	Version:       version,
	Use:           "procenv",
	Short:         "procenv inspects the process environment.",
	Long:          `Inspect environment variables, process arguments, well-known directories, and PATH-style variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		path := configPath
		if path == "" {
			if home, ok := procenv.HomeDir(); ok {
				path = filepath.Join(home, ".procenv.toml")
			}
		}
		if path != "" {
			c, err := loadConfig(path)
			if err != nil {
				return err
			}
			conf = c
		}

		r, err := conf.redactor()
		if err != nil {
			return err
		}
		redactor = r

		if !rootCmd.PersistentFlags().Changed("json") {
			outputJSON = conf.Output.JSON
		}
		switch conf.Output.Color {
		case "always":
			color.NoColor = false
		case "never":
			color.NoColor = true
		default:
			color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
		}
		return nil
	}
}

func init() {
	rootCmd.SetGlobalNormalizationFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "read configuration from the given path")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "print JSON instead of text")

	rootCmd.AddCommand(varsCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(whichCmd)
	rootCmd.AddCommand(dirsCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(argsCmd)
	rootCmd.AddCommand(newExecCommand())
}
