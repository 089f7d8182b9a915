package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var envFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catalog-import",
	Short: "catalog-import - load a filmhub catalog seed",
	Long: `catalog-import reads a JSON seed of users, films, reviews and favorite lists
and writes it through the filmhub services into the store selected by STORE_DRIVER.

Use "catalog-import command --help" to see all available commands.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment from this file before reading config")
	rootCmd.AddCommand(runCmd, checkCmd)
}
