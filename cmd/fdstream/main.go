package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fdstream-io/fdstream/cmd"
)

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, arguments []string) error {
	// If no commands were given, then print help information and bail. We
	// don't have to worry about warning about arguments being present here,
	// because arguments can't even reach this point (they will be mistaken
	// for subcommands and an error will be displayed).
	command.Help()

	// Success.
	return nil
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:   "fdstream",
	Short: "Buffered descriptor I/O from the command line",
	Run:   cmd.Mainify(rootMain),
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// verbose indicates whether or not subcommands should log details of
	// their stream operations.
	verbose bool
}

// persistentFlags is the flag set shared by all subcommands.
var persistentFlags *pflag.FlagSet

func init() {
	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Register persistent flags.
	persistentFlags = rootCommand.PersistentFlags()
	persistentFlags.BoolVarP(&rootConfiguration.verbose, "verbose", "v", false, "Log stream operation details")

	// Register commands.
	rootCommand.AddCommand(
		versionCommand,
		catCommand,
		headCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
