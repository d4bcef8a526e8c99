package main

import (
	"github.com/spf13/cobra"

	"github.com/fdstream-io/fdstream/cmd"
	"github.com/fdstream-io/fdstream/pkg/fdstream"
	"github.com/fdstream-io/fdstream/pkg/logging"
	"github.com/fdstream-io/fdstream/pkg/must"
	"github.com/fdstream-io/fdstream/pkg/stdio"
	"github.com/fdstream-io/fdstream/pkg/stream"
)

// versionMain is the entry point for the version command.
func versionMain(command *cobra.Command, arguments []string) error {
	// Print version information through the process-wide standard output
	// stream and make sure it's flushed before the process exits.
	defer must.Flush(stdio.Stdout, logging.RootLogger.Sublogger("version"))
	return stream.Puts(stdio.Stdout, fdstream.Version+"\n")
}

// versionCommand is the version command.
var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   cmd.Mainify(versionMain),
}

// versionConfiguration stores configuration for the version command.
var versionConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := versionCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&versionConfiguration.help, "help", "h", false, "Show help information")
}
