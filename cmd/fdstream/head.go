package main

import (
	"io"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/fdstream-io/fdstream/cmd"
	"github.com/fdstream-io/fdstream/pkg/filesystem"
	"github.com/fdstream-io/fdstream/pkg/logging"
	"github.com/fdstream-io/fdstream/pkg/must"
	"github.com/fdstream-io/fdstream/pkg/stdio"
	"github.com/fdstream-io/fdstream/pkg/stream"
)

// headMain is the entry point for the head command.
func headMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 1 {
		return errors.New("expected a single path")
	} else if headConfiguration.lines < 1 {
		return errors.New("line count must be positive")
	}

	// Create a logger for the command.
	logger := logging.RootLogger.Sublogger("head")

	// Open the path for reading, wrap the raw stream in a buffered reader
	// that takes ownership of it, and defer closure of the pair.
	input, err := filesystem.OpenInput(arguments[0], filesystem.IntentRead)
	if err != nil {
		return errors.Wrap(err, "unable to open input")
	}
	reader := stream.NewBufferedReader(input)
	defer must.Close(reader, logger)

	// Make sure standard output is flushed before the process exits.
	defer must.Flush(stdio.Stdout, logger)

	// Read and emit lines until the requested count or end-of-data.
	for l := 0; l < headConfiguration.lines; l++ {
		line, err := stream.GetLine(reader, []byte{'\n'})
		if err == io.EOF {
			if len(line) > 0 {
				if err := stream.Puts(stdio.Stdout, string(line)+"\n"); err != nil {
					return errors.Wrap(err, "unable to write to standard output")
				}
			}
			break
		} else if err != nil {
			return errors.Wrap(err, "unable to read line")
		}
		if err := stream.Puts(stdio.Stdout, string(line)+"\n"); err != nil {
			return errors.Wrap(err, "unable to write to standard output")
		}
	}

	// Success.
	return nil
}

// headCommand is the head command.
var headCommand = &cobra.Command{
	Use:   "head <path>",
	Short: "Print the leading lines of a file",
	Run:   cmd.Mainify(headMain),
}

// headConfiguration stores configuration for the head command.
var headConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// lines is the number of lines to print.
	lines int
}

func init() {
	// Grab a handle for the command line flags.
	flags := headCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&headConfiguration.help, "help", "h", false, "Show help information")

	// Add a line count flag.
	flags.IntVarP(&headConfiguration.lines, "lines", "n", 10, "Number of lines to print")
}
