package main

import (
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/dustin/go-humanize"

	"github.com/fdstream-io/fdstream/cmd"
	"github.com/fdstream-io/fdstream/pkg/filesystem"
	"github.com/fdstream-io/fdstream/pkg/logging"
	"github.com/fdstream-io/fdstream/pkg/must"
	"github.com/fdstream-io/fdstream/pkg/stdio"
	"github.com/fdstream-io/fdstream/pkg/stream"
)

// catMain is the entry point for the cat command.
func catMain(command *cobra.Command, arguments []string) error {
	// Validate arguments.
	if len(arguments) != 1 {
		return errors.New("expected a single path")
	}

	// Create a logger for the command.
	logger := logging.RootLogger.Sublogger("cat")

	// Open the path for reading, wrap the raw stream in a buffered reader
	// that takes ownership of it, and defer closure of the pair.
	input, err := filesystem.OpenInput(
		arguments[0], filesystem.IntentRead,
		filesystem.WithTransferLatency(catConfiguration.latency),
	)
	if err != nil {
		return errors.Wrap(err, "unable to open input")
	}
	reader := stream.NewBufferedReader(input)
	defer must.Close(reader, logger)

	// Make sure standard output is flushed before the process exits.
	defer must.Flush(stdio.Stdout, logger)

	// Copy the stream to standard output.
	buffer := make([]byte, stream.DefaultBufferCapacity)
	var copied uint64
	for {
		n, err := reader.Read(buffer)
		if n > 0 {
			if _, err := stdio.Stdout.Write(buffer[:n]); err != nil {
				return errors.Wrap(err, "unable to write to standard output")
			}
			copied += uint64(n)
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return errors.Wrap(err, "unable to read input")
		}
	}

	// Report the copied byte count if requested.
	if rootConfiguration.verbose {
		logger.Printf("copied %s", humanize.Bytes(copied))
	}

	// Success.
	return nil
}

// catCommand is the cat command.
var catCommand = &cobra.Command{
	Use:   "cat <path>",
	Short: "Copy a file to standard output through buffered streams",
	Run:   cmd.Mainify(catMain),
}

// catConfiguration stores configuration for the cat command.
var catConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// latency is an artificial delay inserted before each underlying
	// transfer, useful for observing buffering behavior.
	latency time.Duration
}

func init() {
	// Grab a handle for the command line flags.
	flags := catCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&catConfiguration.help, "help", "h", false, "Show help information")

	// Add a transfer latency flag.
	flags.DurationVar(&catConfiguration.latency, "latency", 0, "Artificial delay before each underlying transfer")
}
