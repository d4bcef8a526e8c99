//go:build !windows

package filesystem

import (
	"errors"
	"io"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/fdstream-io/fdstream/pkg/stream"
)

// pipe creates a raw stream pair around a POSIX pipe.
func pipe(t *testing.T, options ...Option) (*Input, *Output) {
	t.Helper()
	var descriptors [2]int
	if err := unix.Pipe(descriptors[:]); err != nil {
		t.Fatal("unable to create pipe:", err)
	}
	return NewInput(descriptors[0], options...), NewOutput(descriptors[1], options...)
}

func TestPipeTransfer(t *testing.T) {
	input, output := pipe(t)
	defer input.Close()

	if n, err := output.Write([]byte("message")); err != nil {
		t.Fatal("write failed:", err)
	} else if n != 7 {
		t.Fatalf("unexpected write count: %d != 7", n)
	}
	if err := output.Close(); err != nil {
		t.Fatal("close failed:", err)
	}

	buffer := make([]byte, 16)
	if n, err := input.Read(buffer); err != nil {
		t.Fatal("read failed:", err)
	} else if string(buffer[:n]) != "message" {
		t.Fatalf("read returned unexpected data: %q", buffer[:n])
	}

	// With the write end closed, the pipe signals end-of-data, and keeps
	// signaling it.
	for i := 0; i < 2; i++ {
		if _, err := input.Read(buffer); err != io.EOF {
			t.Fatalf("end-of-data not signaled: %v", err)
		}
	}
}

func TestOutputBrokenConnection(t *testing.T) {
	input, output := pipe(t)
	defer output.Close()

	// Close the read end and verify that writing surfaces a failure carrying
	// EPIPE rather than succeeding or reporting a short write.
	if err := input.Close(); err != nil {
		t.Fatal("close failed:", err)
	}
	if _, err := output.Write([]byte("doomed")); err == nil {
		t.Fatal("write to broken pipe did not fail")
	} else if !errors.Is(err, unix.EPIPE) {
		t.Errorf("failure does not carry EPIPE: %v", err)
	}
}

func TestZeroLengthTransfers(t *testing.T) {
	input, output := pipe(t)
	defer input.Close()
	defer output.Close()

	// Zero-length requests are short-circuited without a transfer.
	if n, err := output.Write(nil); n != 0 || err != nil {
		t.Errorf("unexpected zero-length write result: %d, %v", n, err)
	}
	if n, err := input.Read(nil); n != 0 || err != nil {
		t.Errorf("unexpected zero-length read result: %d, %v", n, err)
	}
}

func TestInputReadFailureReportsZeroCount(t *testing.T) {
	// Opening a directory for reading succeeds, but reading from it fails
	// with EISDIR. The failure must report a zero count so that io.Reader
	// consumers (and buffer cursors computed from the count) stay valid.
	input, err := OpenInput(t.TempDir(), IntentRead)
	if err != nil {
		t.Fatal("unable to open directory:", err)
	}
	defer input.Close()

	if n, err := input.Read(make([]byte, 8)); err == nil {
		t.Fatal("directory read did not fail")
	} else if n != 0 {
		t.Fatalf("failed read reported non-zero count: %d", n)
	}
}

func TestBufferedReaderOverFailingInput(t *testing.T) {
	// Wrap a raw stream whose reads always fail and verify that every read
	// variant keeps surfacing the failure instead of fabricating bytes or
	// corrupting cursor state.
	input, err := OpenInput(t.TempDir(), IntentRead)
	if err != nil {
		t.Fatal("unable to open directory:", err)
	}
	reader := stream.NewBufferedReaderCapacity(input, 8)
	defer reader.Close()

	if n, err := reader.Read(make([]byte, 4)); err == nil || err == io.EOF {
		t.Fatalf("read did not surface the failure: %d, %v", n, err)
	} else if n != 0 {
		t.Fatalf("failed read reported non-zero count: %d", n)
	}
	if _, err := reader.ReadByte(); err == nil || err == io.EOF {
		t.Errorf("byte read after failed refill did not surface the failure: %v", err)
	}
	if n, err := reader.Read(make([]byte, 4)); err == nil || err == io.EOF || n != 0 {
		t.Errorf("read after failed refill did not surface the failure: %d, %v", n, err)
	}
}

func TestTransferLatencyOption(t *testing.T) {
	// The latency hook only affects timing, so just verify that transfers
	// still succeed with it enabled.
	input, output := pipe(t, WithTransferLatency(1))
	defer input.Close()
	defer output.Close()

	if _, err := output.Write([]byte("x")); err != nil {
		t.Fatal("write failed:", err)
	}
	buffer := make([]byte, 1)
	if n, err := input.Read(buffer); err != nil || n != 1 || buffer[0] != 'x' {
		t.Fatalf("unexpected read result: %d, %v", n, err)
	}
}
