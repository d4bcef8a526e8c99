//go:build !windows

package filesystem

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/fdstream-io/fdstream/pkg/stream"
)

func TestOpenInputNonExistentPath(t *testing.T) {
	_, err := OpenInput(filepath.Join(t.TempDir(), "missing"), IntentRead)
	if err == nil {
		t.Fatal("open did not fail for non-existent path")
	}
	if !errors.Is(err, unix.ENOENT) {
		t.Errorf("failure does not carry the originating error code: %v", err)
	}
}

func TestOpenIntentRejection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if _, err := OpenInput(path, IntentWrite); err == nil {
		t.Error("input open did not reject a write-only intent")
	}
	if _, err := OpenInput(path, IntentAppend); err == nil {
		t.Error("input open did not reject an append intent")
	}
	if _, err := OpenOutput(path, IntentRead); err == nil {
		t.Error("output open did not reject a read-only intent")
	}
}

func TestInputReadsVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")

	writer, err := OpenWriter(path, IntentWrite)
	if err != nil {
		t.Fatal("unable to open writer:", err)
	}
	if _, err := writer.Write([]byte("abcdef")); err != nil {
		t.Fatal("write failed:", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal("close failed:", err)
	}

	input, err := OpenInput(path, IntentRead)
	if err != nil {
		t.Fatal("unable to open input:", err)
	}
	defer input.Close()

	// A regular file serves the full content in one transfer and signals
	// end-of-data on the next.
	buffer := make([]byte, 16)
	if n, err := input.Read(buffer); err != nil {
		t.Fatal("read failed:", err)
	} else if string(buffer[:n]) != "abcdef" {
		t.Fatalf("read returned unexpected data: %q", buffer[:n])
	}
	if _, err := input.Read(buffer); err != io.EOF {
		t.Fatalf("end-of-data not signaled: %v", err)
	}
}

func TestInputCloseReleasesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	writer, err := OpenWriter(path, IntentWrite)
	if err != nil {
		t.Fatal("unable to open writer:", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal("close failed:", err)
	}

	input, err := OpenInput(path, IntentRead)
	if err != nil {
		t.Fatal("unable to open input:", err)
	}
	if err := input.Close(); err != nil {
		t.Fatal("close failed:", err)
	}
	if err := input.Close(); err == nil {
		t.Error("second close did not fail")
	}
}

func TestAppendIntent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")

	writer, err := OpenWriter(path, IntentWrite)
	if err != nil {
		t.Fatal("unable to open writer:", err)
	}
	if err := stream.Puts(writer, "abc"); err != nil {
		t.Fatal("write failed:", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal("close failed:", err)
	}

	appender, err := OpenWriter(path, IntentAppend)
	if err != nil {
		t.Fatal("unable to open appender:", err)
	}
	if err := stream.Puts(appender, "def"); err != nil {
		t.Fatal("write failed:", err)
	}
	if err := appender.Close(); err != nil {
		t.Fatal("close failed:", err)
	}

	input, err := OpenInput(path, IntentRead)
	if err != nil {
		t.Fatal("unable to open input:", err)
	}
	defer input.Close()
	if data, err := stream.ReadAll(input); err != nil {
		t.Fatal("readall failed:", err)
	} else if string(data) != "abcdef" {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestWriteIntentTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")

	for _, content := range []string{"longer initial content", "short"} {
		writer, err := OpenWriter(path, IntentWrite)
		if err != nil {
			t.Fatal("unable to open writer:", err)
		}
		if err := stream.Puts(writer, content); err != nil {
			t.Fatal("write failed:", err)
		}
		if err := writer.Close(); err != nil {
			t.Fatal("close failed:", err)
		}
	}

	input, err := OpenInput(path, IntentRead)
	if err != nil {
		t.Fatal("unable to open input:", err)
	}
	defer input.Close()
	if data, err := stream.ReadAll(input); err != nil {
		t.Fatal("readall failed:", err)
	} else if string(data) != "short" {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestReadWriteIntent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")

	output, err := OpenOutput(path, IntentReadWrite)
	if err != nil {
		t.Fatal("unable to open output:", err)
	}
	if _, err := output.Write([]byte("data")); err != nil {
		t.Fatal("write failed:", err)
	}
	if err := output.Close(); err != nil {
		t.Fatal("close failed:", err)
	}

	input, err := OpenInput(path, IntentReadWrite)
	if err != nil {
		t.Fatal("unable to open input:", err)
	}
	defer input.Close()
	if data, err := stream.ReadAll(input); err != nil {
		t.Fatal("readall failed:", err)
	} else if string(data) != "data" {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestWriteReadGetLineScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")

	// Write two lines through a fully buffered writer and close it, which
	// must flush the pending bytes.
	writer, err := OpenWriter(path, IntentWrite)
	if err != nil {
		t.Fatal("unable to open writer:", err)
	}
	if err := stream.Puts(writer, "Hello!\n"); err != nil {
		t.Fatal("write failed:", err)
	}
	if err := stream.Puts(writer, "World!\n"); err != nil {
		t.Fatal("write failed:", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal("close failed:", err)
	}

	// Read the lines back.
	input, err := OpenInput(path, IntentRead)
	if err != nil {
		t.Fatal("unable to open input:", err)
	}
	reader := stream.NewBufferedReader(input)
	defer reader.Close()

	delimiter := []byte{'\n'}
	if line, err := stream.GetLine(reader, delimiter); err != nil {
		t.Fatal("getline failed:", err)
	} else if !bytes.Equal(line, []byte("Hello!")) {
		t.Fatalf("unexpected first line: %q", line)
	}
	if line, err := stream.GetLine(reader, delimiter); err != nil {
		t.Fatal("getline failed:", err)
	} else if !bytes.Equal(line, []byte("World!")) {
		t.Fatalf("unexpected second line: %q", line)
	}
	if line, err := stream.GetLine(reader, delimiter); err != io.EOF {
		t.Fatalf("end-of-data not signaled: %v", err)
	} else if len(line) != 0 {
		t.Fatalf("unexpected third line: %q", line)
	}
}

func TestUnknownIntent(t *testing.T) {
	if _, err := Intent(42).flags(); err == nil {
		t.Error("unknown intent did not fail flag conversion")
	}
}
