package stream

import (
	"io"
)

// PutChar writes a single byte to the writer, preferring the writer's own
// single-byte method when it provides one.
func PutChar(writer io.Writer, c byte) error {
	if byteWriter, ok := writer.(io.ByteWriter); ok {
		return byteWriter.WriteByte(c)
	}
	_, err := writer.Write([]byte{c})
	return err
}

// Puts writes the full byte content of a string to the writer.
func Puts(writer io.Writer, s string) error {
	if stringWriter, ok := writer.(io.StringWriter); ok {
		_, err := stringWriter.WriteString(s)
		return err
	}
	_, err := writer.Write([]byte(s))
	return err
}
