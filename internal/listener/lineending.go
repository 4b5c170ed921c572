package listener

import (
	"bytes"
	"io"
)

// lineEndingReadWriter adapts a network stream to the session layer's
// \n-only convention. Reads fold \r\n (telnet) and bare \r (ssh without a
// pty) down to \n; writes expand \n back to \r\n.
type lineEndingReadWriter struct {
	rw io.ReadWriter
}

func newLineEndingReadWriter(rw io.ReadWriter) io.ReadWriter {
	return &lineEndingReadWriter{rw: rw}
}

func (c *lineEndingReadWriter) Read(p []byte) (int, error) {
	n, err := c.rw.Read(p)
	if n > 0 {
		data := bytes.ReplaceAll(p[:n], []byte("\r\n"), []byte("\n"))
		data = bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
		n = copy(p, data)
	}
	return n, err
}

func (c *lineEndingReadWriter) Write(p []byte) (int, error) {
	_, err := c.rw.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n")))
	// Report the caller's length; the expansion is invisible to it.
	return len(p), err
}
