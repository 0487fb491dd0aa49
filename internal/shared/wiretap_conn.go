// FILE: internal/shared/wiretap_conn.go
package shared

import (
	"net"

	"github.com/rs/zerolog"
)

// WiretapConn is a net.Conn wrapper that traces every raw Read, Write and
// Close on the underlying connection at debug level. It is purely
// observational and never alters the data passing through.
type WiretapConn struct {
	net.Conn
	log zerolog.Logger
}

// NewWiretapConn wraps conn with a tracing layer bound to the given logger.
func NewWiretapConn(conn net.Conn, log zerolog.Logger) *WiretapConn {
	return &WiretapConn{
		Conn: conn,
		log:  log,
	}
}

// Read reads from the underlying connection and traces the raw bytes.
func (c *WiretapConn) Read(b []byte) (int, error) {
	n, err := c.Conn.Read(b)
	ev := c.log.Debug().Int("n", n)
	if n > 0 {
		ev = ev.Hex("data", b[:n])
	}
	if err != nil {
		ev = ev.AnErr("read_err", err)
	}
	ev.Msg("wiretap: read")
	return n, err
}

// Write writes to the underlying connection and traces the raw bytes.
func (c *WiretapConn) Write(b []byte) (int, error) {
	n, err := c.Conn.Write(b)
	ev := c.log.Debug().Int("n", n)
	if n > 0 {
		ev = ev.Hex("data", b[:n])
	}
	if err != nil {
		ev = ev.AnErr("write_err", err)
	}
	ev.Msg("wiretap: write")
	return n, err
}

// CloseWrite half-closes the write side when the underlying connection
// supports it, tracing the event.
func (c *WiretapConn) CloseWrite() error {
	cw, ok := c.Conn.(interface{ CloseWrite() error })
	if !ok {
		return nil
	}
	err := cw.CloseWrite()
	c.log.Debug().AnErr("close_write_err", err).Msg("wiretap: close write")
	return err
}

// Close closes the underlying connection and traces the event.
func (c *WiretapConn) Close() error {
	err := c.Conn.Close()
	c.log.Debug().AnErr("close_err", err).Msg("wiretap: close")
	return err
}
