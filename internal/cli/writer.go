package cli

import (
	"fmt"
	"io"

	"tcpresponder/internal/server"
)

// WriterListener is a transaction listener which writes the context of each
// server event to a console writer.
type WriterListener struct {
	port   int
	writer io.Writer
}

var _ server.TransactionListener = (*WriterListener)(nil)

// NewWriterListener creates a listener reporting events for a server on the
// given port to w.
func NewWriterListener(port int, w io.Writer) *WriterListener {
	return &WriterListener{
		port:   port,
		writer: w,
	}
}

func (l *WriterListener) OnStart() {
	fmt.Fprintf(l.writer, "Starting server and listening to port %d\n", l.port)
}

func (l *WriterListener) OnStop() {
	fmt.Fprintln(l.writer, "Stopping server")
}

func (l *WriterListener) OnReceive(message string) {
	if message == "" {
		fmt.Fprintln(l.writer, "Received no message")
	} else {
		fmt.Fprintf(l.writer, "Received message: %s\n", message)
	}
}

func (l *WriterListener) OnSend(message string) {
	if message == "" {
		fmt.Fprintln(l.writer, "Sent no message")
	} else {
		fmt.Fprintf(l.writer, "Sent message: %s\n", message)
	}
}
