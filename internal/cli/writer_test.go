package cli

import (
	"bytes"
	"testing"
)

func TestWriterListener(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterListener(8080, &buf)

	l.OnStart()
	l.OnReceive("ping")
	l.OnSend("pong")
	l.OnStop()

	want := "Starting server and listening to port 8080\n" +
		"Received message: ping\n" +
		"Sent message: pong\n" +
		"Stopping server\n"
	if got := buf.String(); got != want {
		t.Errorf("output:\n%q\nwant:\n%q", got, want)
	}
}

func TestWriterListener_EmptyMessages(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterListener(8080, &buf)

	l.OnReceive("")
	l.OnSend("")

	want := "Received no message\nSent no message\n"
	if got := buf.String(); got != want {
		t.Errorf("output:\n%q\nwant:\n%q", got, want)
	}
}
