package shared

import (
	"net"
	"testing"

	"github.com/rs/zerolog"
)

func TestWiretapConn_Passthrough(t *testing.T) {
	client, srvSide := net.Pipe()
	defer client.Close()

	tapped := NewWiretapConn(srvSide, zerolog.Nop())
	defer tapped.Close()

	go func() {
		client.Write([]byte("ping"))
	}()

	buf := make([]byte, 16)
	n, err := tapped.Read(buf)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if string(buf[:n]) != "ping" {
		t.Errorf("Read got %q, want %q", buf[:n], "ping")
	}

	done := make(chan string, 1)
	go func() {
		out := make([]byte, 16)
		n, _ := client.Read(out)
		done <- string(out[:n])
	}()
	if _, err := tapped.Write([]byte("pong")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if got := <-done; got != "pong" {
		t.Errorf("peer read %q, want %q", got, "pong")
	}
}

func TestWiretapConn_CloseWriteWithoutSupport(t *testing.T) {
	client, srvSide := net.Pipe()
	defer client.Close()
	defer srvSide.Close()

	tapped := NewWiretapConn(srvSide, zerolog.Nop())

	// net.Pipe has no write-side close; the wrapper must tolerate that.
	if err := tapped.CloseWrite(); err != nil {
		t.Errorf("CloseWrite returned error: %v", err)
	}
}
