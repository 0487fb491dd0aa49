package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialTestHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	}))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Registration goes through the hub's run loop; wait for it so the
	// broadcast below cannot race ahead of the register.
	deadline := time.Now().Add(5 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("websocket client never registered with hub")
		}
		time.Sleep(10 * time.Millisecond)
	}
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) *TransactionEvent {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read websocket message: %v", err)
	}

	var msg struct {
		Type string           `json:"type"`
		Data TransactionEvent `json:"data"`
	}
	if err := json.Unmarshal(payload, &msg); err != nil {
		t.Fatalf("failed to unmarshal frame %s: %v", payload, err)
	}
	if msg.Type != "transaction" {
		t.Fatalf("frame type = %q, want %q", msg.Type, "transaction")
	}
	return &msg.Data
}

func TestHub_BroadcastsTransactionEvents(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dialTestHub(t, hub)

	hub.OnReceive("ping")
	hub.OnSend("pong")

	got := readEvent(t, conn)
	if got.Event != "receive" || got.Message != "ping" {
		t.Errorf("first event = %s/%q, want receive/ping", got.Event, got.Message)
	}
	got = readEvent(t, conn)
	if got.Event != "send" || got.Message != "pong" {
		t.Errorf("second event = %s/%q, want send/pong", got.Event, got.Message)
	}
}

func TestHub_LifecycleEvents(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dialTestHub(t, hub)

	hub.OnStart()
	hub.OnStop()

	got := readEvent(t, conn)
	if got.Event != "start" || got.Message != "" {
		t.Errorf("first event = %s/%q, want start with no message", got.Event, got.Message)
	}
	got = readEvent(t, conn)
	if got.Event != "stop" {
		t.Errorf("second event = %s, want stop", got.Event)
	}
}

func TestHub_DropsEventsWithoutClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// No registered clients: hooks must not block or panic.
	for i := 0; i < 200; i++ {
		hub.OnReceive("ping")
	}
}
