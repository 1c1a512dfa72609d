package chat

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
)

// dialClient upgrades one connection and hands back the server-side client.
func dialClient(t *testing.T, h *Hub) (*Client, *websocket.Conn) {
	t.Helper()

	clients := make(chan *Client, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := newClient(h, nil, conn)
		h.Join(c)
		clients <- c
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	peer, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { peer.Close() })

	return <-clients, peer
}

func TestEmitAfterClose(t *testing.T) {
	h := NewHub()
	c, _ := dialClient(t, h)

	c.Close()
	c.Emit(EventMessage, assistantMessage("late"))
	c.Close()
}

func TestBroadcastRacingClose(t *testing.T) {
	h := NewHub()
	c, _ := dialClient(t, h)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			h.Broadcast(EventMessage, assistantMessage("tick"))
		}
	}()
	go func() {
		defer wg.Done()
		c.Close()
	}()
	wg.Wait()

	h.mu.RLock()
	remaining := len(h.clients)
	h.mu.RUnlock()
	if remaining != 0 {
		t.Errorf("hub still tracks %d clients after close", remaining)
	}
}

func TestBroadcastReachesClient(t *testing.T) {
	h := NewHub()
	c, peer := dialClient(t, h)
	go c.writePump()
	defer c.Close()

	h.Broadcast(EventMCPList, []Endpoint{{URI: "https://a.example.com", Protocol: "matrix"}})

	var env Envelope
	if err := peer.ReadJSON(&env); err != nil {
		t.Fatalf("read: %v", err)
	}
	if env.Event != EventMCPList {
		t.Errorf("event = %q, want %q", env.Event, EventMCPList)
	}
}
