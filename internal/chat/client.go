package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/RenoBuildCo/reno-marketplace/internal/models"
)

// Client is one live websocket connection. The current user is set once
// by an authenticate event; there is no re-authentication or expiry.
type Client struct {
	conn  *websocket.Conn
	hub   *Hub
	relay *Relay

	sessionID string
	send      chan []byte

	mu     sync.Mutex
	user   *models.User
	closed bool

	closeOnce sync.Once
}

func newClient(h *Hub, relay *Relay, conn *websocket.Conn) *Client {
	return &Client{
		conn:      conn,
		hub:       h,
		relay:     relay,
		sessionID: uuid.NewString(),
		send:      make(chan []byte, 256),
	}
}

func (c *Client) SessionID() string {
	return c.sessionID
}

func (c *Client) User() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

func (c *Client) setUser(u *models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = u
}

// Emit queues an enveloped event; a full send buffer drops the client.
func (c *Client) Emit(event string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		return
	}
	b, err := json.Marshal(Envelope{Event: event, Data: raw})
	if err != nil {
		return
	}
	c.trySend(b)
}

// trySend queues bytes unless the client is closed. The closed check and
// channel send happen under the mutex so a concurrent Close cannot leave
// us sending on a closed channel.
func (c *Client) trySend(b []byte) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	select {
	case c.send <- b:
		c.mu.Unlock()
	default:
		c.mu.Unlock()
		go c.Close()
	}
}

func (c *Client) readPump() {
	defer c.Close()
	c.conn.SetReadLimit(8 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			continue
		}
		c.dispatch(env)
	}
}

func (c *Client) dispatch(env Envelope) {
	switch env.Event {
	case EventAuthenticate:
		var u models.User
		if err := json.Unmarshal(env.Data, &u); err != nil {
			return
		}
		c.setUser(&u)
		log.Printf("chat: user authenticated: %s", u.Username)
		c.Emit(EventMessage, assistantMessage(
			fmt.Sprintf("Hello %s! Welcome to RCB Assistant. How can I help you with your renovation or construction project today?", u.Username),
		))

	case EventMessage:
		var text string
		if err := json.Unmarshal(env.Data, &text); err != nil {
			return
		}
		c.relay.HandleMessage(context.Background(), c, text)

	case EventRegisterMCP:
		var e Endpoint
		if err := json.Unmarshal(env.Data, &e); err != nil {
			return
		}
		c.relay.HandleRegister(c, e)

	case EventListMCP:
		c.relay.HandleList(c)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.hub.Leave(c)
		c.mu.Lock()
		c.closed = true
		close(c.send)
		c.mu.Unlock()
		_ = c.conn.Close()
	})
}
