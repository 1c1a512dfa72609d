package chat

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// In production, restrict to configured origins.
		return true
	},
}

// Handle upgrades the request and starts the connection pumps. The user
// identifies itself afterwards with an authenticate event.
func Handle(h *Hub, relay *Relay, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	log.Println("chat: client connected")

	c := newClient(h, relay, conn)
	h.Join(c)
	go c.writePump()
	go c.readPump()
}
