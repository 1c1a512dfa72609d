package chat

import (
	"encoding/json"
	"time"
)

// Wire envelope, both directions. Client events: authenticate, message,
// register-mcp, list-mcp. Server events: message, mcp-list,
// suggest-mcp-registration.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

const (
	EventAuthenticate        = "authenticate"
	EventMessage             = "message"
	EventRegisterMCP         = "register-mcp"
	EventListMCP             = "list-mcp"
	EventMCPList             = "mcp-list"
	EventSuggestRegistration = "suggest-mcp-registration"
)

type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	UserID    *uint     `json:"userId,omitempty"`
}

func assistantMessage(content string) Message {
	return Message{Role: "assistant", Content: content, Timestamp: time.Now()}
}

func systemMessage(content string) Message {
	return Message{Role: "system", Content: content, Timestamp: time.Now()}
}
