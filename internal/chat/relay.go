package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

const assistantSystemPrompt = "You are RCB Assistant, an expert in renovation and construction projects in India. You provide helpful advice about home improvement, construction costs, finding contractors, and managing renovation projects. Provide information specific to the Indian market in terms of materials, costs, and practices. Keep your responses focused on the construction and renovation domain."

const registrationSystemPrompt = "You are an assistant helping with relay server integration. Extract any potential server details from the user message. If the user is asking about connecting to a server but doesn't provide specific details, suggest they might want to connect to a Matrix server. Respond with JSON in this format: {\"suggestRegistration\": boolean, \"serverData\": {\"uri\": string, \"protocol\": string}}"

// completer is the slice of the AI client the relay needs.
type completer interface {
	Complete(ctx context.Context, system, user string, jsonMode bool) (string, error)
}

// Relay routes each inbound message to the first registered endpoint and
// falls back to the language model when none is registered or the call
// fails. A single attempt, no retry.
type Relay struct {
	registry *Registry
	model    completer
	http     *http.Client
}

func NewRelay(registry *Registry, model completer) *Relay {
	return &Relay{
		registry: registry,
		model:    model,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *Relay) Registry() *Registry {
	return r.registry
}

func (r *Relay) HandleMessage(ctx context.Context, c *Client, text string) {
	if r.tryRouteToEndpoint(ctx, c, text) {
		return
	}

	if looksLikeRegistrationRequest(text) {
		r.handleRegistrationRequest(ctx, c, text)
		return
	}

	reply, err := r.model.Complete(ctx, assistantSystemPrompt, text, false)
	if err != nil {
		log.Printf("chat: model error: %v", err)
		c.Emit(EventMessage, assistantMessage("I'm sorry, I encountered an error processing your request. Please try again later."))
		return
	}

	c.Emit(EventMessage, assistantMessage(reply))
}

// HandleRegister validates and stores an endpoint, then broadcasts the
// updated list to every connected client.
func (r *Relay) HandleRegister(c *Client, e Endpoint) {
	if !r.registry.Register(e) {
		c.Emit(EventMessage, systemMessage("Failed to register relay server. Please check the server details and try again."))
		return
	}

	log.Printf("chat: registered relay server %s (%s)", e.URI, e.Protocol)

	c.hub.Broadcast(EventMCPList, r.registry.List())
	c.Emit(EventMessage, systemMessage(
		fmt.Sprintf("Successfully connected to %s server at %s", e.Protocol, e.URI),
	))
}

func (r *Relay) HandleList(c *Client) {
	c.Emit(EventMCPList, r.registry.List())
}

func (r *Relay) tryRouteToEndpoint(ctx context.Context, c *Client, text string) bool {
	endpoint, ok := r.registry.First()
	if !ok {
		return false
	}

	payload, err := json.Marshal(map[string]string{
		"message":   text,
		"sessionId": c.SessionID(),
		"protocol":  endpoint.Protocol,
		"apiKey":    endpoint.APIKey,
	})
	if err != nil {
		return false
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		strings.TrimRight(endpoint.URI, "/")+"/api/chat",
		bytes.NewBuffer(payload),
	)
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		log.Printf("chat: failed to route message to %s: %v", endpoint.URI, err)
		return false
	}
	defer resp.Body.Close()

	var reply struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil || reply.Message == "" {
		return false
	}

	c.Emit(EventMessage, assistantMessage(reply.Message))
	return true
}

func (r *Relay) handleRegistrationRequest(ctx context.Context, c *Client, text string) {
	content, err := r.model.Complete(ctx, registrationSystemPrompt, text, true)
	if err != nil {
		log.Printf("chat: registration extraction error: %v", err)
		c.Emit(EventMessage, assistantMessage("I encountered an error while processing your server connection request. Please try again later."))
		return
	}

	var result struct {
		SuggestRegistration bool     `json:"suggestRegistration"`
		ServerData          Endpoint `json:"serverData"`
	}
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		c.Emit(EventMessage, assistantMessage("To connect to a relay server, click on the server icon in the top right of this chat window and enter the server details."))
		return
	}

	if result.SuggestRegistration && result.ServerData.Valid() {
		c.Emit(EventSuggestRegistration, result.ServerData)
		c.Emit(EventMessage, assistantMessage(
			fmt.Sprintf("I can help you connect to a %s server. Please check the dialog that appeared to complete the connection.", result.ServerData.Protocol),
		))
		return
	}

	c.Emit(EventMessage, assistantMessage("To connect to a relay server, click on the server icon in the top right of this chat window and enter the server details. I can help you manage connections to Matrix, XMPP, IRC or other compatible protocol servers."))
}

func looksLikeRegistrationRequest(text string) bool {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "connect") {
		return false
	}
	return strings.Contains(lower, "server") ||
		strings.Contains(lower, "protocol") ||
		strings.Contains(lower, "mcp")
}
