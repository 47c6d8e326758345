package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"oasis-lms/internal/app"
)

// WSHandler serves a direct chat transport over WebSocket for clients
// that are not behind a messaging channel. One JSON frame in, one
// reply frame out, same core routing as the webhook.
type WSHandler struct {
	router   *app.Router
	teachers TeacherSet
	upgrader websocket.Upgrader
}

func NewWSHandler(router *app.Router, teachers TeacherSet) *WSHandler {
	return &WSHandler{
		router:   router,
		teachers: teachers,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type messagePayload struct {
	Text string `json:"text"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type replyPayload struct {
	Text string `json:"text"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the connection and relays messages into the router.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "missing userId", http.StatusBadRequest)
		return
	}
	role := h.teachers.RoleFor(userID)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Single writer goroutine so replies never interleave on the wire.
	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "message":
			var payload messagePayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid message payload"}}
				continue
			}
			if strings.TrimSpace(payload.Text) == "" {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "empty message body"}}
				continue
			}
			reply := h.router.Route(userID, role, payload.Text)
			send <- outboundMessage[any]{Type: "reply", Payload: replyPayload{Text: reply}}
		default:
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
	}

	close(send)
	<-writerDone
}
