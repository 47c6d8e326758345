package http

import (
	"encoding/xml"
	"log"
	"net/http"
	"strings"

	"oasis-lms/internal/app"
)

// WebhookHandler accepts channel webhook deliveries: one form-encoded
// POST per inbound message carrying the sender identity (From) and the
// plain-text body (Body). The reply is wrapped in a messaging-response
// XML envelope the channel renders back to the sender.
type WebhookHandler struct {
	router   *app.Router
	teachers TeacherSet
}

func NewWebhookHandler(router *app.Router, teachers TeacherSet) *WebhookHandler {
	return &WebhookHandler{router: router, teachers: teachers}
}

// messagingResponse mirrors the TwiML reply document shape.
type messagingResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

func (h *WebhookHandler) ServeWebhook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	body := strings.TrimSpace(r.PostFormValue("Body"))
	from := r.PostFormValue("From")
	if body == "" {
		http.Error(w, "missing message body", http.StatusBadRequest)
		return
	}
	if from == "" {
		http.Error(w, "missing sender", http.StatusBadRequest)
		return
	}

	reply := h.router.Route(from, h.teachers.RoleFor(from), body)

	w.Header().Set("Content-Type", "text/xml")
	w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(messagingResponse{Message: reply}); err != nil {
		log.Printf("webhook encode failed: %v", err)
	}
}
