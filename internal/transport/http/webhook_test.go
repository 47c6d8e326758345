package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"oasis-lms/internal/app"
)

func newTestHandler(teachers ...string) *WebhookHandler {
	core := app.NewCore(nil, app.Passthrough{}, "")
	return NewWebhookHandler(core.Router, NewTeacherSet(teachers))
}

func postForm(t *testing.T, server *httptest.Server, from, body string) *http.Response {
	t.Helper()
	form := url.Values{}
	form.Set("From", from)
	form.Set("Body", body)
	resp, err := http.Post(server.URL+"/webhook", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	return resp
}

func TestWebhookWrapsReplyInEnvelope(t *testing.T) {
	handler := newTestHandler()
	server := httptest.NewServer(http.HandlerFunc(handler.ServeWebhook))
	defer server.Close()

	resp := postForm(t, server, "+1555", "hello")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/xml" {
		t.Fatalf("expected text/xml, got %q", ct)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	got := string(raw)
	want := "<Response><Message>Oasis LMS received your message: &#39;hello&#39;. You have sent 1 messages so far.</Message></Response>"
	if !strings.Contains(got, want) {
		t.Fatalf("expected envelope %q in %q", want, got)
	}
}

func TestWebhookRejectsEmptyBody(t *testing.T) {
	handler := newTestHandler()
	server := httptest.NewServer(http.HandlerFunc(handler.ServeWebhook))
	defer server.Close()

	resp := postForm(t, server, "+1555", "   ")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty body, got %d", resp.StatusCode)
	}
}

func TestWebhookTagsTeachersFromAllowList(t *testing.T) {
	handler := newTestHandler("+1999")
	server := httptest.NewServer(http.HandlerFunc(handler.ServeWebhook))
	defer server.Close()

	resp := postForm(t, server, "+1999", "broadcast hi")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(raw), "No students have interacted yet.") {
		t.Fatalf("expected teacher command handling, got %q", string(raw))
	}
}
