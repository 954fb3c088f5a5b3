package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cardbook/cardbook-backend/internal/websocket"
)

func TestWebSocketHandler_CheckOrigin(t *testing.T) {
	hub := websocket.NewHub()
	handler := NewWebSocketHandler(hub, []string{"http://localhost:3000", "https://cardbook.app"})

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"no origin header", "", true},
		{"allowed origin", "http://localhost:3000", true},
		{"allowed secondary origin", "https://cardbook.app", true},
		{"disallowed origin", "https://evil.example.com", false},
		{"scheme mismatch", "https://localhost:3000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			if got := handler.checkOrigin(req); got != tt.want {
				t.Errorf("checkOrigin(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}
