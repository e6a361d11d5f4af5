package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ChatSocketMessage is the frame format for the websocket chat channel.
// Client frames carry type "message"; server frames carry "response",
// "connected" or "error".
type ChatSocketMessage struct {
	Type string `json:"type"`
	Data string `json:"data,omitempty"`
	End  bool   `json:"end,omitempty"`
}

// handleChatWS runs an interview conversation over a websocket. Each client
// message produces exactly one response frame; the connection closes after
// the end-of-interview frame.
func (s *Server) handleChatWS(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		http.Error(w, "user id required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade to websocket", "error", err)
		return
	}
	defer conn.Close()

	slog.Info("chat websocket connected", "user_id", userID)

	s.sendChatMessage(conn, ChatSocketMessage{
		Type: "connected",
		Data: "Connected to interview session",
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("websocket read error", "error", err, "user_id", userID)
			}
			break
		}

		var msg ChatSocketMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			slog.Debug("invalid chat frame", "error", err)
			s.sendChatMessage(conn, ChatSocketMessage{Type: "error", Data: "invalid message format"})
			continue
		}

		if msg.Type != "message" || strings.TrimSpace(msg.Data) == "" {
			s.sendChatMessage(conn, ChatSocketMessage{Type: "error", Data: "expected a non-empty message frame"})
			continue
		}

		response, ended, err := s.interviews.Chat(r.Context(), userID, msg.Data)
		if err != nil {
			slog.Error("chat turn failed", "error", err, "user_id", userID)
			s.sendChatMessage(conn, ChatSocketMessage{Type: "response", Data: chatErrorResponse})
			continue
		}

		if err := s.sendChatMessage(conn, ChatSocketMessage{
			Type: "response",
			Data: response,
			End:  ended,
		}); err != nil {
			break
		}

		if ended {
			break
		}
	}

	slog.Info("chat websocket disconnected", "user_id", userID)
}

func (s *Server) sendChatMessage(conn *websocket.Conn, msg ChatSocketMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal chat frame", "error", err)
		return err
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		slog.Debug("failed to send chat frame", "error", err)
		return err
	}
	return nil
}
