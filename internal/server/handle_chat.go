package server

import (
	"net/http"
	"strconv"

	"github.com/fanmateapp/fanmate/internal/assistant"
	"github.com/fanmateapp/fanmate/internal/worldcup"
)

// ChatRequest is the request body for POST /api/chat.
type ChatRequest struct {
	UserID  *int   `json:"user_id"`
	Message string `json:"message"`
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// ChatHistoryResponse is the stored transcript for one user.
type ChatHistoryResponse struct {
	ChatHistory []assistant.Message `json:"chat_history"`
}

// ClearChatRequest is the request body for POST /api/chat/history/clear.
type ClearChatRequest struct {
	UserID *int `json:"user_id"`
}

func handleChat(store *worldcup.Store, a *assistant.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := readJSON(r, &req); err != nil || req.UserID == nil || req.Message == "" {
			writeError(w, http.StatusBadRequest, "message and user_id are required")
			return
		}

		if req.Message == assistant.WelcomeSentinel {
			reply, err := a.Welcome(r.Context(), *req.UserID)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			writeJSON(w, http.StatusOK, ChatResponse{Response: reply})
			return
		}

		fan, ok := store.FanByID(*req.UserID)
		if !ok {
			writeError(w, http.StatusNotFound, "fan not found")
			return
		}

		reply, err := a.Chat(r.Context(), fan, req.Message)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, ChatResponse{Response: reply})
	}
}

func handleChatHistory(a *assistant.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(r.URL.Query().Get("user_id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "user_id is required")
			return
		}

		msgs, err := a.History().Messages(r.Context(), userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		// Refreshing the welcome screen re-records the greeting; only the
		// first occurrence is shown.
		out := make([]assistant.Message, 0, len(msgs))
		welcomeSeen := false
		for _, m := range msgs {
			if m.Role == assistant.RoleAssistant && m.Content == assistant.WelcomeMessage {
				if welcomeSeen {
					continue
				}
				welcomeSeen = true
			}
			out = append(out, m)
		}

		writeJSON(w, http.StatusOK, ChatHistoryResponse{ChatHistory: out})
	}
}

func handleClearChatHistory(a *assistant.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClearChatRequest
		if err := readJSON(r, &req); err != nil || req.UserID == nil {
			writeError(w, http.StatusBadRequest, "user_id is required")
			return
		}

		if err := a.History().Clear(r.Context(), *req.UserID); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
