package assistant

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"dreamtrip/utils"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

// GET /ws/assistant
// Socket transport for the chat pipeline. Each incoming frame is one chat
// request and gets one reply frame with the same shape as the REST endpoint.
// Anonymous connections work, they just skip personalization.
func (s *Service) ChatWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	for {
		var req chatRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			if err := conn.WriteJSON(utils.M{"error": "Message is required", "success": false}); err != nil {
				return
			}
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		body, _ := s.respond(ctx, userID, req)
		cancel()

		if err := conn.WriteJSON(body); err != nil {
			log.Printf("assistant: ws write failed: %v", err)
			return
		}
	}
}
