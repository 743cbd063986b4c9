// Package chatstream pushes live events to connected browser tabs over
// WebSocket. Itinerary saves and assistant replies fan out to every open
// tab of the same user, which keeps the planner and chat widget in sync
// without any client-side polling.
package chatstream

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"dreamtrip/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

var (
	subscribers = make(map[string][]*websocket.Conn)
	mu          sync.Mutex
)

// Event is one push message. Type is one of "itinerary", "trip" or
// "assistant"; Payload is the updated document.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// HandleWS subscribes the calling tab to its user's event stream. The
// request must carry a valid token; the user id comes from the JWT, never
// from the URL.
func HandleWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	mu.Lock()
	subscribers[userID] = append(subscribers[userID], conn)
	mu.Unlock()

	for {
		// keeps the connection alive until the client disconnects
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	mu.Lock()
	conns := subscribers[userID]
	newList := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}
	subscribers[userID] = newList
	mu.Unlock()

	conn.Close()
}

// Publish sends an event to every open tab of the user. Dead connections
// are dropped on write failure.
func Publish(userID string, event Event) {
	val, err := json.Marshal(event)
	if err != nil {
		log.Printf("chatstream: marshal event: %v", err)
		return
	}

	mu.Lock()
	defer mu.Unlock()

	conns := subscribers[userID]
	newList := conns[:0]
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, val); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}
	subscribers[userID] = newList
}
