package booking

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"gulffloat/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

var (
	subscribers []*websocket.Conn
	mu          sync.Mutex
)

// HandleWS handles GET /api/ws/bookings: a live staff feed that receives
// every new booking and payment confirmation.
func HandleWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	mu.Lock()
	subscribers = append(subscribers, conn)
	mu.Unlock()

	for {
		// Keeps the connection alive until the client disconnects
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	mu.Lock()
	newList := make([]*websocket.Conn, 0, len(subscribers))
	for _, c := range subscribers {
		if c != conn {
			newList = append(newList, c)
		}
	}
	subscribers = newList
	mu.Unlock()

	conn.Close()
}

// Broadcast pushes a booking event to every connected feed client.
func Broadcast(event string, b models.Booking) {
	payload, err := json.Marshal(map[string]interface{}{
		"event":   event,
		"booking": b,
	})
	if err != nil {
		log.Println("Broadcast marshal error:", err)
		return
	}

	mu.Lock()
	defer mu.Unlock()
	for _, conn := range subscribers {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Println("Broadcast write error:", err)
		}
	}
}
