package notifications

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"vesture/middleware"
	"vesture/models"
	"vesture/mq"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Stream upgrades to a websocket and pushes the caller's notifications
// as they are published. Browsers cannot set headers on websocket
// dials, so the token is also accepted as a query parameter.
func Stream(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tokenString := r.Header.Get("Authorization")
	if tokenString == "" {
		if t := r.URL.Query().Get("token"); t != "" {
			tokenString = "Bearer " + t
		}
	}
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("notifications: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sub := mq.SubscribeNotifications(r.Context())
	defer sub.Close()
	ch := sub.Channel()

	// Drain client frames so pings and close messages are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				sub.Close()
				return
			}
		}
	}()

	for msg := range ch {
		var n models.Notification
		if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
			log.Printf("notifications: bad payload on channel: %v", err)
			continue
		}
		if n.UserID != claims.UserID {
			continue
		}
		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteJSON(n); err != nil {
			return
		}
	}
}
