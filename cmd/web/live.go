package main

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// liveHighScore pushes the high score over a websocket: once on connect,
// then whenever the stored value changes.
func (s *site) liveHighScore(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade", "err", err)
		return
	}
	defer conn.Close()

	// The reader only exists to process control frames and notice the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	poll := s.poll
	if poll <= 0 {
		poll = 2 * time.Second
	}
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	last := -1.0
	for {
		if score := s.highScore(); score != last {
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(highScoreResponse{HighScore: score}); err != nil {
				s.log.Debug("websocket write", "err", err)
				return
			}
			last = score
		}

		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
