package checkin

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
	writeWait    = 10 * time.Second
	maxFrameSize = 4096
)

// WSHandler streams scans from a camera client: every text frame is one
// scanned payload and gets exactly one ScanResult reply.
type WSHandler struct {
	verifier *Verifier
	upgrader websocket.Upgrader
}

// NewWSHandler accepts upgrades from the given origins; an empty list allows any.
func NewWSHandler(verifier *Verifier, allowedOrigins []string) *WSHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &WSHandler{
		verifier: verifier,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowed) == 0 || origin == "" || allowed[origin]
			},
		},
	}
}

// HandleWebSocket serves GET /admin/scanner/ws?token=ADMIN_TOKEN. The token
// is checked by the admin middleware before the upgrade.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("scanner_upgrade_failed error=%q", err.Error())
		return
	}

	subject := c.GetString("subject")
	log.Printf("scanner_connected subject=%s", subject)

	done := make(chan struct{})
	defer func() {
		close(done)
		_ = conn.Close()
		log.Printf("scanner_disconnected subject=%s", subject)
	}()

	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go pingLoop(conn, done)

	h.readLoop(c.Request.Context(), conn, subject)
}

// pingLoop uses WriteControl, which may run concurrently with the reply writer.
func pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, subject string) {
	for {
		msgType, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				log.Printf("scanner_read_failed subject=%s error=%q", subject, err.Error())
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		result := h.verifier.Scan(ctx, string(raw))
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(result); err != nil {
			log.Printf("scanner_write_failed subject=%s error=%q", subject, err.Error())
			return
		}
	}
}
