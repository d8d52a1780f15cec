package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"pizzaiolo/internal/conversation"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// WSConnection maintains one client's WebSocket connection and the
// conversation session it owns.
type WSConnection struct {
	conn    *websocket.Conn
	send    chan []byte
	mu      sync.Mutex
	api     *ChatAPI
	session *conversation.Session
}

// wsInbound is one user message from the client.
type wsInbound struct {
	Content string `json:"content"`
}

// wsOutbound is the turn result pushed back to the client.
type wsOutbound struct {
	SessionID string `json:"session_id"`
	conversation.TurnResult
}

// HandleWebSocket upgrades the connection and starts a fresh conversation
// session for it. One connection, one conversation.
func (a *ChatAPI) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		a.log.WithError(err).Error("failed to upgrade connection")
		return
	}

	wsConn := &WSConnection{
		conn:    conn,
		send:    make(chan []byte, 256),
		api:     a,
		session: a.sessions.Create(),
	}
	a.metrics.SetActiveSessions(a.sessions.Count())

	go wsConn.writePump()
	go wsConn.readPump()
}

// readPump pumps messages from the WebSocket connection to the turn handler.
func (c *WSConnection) readPump() {
	defer func() {
		c.api.sessions.Close(c.session.ID)
		c.api.metrics.SetActiveSessions(c.api.sessions.Count())
		c.conn.Close()
	}()

	c.conn.SetReadLimit(64 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.api.log.WithError(err).Warn("websocket read error")
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump pumps messages from the server to the WebSocket connection.
func (c *WSConnection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage runs one conversational turn for an incoming user message.
// Session state is committed only after the model call succeeds, so a failed
// or abandoned turn leaves the conversation exactly as it was.
func (c *WSConnection) handleMessage(message []byte) {
	var inbound wsInbound
	if err := json.Unmarshal(message, &inbound); err != nil {
		c.sendError("invalid message")
		return
	}

	session, err := c.api.sessions.Begin(c.session.ID)
	if err != nil {
		c.sendError("a turn is already in flight")
		return
	}
	defer c.api.sessions.End(c.session.ID)

	history := append(append([]conversation.Message(nil), session.History...),
		conversation.Message{Role: conversation.RoleUser, Content: inbound.Content})

	started := time.Now()
	result, err := c.api.processor.ProcessTurn(context.Background(), history, session.Order)
	if err != nil {
		c.api.log.WithError(err).Warn("websocket turn failed")
		c.sendError(retryableMessage)
		return
	}

	session.History = append(history, conversation.Message{
		Role:    conversation.RoleAssistant,
		Content: result.Reply,
	})
	session.Order = result.Order

	c.api.monitor.RecordTurn(result.Complete, time.Since(started))
	c.api.metrics.ObserveTurn(c.api.provider, result.Complete, time.Since(started))

	// Fire-and-forget; playback has no contract the turn depends on.
	go c.api.synth.Speak(result.Reply)

	c.sendJSON(wsOutbound{SessionID: session.ID, TurnResult: *result})
}

// sendJSON marshals and queues a message for the client.
func (c *WSConnection) sendJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		c.api.log.WithError(err).Error("error marshaling websocket message")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case c.send <- data:
	default:
		c.api.log.Warn("websocket buffer full, dropping message")
	}
}

// sendError queues an error message for the client.
func (c *WSConnection) sendError(message string) {
	c.sendJSON(map[string]string{"error": message})
}
