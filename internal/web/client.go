package web

import (
	"log/slog"
	"time"

	"dwarf-slayer/internal/game"

	"github.com/gorilla/websocket"
)

// Connection settings.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Client owns one websocket and the game played over it. The game is only
// touched by readPump; writePump sees snapshots.
type Client struct {
	id     string
	game   *game.Game
	conn   *websocket.Conn
	send   chan Response
	done   chan struct{} // closed when writePump stops
	logger *slog.Logger
}

func newClient(id string, g *game.Game, conn *websocket.Conn, logger *slog.Logger) *Client {
	return &Client{
		id:     id,
		game:   g,
		conn:   conn,
		send:   make(chan Response, 16),
		done:   make(chan struct{}),
		logger: logger,
	}
}

func (c *Client) reply(cols int, err error) {
	resp := Response{Session: c.id}
	if err != nil {
		resp.Error = err.Error()
	}
	s := c.game.Snapshot(viewColumns(cols))
	resp.State = &s
	select {
	case c.send <- resp:
	case <-c.done:
	}
}

// readPump applies commands until the connection drops.
func (c *Client) readPump() {
	defer func() {
		close(c.send)
		if err := c.conn.Close(); err != nil {
			c.logger.Debug("close websocket", "error", err)
		}
		c.logger.Info("client disconnected", "depth", c.game.Depth(), "turn", c.game.Turn())
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Warn("set read deadline", "error", err)
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	c.reply(0, nil)
	for {
		var cmd Command
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket read", "error", err)
			}
			return
		}
		err := Apply(c.game, cmd)
		if err != nil {
			c.logger.Debug("rejected command", "action", cmd.Action, "error", err)
		}
		c.reply(cmd.Columns, err)
	}
}

// writePump sends replies and keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(c.done)
		if err := c.conn.Close(); err != nil {
			c.logger.Debug("close websocket", "error", err)
		}
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Warn("set write deadline", "error", err)
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Debug("write json", "error", err)
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.logger.Warn("set ping write deadline", "error", err)
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.logger.Debug("ping failed", "error", err)
				return
			}
		}
	}
}
