package gameapi

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-paradox/game"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait = 2 * time.Second
	pauseKey  = "Escape"
)

// stream upgrades to a websocket and writes one binary frame per published
// tick. Text messages from the client are read as key names; Escape toggles
// pause.
func (gc *GameController) stream(ctx *gin.Context) {
	conn, err := gc.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		gc.logger.Warning(fmt.Sprintf("upgrade failed: %s", err))
		return
	}
	defer conn.Close()

	frames, unsubscribe := gc.session.Subscribe()
	defer unsubscribe()

	snap := gc.session.Snapshot()
	if err := gc.write(conn, game.Frame{Snapshot: &snap}); err != nil {
		return
	}

	closed := make(chan struct{})
	go gc.readInputs(conn, closed)

	for {
		select {
		case <-closed:
			return
		case frame, ok := <-frames:
			if !ok {
				message := websocket.FormatCloseMessage(websocket.CloseGoingAway, "session stopped")
				_ = conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(writeWait))
				return
			}
			if err := gc.write(conn, frame); err != nil {
				return
			}
		}
	}
}

func (gc *GameController) write(conn *websocket.Conn, frame game.Frame) error {
	data, err := gc.encoder.MarshalFrame(frame)
	if err != nil {
		gc.logger.Error(fmt.Sprintf("encoding frame: %s", err))
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.BinaryMessage, data)
}

func (gc *GameController) readInputs(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)
	for {
		kind, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		key := string(payload)
		if key == pauseKey {
			gc.togglePause()
			continue
		}
		if d, ok := game.DirectionFromKey(key); ok {
			gc.session.SetDirection(d)
		}
	}
}

func (gc *GameController) togglePause() {
	ctx, cancel := context.WithTimeout(context.Background(), controlTimeout)
	defer cancel()

	var err error
	switch gc.session.Snapshot().Status {
	case game.StatusPlaying:
		_, err = gc.session.Pause(ctx)
	case game.StatusPaused:
		_, err = gc.session.Resume(ctx)
	}
	if err != nil {
		gc.logger.Warning(fmt.Sprintf("toggling pause: %s", err))
	}
}
