package game

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are filtered by the server middleware before the upgrade.
	CheckOrigin: func(r *http.Request) bool { return true },
}

func RegisterRoute(engine *gin.Engine, lobby *Lobby, logger zerolog.Logger) {
	engine.GET("/ws/:roomId", func(ctx *gin.Context) {
		roomHandler(ctx, lobby, logger)
	})
}

// roomHandler upgrades the connection and pins it to its room. The
// connection id doubles as the player id for its whole lifetime; a
// reconnect is a brand new player.
func roomHandler(ctx *gin.Context, lobby *Lobby, logger zerolog.Logger) {
	roomId := ctx.Param("roomId")
	if roomId == "" || len(roomId) > 64 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid-room-id"})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		logger.Warn().Err(err).Str("room", roomId).Msg("websocket upgrade failed")
		return
	}

	player := NewPlayer(uuid.NewString(), NewWebsocketConnection(conn), logger)
	room := lobby.Attach(roomId, player)

	go player.ReadPump(room)
	go player.WritePump()
}
