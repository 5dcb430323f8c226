package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/renovation-marketplace/internal/middleware"
	"github.com/BruksfildServices01/renovation-marketplace/internal/realtime"
	ucProject "github.com/BruksfildServices01/renovation-marketplace/internal/usecase/project"
)

type RealtimeHandler struct {
	hub       *realtime.Hub
	authorize *ucProject.AuthorizeSubscription
	log       *zap.Logger
}

func NewRealtimeHandler(
	hub *realtime.Hub,
	authorize *ucProject.AuthorizeSubscription,
	log *zap.Logger,
) *RealtimeHandler {
	return &RealtimeHandler{hub: hub, authorize: authorize, log: log}
}

// Subscribe upgrades to a websocket streaming the deltas that match
// table/column/value.
func (h *RealtimeHandler) Subscribe(c *gin.Context) {
	f := realtime.Filter{
		Table:  c.Query("table"),
		Column: c.Query("column"),
		Value:  c.Query("value"),
	}

	who := middleware.CurrentIdentity(c)
	if err := h.authorize.Execute(c.Request.Context(), who, f); err != nil {
		fail(c, err)
		return
	}

	// subscribe before the handshake completes so no event is missed
	sub := h.hub.Subscribe(f)

	conn, err := realtime.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already answered the client
		h.hub.Unsubscribe(sub)
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.log.Debug("realtime subscriber",
		zap.String("user_id", who.UserID),
		zap.String("table", f.Table),
		zap.String("column", f.Column),
	)

	h.hub.Serve(conn, sub)
}
