package handlers

import (
	"net/http"
	"planner/internal/adapter/http/mapper"
	"planner/internal/app/board"

	"github.com/gin-gonic/gin"
)

type BoardReader interface {
	Snapshot() board.Snapshot
}

type BoardHandler struct {
	board BoardReader
}

func NewBoardHandler(reader BoardReader) *BoardHandler {
	return &BoardHandler{board: reader}
}

// GetBoard serves the last snapshot built by the board's reload loop. It does
// not hit the store.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToBoardResponse(h.board.Snapshot()))
}
