package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/renovation-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/renovation-marketplace/internal/usecase/directory"
)

type PublicHandler struct {
	listPros *directory.ListPros
}

func NewPublicHandler(listPros *directory.ListPros) *PublicHandler {
	return &PublicHandler{listPros: listPros}
}

func (h *PublicHandler) ListPros(c *gin.Context) {
	pros, err := h.listPros.Execute(c.Request.Context(), c.Query("specialty"))
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, pros)
}
