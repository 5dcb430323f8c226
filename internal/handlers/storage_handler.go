package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/storage"
)

// StorageHandler serves objects of the in-memory store on local runs
// without S3.
type StorageHandler struct {
	mem *storage.Memory
}

func NewStorageHandler(mem *storage.Memory) *StorageHandler {
	return &StorageHandler{mem: mem}
}

func (h *StorageHandler) Get(c *gin.Context) {
	obj, ok := h.mem.Get(c.Param("bucket"), strings.TrimPrefix(c.Param("key"), "/"))
	if !ok {
		httperr.NotFound(c, "object_not_found", "Object not found.")
		return
	}
	c.Data(http.StatusOK, obj.ContentType, obj.Body)
}
