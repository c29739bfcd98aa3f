package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/requestdata"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/services"
)

type PathHandler struct {
	log           *logger.Logger
	pathService   services.PathService
	accessService services.AccessService
}

func NewPathHandler(log *logger.Logger, pathService services.PathService, accessService services.AccessService) *PathHandler {
	return &PathHandler{
		log:           log.With("handler", "PathHandler"),
		pathService:   pathService,
		accessService: accessService,
	}
}

// GET /api/paths
func (h *PathHandler) List(c *gin.Context) {
	paths, err := h.pathService.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"paths": paths})
}

// GET /api/paths/:id
func (h *PathHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	path, err := h.pathService.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"path": path})
}

// GET /api/paths/:id/access
func (h *PathHandler) GetAccess(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	access, err := h.accessService.GetPathAccess(c.Request.Context(), userID, id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"lessons": access})
}
