package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/apierr"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/requestdata"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/services"
)

type CertificateHandler struct {
	log                *logger.Logger
	certificateService services.CertificateService
}

func NewCertificateHandler(log *logger.Logger, certificateService services.CertificateService) *CertificateHandler {
	return &CertificateHandler{
		log:                log.With("handler", "CertificateHandler"),
		certificateService: certificateService,
	}
}

// POST /api/certificates/issue  {pathId}
func (h *CertificateHandler) Issue(c *gin.Context) {
	var body struct {
		PathID uuid.UUID `json:"pathId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.PathID == uuid.Nil {
		RespondError(c, apierr.Validation("pathId is required"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	cert, err := h.certificateService.IssueOrFetch(c.Request.Context(), userID, body.PathID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"certificate": cert})
}

// GET /api/certificates
func (h *CertificateHandler) ListMine(c *gin.Context) {
	userID := requestdata.UserID(c.Request.Context())
	rows, err := h.certificateService.ListMine(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"certificates": rows})
}

// GET /api/certificates/verify/:certificateId  (public)
func (h *CertificateHandler) Verify(c *gin.Context) {
	v, err := h.certificateService.Verify(c.Request.Context(), c.Param("certificateId"))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, v)
}

// GET /api/certificates/:certificateId/render
// Streams the rendered document (PNG or PDF, depending on the template).
func (h *CertificateHandler) Render(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	isAdmin := rd != nil && rd.Role == domain.RoleAdmin
	out, err := h.certificateService.Render(c.Request.Context(), c.Param("certificateId"), requestdata.UserID(c.Request.Context()), isAdmin)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.Data(http.StatusOK, out.ContentType, out.Bytes)
}

// GET /api/admin/certificates
func (h *CertificateHandler) ListAll(c *gin.Context) {
	rows, err := h.certificateService.ListAll(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"certificates": rows})
}

// DELETE /api/admin/certificates/:id
func (h *CertificateHandler) Revoke(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.certificateService.Revoke(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"revoked": true})
}
