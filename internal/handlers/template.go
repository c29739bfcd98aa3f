package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/apierr"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/services"
)

type TemplateHandler struct {
	log             *logger.Logger
	templateService services.TemplateService
}

func NewTemplateHandler(log *logger.Logger, templateService services.TemplateService) *TemplateHandler {
	return &TemplateHandler{
		log:             log.With("handler", "TemplateHandler"),
		templateService: templateService,
	}
}

// GET /api/admin/certificate-template
func (h *TemplateHandler) Get(c *gin.Context) {
	tpl, err := h.templateService.Get(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"template": tpl})
}

// PUT /api/admin/certificate-template
func (h *TemplateHandler) Update(c *gin.Context) {
	var body services.TemplateUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, apierr.Validation("template payload is malformed"))
		return
	}
	tpl, err := h.templateService.Update(c.Request.Context(), body)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"template": tpl})
}
