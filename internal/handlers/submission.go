package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/apierr"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/requestdata"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/services"
)

type SubmissionHandler struct {
	log               *logger.Logger
	submissionService services.SubmissionService
}

func NewSubmissionHandler(log *logger.Logger, submissionService services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		log:               log.With("handler", "SubmissionHandler"),
		submissionService: submissionService,
	}
}

// POST /api/submissions  {lessonId, fileUrl?, driveLink?}
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var body struct {
		LessonID  uuid.UUID `json:"lessonId"`
		FileURL   string    `json:"fileUrl"`
		DriveLink string    `json:"driveLink"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.LessonID == uuid.Nil {
		RespondError(c, apierr.Validation("lessonId is required"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	rec, err := h.submissionService.Submit(c.Request.Context(), userID, body.LessonID, body.FileURL, body.DriveLink)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"submission": rec})
}

// GET /api/admin/submissions
func (h *SubmissionHandler) ListPending(c *gin.Context) {
	rows, err := h.submissionService.ListPending(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"submissions": rows})
}

// POST /api/admin/submissions/:id/approve
func (h *SubmissionHandler) Approve(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	rec, err := h.submissionService.Approve(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"submission": rec})
}

// POST /api/admin/submissions/:id/reject  {adminNote}
func (h *SubmissionHandler) Reject(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var body struct {
		AdminNote string `json:"adminNote"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, apierr.Validation("adminNote payload is malformed"))
		return
	}
	rec, err := h.submissionService.Reject(c.Request.Context(), id, body.AdminNote)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"submission": rec})
}
