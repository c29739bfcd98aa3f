package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/apierr"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/requestdata"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/services"
)

type ProgressHandler struct {
	log             *logger.Logger
	progressService services.ProgressService
	quizService     services.QuizService
}

func NewProgressHandler(log *logger.Logger, progressService services.ProgressService, quizService services.QuizService) *ProgressHandler {
	return &ProgressHandler{
		log:             log.With("handler", "ProgressHandler"),
		progressService: progressService,
		quizService:     quizService,
	}
}

// GET /api/progress?pathId=
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	pathID, ok := parseUUIDQuery(c, "pathId")
	if !ok {
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	rows, err := h.progressService.GetProgress(c.Request.Context(), userID, pathID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"progress": rows})
}

// GET /api/progress/path?pathId=
func (h *ProgressHandler) GetPathProgress(c *gin.Context) {
	pathID, ok := parseUUIDQuery(c, "pathId")
	if !ok {
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	summary, err := h.progressService.GetPathProgress(c.Request.Context(), userID, pathID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, summary)
}

// POST /api/progress/complete  {lessonId}
func (h *ProgressHandler) CompleteLesson(c *gin.Context) {
	var body struct {
		LessonID uuid.UUID `json:"lessonId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.LessonID == uuid.Nil {
		RespondError(c, apierr.Validation("lessonId is required"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	if err := h.progressService.CompleteLesson(c.Request.Context(), userID, body.LessonID); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"completed": true})
}

// GET /api/progress/cooldown?lessonId=
func (h *ProgressHandler) GetCooldown(c *gin.Context) {
	lessonID, ok := parseUUIDQuery(c, "lessonId")
	if !ok {
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	cd, err := h.quizService.GetCooldown(c.Request.Context(), userID, lessonID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, cd)
}
