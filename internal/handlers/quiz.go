package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/apierr"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/requestdata"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/services"
)

type QuizHandler struct {
	log         *logger.Logger
	quizService services.QuizService
}

func NewQuizHandler(log *logger.Logger, quizService services.QuizService) *QuizHandler {
	return &QuizHandler{
		log:         log.With("handler", "QuizHandler"),
		quizService: quizService,
	}
}

// POST /api/quiz/:lessonId/start
// Questions with correct answers stripped; scoring stays server side.
func (h *QuizHandler) StartAttempt(c *gin.Context) {
	lessonID, ok := parseUUIDParam(c, "lessonId")
	if !ok {
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	questions, err := h.quizService.StartAttempt(c.Request.Context(), userID, lessonID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"questions": questions})
}

// POST /api/quiz/:lessonId/attempt  {answers: {questionId: answer}}
func (h *QuizHandler) SubmitAttempt(c *gin.Context) {
	lessonID, ok := parseUUIDParam(c, "lessonId")
	if !ok {
		return
	}
	var body struct {
		Answers map[uuid.UUID]string `json:"answers"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, apierr.Validation("answers payload is malformed"))
		return
	}
	userID := requestdata.UserID(c.Request.Context())
	outcome, err := h.quizService.SubmitAttempt(c.Request.Context(), userID, lessonID, body.Answers)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, outcome)
}
