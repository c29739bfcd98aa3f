package progression

import (
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
)

// PassThresholdPercent is the fixed quiz pass bar.
const PassThresholdPercent = 80

// ErrNoQuestions marks a quiz lesson with an empty question set. Scoring such
// a lesson is a configuration error, never a pass.
var ErrNoQuestions = errors.New("quiz has no questions")

type QuizResult struct {
	Score      int  `json:"score"`
	Total      int  `json:"total"`
	Percentage int  `json:"percentage"`
	Passed     bool `json:"passed"`
}

// ScoreQuiz grades a submitted answer set against the authoritative question
// list. Matching is exact string equality, case-sensitive as authored.
// Percentage is rounded to the nearest integer.
func ScoreQuiz(questions []domain.Question, answers map[uuid.UUID]string) (QuizResult, error) {
	total := len(questions)
	if total == 0 {
		return QuizResult{}, ErrNoQuestions
	}

	score := 0
	for i := range questions {
		if given, ok := answers[questions[i].ID]; ok && given == questions[i].CorrectAnswer {
			score++
		}
	}

	pct := int(math.Round(100 * float64(score) / float64(total)))
	return QuizResult{
		Score:      score,
		Total:      total,
		Percentage: pct,
		Passed:     pct >= PassThresholdPercent,
	}, nil
}
