package progression

import (
	"time"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
)

// CooldownDuration is how long a learner waits after a failed quiz attempt
// before retrying the same lesson.
const CooldownDuration = 180 * time.Second

type CooldownStatus struct {
	OnCooldown       bool `json:"onCooldown"`
	RemainingSeconds int  `json:"remainingSeconds"`
}

// Cooldown derives the throttle state from the stored failure timestamp and
// the given wall-clock instant. No timer runs anywhere; this is evaluated on
// every poll and, authoritatively, at attempt start. A completed record never
// reports a cooldown regardless of past failures.
func Cooldown(rec *domain.UserProgress, now time.Time) CooldownStatus {
	if rec == nil || rec.QuizFailedAt == nil || rec.Completed {
		return CooldownStatus{}
	}
	remaining := CooldownDuration - now.Sub(*rec.QuizFailedAt)
	if remaining <= 0 {
		return CooldownStatus{}
	}
	return CooldownStatus{OnCooldown: true, RemainingSeconds: int(remaining.Seconds())}
}
