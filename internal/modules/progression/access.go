package progression

import (
	"github.com/google/uuid"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
)

type LockState string

const (
	Unlocked LockState = "unlocked"
	Locked   LockState = "locked"
)

// TerminalSuccess reports whether a lesson counts as finished for gating
// purposes: projects need an approved submission, everything else just needs
// completion. A missing record is never terminal (fail-closed).
func TerminalSuccess(lesson *domain.Lesson, rec *domain.UserProgress) bool {
	if lesson == nil || rec == nil {
		return false
	}
	if lesson.Type == domain.LessonTypeProject {
		return rec.ApprovalStatus == domain.ApprovalApproved
	}
	return rec.Completed
}

// Resolve computes the lock state of every lesson in the flattened sequence.
// The first lesson is always unlocked; lesson i unlocks only once lesson i-1
// is in terminal success. Pure function, re-run after every progress
// mutation.
func Resolve(sequence []domain.Lesson, progress map[uuid.UUID]*domain.UserProgress) map[uuid.UUID]LockState {
	states := make(map[uuid.UUID]LockState, len(sequence))
	for i := range sequence {
		if i == 0 {
			states[sequence[i].ID] = Unlocked
			continue
		}
		prev := &sequence[i-1]
		if TerminalSuccess(prev, progress[prev.ID]) {
			states[sequence[i].ID] = Unlocked
		} else {
			states[sequence[i].ID] = Locked
		}
	}
	return states
}

// Complete reports whether every lesson of the sequence is in terminal
// success, i.e. the path is finished and certificate issuance may begin. An
// empty sequence is never complete.
func Complete(sequence []domain.Lesson, progress map[uuid.UUID]*domain.UserProgress) bool {
	if len(sequence) == 0 {
		return false
	}
	for i := range sequence {
		if !TerminalSuccess(&sequence[i], progress[sequence[i].ID]) {
			return false
		}
	}
	return true
}
