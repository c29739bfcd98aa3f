package progression

import (
	"sort"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
)

// Flatten turns a learning path's nested chapters into the single ordered
// lesson sequence the gating rules run over: chapters by index, then lessons
// by index within each chapter. Ties fall back to ID so the order is total.
// An empty path yields an empty sequence.
func Flatten(path *domain.LearningPath) []domain.Lesson {
	if path == nil || len(path.Chapters) == 0 {
		return nil
	}

	chapters := make([]domain.Chapter, len(path.Chapters))
	copy(chapters, path.Chapters)
	sort.SliceStable(chapters, func(i, j int) bool {
		if chapters[i].Index != chapters[j].Index {
			return chapters[i].Index < chapters[j].Index
		}
		return chapters[i].ID.String() < chapters[j].ID.String()
	})

	var sequence []domain.Lesson
	for _, ch := range chapters {
		lessons := make([]domain.Lesson, len(ch.Lessons))
		copy(lessons, ch.Lessons)
		sort.SliceStable(lessons, func(i, j int) bool {
			if lessons[i].Index != lessons[j].Index {
				return lessons[i].Index < lessons[j].Index
			}
			return lessons[i].ID.String() < lessons[j].ID.String()
		})
		sequence = append(sequence, lessons...)
	}
	return sequence
}
