package progression

import (
	"testing"

	"github.com/google/uuid"

	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/domain"
)

func lesson(typ string, index int) domain.Lesson {
	return domain.Lesson{ID: uuid.New(), Index: index, Type: typ, Title: "lesson"}
}

func TestFlattenOrdersChaptersThenLessons(t *testing.T) {
	l0 := lesson(domain.LessonTypeMaterial, 1)
	l1 := lesson(domain.LessonTypeQuiz, 0)
	l2 := lesson(domain.LessonTypeProject, 0)

	// Chapters deliberately out of order in the slice.
	path := &domain.LearningPath{
		ID: uuid.New(),
		Chapters: []domain.Chapter{
			{ID: uuid.New(), Index: 1, Lessons: []domain.Lesson{l2}},
			{ID: uuid.New(), Index: 0, Lessons: []domain.Lesson{l0, l1}},
		},
	}

	seq := Flatten(path)
	if len(seq) != 3 {
		t.Fatalf("expected 3 lessons, got %d", len(seq))
	}
	want := []uuid.UUID{l1.ID, l0.ID, l2.ID}
	for i, id := range want {
		if seq[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, seq[i].ID)
		}
	}
}

func TestFlattenEmptyPath(t *testing.T) {
	if seq := Flatten(nil); len(seq) != 0 {
		t.Fatalf("nil path: expected empty sequence, got %d", len(seq))
	}
	if seq := Flatten(&domain.LearningPath{ID: uuid.New()}); len(seq) != 0 {
		t.Fatalf("empty path: expected empty sequence, got %d", len(seq))
	}
}

func TestFlattenDoesNotMutateInput(t *testing.T) {
	chA := domain.Chapter{ID: uuid.New(), Index: 1}
	chB := domain.Chapter{ID: uuid.New(), Index: 0}
	path := &domain.LearningPath{ID: uuid.New(), Chapters: []domain.Chapter{chA, chB}}

	Flatten(path)

	if path.Chapters[0].ID != chA.ID || path.Chapters[1].ID != chB.ID {
		t.Fatal("Flatten reordered the caller's chapter slice")
	}
}
