package http

import (
	"context"
	"time"

	"github.com/eduflex-lms/backend/quiz"
	"github.com/eduflex-lms/backend/user"
)

type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	// nil for callers who must not see the answer key
	CorrectOption *int `json:"correctOption,omitempty"`
}

type Attempt struct {
	StudentID   string    `json:"studentId"`
	Answers     []int     `json:"answers"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type Quiz struct {
	UUID      string     `json:"uuid"`
	Title     string     `json:"title"`
	CourseID  string     `json:"courseId"`
	Questions []Question `json:"questions"`
	Attempts  []Attempt  `json:"attempts,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// mapQuiz builds the response view. Answer keys and the attempt list are
// only included for the owning professor and admins.
func mapQuiz(q *quiz.Quiz, withAnswers bool) Quiz {
	questions := make([]Question, 0, len(q.Questions))
	for _, question := range q.Questions {
		view := Question{
			Text:    question.Text,
			Options: question.Options,
		}
		if withAnswers {
			correct := question.CorrectOption
			view.CorrectOption = &correct
		}
		questions = append(questions, view)
	}

	var attempts []Attempt
	if withAnswers {
		attempts = make([]Attempt, 0, len(q.Attempts))
		for _, a := range q.Attempts {
			attempts = append(attempts, Attempt{
				StudentID:   a.StudentID,
				Answers:     a.Answers,
				Score:       a.Score,
				Total:       a.Total,
				SubmittedAt: a.SubmittedAt,
			})
		}
	}

	return Quiz{
		UUID:      q.UUID,
		Title:     q.Title,
		CourseID:  q.CourseID,
		Questions: questions,
		Attempts:  attempts,
		CreatedAt: q.CreatedAt,
	}
}

func (h *QuizHttpHandler) maySeeAnswers(ctx context.Context, courseID string, actor user.Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	owns, err := h.quizSrvc.OwnsQuizCourse(ctx, courseID, actor.ID)
	if err != nil {
		return false
	}
	return owns
}
