package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eduflex-lms/backend/user"
	"github.com/google/uuid"
)

type CreateQuizParams struct {
	Title     string
	CourseID  string
	Questions []Question
}

// CreateQuiz creates a quiz for a course the actor owns (administrators may
// create for any course). Every question must carry a non-empty text, at
// least two options and a correct-option index within range.
func (s *QuizSrvc) CreateQuiz(ctx context.Context, actor user.Actor, p CreateQuizParams) (*Quiz, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, newErrTitleRequired()
	}
	if len(p.Questions) == 0 {
		return nil, newErrQuestionsRequired()
	}
	for i, q := range p.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return nil, newErrInvalidQuestion(fmt.Sprintf("question %d has no text", i+1))
		}
		if len(q.Options) < 2 {
			return nil, newErrInvalidQuestion(fmt.Sprintf("question %d needs at least two options", i+1))
		}
		if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
			return nil, newErrInvalidQuestion(fmt.Sprintf("question %d has an out-of-range correct option", i+1))
		}
	}

	instructorID, _, found, err := s.courses.ResolveCourse(ctx, p.CourseID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if !found {
		return nil, newErrCourseNotFound()
	}
	if instructorID != actor.ID && !actor.IsAdmin() {
		return nil, newErrNotCourseOwner()
	}

	questions := make([]QuestionRow, 0, len(p.Questions))
	for _, q := range p.Questions {
		questions = append(questions, QuestionRow{
			Text:          q.Text,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
		})
	}

	row := &QuizRow{
		Uuid:       uuid.New().String(),
		Title:      p.Title,
		CourseUuid: p.CourseID,
		Questions:  questions,
		Attempts:   []AttemptRow{},
		Version:    0,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, newErrStorageFailure(err)
	}

	return quizFromRow(row), nil
}
