package quiz

import (
	"context"
	"slices"
	"time"

	"github.com/eduflex-lms/backend/user"
)

type TakeResult struct {
	QuizID string
	Score  int
	Total  int
}

// Take scores the acting student's answers against the quiz and records the
// attempt. Scoring is server-side only; the answer list must have exactly one
// entry per question. Retakes append a fresh attempt.
func (s *QuizSrvc) Take(ctx context.Context, quizID string, actor user.Actor, answers []int) (*TakeResult, error) {
	row, err := s.repo.Get(ctx, quizID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, newErrQuizNotFound()
	}

	_, studentIDs, found, err := s.courses.ResolveCourse(ctx, row.CourseUuid)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if !found {
		return nil, newErrCourseNotFound()
	}
	if !slices.Contains(studentIDs, actor.ID) {
		return nil, newErrNotEnrolled()
	}

	if len(answers) != len(row.Questions) {
		return nil, newErrAnswersMismatch()
	}

	score := 0
	for i, answer := range answers {
		if answer == row.Questions[i].CorrectOption {
			score++
		}
	}
	total := len(row.Questions)

	err = s.saveWithRetry(ctx, quizID, row, func(row *QuizRow) error {
		row.Attempts = append(row.Attempts, AttemptRow{
			StudentUuid: actor.ID,
			Answers:     answers,
			Score:       score,
			Total:       total,
			SubmittedAt: time.Now(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &TakeResult{
		QuizID: quizID,
		Score:  score,
		Total:  total,
	}, nil
}
