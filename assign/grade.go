package assign

import (
	"context"
	"time"

	"github.com/eduflex-lms/backend/notify"
	"github.com/eduflex-lms/backend/user"
)

type GradeParams struct {
	StudentID string
	Grade     float64
	Feedback  *string
}

type GradeResult struct {
	AssignmentID string
	Submission   Submission
}

// Grade sets the grade and feedback on one student's submission. Only the
// professor owning the assignment's course, or an administrator, may grade.
// Grading never touches the submission content or its submission time.
func (s *AssignSrvc) Grade(ctx context.Context, assignmentID string, actor user.Actor, p GradeParams) (*GradeResult, error) {
	row, err := s.repo.Get(ctx, assignmentID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, newErrAssignmentNotFound()
	}

	instructorID, _, found, err := s.courses.ResolveCourse(ctx, row.CourseUuid)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if !found {
		return nil, newErrCourseNotFound()
	}
	if instructorID != actor.ID && !actor.IsAdmin() {
		return nil, newErrNotCourseOwner()
	}

	if p.Grade < 0 || p.Grade > 100 {
		return nil, newErrGradeOutOfRange()
	}

	feedback := ""
	if p.Feedback != nil {
		feedback = *p.Feedback
	}

	var stored SubmissionRow
	err = s.saveWithRetry(ctx, assignmentID, row, func(row *AssignmentRow) error {
		idx := row.submissionIndex(p.StudentID)
		if idx < 0 {
			return newErrSubmissionNotFound()
		}
		now := time.Now()
		sub := &row.Submissions[idx]
		grade := p.Grade
		sub.Grade = &grade
		sub.Feedback = &feedback
		sub.GradedAt = &now
		stored = *sub
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, notify.Event{
		Type:         notify.EventGradePosted,
		RecipientID:  p.StudentID,
		AssignmentID: assignmentID,
		CourseID:     row.CourseUuid,
		OccurredAt:   *stored.GradedAt,
	})

	return &GradeResult{
		AssignmentID: assignmentID,
		Submission:   submissionFromRow(&stored),
	}, nil
}
