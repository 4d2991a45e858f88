package course

import (
	"context"
	"slices"

	"github.com/eduflex-lms/backend/user"
)

func (s *CourseSrvc) Enroll(ctx context.Context, actor user.Actor, courseID string) (*Course, error) {
	row, err := s.repo.Get(ctx, courseID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, newErrCourseNotFound()
	}

	if slices.Contains(row.StudentUuids, actor.ID) {
		return nil, newErrAlreadyEnrolled()
	}

	row.StudentUuids = append(row.StudentUuids, actor.ID)

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return courseFromRow(row), nil
}
