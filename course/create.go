package course

import (
	"context"
	"strings"
	"time"

	"github.com/eduflex-lms/backend/user"
	"github.com/google/uuid"
)

type CreateCourseParams struct {
	Title       string
	Description string
}

func (s *CourseSrvc) CreateCourse(ctx context.Context, actor user.Actor, p CreateCourseParams) (*Course, error) {
	if actor.Role != user.RoleProfessor && !actor.IsAdmin() {
		return nil, newErrNotProfessor()
	}
	if strings.TrimSpace(p.Title) == "" {
		return nil, newErrTitleRequired()
	}

	row := &CourseRow{
		Uuid:          uuid.New().String(),
		Title:         p.Title,
		Description:   p.Description,
		ProfessorUuid: actor.ID,
		StudentUuids:  []string{},
		Materials:     []MaterialRow{},
		Version:       0,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return courseFromRow(row), nil
}

type UpdateCourseParams struct {
	Title       *string
	Description *string
}

func (s *CourseSrvc) UpdateCourse(ctx context.Context, actor user.Actor, courseID string, p UpdateCourseParams) (*Course, error) {
	row, err := s.repo.Get(ctx, courseID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, newErrCourseNotFound()
	}
	if row.ProfessorUuid != actor.ID && !actor.IsAdmin() {
		return nil, newErrNotCourseOwner()
	}

	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return nil, newErrTitleRequired()
		}
		row.Title = *p.Title
	}
	if p.Description != nil {
		row.Description = *p.Description
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return courseFromRow(row), nil
}

func (s *CourseSrvc) DeleteCourse(ctx context.Context, actor user.Actor, courseID string) error {
	row, err := s.repo.Get(ctx, courseID)
	if err != nil {
		return newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return newErrCourseNotFound()
	}
	if row.ProfessorUuid != actor.ID && !actor.IsAdmin() {
		return newErrNotCourseOwner()
	}

	if err := s.repo.Delete(ctx, courseID); err != nil {
		return newErrInternalSE().SetDebug(err)
	}

	// material blobs are cleaned up best-effort after the record is gone
	for _, m := range row.Materials {
		_ = s.blobs.Delete(ctx, m.FileUrl)
	}

	return nil
}
