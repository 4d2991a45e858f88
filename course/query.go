package course

import (
	"context"
	"slices"
)

func (s *CourseSrvc) GetCourse(ctx context.Context, courseID string) (*Course, error) {
	row, err := s.repo.Get(ctx, courseID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, newErrCourseNotFound()
	}
	return courseFromRow(row), nil
}

// ListCourses returns the whole catalog.
func (s *CourseSrvc) ListCourses(ctx context.Context) ([]*Course, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	courses := make([]*Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, courseFromRow(row))
	}
	return courses, nil
}

func (s *CourseSrvc) ListCoursesForStudent(ctx context.Context, studentID string) ([]*Course, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	courses := make([]*Course, 0)
	for _, row := range rows {
		if slices.Contains(row.StudentUuids, studentID) {
			courses = append(courses, courseFromRow(row))
		}
	}
	return courses, nil
}

func (s *CourseSrvc) ListCoursesForProfessor(ctx context.Context, professorID string) ([]*Course, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	courses := make([]*Course, 0)
	for _, row := range rows {
		if row.ProfessorUuid == professorID {
			courses = append(courses, courseFromRow(row))
		}
	}
	return courses, nil
}
