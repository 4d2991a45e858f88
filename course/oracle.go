package course

import "context"

// ResolveCourse answers the enrollment and ownership questions the assignment
// workflow asks about a course. found is false when the record is missing.
func (s *CourseSrvc) ResolveCourse(ctx context.Context, courseID string) (instructorID string, studentIDs []string, found bool, err error) {
	row, err := s.repo.Get(ctx, courseID)
	if err != nil {
		return "", nil, false, err
	}
	if row == nil {
		return "", nil, false, nil
	}
	return row.ProfessorUuid, append([]string(nil), row.StudentUuids...), true, nil
}
