package assign

import (
	"context"
	"slices"
	"sort"
)

// ListForStudent returns every assignment whose owning course has the student
// enrolled, with the student's own submission status derived per row.
// Ordering is ascending by due date, ties broken by assignment id.
func (s *AssignSrvc) ListForStudent(ctx context.Context, studentID string) ([]StudentAssignmentView, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	enrolled, err := s.enrollmentByCourse(ctx, rows, func(instructorID string, studentIDs []string) bool {
		return slices.Contains(studentIDs, studentID)
	})
	if err != nil {
		return nil, err
	}

	views := make([]StudentAssignmentView, 0)
	for _, row := range rows {
		if !enrolled[row.CourseUuid] {
			continue
		}

		view := StudentAssignmentView{
			AssignmentID:  row.Uuid,
			Title:         row.Title,
			Description:   row.Description,
			CourseID:      row.CourseUuid,
			DueDate:       row.DueDate,
			AttachmentUrl: row.AttachmentUrl,
			Status:        StatusPending,
		}

		if idx := row.submissionIndex(studentID); idx >= 0 {
			sub := submissionFromRow(&row.Submissions[idx])
			view.Status = sub.Status()
			view.SubmittedAt = &sub.SubmittedAt
			if sub.Grade != nil {
				view.Grade = sub.Grade
				view.Feedback = sub.Feedback
			}
		}

		views = append(views, view)
	}

	sort.Slice(views, func(i, j int) bool {
		if views[i].DueDate.Equal(views[j].DueDate) {
			return views[i].AssignmentID < views[j].AssignmentID
		}
		return views[i].DueDate.Before(views[j].DueDate)
	})

	return views, nil
}

// ListForInstructor returns all assignments of courses the instructor owns,
// including the full submission lists for grading.
func (s *AssignSrvc) ListForInstructor(ctx context.Context, instructorID string) ([]*Assignment, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	owned, err := s.enrollmentByCourse(ctx, rows, func(courseInstructorID string, studentIDs []string) bool {
		return courseInstructorID == instructorID
	})
	if err != nil {
		return nil, err
	}

	assignments := make([]*Assignment, 0)
	for _, row := range rows {
		if owned[row.CourseUuid] {
			assignments = append(assignments, assignmentFromRow(row))
		}
	}

	sort.Slice(assignments, func(i, j int) bool {
		if assignments[i].DueDate.Equal(assignments[j].DueDate) {
			return assignments[i].UUID < assignments[j].UUID
		}
		return assignments[i].DueDate.Before(assignments[j].DueDate)
	})

	return assignments, nil
}

// ListForCourse returns the assignments of one course.
func (s *AssignSrvc) ListForCourse(ctx context.Context, courseID string) ([]*Assignment, error) {
	_, _, found, err := s.courses.ResolveCourse(ctx, courseID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if !found {
		return nil, newErrCourseNotFound()
	}

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	assignments := make([]*Assignment, 0)
	for _, row := range rows {
		if row.CourseUuid == courseID {
			assignments = append(assignments, assignmentFromRow(row))
		}
	}

	sort.Slice(assignments, func(i, j int) bool {
		if assignments[i].DueDate.Equal(assignments[j].DueDate) {
			return assignments[i].UUID < assignments[j].UUID
		}
		return assignments[i].DueDate.Before(assignments[j].DueDate)
	})

	return assignments, nil
}

// CountForInstructor backs the professor dashboard.
func (s *AssignSrvc) CountForInstructor(ctx context.Context, instructorID string) (int, error) {
	assignments, err := s.ListForInstructor(ctx, instructorID)
	if err != nil {
		return 0, err
	}
	return len(assignments), nil
}

// enrollmentByCourse resolves each distinct course referenced by rows once
// and reports whether the predicate matched. Courses that no longer exist
// simply don't match; listings skip over referential corruption.
func (s *AssignSrvc) enrollmentByCourse(ctx context.Context, rows []*AssignmentRow, match func(instructorID string, studentIDs []string) bool) (map[string]bool, error) {
	result := make(map[string]bool)
	for _, row := range rows {
		if _, done := result[row.CourseUuid]; done {
			continue
		}
		instructorID, studentIDs, found, err := s.courses.ResolveCourse(ctx, row.CourseUuid)
		if err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
		result[row.CourseUuid] = found && match(instructorID, studentIDs)
	}
	return result, nil
}
