package assign

import (
	"context"
	"fmt"
	"path"

	"github.com/eduflex-lms/backend/user"
)

type ExportFile struct {
	Name    string
	Content []byte
}

// ExportSubmissions gathers every submission of an assignment as named files
// for a zip download: text submissions become <student>.txt, file submissions
// are fetched back from the blob store.
func (s *AssignSrvc) ExportSubmissions(ctx context.Context, actor user.Actor, assignmentID string) ([]ExportFile, error) {
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

	files := make([]ExportFile, 0, len(row.Submissions))
	for i := range row.Submissions {
		sub := &row.Submissions[i]
		switch sub.ContentKind {
		case ContentKindFile:
			content, err := s.blobs.Download(ctx, sub.Content)
			if err != nil {
				return nil, newErrStorageFailure(err)
			}
			files = append(files, ExportFile{
				Name:    fmt.Sprintf("%s_%s", sub.StudentUuid, path.Base(sub.Content)),
				Content: content,
			})
		default:
			files = append(files, ExportFile{
				Name:    sub.StudentUuid + ".txt",
				Content: []byte(sub.Content),
			})
		}
	}

	return files, nil
}
