package course

import (
	"context"
	"fmt"
	"time"

	"github.com/eduflex-lms/backend/user"
)

type AddMaterialParams struct {
	Title     string
	Filename  string
	Content   []byte
	MediaType string
}

// AddMaterial uploads a study material to the blob store and appends it to the
// course's material list.
func (s *CourseSrvc) AddMaterial(ctx context.Context, actor user.Actor, courseID string, p AddMaterialParams) (*Course, error) {
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
	if p.Title == "" {
		return nil, newErrTitleRequired()
	}

	key := fmt.Sprintf("uploads/materials/%s/%s", courseID, p.Filename)
	fileUrl, err := s.blobs.Store(ctx, key, p.Content, p.MediaType)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	row.Materials = append(row.Materials, MaterialRow{
		Title:      p.Title,
		FileUrl:    fileUrl,
		UploadedAt: time.Now(),
	})

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return courseFromRow(row), nil
}
