package assign

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/eduflex-lms/backend/user"
	"github.com/google/uuid"
)

type CreateAssignmentParams struct {
	Title       string
	Description string
	CourseID    string
	DueDate     time.Time
	Attachment  *FileUpload
}

// CreateAssignment creates an assignment for a course the actor owns
// (administrators may create for any course). An optional instructor
// attachment is uploaded to the blob store first.
func (s *AssignSrvc) CreateAssignment(ctx context.Context, actor user.Actor, p CreateAssignmentParams) (*Assignment, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, newErrTitleRequired()
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

	attachmentUrl := ""
	if p.Attachment != nil {
		if int64(len(p.Attachment.Content)) > maxFileUploadMB<<20 {
			return nil, newErrUploadTooLarge(maxFileUploadMB)
		}
		filename := path.Base(p.Attachment.Filename)
		key := fmt.Sprintf("uploads/assignments/%s/%s", p.CourseID, filename)
		attachmentUrl, err = s.blobs.Store(ctx, key, p.Attachment.Content, p.Attachment.MediaType)
		if err != nil {
			return nil, newErrStorageFailure(err)
		}
	}

	row := &AssignmentRow{
		Uuid:          uuid.New().String(),
		Title:         p.Title,
		Description:   p.Description,
		CourseUuid:    p.CourseID,
		DueDate:       p.DueDate,
		AttachmentUrl: attachmentUrl,
		Submissions:   []SubmissionRow{},
		Version:       0,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, newErrStorageFailure(err)
	}

	return assignmentFromRow(row), nil
}

// DeleteAssignment removes the assignment document. Uploaded blobs (the
// instructor attachment and any file submissions) are cleaned up afterwards,
// best effort: a failed blob deletion does not fail the operation.
func (s *AssignSrvc) DeleteAssignment(ctx context.Context, actor user.Actor, assignmentID string) error {
	row, err := s.repo.Get(ctx, assignmentID)
	if err != nil {
		return newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return newErrAssignmentNotFound()
	}

	instructorID, _, found, err := s.courses.ResolveCourse(ctx, row.CourseUuid)
	if err != nil {
		return newErrInternalSE().SetDebug(err)
	}
	if !found {
		return newErrCourseNotFound()
	}
	if instructorID != actor.ID && !actor.IsAdmin() {
		return newErrNotCourseOwner()
	}

	if err := s.repo.Delete(ctx, assignmentID); err != nil {
		return newErrStorageFailure(err)
	}

	if row.AttachmentUrl != "" {
		_ = s.blobs.Delete(ctx, row.AttachmentUrl)
	}
	for _, sub := range row.Submissions {
		if sub.ContentKind == ContentKindFile {
			_ = s.blobs.Delete(ctx, sub.Content)
		}
	}

	return nil
}

// GetAssignment returns one assignment with its full submission list.
func (s *AssignSrvc) GetAssignment(ctx context.Context, assignmentID string) (*Assignment, error) {
	row, err := s.repo.Get(ctx, assignmentID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, newErrAssignmentNotFound()
	}
	return assignmentFromRow(row), nil
}
