package assign

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/eduflex-lms/backend/notify"
	"github.com/eduflex-lms/backend/user"
)

const maxTextSubmissionKB = 64
const maxFileUploadMB = 10

type FileUpload struct {
	Filename  string
	Content   []byte
	MediaType string
}

// SubmitParams carries exactly one of Text or File.
type SubmitParams struct {
	Text *string
	File *FileUpload
}

// SubmitResult echoes what was recorded so the caller can confirm it.
type SubmitResult struct {
	AssignmentID string
	Submission   Submission
}

// Submit records or replaces the acting student's submission on an
// assignment. A resubmission replaces the content, bumps the submission time
// and clears any prior grade and feedback.
func (s *AssignSrvc) Submit(ctx context.Context, assignmentID string, actor user.Actor, p SubmitParams) (*SubmitResult, error) {
	row, err := s.repo.Get(ctx, assignmentID)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, newErrAssignmentNotFound()
	}

	instructorID, studentIDs, found, err := s.courses.ResolveCourse(ctx, row.CourseUuid)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if !found {
		return nil, newErrCourseNotFound()
	}
	if !slices.Contains(studentIDs, actor.ID) {
		return nil, newErrNotEnrolled()
	}

	contentKind, content, err := s.resolveContent(ctx, assignmentID, actor.ID, p)
	if err != nil {
		return nil, err
	}

	var stored SubmissionRow
	err = s.saveWithRetry(ctx, assignmentID, row, func(row *AssignmentRow) error {
		now := time.Now()
		idx := row.submissionIndex(actor.ID)
		if idx < 0 {
			row.Submissions = append(row.Submissions, SubmissionRow{
				StudentUuid: actor.ID,
				ContentKind: contentKind,
				Content:     content,
				SubmittedAt: now,
			})
			stored = row.Submissions[len(row.Submissions)-1]
			return nil
		}
		sub := &row.Submissions[idx]
		sub.ContentKind = contentKind
		sub.Content = content
		sub.SubmittedAt = now
		// a resubmission invalidates prior grading
		sub.Grade = nil
		sub.Feedback = nil
		sub.GradedAt = nil
		stored = *sub
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, notify.Event{
		Type:         notify.EventSubmissionReceived,
		RecipientID:  instructorID,
		AssignmentID: assignmentID,
		CourseID:     row.CourseUuid,
		OccurredAt:   stored.SubmittedAt,
	})

	return &SubmitResult{
		AssignmentID: assignmentID,
		Submission:   submissionFromRow(&stored),
	}, nil
}

// resolveContent turns the submit payload into a tagged (kind, content) pair.
// Files go to the blob store first; the stored reference survives any
// optimistic-concurrency retry of the document write.
func (s *AssignSrvc) resolveContent(ctx context.Context, assignmentID, studentID string, p SubmitParams) (string, string, error) {
	if p.File != nil {
		if len(p.File.Content) == 0 {
			return "", "", newErrContentMissing()
		}
		if int64(len(p.File.Content)) > maxFileUploadMB<<20 {
			return "", "", newErrUploadTooLarge(maxFileUploadMB)
		}
		filename := path.Base(p.File.Filename)
		key := fmt.Sprintf("uploads/submissions/%s/%s/%s", assignmentID, studentID, filename)
		reference, err := s.blobs.Store(ctx, key, p.File.Content, p.File.MediaType)
		if err != nil {
			return "", "", newErrStorageFailure(err)
		}
		return ContentKindFile, reference, nil
	}

	if p.Text == nil || strings.TrimSpace(*p.Text) == "" {
		return "", "", newErrContentMissing()
	}
	if len(*p.Text) > maxTextSubmissionKB*1000 {
		return "", "", newErrContentTooLong(maxTextSubmissionKB)
	}
	return ContentKindText, *p.Text, nil
}

// saveWithRetry applies mutate to the row and saves it, re-reading and
// re-applying on version conflicts. mutate must be safe to run repeatedly.
func (s *AssignSrvc) saveWithRetry(ctx context.Context, assignmentID string, row *AssignmentRow, mutate func(*AssignmentRow) error) error {
	for attempt := 0; attempt < saveAttempts; attempt++ {
		if err := mutate(row); err != nil {
			return err
		}
		err := s.repo.Save(ctx, row)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return newErrStorageFailure(err)
		}

		row, err = s.repo.Get(ctx, assignmentID)
		if err != nil {
			return newErrInternalSE().SetDebug(err)
		}
		if row == nil {
			return newErrAssignmentNotFound()
		}
	}
	return newErrStorageFailure(ErrVersionConflict)
}
