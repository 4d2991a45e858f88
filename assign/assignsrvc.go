package assign

import (
	"context"
	"errors"

	"github.com/eduflex-lms/backend/notify"
)

// ErrVersionConflict is returned by AssignRepo.Save when the row changed
// since it was read. Operations re-read and re-apply their mutation.
var ErrVersionConflict = errors.New("assignment version conflict")

// saveAttempts bounds the optimistic-concurrency retry loop.
const saveAttempts = 5

type AssignSrvc struct {
	repo     AssignRepo
	courses  EnrollmentOracle
	blobs    BlobStore
	notifier notify.Notifier
}

func NewAssignService(repo AssignRepo, courses EnrollmentOracle, blobs BlobStore, notifier notify.Notifier) *AssignSrvc {
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	return &AssignSrvc{
		repo:     repo,
		courses:  courses,
		blobs:    blobs,
		notifier: notifier,
	}
}

// AssignRepo is the persistence contract for assignment documents. Save must
// reject writes against a stale version with ErrVersionConflict so that two
// concurrent writers cannot silently merge their changes.
type AssignRepo interface {
	Get(ctx context.Context, uuid string) (*AssignmentRow, error)
	List(ctx context.Context) ([]*AssignmentRow, error)
	Save(ctx context.Context, row *AssignmentRow) error
	Delete(ctx context.Context, uuid string) error
}

// EnrollmentOracle resolves the course owning an assignment. found is false
// when the course record is missing, which signals referential corruption.
type EnrollmentOracle interface {
	ResolveCourse(ctx context.Context, courseID string) (instructorID string, studentIDs []string, found bool, err error)
}

// BlobStore stores uploaded files and returns stable reference strings.
type BlobStore interface {
	Store(ctx context.Context, key string, content []byte, mediaType string) (string, error)
	Download(ctx context.Context, reference string) ([]byte, error)
	Delete(ctx context.Context, reference string) error
}
