package assign

import "time"

// Content kinds for a submission. The persisted record carries an explicit
// discriminant instead of sniffing the content string.
const (
	ContentKindText = "text"
	ContentKindFile = "file"
)

// Submission statuses derived for the student view.
const (
	StatusPending   = "pending"
	StatusSubmitted = "submitted"
	StatusGraded    = "graded"
)

type Assignment struct {
	UUID          string
	Title         string
	Description   string
	CourseID      string
	DueDate       time.Time
	AttachmentUrl string
	Submissions   []Submission
	CreatedAt     time.Time
}

type Submission struct {
	StudentID   string
	ContentKind string // "text" or "file"
	Content     string // literal text, or a blob reference for file uploads
	Grade       *float64
	Feedback    *string
	SubmittedAt time.Time
	GradedAt    *time.Time
}

func (s *Submission) Status() string {
	if s == nil {
		return StatusPending
	}
	if s.Grade != nil {
		return StatusGraded
	}
	return StatusSubmitted
}

// StudentAssignmentView is one row of the per-student assignment list.
type StudentAssignmentView struct {
	AssignmentID  string
	Title         string
	Description   string
	CourseID      string
	DueDate       time.Time
	AttachmentUrl string
	Status        string // pending, submitted or graded
	Grade         *float64
	Feedback      *string
	SubmittedAt   *time.Time
}
