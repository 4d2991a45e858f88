package http

import (
	"time"

	"github.com/eduflex-lms/backend/assign"
)

type Submission struct {
	StudentID   string     `json:"studentId"`
	ContentKind string     `json:"contentKind"`
	Content     string     `json:"content"`
	Grade       *float64   `json:"grade,omitempty"`
	Feedback    *string    `json:"feedback,omitempty"`
	SubmittedAt time.Time  `json:"submittedAt"`
	GradedAt    *time.Time `json:"gradedAt,omitempty"`
}

type Assignment struct {
	UUID          string       `json:"uuid"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	CourseID      string       `json:"courseId"`
	DueDate       time.Time    `json:"dueDate"`
	AttachmentUrl string       `json:"attachmentUrl,omitempty"`
	Submissions   []Submission `json:"submissions"`
	CreatedAt     time.Time    `json:"createdAt"`
}

type StudentAssignment struct {
	AssignmentID  string     `json:"assignmentId"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	CourseID      string     `json:"courseId"`
	DueDate       time.Time  `json:"dueDate"`
	AttachmentUrl string     `json:"attachmentUrl,omitempty"`
	Status        string     `json:"status"`
	Grade         *float64   `json:"grade,omitempty"`
	Feedback      *string    `json:"feedback,omitempty"`
	SubmittedAt   *time.Time `json:"submittedAt,omitempty"`
}

func mapSubmission(s assign.Submission) Submission {
	return Submission{
		StudentID:   s.StudentID,
		ContentKind: s.ContentKind,
		Content:     s.Content,
		Grade:       s.Grade,
		Feedback:    s.Feedback,
		SubmittedAt: s.SubmittedAt,
		GradedAt:    s.GradedAt,
	}
}

func mapAssignment(a *assign.Assignment) Assignment {
	submissions := make([]Submission, 0, len(a.Submissions))
	for _, s := range a.Submissions {
		submissions = append(submissions, mapSubmission(s))
	}
	return Assignment{
		UUID:          a.UUID,
		Title:         a.Title,
		Description:   a.Description,
		CourseID:      a.CourseID,
		DueDate:       a.DueDate,
		AttachmentUrl: a.AttachmentUrl,
		Submissions:   submissions,
		CreatedAt:     a.CreatedAt,
	}
}

func mapAssignments(assignments []*assign.Assignment) []Assignment {
	out := make([]Assignment, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, mapAssignment(a))
	}
	return out
}
