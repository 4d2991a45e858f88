package assign_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/eduflex-lms/backend/assign"
	"github.com/eduflex-lms/backend/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitText(t *testing.T) {
	env := newTestEnv(t)
	c := env.newCourse(t, "Algorithms")
	a := env.newAssignment(t, c.UUID, "Homework 1", time.Now().Add(24*time.Hour))

	res := env.submitText(t, a.UUID, env.student, "my solution")

	assert.Equal(t, a.UUID, res.AssignmentID)
	assert.Equal(t, env.student.ID, res.Submission.StudentID)
	assert.Equal(t, assign.ContentKindText, res.Submission.ContentKind)
	assert.Equal(t, "my solution", res.Submission.Content)
	assert.Nil(t, res.Submission.Grade)
	assert.Nil(t, res.Submission.Feedback)
	assert.False(t, res.Submission.SubmittedAt.IsZero())
	assert.Equal(t, assign.StatusSubmitted, res.Submission.Status())
}

func TestSubmitFileStoresBlob(t *testing.T) {
	env := newTestEnv(t)
	c := env.newCourse(t, "Algorithms")
	a := env.newAssignment(t, c.UUID, "Homework 1", time.Now().Add(24*time.Hour))

	res, err := env.assigns.Submit(context.Background(), a.UUID, env.student, assign.SubmitParams{
		File: &assign.FileUpload{
			Filename:  "solution.pdf",
			Content:   []byte("%PDF-1.4 pretend"),
			MediaType: "application/pdf",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, assign.ContentKindFile, res.Submission.ContentKind)
	assert.Contains(t, res.Submission.Content, a.UUID)
	assert.Contains(t, res.Submission.Content, env.student.ID)
	assert.Equal(t, 1, env.uploads.Len())

	content, err := env.uploads.Download(context.Background(), res.Submission.Content)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 pretend"), content)
}

func TestSubmitUnknownAssignment(t *testing.T) {
	env := newTestEnv(t)
	env.newCourse(t, "Algorithms")

	text := "solution"
	_, err := env.assigns.Submit(context.Background(), "no-such-assignment", env.student, assign.SubmitParams{Text: &text})
	assertErrCode(t, err, assign.ErrCodeAssignmentNotFound)
}

func TestSubmitEnrollmentGate(t *testing.T) {
	env := newTestEnv(t)
	c := env.newCourse(t, "Algorithms")
	a := env.newAssignment(t, c.UUID, "Homework 1", time.Now().Add(24*time.Hour))

	text := "sneaky solution"
	_, err := env.assigns.Submit(context.Background(), a.UUID, env.outsider, assign.SubmitParams{Text: &text})
	assertErrCode(t, err, assign.ErrCodeNotEnrolled)

	// the rejected attempt must not leave a submission behind
	got, err := env.assigns.GetAssignment(context.Background(), a.UUID)
	require.NoError(t, err)
	assert.Empty(t, got.Submissions)
}

func TestSubmitContentValidation(t *testing.T) {
	env := newTestEnv(t)
	c := env.newCourse(t, "Algorithms")
	a := env.newAssignment(t, c.UUID, "Homework 1", time.Now().Add(24*time.Hour))
	ctx := context.Background()

	t.Run("Missing Content", func(t *testing.T) {
		_, err := env.assigns.Submit(ctx, a.UUID, env.student, assign.SubmitParams{})
		assertErrCode(t, err, assign.ErrCodeContentMissing)
	})

	t.Run("Blank Text", func(t *testing.T) {
		blank := "   \n\t"
		_, err := env.assigns.Submit(ctx, a.UUID, env.student, assign.SubmitParams{Text: &blank})
		assertErrCode(t, err, assign.ErrCodeContentMissing)
	})

	t.Run("Text Too Long", func(t *testing.T) {
		huge := strings.Repeat("x", 65*1000)
		_, err := env.assigns.Submit(ctx, a.UUID, env.student, assign.SubmitParams{Text: &huge})
		assertErrCode(t, err, assign.ErrCodeContentTooLong)
	})

	t.Run("Empty File", func(t *testing.T) {
		_, err := env.assigns.Submit(ctx, a.UUID, env.student, assign.SubmitParams{
			File: &assign.FileUpload{Filename: "empty.txt"},
		})
		assertErrCode(t, err, assign.ErrCodeContentMissing)
	})
}

func TestResubmissionReplacesNotAppends(t *testing.T) {
	env := newTestEnv(t)
	c := env.newCourse(t, "Algorithms")
	a := env.newAssignment(t, c.UUID, "Homework 1", time.Now().Add(24*time.Hour))

	env.submitText(t, a.UUID, env.student, "first attempt")
	env.submitText(t, a.UUID, env.student, "second attempt")

	got, err := env.assigns.GetAssignment(context.Background(), a.UUID)
	require.NoError(t, err)
	require.Len(t, got.Submissions, 1)
	assert.Equal(t, "second attempt", got.Submissions[0].Content)
}

func TestResubmissionClearsGrading(t *testing.T) {
	env := newTestEnv(t)
	c := env.newCourse(t, "Algorithms")
	a := env.newAssignment(t, c.UUID, "Homework 1", time.Now().Add(24*time.Hour))

	env.submitText(t, a.UUID, env.student, "first attempt")
	env.grade(t, a.UUID, env.student.ID, 85, "good work")

	res := env.submitText(t, a.UUID, env.student, "second attempt")

	assert.Nil(t, res.Submission.Grade)
	assert.Nil(t, res.Submission.Feedback)
	assert.Nil(t, res.Submission.GradedAt)
	assert.Equal(t, assign.StatusSubmitted, res.Submission.Status())

	got, err := env.assigns.GetAssignment(context.Background(), a.UUID)
	require.NoError(t, err)
	require.Len(t, got.Submissions, 1)
	assert.Nil(t, got.Submissions[0].Grade)
	assert.Equal(t, "second attempt", got.Submissions[0].Content)
}

func TestSubmitNotifiesInstructor(t *testing.T) {
	env := newTestEnv(t)
	c := env.newCourse(t, "Algorithms")
	a := env.newAssignment(t, c.UUID, "Homework 1", time.Now().Add(24*time.Hour))

	env.submitText(t, a.UUID, env.student, "my solution")

	events := env.notifier.Events()
	require.Len(t, events, 1)
	assert.Equal(t, notify.EventSubmissionReceived, events[0].Type)
	assert.Equal(t, env.professor.ID, events[0].RecipientID)
	assert.Equal(t, a.UUID, events[0].AssignmentID)
	assert.Equal(t, c.UUID, events[0].CourseID)
}

func TestSubmissionsAreIndependentPerStudent(t *testing.T) {
	env := newTestEnv(t)
	c := env.newCourse(t, "Algorithms")
	a := env.newAssignment(t, c.UUID, "Homework 1", time.Now().Add(24*time.Hour))

	_, err := env.courses.Enroll(context.Background(), env.outsider, c.UUID)
	require.NoError(t, err)

	env.submitText(t, a.UUID, env.student, "from the first student")
	env.submitText(t, a.UUID, env.outsider, "from the second student")

	got, err := env.assigns.GetAssignment(context.Background(), a.UUID)
	require.NoError(t, err)
	assert.Len(t, got.Submissions, 2)
}
