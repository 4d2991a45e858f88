package assign_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/eduflex-lms/backend/assign"
	"github.com/eduflex-lms/backend/blobstore"
	"github.com/eduflex-lms/backend/course"
	"github.com/eduflex-lms/backend/notify"
	"github.com/eduflex-lms/backend/srvcerr"
	"github.com/eduflex-lms/backend/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures published events for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *recordingNotifier) Publish(ctx context.Context, event notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) Events() []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Event(nil), n.events...)
}

type testEnv struct {
	courses  *course.CourseSrvc
	assigns  *assign.AssignSrvc
	uploads  *blobstore.InMemUploads
	notifier *recordingNotifier

	professor user.Actor
	student   user.Actor
	outsider  user.Actor
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	uploads := blobstore.NewInMemUploads()
	notifier := &recordingNotifier{}
	courseSrvc := course.NewCourseService(course.NewInMemCourseRepo(), uploads)
	assignSrvc := assign.NewAssignService(assign.NewInMemAssignRepo(), courseSrvc, uploads, notifier)

	return &testEnv{
		courses:   courseSrvc,
		assigns:   assignSrvc,
		uploads:   uploads,
		notifier:  notifier,
		professor: user.Actor{ID: uuid.New().String(), Role: user.RoleProfessor},
		student:   user.Actor{ID: uuid.New().String(), Role: user.RoleStudent},
		outsider:  user.Actor{ID: uuid.New().String(), Role: user.RoleStudent},
	}
}

// newCourse creates a course owned by the env's professor with the env's
// student enrolled.
func (env *testEnv) newCourse(t *testing.T, title string) *course.Course {
	t.Helper()
	ctx := context.Background()
	c, err := env.courses.CreateCourse(ctx, env.professor, course.CreateCourseParams{
		Title:       title,
		Description: "a test course",
	})
	require.NoError(t, err)
	_, err = env.courses.Enroll(ctx, env.student, c.UUID)
	require.NoError(t, err)
	return c
}

func (env *testEnv) newAssignment(t *testing.T, courseID, title string, due time.Time) *assign.Assignment {
	t.Helper()
	a, err := env.assigns.CreateAssignment(context.Background(), env.professor, assign.CreateAssignmentParams{
		Title:       title,
		Description: "solve the exercise",
		CourseID:    courseID,
		DueDate:     due,
	})
	require.NoError(t, err)
	return a
}

func (env *testEnv) submitText(t *testing.T, assignmentID string, actor user.Actor, text string) *assign.SubmitResult {
	t.Helper()
	res, err := env.assigns.Submit(context.Background(), assignmentID, actor, assign.SubmitParams{Text: &text})
	require.NoError(t, err)
	return res
}

func (env *testEnv) grade(t *testing.T, assignmentID string, studentID string, grade float64, feedback string) *assign.GradeResult {
	t.Helper()
	res, err := env.assigns.Grade(context.Background(), assignmentID, env.professor, assign.GradeParams{
		StudentID: studentID,
		Grade:     grade,
		Feedback:  &feedback,
	})
	require.NoError(t, err)
	return res
}

func assertErrCode(t *testing.T, err error, expectedCode string) {
	t.Helper()
	require.Error(t, err)
	var srvcErr *srvcerr.Error
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, expectedCode, srvcErr.ErrorCode())
}
