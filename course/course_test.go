package course_test

import (
	"context"
	"testing"

	"github.com/eduflex-lms/backend/blobstore"
	"github.com/eduflex-lms/backend/course"
	"github.com/eduflex-lms/backend/srvcerr"
	"github.com/eduflex-lms/backend/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCourseSrvc(t *testing.T) (*course.CourseSrvc, *blobstore.InMemUploads) {
	t.Helper()
	uploads := blobstore.NewInMemUploads()
	return course.NewCourseService(course.NewInMemCourseRepo(), uploads), uploads
}

func newActor(role string) user.Actor {
	return user.Actor{ID: uuid.New().String(), Role: role}
}

func assertErrCode(t *testing.T, err error, expectedCode string) {
	t.Helper()
	require.Error(t, err)
	var srvcErr *srvcerr.Error
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, expectedCode, srvcErr.ErrorCode())
}

func TestCreateCourse(t *testing.T) {
	srvc, _ := newTestCourseSrvc(t)
	professor := newActor(user.RoleProfessor)
	ctx := context.Background()

	c, err := srvc.CreateCourse(ctx, professor, course.CreateCourseParams{
		Title:       "Algorithms",
		Description: "sorting and searching",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.UUID)
	assert.Equal(t, professor.ID, c.ProfessorID)
	assert.Empty(t, c.StudentIDs)

	t.Run("Student Cannot Create", func(t *testing.T) {
		_, err := srvc.CreateCourse(ctx, newActor(user.RoleStudent), course.CreateCourseParams{Title: "Hacking"})
		assertErrCode(t, err, course.ErrCodeNotProfessor)
	})

	t.Run("Title Required", func(t *testing.T) {
		_, err := srvc.CreateCourse(ctx, professor, course.CreateCourseParams{Title: " "})
		assertErrCode(t, err, course.ErrCodeTitleRequired)
	})
}

func TestUpdateCourse(t *testing.T) {
	srvc, _ := newTestCourseSrvc(t)
	professor := newActor(user.RoleProfessor)
	ctx := context.Background()

	c, err := srvc.CreateCourse(ctx, professor, course.CreateCourseParams{Title: "Algorithms"})
	require.NoError(t, err)

	newTitle := "Advanced Algorithms"
	updated, err := srvc.UpdateCourse(ctx, professor, c.UUID, course.UpdateCourseParams{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Advanced Algorithms", updated.Title)

	t.Run("Only Owner May Update", func(t *testing.T) {
		other := newActor(user.RoleProfessor)
		_, err := srvc.UpdateCourse(ctx, other, c.UUID, course.UpdateCourseParams{Title: &newTitle})
		assertErrCode(t, err, course.ErrCodeNotCourseOwner)
	})

	t.Run("Admin May Update", func(t *testing.T) {
		adminTitle := "Renamed By Admin"
		updated, err := srvc.UpdateCourse(ctx, newActor(user.RoleAdmin), c.UUID, course.UpdateCourseParams{Title: &adminTitle})
		require.NoError(t, err)
		assert.Equal(t, "Renamed By Admin", updated.Title)
	})
}

func TestEnroll(t *testing.T) {
	srvc, _ := newTestCourseSrvc(t)
	professor := newActor(user.RoleProfessor)
	student := newActor(user.RoleStudent)
	ctx := context.Background()

	c, err := srvc.CreateCourse(ctx, professor, course.CreateCourseParams{Title: "Algorithms"})
	require.NoError(t, err)

	enrolled, err := srvc.Enroll(ctx, student, c.UUID)
	require.NoError(t, err)
	assert.Contains(t, enrolled.StudentIDs, student.ID)

	t.Run("Enrolling Twice Conflicts", func(t *testing.T) {
		_, err := srvc.Enroll(ctx, student, c.UUID)
		assertErrCode(t, err, course.ErrCodeAlreadyEnrolled)
	})

	t.Run("Unknown Course", func(t *testing.T) {
		_, err := srvc.Enroll(ctx, student, "no-such-course")
		assertErrCode(t, err, course.ErrCodeCourseNotFound)
	})
}

func TestResolveCourse(t *testing.T) {
	srvc, _ := newTestCourseSrvc(t)
	professor := newActor(user.RoleProfessor)
	student := newActor(user.RoleStudent)
	ctx := context.Background()

	c, err := srvc.CreateCourse(ctx, professor, course.CreateCourseParams{Title: "Algorithms"})
	require.NoError(t, err)
	_, err = srvc.Enroll(ctx, student, c.UUID)
	require.NoError(t, err)

	instructorID, studentIDs, found, err := srvc.ResolveCourse(ctx, c.UUID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, professor.ID, instructorID)
	assert.Equal(t, []string{student.ID}, studentIDs)

	_, _, found, err = srvc.ResolveCourse(ctx, "no-such-course")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestListCoursesByRole(t *testing.T) {
	srvc, _ := newTestCourseSrvc(t)
	professor := newActor(user.RoleProfessor)
	otherProf := newActor(user.RoleProfessor)
	student := newActor(user.RoleStudent)
	ctx := context.Background()

	mine, err := srvc.CreateCourse(ctx, professor, course.CreateCourseParams{Title: "Algorithms"})
	require.NoError(t, err)
	theirs, err := srvc.CreateCourse(ctx, otherProf, course.CreateCourseParams{Title: "Databases"})
	require.NoError(t, err)

	_, err = srvc.Enroll(ctx, student, theirs.UUID)
	require.NoError(t, err)

	all, err := srvc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	owned, err := srvc.ListCoursesForProfessor(ctx, professor.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, mine.UUID, owned[0].UUID)

	enrolled, err := srvc.ListCoursesForStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, theirs.UUID, enrolled[0].UUID)
}

func TestAddMaterial(t *testing.T) {
	srvc, uploads := newTestCourseSrvc(t)
	professor := newActor(user.RoleProfessor)
	ctx := context.Background()

	c, err := srvc.CreateCourse(ctx, professor, course.CreateCourseParams{Title: "Algorithms"})
	require.NoError(t, err)

	updated, err := srvc.AddMaterial(ctx, professor, c.UUID, course.AddMaterialParams{
		Title:     "Lecture Notes",
		Filename:  "notes.pdf",
		Content:   []byte("%PDF-1.4 notes"),
		MediaType: "application/pdf",
	})
	require.NoError(t, err)
	require.Len(t, updated.Materials, 1)
	assert.Equal(t, "Lecture Notes", updated.Materials[0].Title)
	assert.NotEmpty(t, updated.Materials[0].FileUrl)
	assert.Equal(t, 1, uploads.Len())

	t.Run("Only Owner May Upload", func(t *testing.T) {
		_, err := srvc.AddMaterial(ctx, newActor(user.RoleProfessor), c.UUID, course.AddMaterialParams{
			Title:    "Rogue Notes",
			Filename: "rogue.pdf",
			Content:  []byte("nope"),
		})
		assertErrCode(t, err, course.ErrCodeNotCourseOwner)
	})
}

func TestDeleteCourse(t *testing.T) {
	srvc, uploads := newTestCourseSrvc(t)
	professor := newActor(user.RoleProfessor)
	ctx := context.Background()

	c, err := srvc.CreateCourse(ctx, professor, course.CreateCourseParams{Title: "Algorithms"})
	require.NoError(t, err)
	_, err = srvc.AddMaterial(ctx, professor, c.UUID, course.AddMaterialParams{
		Title:    "Lecture Notes",
		Filename: "notes.pdf",
		Content:  []byte("%PDF-1.4 notes"),
	})
	require.NoError(t, err)

	t.Run("Only Owner May Delete", func(t *testing.T) {
		err := srvc.DeleteCourse(ctx, newActor(user.RoleProfessor), c.UUID)
		assertErrCode(t, err, course.ErrCodeNotCourseOwner)
	})

	require.NoError(t, srvc.DeleteCourse(ctx, professor, c.UUID))

	_, err = srvc.GetCourse(ctx, c.UUID)
	assertErrCode(t, err, course.ErrCodeCourseNotFound)
	assert.Equal(t, 0, uploads.Len())
}
