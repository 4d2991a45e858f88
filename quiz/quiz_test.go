package quiz_test

import (
	"context"
	"testing"

	"github.com/eduflex-lms/backend/blobstore"
	"github.com/eduflex-lms/backend/course"
	"github.com/eduflex-lms/backend/quiz"
	"github.com/eduflex-lms/backend/srvcerr"
	"github.com/eduflex-lms/backend/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	courses *course.CourseSrvc
	quizzes *quiz.QuizSrvc

	professor user.Actor
	student   user.Actor
	outsider  user.Actor
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	courseSrvc := course.NewCourseService(course.NewInMemCourseRepo(), blobstore.NewInMemUploads())
	return &testEnv{
		courses:   courseSrvc,
		quizzes:   quiz.NewQuizService(quiz.NewInMemQuizRepo(), courseSrvc),
		professor: user.Actor{ID: uuid.New().String(), Role: user.RoleProfessor},
		student:   user.Actor{ID: uuid.New().String(), Role: user.RoleStudent},
		outsider:  user.Actor{ID: uuid.New().String(), Role: user.RoleStudent},
	}
}

func (env *testEnv) newCourse(t *testing.T, title string) *course.Course {
	t.Helper()
	ctx := context.Background()
	c, err := env.courses.CreateCourse(ctx, env.professor, course.CreateCourseParams{Title: title})
	require.NoError(t, err)
	_, err = env.courses.Enroll(ctx, env.student, c.UUID)
	require.NoError(t, err)
	return c
}

func twoQuestions() []quiz.Question {
	return []quiz.Question{
		{Text: "2 + 2 = ?", Options: []string{"3", "4", "5"}, CorrectOption: 1},
		{Text: "The capital of France?", Options: []string{"Paris", "Rome"}, CorrectOption: 0},
	}
}

func (env *testEnv) newQuiz(t *testing.T, courseID string) *quiz.Quiz {
	t.Helper()
	q, err := env.quizzes.CreateQuiz(context.Background(), env.professor, quiz.CreateQuizParams{
		Title:     "Midterm check",
		CourseID:  courseID,
		Questions: twoQuestions(),
	})
	require.NoError(t, err)
	return q
}

func assertErrCode(t *testing.T, err error, expectedCode string) {
	t.Helper()
	require.Error(t, err)
	var srvcErr *srvcerr.Error
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, expectedCode, srvcErr.ErrorCode())
}

func TestCreateQuiz(t *testing.T) {
	env := newTestEnv(t)
	c := env.newCourse(t, "Algorithms")

	q := env.newQuiz(t, c.UUID)

	assert.NotEmpty(t, q.UUID)
	assert.Equal(t, "Midterm check", q.Title)
	assert.Equal(t, c.UUID, q.CourseID)
	require.Len(t, q.Questions, 2)
	assert.Empty(t, q.Attempts)
}

func TestCreateQuizValidation(t *testing.T) {
	env := newTestEnv(t)
	c := env.newCourse(t, "Algorithms")
	ctx := context.Background()

	t.Run("Title Required", func(t *testing.T) {
		_, err := env.quizzes.CreateQuiz(ctx, env.professor, quiz.CreateQuizParams{
			Title:     " ",
			CourseID:  c.UUID,
			Questions: twoQuestions(),
		})
		assertErrCode(t, err, quiz.ErrCodeTitleRequired)
	})

	t.Run("Questions Required", func(t *testing.T) {
		_, err := env.quizzes.CreateQuiz(ctx, env.professor, quiz.CreateQuizParams{
			Title:    "Empty quiz",
			CourseID: c.UUID,
		})
		assertErrCode(t, err, quiz.ErrCodeQuestionsRequired)
	})

	t.Run("Too Few Options", func(t *testing.T) {
		_, err := env.quizzes.CreateQuiz(ctx, env.professor, quiz.CreateQuizParams{
			Title:    "Broken quiz",
			CourseID: c.UUID,
			Questions: []quiz.Question{
				{Text: "Yes?", Options: []string{"yes"}, CorrectOption: 0},
			},
		})
		assertErrCode(t, err, quiz.ErrCodeInvalidQuestion)
	})

	t.Run("Correct Option Out Of Range", func(t *testing.T) {
		_, err := env.quizzes.CreateQuiz(ctx, env.professor, quiz.CreateQuizParams{
			Title:    "Broken quiz",
			CourseID: c.UUID,
			Questions: []quiz.Question{
				{Text: "Pick one", Options: []string{"a", "b"}, CorrectOption: 2},
			},
		})
		assertErrCode(t, err, quiz.ErrCodeInvalidQuestion)
	})

	t.Run("Unknown Course", func(t *testing.T) {
		_, err := env.quizzes.CreateQuiz(ctx, env.professor, quiz.CreateQuizParams{
			Title:     "Orphan quiz",
			CourseID:  "no-such-course",
			Questions: twoQuestions(),
		})
		assertErrCode(t, err, quiz.ErrCodeCourseNotFound)
	})

	t.Run("Not Course Owner", func(t *testing.T) {
		other := user.Actor{ID: uuid.New().String(), Role: user.RoleProfessor}
		_, err := env.quizzes.CreateQuiz(ctx, other, quiz.CreateQuizParams{
			Title:     "Intruder quiz",
			CourseID:  c.UUID,
			Questions: twoQuestions(),
		})
		assertErrCode(t, err, quiz.ErrCodeNotCourseOwner)
	})

	t.Run("Admin May Create", func(t *testing.T) {
		admin := user.Actor{ID: uuid.New().String(), Role: user.RoleAdmin}
		_, err := env.quizzes.CreateQuiz(ctx, admin, quiz.CreateQuizParams{
			Title:     "Admin quiz",
			CourseID:  c.UUID,
			Questions: twoQuestions(),
		})
		assert.NoError(t, err)
	})
}

func TestTakeQuizScoring(t *testing.T) {
	env := newTestEnv(t)
	c := env.newCourse(t, "Algorithms")
	q := env.newQuiz(t, c.UUID)
	ctx := context.Background()

	t.Run("All Correct", func(t *testing.T) {
		res, err := env.quizzes.Take(ctx, q.UUID, env.student, []int{1, 0})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Score)
		assert.Equal(t, 2, res.Total)
	})

	t.Run("Partially Correct", func(t *testing.T) {
		res, err := env.quizzes.Take(ctx, q.UUID, env.student, []int{1, 1})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Score)
	})

	t.Run("All Wrong", func(t *testing.T) {
		res, err := env.quizzes.Take(ctx, q.UUID, env.student, []int{0, 1})
		require.NoError(t, err)
		assert.Equal(t, 0, res.Score)
	})
}

func TestTakeQuizRecordsAttempts(t *testing.T) {
	env := newTestEnv(t)
	c := env.newCourse(t, "Algorithms")
	q := env.newQuiz(t, c.UUID)
	ctx := context.Background()

	_, err := env.quizzes.Take(ctx, q.UUID, env.student, []int{1, 0})
	require.NoError(t, err)
	_, err = env.quizzes.Take(ctx, q.UUID, env.student, []int{0, 0})
	require.NoError(t, err)

	got, err := env.quizzes.GetQuiz(ctx, q.UUID)
	require.NoError(t, err)
	require.Len(t, got.Attempts, 2)
	assert.Equal(t, env.student.ID, got.Attempts[0].StudentID)
	assert.Equal(t, 2, got.Attempts[0].Score)
	assert.Equal(t, 1, got.Attempts[1].Score)
	assert.Equal(t, []int{0, 0}, got.Attempts[1].Answers)
}

func TestTakeQuizGuards(t *testing.T) {
	env := newTestEnv(t)
	c := env.newCourse(t, "Algorithms")
	q := env.newQuiz(t, c.UUID)
	ctx := context.Background()

	t.Run("Unknown Quiz", func(t *testing.T) {
		_, err := env.quizzes.Take(ctx, "no-such-quiz", env.student, []int{1, 0})
		assertErrCode(t, err, quiz.ErrCodeQuizNotFound)
	})

	t.Run("Not Enrolled", func(t *testing.T) {
		_, err := env.quizzes.Take(ctx, q.UUID, env.outsider, []int{1, 0})
		assertErrCode(t, err, quiz.ErrCodeNotEnrolled)

		got, err := env.quizzes.GetQuiz(ctx, q.UUID)
		require.NoError(t, err)
		assert.Empty(t, got.Attempts)
	})

	t.Run("Answers Length Mismatch", func(t *testing.T) {
		_, err := env.quizzes.Take(ctx, q.UUID, env.student, []int{1})
		assertErrCode(t, err, quiz.ErrCodeAnswersMismatch)
	})
}

func TestListQuizzesForCourse(t *testing.T) {
	env := newTestEnv(t)
	c := env.newCourse(t, "Algorithms")
	other := env.newCourse(t, "Databases")
	ctx := context.Background()

	first := env.newQuiz(t, c.UUID)
	second := env.newQuiz(t, c.UUID)
	env.newQuiz(t, other.UUID)

	quizzes, err := env.quizzes.ListForCourse(ctx, c.UUID)
	require.NoError(t, err)
	require.Len(t, quizzes, 2)

	// newest first
	ids := []string{quizzes[0].UUID, quizzes[1].UUID}
	assert.Contains(t, ids, first.UUID)
	assert.Contains(t, ids, second.UUID)
	assert.False(t, quizzes[0].CreatedAt.Before(quizzes[1].CreatedAt))

	_, err = env.quizzes.ListForCourse(ctx, "no-such-course")
	assertErrCode(t, err, quiz.ErrCodeCourseNotFound)
}
