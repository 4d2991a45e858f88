package quiz

import (
	"net/http"

	"github.com/eduflex-lms/backend/srvcerr"
)

const ErrCodeQuizNotFound = "quiz_not_found"

func newErrQuizNotFound() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeQuizNotFound,
		"quiz was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeCourseNotFound = "course_not_found"

func newErrCourseNotFound() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeCourseNotFound,
		"the course owning this quiz was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNotCourseOwner = "not_course_owner"

func newErrNotCourseOwner() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeNotCourseOwner,
		"only the professor who owns this course can do that",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeNotEnrolled = "not_enrolled"

func newErrNotEnrolled() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeNotEnrolled,
		"you are not enrolled in this course",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeTitleRequired = "title_required"

func newErrTitleRequired() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeTitleRequired,
		"title must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeQuestionsRequired = "questions_required"

func newErrQuestionsRequired() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeQuestionsRequired,
		"a quiz needs at least one question",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidQuestion = "invalid_question"

func newErrInvalidQuestion(msg string) *srvcerr.Error {
	return srvcerr.New(
		ErrCodeInvalidQuestion,
		msg,
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeAnswersMismatch = "answers_length_mismatch"

func newErrAnswersMismatch() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeAnswersMismatch,
		"the answer list must have one entry per question",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeStorageFailure = "storage_failure"

func newErrStorageFailure(err error) *srvcerr.Error {
	return srvcerr.New(
		ErrCodeStorageFailure,
		"failed to persist the change, please retry",
	).SetHttpStatusCode(http.StatusInternalServerError).SetDebug(err)
}

func newErrInternalSE() *srvcerr.Error {
	return srvcerr.ErrInternalSE()
}
