package course

import (
	"net/http"

	"github.com/eduflex-lms/backend/srvcerr"
)

const ErrCodeCourseNotFound = "course_not_found"

func newErrCourseNotFound() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeCourseNotFound,
		"course was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNotCourseOwner = "not_course_owner"

func newErrNotCourseOwner() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeNotCourseOwner,
		"only the professor who owns this course can do that",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeNotProfessor = "not_professor"

func newErrNotProfessor() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeNotProfessor,
		"only professors can do that",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeAlreadyEnrolled = "already_enrolled"

func newErrAlreadyEnrolled() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeAlreadyEnrolled,
		"already enrolled in this course",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeTitleRequired = "title_required"

func newErrTitleRequired() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeTitleRequired,
		"title must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInternalSE() *srvcerr.Error {
	return srvcerr.ErrInternalSE()
}
