package assign

import (
	"fmt"
	"net/http"

	"github.com/eduflex-lms/backend/srvcerr"
)

const ErrCodeAssignmentNotFound = "assignment_not_found"

func newErrAssignmentNotFound() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeAssignmentNotFound,
		"assignment was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeCourseNotFound = "course_not_found"

func newErrCourseNotFound() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeCourseNotFound,
		"the course owning this assignment was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeSubmissionNotFound = "submission_not_found"

func newErrSubmissionNotFound() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeSubmissionNotFound,
		"no submission from this student was found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNotEnrolled = "not_enrolled"

func newErrNotEnrolled() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeNotEnrolled,
		"you are not enrolled in this course",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeNotCourseOwner = "not_course_owner"

func newErrNotCourseOwner() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeNotCourseOwner,
		"only the professor who owns this course can do that",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeContentMissing = "submission_content_missing"

func newErrContentMissing() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeContentMissing,
		"a submission needs either text or an uploaded file",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeContentTooLong = "submission_too_long"

func newErrContentTooLong(maxKB int) *srvcerr.Error {
	return srvcerr.New(
		ErrCodeContentTooLong,
		fmt.Sprintf("submission is too long, the maximum length is %d KB", maxKB),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUploadTooLarge = "upload_too_large"

func newErrUploadTooLarge(maxMB int64) *srvcerr.Error {
	return srvcerr.New(
		ErrCodeUploadTooLarge,
		fmt.Sprintf("uploaded file is too large, the maximum size is %d MB", maxMB),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeGradeOutOfRange = "grade_out_of_range"

func newErrGradeOutOfRange() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeGradeOutOfRange,
		"grade must be a number between 0 and 100",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTitleRequired = "title_required"

func newErrTitleRequired() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeTitleRequired,
		"title must not be empty",
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
