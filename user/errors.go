package user

import (
	"fmt"
	"net/http"

	"github.com/eduflex-lms/backend/srvcerr"
)

const ErrCodeUsernameTooShort = "username_too_short"

func newErrUsernameTooShort(minLength int) *srvcerr.Error {
	return srvcerr.New(
		ErrCodeUsernameTooShort,
		fmt.Sprintf("username must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUsernameTooLong = "username_too_long"

func newErrUsernameTooLong() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeUsernameTooLong,
		"username is too long",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUsernameAlreadyExists = "username_exists"

func newErrUsernameExists() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeUsernameAlreadyExists,
		"username already exists",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeEmailAlreadyExists = "email_exists"

func newErrEmailExists() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeEmailAlreadyExists,
		"email already exists",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeEmailInvalid = "email_invalid"

func newErrEmailInvalid() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeEmailInvalid,
		"email is not valid",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePasswordTooShort = "password_too_short"

func newErrPasswordTooShort(minLength int) *srvcerr.Error {
	return srvcerr.New(
		ErrCodePasswordTooShort,
		fmt.Sprintf("password must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePasswordTooLong = "password_too_long"

func newErrPasswordTooLong() *srvcerr.Error {
	return srvcerr.New(
		ErrCodePasswordTooLong,
		"password is too long",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidRole = "invalid_role"

func newErrInvalidRole() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeInvalidRole,
		"role must be one of: student, professor, admin",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUserNotFound = "user_not_found"

func newErrUserNotFound() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeUserNotFound,
		"user was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeUsernameOrPasswordIncorrect = "username_or_password_incorrect"

func newErrUsernameOrPasswordIncorrect() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeUsernameOrPasswordIncorrect,
		"username or password is incorrect",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

func newErrInternalSE() *srvcerr.Error {
	return srvcerr.ErrInternalSE()
}
