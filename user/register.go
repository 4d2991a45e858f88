package user

import (
	"context"
	"net/mail"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserParams struct {
	Username string
	Email    string
	Password string
	Role     string
}

func validateUsername(username string) error {
	const minUsernameLength = 2
	const maxUsernameLength = 32
	if len(username) < minUsernameLength {
		return newErrUsernameTooShort(minUsernameLength)
	}
	if len(username) > maxUsernameLength {
		return newErrUsernameTooLong()
	}
	return nil
}

func validateEmail(email string) error {
	const maxEmailLength = 320
	if len(email) == 0 || len(email) > maxEmailLength {
		return newErrEmailInvalid()
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return newErrEmailInvalid()
	}
	return nil
}

func validatePassword(password string) error {
	const minPasswordLength = 8
	if len(password) < minPasswordLength {
		return newErrPasswordTooShort(minPasswordLength)
	}
	if len(password) > 1024 {
		return newErrPasswordTooLong()
	}
	return nil
}

func validateRole(role string) error {
	allowed := []string{RoleStudent, RoleProfessor, RoleAdmin}
	if !slices.Contains(allowed, role) {
		return newErrInvalidRole()
	}
	return nil
}

func (s *UserSrvc) CreateUser(ctx context.Context, p CreateUserParams) (*User, error) {
	if err := validateUsername(p.Username); err != nil {
		return nil, err
	}
	if err := validateEmail(p.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(p.Password); err != nil {
		return nil, err
	}
	if p.Role == "" {
		p.Role = RoleStudent
	}
	if err := validateRole(p.Role); err != nil {
		return nil, err
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	for _, user := range all {
		// username and email must be unique
		if user.Username == p.Username {
			return nil, newErrUsernameExists()
		}
		if user.Email == p.Email {
			return nil, newErrEmailExists()
		}
	}

	bcryptPwd, err := bcrypt.GenerateFromPassword(
		[]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	row := &UserRow{
		Uuid:      uuid.New().String(),
		Username:  p.Username,
		Email:     p.Email,
		BcryptPwd: bcryptPwd,
		Role:      p.Role,
		Version:   0,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return &User{
		UUID:     row.Uuid,
		Username: row.Username,
		Email:    row.Email,
		Role:     row.Role,
	}, nil
}

func (s *UserSrvc) GetUserByUUID(ctx context.Context, uuid string) (*User, error) {
	row, err := s.repo.Get(ctx, uuid)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, newErrUserNotFound()
	}
	return &User{
		UUID:     row.Uuid,
		Username: row.Username,
		Email:    row.Email,
		Role:     row.Role,
	}, nil
}
