package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

func (s *UserSrvc) Login(ctx context.Context, username string, password string) (*User, error) {
	allUsers, err := s.repo.List(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	for _, user := range allUsers {
		if user.Username == username {
			err = bcrypt.CompareHashAndPassword(user.BcryptPwd, []byte(password))
			if err == nil {
				return &User{
					UUID:     user.Uuid,
					Username: user.Username,
					Email:    user.Email,
					Role:     user.Role,
				}, nil
			}
		}
	}

	return nil, newErrUsernameOrPasswordIncorrect()
}
