package user

import "context"

type UserSrvc struct {
	repo UserRepo
}

func NewUserService(repo UserRepo) *UserSrvc {
	return &UserSrvc{repo: repo}
}

// UserRepo is the persistence contract for user accounts. Production uses the
// DynamoDB table; tests use the in-memory implementation.
type UserRepo interface {
	List(ctx context.Context) ([]*UserRow, error)
	Get(ctx context.Context, uuid string) (*UserRow, error)
	Save(ctx context.Context, row *UserRow) error
}
