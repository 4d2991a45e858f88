package user

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

// UserRow is the persisted shape of a user account.
type UserRow struct {
	Uuid      string    `dynamo:"uuid,hash"` // Primary key
	Username  string    `dynamo:"username"`
	Email     string    `dynamo:"email"`
	BcryptPwd []byte    `dynamo:"bcrypt_pwd"`
	Role      string    `dynamo:"role"`
	Version   int       `dynamo:"version"` // For optimistic locking
	CreatedAt time.Time `dynamo:"created_at"`
}

// DdbUserTable wraps the DynamoDB user table.
type DdbUserTable struct {
	ddbClient  *dynamodb.Client
	tableName  string
	usersTable *dynamo.Table
}

func NewDdbUserTable(ddbClient *dynamodb.Client, tableName string) *DdbUserTable {
	ddb := &DdbUserTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.usersTable = &table

	return ddb
}

func (ddb *DdbUserTable) Get(ctx context.Context, uuid string) (*UserRow, error) {
	user := new(UserRow)

	err := ddb.usersTable.Get("uuid", uuid).One(ctx, user)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (ddb *DdbUserTable) List(ctx context.Context) ([]*UserRow, error) {
	var users []*UserRow
	err := ddb.usersTable.Scan().All(ctx, &users)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// Save writes a user row with optimistic locking on the version attribute.
func (ddb *DdbUserTable) Save(ctx context.Context, user *UserRow) error {
	user.Version++

	put := ddb.usersTable.Put(user).If("attribute_not_exists(version) OR version = ?", user.Version-1)
	return put.Run(ctx)
}
