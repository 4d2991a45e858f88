package course

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

// CourseRow is the persisted shape of a course document.
type CourseRow struct {
	Uuid          string        `dynamo:"uuid,hash"` // partition key
	Title         string        `dynamo:"title"`
	Description   string        `dynamo:"description"`
	ProfessorUuid string        `dynamo:"professor_uuid"`
	StudentUuids  []string      `dynamo:"student_uuids"`
	Materials     []MaterialRow `dynamo:"materials"`
	Version       int64         `dynamo:"version"` // For optimistic locking
	CreatedAt     time.Time     `dynamo:"created_at"`
}

type MaterialRow struct {
	Title      string    `dynamo:"title"`
	FileUrl    string    `dynamo:"file_url"`
	UploadedAt time.Time `dynamo:"uploaded_at"`
}

type DdbCourseTable struct {
	ddbClient   *dynamodb.Client
	tableName   string
	courseTable *dynamo.Table
}

func NewDdbCourseTable(ddbClient *dynamodb.Client, tableName string) *DdbCourseTable {
	ddb := &DdbCourseTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.courseTable = &table

	return ddb
}

func (ddb *DdbCourseTable) Get(ctx context.Context, uuid string) (*CourseRow, error) {
	row := new(CourseRow)

	err := ddb.courseTable.Get("uuid", uuid).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return row, nil
}

func (ddb *DdbCourseTable) List(ctx context.Context) ([]*CourseRow, error) {
	var rows []*CourseRow
	err := ddb.courseTable.Scan().All(ctx, &rows)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Save writes a course row with optimistic locking on the version attribute.
func (ddb *DdbCourseTable) Save(ctx context.Context, row *CourseRow) error {
	row.Version++

	put := ddb.courseTable.Put(row).If("attribute_not_exists(version) OR version = ?", row.Version-1)
	return put.Run(ctx)
}

func (ddb *DdbCourseTable) Delete(ctx context.Context, uuid string) error {
	return ddb.courseTable.Delete("uuid", uuid).Run(ctx)
}
