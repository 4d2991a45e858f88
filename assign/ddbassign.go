package assign

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

// AssignmentRow is the persisted shape of an assignment document. The
// submission list stays an ordered sequence; lookups are by student id.
type AssignmentRow struct {
	Uuid          string          `dynamo:"uuid,hash"` // partition key
	Title         string          `dynamo:"title"`
	Description   string          `dynamo:"description"`
	CourseUuid    string          `dynamo:"course_uuid"`
	DueDate       time.Time       `dynamo:"due_date"`
	AttachmentUrl string          `dynamo:"attachment_url"`
	Submissions   []SubmissionRow `dynamo:"submissions"`
	Version       int64           `dynamo:"version"` // For optimistic locking
	CreatedAt     time.Time       `dynamo:"created_at"`
}

type SubmissionRow struct {
	StudentUuid string     `dynamo:"student_uuid"`
	ContentKind string     `dynamo:"content_kind"` // "text" or "file"
	Content     string     `dynamo:"content"`
	Grade       *float64   `dynamo:"grade"`
	Feedback    *string    `dynamo:"feedback"`
	SubmittedAt time.Time  `dynamo:"submitted_at"`
	GradedAt    *time.Time `dynamo:"graded_at"`
}

// submissionIndex returns the position of the student's submission, or -1.
func (row *AssignmentRow) submissionIndex(studentID string) int {
	for i := range row.Submissions {
		if row.Submissions[i].StudentUuid == studentID {
			return i
		}
	}
	return -1
}

func submissionFromRow(row *SubmissionRow) Submission {
	return Submission{
		StudentID:   row.StudentUuid,
		ContentKind: row.ContentKind,
		Content:     row.Content,
		Grade:       row.Grade,
		Feedback:    row.Feedback,
		SubmittedAt: row.SubmittedAt,
		GradedAt:    row.GradedAt,
	}
}

func assignmentFromRow(row *AssignmentRow) *Assignment {
	submissions := make([]Submission, 0, len(row.Submissions))
	for i := range row.Submissions {
		submissions = append(submissions, submissionFromRow(&row.Submissions[i]))
	}
	return &Assignment{
		UUID:          row.Uuid,
		Title:         row.Title,
		Description:   row.Description,
		CourseID:      row.CourseUuid,
		DueDate:       row.DueDate,
		AttachmentUrl: row.AttachmentUrl,
		Submissions:   submissions,
		CreatedAt:     row.CreatedAt,
	}
}

type DdbAssignTable struct {
	ddbClient   *dynamodb.Client
	tableName   string
	assignTable *dynamo.Table
}

func NewDdbAssignTable(ddbClient *dynamodb.Client, tableName string) *DdbAssignTable {
	ddb := &DdbAssignTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.assignTable = &table

	return ddb
}

func (ddb *DdbAssignTable) Get(ctx context.Context, uuid string) (*AssignmentRow, error) {
	row := new(AssignmentRow)

	err := ddb.assignTable.Get("uuid", uuid).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return row, nil
}

func (ddb *DdbAssignTable) List(ctx context.Context) ([]*AssignmentRow, error) {
	var rows []*AssignmentRow
	err := ddb.assignTable.Scan().All(ctx, &rows)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Save writes the whole assignment document conditionally on the version it
// was read at. A concurrent writer makes the condition fail, which surfaces
// as ErrVersionConflict so the caller re-reads and re-applies.
func (ddb *DdbAssignTable) Save(ctx context.Context, row *AssignmentRow) error {
	row.Version++

	put := ddb.assignTable.Put(row).If("attribute_not_exists(version) OR version = ?", row.Version-1)
	err := put.Run(ctx)
	if err != nil {
		if dynamo.IsCondCheckFailed(err) {
			row.Version--
			return ErrVersionConflict
		}
		return err
	}
	return nil
}

func (ddb *DdbAssignTable) Delete(ctx context.Context, uuid string) error {
	return ddb.assignTable.Delete("uuid", uuid).Run(ctx)
}
