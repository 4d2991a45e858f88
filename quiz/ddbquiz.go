package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

// QuizRow is the persisted shape of a quiz document. Questions and attempts
// are embedded; the whole document is written with a version condition.
type QuizRow struct {
	Uuid       string        `dynamo:"uuid,hash"` // partition key
	Title      string        `dynamo:"title"`
	CourseUuid string        `dynamo:"course_uuid"`
	Questions  []QuestionRow `dynamo:"questions"`
	Attempts   []AttemptRow  `dynamo:"attempts"`
	Version    int64         `dynamo:"version"` // For optimistic locking
	CreatedAt  time.Time     `dynamo:"created_at"`
}

type QuestionRow struct {
	Text          string   `dynamo:"text"`
	Options       []string `dynamo:"options"`
	CorrectOption int      `dynamo:"correct_option"`
}

type AttemptRow struct {
	StudentUuid string    `dynamo:"student_uuid"`
	Answers     []int     `dynamo:"answers"`
	Score       int       `dynamo:"score"`
	Total       int       `dynamo:"total"`
	SubmittedAt time.Time `dynamo:"submitted_at"`
}

func quizFromRow(row *QuizRow) *Quiz {
	questions := make([]Question, 0, len(row.Questions))
	for _, q := range row.Questions {
		questions = append(questions, Question{
			Text:          q.Text,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
		})
	}
	attempts := make([]Attempt, 0, len(row.Attempts))
	for _, a := range row.Attempts {
		attempts = append(attempts, Attempt{
			StudentID:   a.StudentUuid,
			Answers:     a.Answers,
			Score:       a.Score,
			Total:       a.Total,
			SubmittedAt: a.SubmittedAt,
		})
	}
	return &Quiz{
		UUID:      row.Uuid,
		Title:     row.Title,
		CourseID:  row.CourseUuid,
		Questions: questions,
		Attempts:  attempts,
		CreatedAt: row.CreatedAt,
	}
}

type DdbQuizTable struct {
	ddbClient *dynamodb.Client
	tableName string
	quizTable *dynamo.Table
}

func NewDdbQuizTable(ddbClient *dynamodb.Client, tableName string) *DdbQuizTable {
	ddb := &DdbQuizTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.quizTable = &table

	return ddb
}

func (ddb *DdbQuizTable) Get(ctx context.Context, uuid string) (*QuizRow, error) {
	row := new(QuizRow)

	err := ddb.quizTable.Get("uuid", uuid).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return row, nil
}

func (ddb *DdbQuizTable) List(ctx context.Context) ([]*QuizRow, error) {
	var rows []*QuizRow
	err := ddb.quizTable.Scan().All(ctx, &rows)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Save writes the whole quiz document conditionally on the version it was
// read at, surfacing concurrent writes as ErrVersionConflict.
func (ddb *DdbQuizTable) Save(ctx context.Context, row *QuizRow) error {
	row.Version++

	put := ddb.quizTable.Put(row).If("attribute_not_exists(version) OR version = ?", row.Version-1)
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

func (ddb *DdbQuizTable) Delete(ctx context.Context, uuid string) error {
	return ddb.quizTable.Delete("uuid", uuid).Run(ctx)
}
