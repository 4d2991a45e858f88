package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

const (
	EventSubmissionReceived = "submission_received"
	EventGradePosted        = "grade_posted"
)

// Event is the message pushed to the notification queue. A separate worker
// turns these into emails / in-app notices.
type Event struct {
	Type         string    `json:"type"`
	RecipientID  string    `json:"recipient_id"`
	AssignmentID string    `json:"assignment_id"`
	CourseID     string    `json:"course_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Notifier publishes events. Publishing is fire-and-forget: failures are
// logged and never surfaced to the request that triggered them.
type Notifier interface {
	Publish(ctx context.Context, event Event)
}

type SqsNotifier struct {
	sqsClient *sqs.Client
	queueUrl  string
}

func NewSqsNotifier(region string, queueUrl string) (*SqsNotifier, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
		config.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), 10)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &SqsNotifier{
		sqsClient: sqs.NewFromConfig(cfg),
		queueUrl:  queueUrl,
	}, nil
}

func (n *SqsNotifier) Publish(ctx context.Context, event Event) {
	body, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal notification event", "error", err)
		return
	}

	_, err = n.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(n.queueUrl),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		slog.Error("failed to send notification event",
			"type", event.Type, "error", err)
	}
}

// NopNotifier discards events. Used when no queue is configured and in tests.
type NopNotifier struct{}

func (NopNotifier) Publish(ctx context.Context, event Event) {}
