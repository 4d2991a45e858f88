package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/eduflex-lms/backend/assign"
	assignhttp "github.com/eduflex-lms/backend/assign/http"
	"github.com/eduflex-lms/backend/blobstore"
	"github.com/eduflex-lms/backend/conf"
	"github.com/eduflex-lms/backend/course"
	coursehttp "github.com/eduflex-lms/backend/course/http"
	srvhttp "github.com/eduflex-lms/backend/http"
	"github.com/eduflex-lms/backend/notify"
	"github.com/eduflex-lms/backend/quiz"
	quizhttp "github.com/eduflex-lms/backend/quiz/http"
	"github.com/eduflex-lms/backend/user"
	userhttp "github.com/eduflex-lms/backend/user/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on environment")
	}

	cfg, err := conf.Load(os.Getenv("EDUFLEX_CONFIG"))
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	jwtKey, err := conf.GetJwtKey()
	if err != nil {
		slog.Error("failed to obtain jwt key", "error", err)
		os.Exit(1)
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.AwsRegion))
	if err != nil {
		slog.Error("failed to load aws config", "error", err)
		os.Exit(1)
	}
	ddbClient := dynamodb.NewFromConfig(awsCfg)

	uploads, err := blobstore.NewS3Uploads(cfg.AwsRegion, cfg.UploadsBucket)
	if err != nil {
		slog.Error("failed to init uploads bucket", "error", err)
		os.Exit(1)
	}

	var notifier notify.Notifier = notify.NopNotifier{}
	if cfg.NotifyQueueUrl != "" {
		notifier, err = notify.NewSqsNotifier(cfg.AwsRegion, cfg.NotifyQueueUrl)
		if err != nil {
			slog.Error("failed to init sqs notifier", "error", err)
			os.Exit(1)
		}
	}

	userSrvc := user.NewUserService(user.NewDdbUserTable(ddbClient, cfg.UserTableName))
	courseSrvc := course.NewCourseService(course.NewDdbCourseTable(ddbClient, cfg.CourseTableName), uploads)
	assignSrvc := assign.NewAssignService(assign.NewDdbAssignTable(ddbClient, cfg.AssignTableName), courseSrvc, uploads, notifier)
	quizSrvc := quiz.NewQuizService(quiz.NewDdbQuizTable(ddbClient, cfg.QuizTableName), courseSrvc)

	httpServer := srvhttp.NewHttpServer(
		userhttp.NewUserHttpHandler(userSrvc, jwtKey),
		coursehttp.NewCourseHttpHandler(courseSrvc, cfg.MaxUploadBytes),
		assignhttp.NewAssignHttpHandler(assignSrvc, cfg.MaxUploadBytes),
		quizhttp.NewQuizHttpHandler(quizSrvc),
		srvhttp.NewDashboardHandler(courseSrvc, assignSrvc),
		jwtKey,
		cfg.CorsOrigins,
	)

	log.Printf("Starting server on %s", cfg.HttpAddress)
	err = httpServer.Start(cfg.HttpAddress)
	log.Printf("Server stopped with error: %v", err)
}
