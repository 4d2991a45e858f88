package conf

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the server configuration. Values from the TOML file can be
// overridden by environment variables for deployment.
type Config struct {
	HttpAddress string   `toml:"http_address"`
	CorsOrigins []string `toml:"cors_allowed_origins"`

	AwsRegion string `toml:"aws_region"`

	UserTableName   string `toml:"user_table_name"`
	CourseTableName string `toml:"course_table_name"`
	AssignTableName string `toml:"assignment_table_name"`
	QuizTableName   string `toml:"quiz_table_name"`

	UploadsBucket string `toml:"uploads_bucket"`

	NotifyQueueUrl string `toml:"notify_queue_url"`

	MaxUploadBytes int64 `toml:"max_upload_bytes"`
}

func Default() *Config {
	return &Config{
		HttpAddress:     ":8080",
		CorsOrigins:     []string{"http://localhost:3000"},
		AwsRegion:       "eu-central-1",
		UserTableName:   "EduflexUsers",
		CourseTableName: "EduflexCourses",
		AssignTableName: "EduflexAssignments",
		QuizTableName:   "EduflexQuizzes",
		UploadsBucket:   "eduflex-uploads",
		MaxUploadBytes:  10 << 20, // 10 MB
	}
}

// Load reads the TOML config at path and applies env var overrides.
// A missing file is not an error; defaults plus env apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err == nil {
			if err := toml.Unmarshal(content, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HttpAddress = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		cfg.AwsRegion = v
	}
	if v := os.Getenv("DDB_USER_TABLE_NAME"); v != "" {
		cfg.UserTableName = v
	}
	if v := os.Getenv("DDB_COURSE_TABLE_NAME"); v != "" {
		cfg.CourseTableName = v
	}
	if v := os.Getenv("DDB_ASSIGN_TABLE_NAME"); v != "" {
		cfg.AssignTableName = v
	}
	if v := os.Getenv("DDB_QUIZ_TABLE_NAME"); v != "" {
		cfg.QuizTableName = v
	}
	if v := os.Getenv("S3_UPLOADS_BUCKET"); v != "" {
		cfg.UploadsBucket = v
	}
	if v := os.Getenv("NOTIFY_SQS_QUEUE_URL"); v != "" {
		cfg.NotifyQueueUrl = v
	}

	return cfg, nil
}
