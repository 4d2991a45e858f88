package conf

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// GetJwtKey returns the JWT signing key. Local development sets JWT_KEY
// directly; deployed environments name a Secrets Manager secret instead.
func GetJwtKey() ([]byte, error) {
	if key := os.Getenv("JWT_KEY"); key != "" {
		return []byte(key), nil
	}

	secretName := os.Getenv("JWT_KEY_SECRET_NAME")
	if secretName == "" {
		return nil, fmt.Errorf("neither JWT_KEY nor JWT_KEY_SECRET_NAME is set")
	}

	secretValue, err := getSecretFromAWS(secretName)
	if err != nil {
		return nil, fmt.Errorf("failed to get jwt key from AWS: %w", err)
	}

	return []byte(secretValue), nil
}

func getSecretFromAWS(secretName string) (string, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return "", err
	}
	svc := secretsmanager.NewFromConfig(cfg)
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	result, err := svc.GetSecretValue(ctx, input)
	if err != nil {
		return "", err
	}
	return *result.SecretString, nil
}
