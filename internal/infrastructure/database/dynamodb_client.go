package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Settings collects the connection knobs, all sourced from the environment:
//
//   - AWS_REGION (default us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default "local")
//   - DYNAMODB_ENDPOINT (optional; set for dynamodb-local,
//     e.g. http://dynamodb:8000)
type Settings struct {
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

func SettingsFromEnv() Settings {
	return Settings{
		Region:    envOr("AWS_REGION", "us-east-1"),
		AccessKey: envOr("AWS_ACCESS_KEY_ID", "local"),
		SecretKey: envOr("AWS_SECRET_ACCESS_KEY", "local"),
		Endpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
	}
}

// ConnectDynamoDB builds the shared client for all repositories. A broken
// configuration is fatal: nothing in the service works without storage.
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := awsConfig(context.Background(), SettingsFromEnv())
	if err != nil {
		log.Fatalf("[database][dynamodb] configuration failed: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func awsConfig(ctx context.Context, s Settings) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(s.Region),
		// dynamodb-local ignores credentials but the SDK insists on having some.
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s.AccessKey, s.SecretKey, "")),
	}

	if s.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: s.Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		opts = append(opts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, opts...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
