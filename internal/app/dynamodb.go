package app

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/devops-pm/project-manager/internal/config"
)

var globalDynamoDBClient *dynamodb.Client

// MustInitDynamoDB builds the store client once per process. The
// client is stateless, so sharing it across requests is safe. A blank
// region is tolerated here: handlers validate the store config on
// every request and answer with an internal error instead.
func MustInitDynamoDB() {
	cfg := config.Global().Store

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to load aws config")
		panic(err)
	}

	globalDynamoDBClient = dynamodb.NewFromConfig(awsCfg)
	globalLogger.Info().
		Str("region", cfg.Region).
		Msg("initialized dynamodb client")
}
