package main

import (
	"context"
	"fmt"

	"fueltrack/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/kelseyhightower/envconfig"
)

func loadConfig() (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.AccountServiceURL == "" && c.DatabaseURL == "" {
		return nil, fmt.Errorf("set ACCOUNT_SERVICE_URL or DATABASE_URL")
	}

	if c.CodexSecret == "" {
		return nil, fmt.Errorf("set CODEX_SECRET")
	}

	return c, nil
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	config, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}

	return config, nil
}
