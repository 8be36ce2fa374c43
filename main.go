package main

import (
	"context"

	"github.com/ShareFrame/profile-screen-service/auth"
	appconfig "github.com/ShareFrame/profile-screen-service/config"
	"github.com/ShareFrame/profile-screen-service/dynamodb"
	"github.com/ShareFrame/profile-screen-service/handler"
	"github.com/ShareFrame/profile-screen-service/profile"
	"github.com/ShareFrame/profile-screen-service/s3"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := appconfig.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	configureLogging(cfg)

	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	awsCfg, err := config.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load AWS SDK config")
	}

	dynamoClient := dynamodb.NewDynamoClient(awsCfg, dynamodb.Tables{
		Users:      cfg.UsersTable,
		Accounts:   cfg.AccountsTable,
		Sessions:   cfg.SessionsTable,
		EmailIndex: cfg.EmailIndex,
	})
	s3Client := s3.NewS3Client(awsCfg, cfg.ImageBucket, cfg.PublicBaseURL)
	authService := auth.NewService(dynamoClient, auth.Options{
		Secret:     cfg.JWTSecret,
		Issuer:     cfg.JWTIssuer,
		SessionTTL: cfg.SessionTTL,
	})

	h := handler.New(authService, dynamoClient, s3Client, profile.Options{
		LoadFailurePolicy:     cfg.LoadFailurePolicy,
		DistinguishAuthOutage: cfg.DistinguishAuthOutage,
	})

	logrus.WithFields(logrus.Fields{
		"users_table": cfg.UsersTable,
		"bucket":      cfg.ImageBucket,
	}).Info("Starting profile screen service")

	lambda.Start(h.HandleRequest)
}

func configureLogging(cfg *appconfig.Config) {
	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
