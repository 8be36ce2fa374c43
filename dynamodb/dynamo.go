package dynamodb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

var (
	ErrProfileNotFound = errors.New("user profile not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrSessionNotFound = errors.New("session not found")
)

type DynamoDBAPI interface {
	GetItem(ctx context.Context, input *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, input *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, input *dynamodb.UpdateItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, input *dynamodb.DeleteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, input *dynamodb.QueryInput, opts ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type Tables struct {
	Users      string
	Accounts   string
	Sessions   string
	EmailIndex string
}

func DefaultTables() Tables {
	return Tables{
		Users:      "Users",
		Accounts:   "Accounts",
		Sessions:   "Sessions",
		EmailIndex: "Email-index",
	}
}

var (
	_ RecordStore  = (*DynamoClient)(nil)
	_ AccountStore = (*DynamoClient)(nil)
)

type DynamoClient struct {
	Client DynamoDBAPI
	Tables Tables
}

func NewDynamoClient(awsCfg aws.Config, tables Tables) *DynamoClient {
	return &DynamoClient{
		Client: dynamodb.NewFromConfig(awsCfg),
		Tables: tables,
	}
}
