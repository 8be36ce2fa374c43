package dynamodb

import (
	"context"
	"fmt"

	"github.com/ShareFrame/profile-screen-service/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

// AccountStore holds identities and their live sessions.
type AccountStore interface {
	GetAccount(ctx context.Context, userID string) (*models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	DeleteAccount(ctx context.Context, userID string) error
	PutSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

func (d *DynamoClient) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID cannot be empty")
	}

	out, err := d.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.Tables.Accounts),
		Key:            userKey(userID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get account from DynamoDB: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, ErrAccountNotFound
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(out.Item, &account); err != nil {
		return nil, fmt.Errorf("failed to decode account item: %w", err)
	}

	return &account, nil
}

func (d *DynamoClient) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	if email == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}

	out, err := d.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(d.Tables.Accounts),
		IndexName:              aws.String(d.Tables.EmailIndex),
		KeyConditionExpression: aws.String("Email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query account by email: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, ErrAccountNotFound
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(out.Items[0], &account); err != nil {
		return nil, fmt.Errorf("failed to decode account item: %w", err)
	}

	return &account, nil
}

func (d *DynamoClient) DeleteAccount(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	_, err := d.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.Tables.Accounts),
		Key:       userKey(userID),
	})
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("DynamoDB DeleteItem error")
		return fmt.Errorf("failed to delete account from DynamoDB: %w", err)
	}

	return nil
}

func sessionKey(sessionID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"SessionId": &types.AttributeValueMemberS{Value: sessionID}}
}

func (d *DynamoClient) PutSession(ctx context.Context, session models.Session) error {
	item, err := attributevalue.MarshalMap(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	_, err = d.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.Tables.Sessions),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

func (d *DynamoClient) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	out, err := d.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.Tables.Sessions),
		Key:            sessionKey(sessionID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, ErrSessionNotFound
	}

	var session models.Session
	if err := attributevalue.UnmarshalMap(out.Item, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session item: %w", err)
	}

	return &session, nil
}

func (d *DynamoClient) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := d.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.Tables.Sessions),
		Key:       sessionKey(sessionID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
