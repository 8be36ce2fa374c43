package dynamodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ShareFrame/profile-screen-service/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

type RecordStore interface {
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpdateUserProfile(ctx context.Context, userID string, update models.ProfileUpdate) error
	SetProfileImage(ctx context.Context, userID, imageURL string) error
	DeleteUserProfile(ctx context.Context, userID string) error
}

func userKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"UserId": &types.AttributeValueMemberS{Value: userID}}
}

// GetUserProfile returns ErrProfileNotFound when no item exists for userID.
func (d *DynamoClient) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID cannot be empty")
	}

	out, err := d.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.Tables.Users),
		Key:            userKey(userID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("DynamoDB GetItem error")
		return nil, fmt.Errorf("failed to get user from DynamoDB: %w", err)
	}

	if len(out.Item) == 0 {
		return nil, ErrProfileNotFound
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(out.Item, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode user item: %w", err)
	}
	profile.UserID = userID

	return &profile, nil
}

func (d *DynamoClient) UpdateUserProfile(ctx context.Context, userID string, update models.ProfileUpdate) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	if update.IsEmpty() {
		return fmt.Errorf("no valid fields provided to update")
	}

	updateExpression, exprNames, exprValues := buildUpdateExpression(update)

	return d.updateUser(ctx, userID, updateExpression, exprNames, exprValues)
}

func (d *DynamoClient) SetProfileImage(ctx context.Context, userID, imageURL string) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	updateExpression, exprNames, exprValues := buildSetExpression([]fieldValue{{"ProfileImage", imageURL}})

	return d.updateUser(ctx, userID, updateExpression, exprNames, exprValues)
}

func (d *DynamoClient) DeleteUserProfile(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	_, err := d.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.Tables.Users),
		Key:       userKey(userID),
	})
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("DynamoDB DeleteItem error")
		return fmt.Errorf("failed to delete user from DynamoDB: %w", err)
	}

	return nil
}

func (d *DynamoClient) updateUser(ctx context.Context, userID, updateExpression string, exprNames map[string]string, exprValues map[string]types.AttributeValue) error {
	logrus.WithFields(logrus.Fields{
		"user_id":           userID,
		"update_expression": updateExpression,
	}).Info("Updating user record")

	_, err := d.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(d.Tables.Users),
		Key:                       userKey(userID),
		UpdateExpression:          aws.String("SET " + updateExpression),
		ExpressionAttributeNames:  exprNames,
		ExpressionAttributeValues: exprValues,
		ReturnValues:              types.ReturnValueUpdatedNew,
	})

	if err != nil {
		logrus.WithError(err).Error("DynamoDB UpdateItem error")
		return fmt.Errorf("failed to update user in DynamoDB: %w", err)
	}

	return nil
}

type fieldValue struct {
	field string
	value string
}

// buildUpdateExpression includes a field whenever the update carries it,
// blank values included, so clearing a field is a real write.
func buildUpdateExpression(update models.ProfileUpdate) (string, map[string]string, map[string]types.AttributeValue) {
	var fields []fieldValue
	if update.Name != nil {
		fields = append(fields, fieldValue{"Name", *update.Name})
	}
	if update.Phone != nil {
		fields = append(fields, fieldValue{"Phone", *update.Phone})
	}
	if update.Pseudo != nil {
		fields = append(fields, fieldValue{"Pseudo", *update.Pseudo})
	}

	return buildSetExpression(fields)
}

// Attribute names go through placeholders; Name is a DynamoDB reserved word.
func buildSetExpression(fields []fieldValue) (string, map[string]string, map[string]types.AttributeValue) {
	updateParts := []string{}
	exprNames := map[string]string{}
	exprValues := map[string]types.AttributeValue{}

	for _, f := range fields {
		updateParts = append(updateParts, "#"+f.field+" = :"+f.field)
		exprNames["#"+f.field] = f.field
		exprValues[":"+f.field] = &types.AttributeValueMemberS{Value: f.value}
	}

	exprNames["#UpdatedAt"] = "UpdatedAt"
	exprValues[":UpdatedAt"] = &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)}
	updateParts = append(updateParts, "#UpdatedAt = :UpdatedAt")

	return strings.Join(updateParts, ", "), exprNames, exprValues
}
