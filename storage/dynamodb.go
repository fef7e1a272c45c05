/*
# Module: storage/dynamodb.go
DynamoDB implementation of the location directory.

## Linked Modules
- [storage/repository](./repository.go) - Directory interface
- [types/location](../types/location.go) - User, device, and sample shapes

## Tags
storage, dynamodb, persistence, repository

## Exports
DynamoDirectory, NewDynamoDirectory, DynamoClient

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "storage/dynamodb.go" ;
    code:description "DynamoDB implementation of the location directory" ;
    code:linksTo [
        code:name "storage/repository" ;
        code:path "./repository.go" ;
        code:relationship "Directory interface"
    ], [
        code:name "types/location" ;
        code:path "../types/location.go" ;
        code:relationship "User, device, and sample shapes"
    ] ;
    code:exports :DynamoDirectory, :NewDynamoDirectory, :DynamoClient ;
    code:tags "storage", "dynamodb", "persistence", "repository" .
<!-- End LinkedDoc RDF -->
*/
package storage

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/sadakpramodh/tom-location/types"
)

// EmailIndexName is the GSI on the users table keyed by the email field.
const EmailIndexName = "email-index"

var (
	dynamoOnce   sync.Once
	dynamoShared *dynamodb.Client
	dynamoErr    error
)

// DynamoClient returns the process-wide DynamoDB client, initializing it on
// first use. The hosting process may rerun the resolution loop many times;
// the client must only ever be built once.
func DynamoClient(ctx context.Context, region string) (*dynamodb.Client, error) {
	dynamoOnce.Do(func() {
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
		if err != nil {
			dynamoErr = fmt.Errorf("failed to load AWS config: %w", err)
			return
		}
		dynamoShared = dynamodb.NewFromConfig(cfg)
		log.Printf("✅ DynamoDB client initialized (region: %s)", region)
	})
	return dynamoShared, dynamoErr
}

// DynamoDirectory implements Directory over three tables:
//   - users: partition key user_key, GSI email-index on email
//   - devices: partition key user_key, sort key device_id
//   - locations: partition key device_id, sort key timestamp (number)
type DynamoDirectory struct {
	client         *dynamodb.Client
	usersTable     string
	devicesTable   string
	locationsTable string
}

// NewDynamoDirectory creates a directory over the given tables.
func NewDynamoDirectory(client *dynamodb.Client, usersTable, devicesTable, locationsTable string) *DynamoDirectory {
	return &DynamoDirectory{
		client:         client,
		usersTable:     usersTable,
		devicesTable:   devicesTable,
		locationsTable: locationsTable,
	}
}

// FindUserByEmail runs a limit-1 equality query against the email GSI.
func (d *DynamoDirectory) FindUserByEmail(ctx context.Context, email string) (*types.UserRecord, error) {
	if d.client == nil {
		return nil, fmt.Errorf("DynamoDB client not initialized")
	}

	result, err := d.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(d.usersTable),
		IndexName:              aws.String(EmailIndexName),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]dynamodbtypes.AttributeValue{
			":email": &dynamodbtypes.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, nil
	}

	var user types.UserRecord
	if err := attributevalue.UnmarshalMap(result.Items[0], &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

// FindUserByKey fetches a user document by its store-assigned key.
func (d *DynamoDirectory) FindUserByKey(ctx context.Context, key string) (*types.UserRecord, error) {
	if d.client == nil {
		return nil, fmt.Errorf("DynamoDB client not initialized")
	}

	result, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.usersTable),
		Key: map[string]dynamodbtypes.AttributeValue{
			"user_key": &dynamodbtypes.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user by key: %w", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var user types.UserRecord
	if err := attributevalue.UnmarshalMap(result.Item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	// GetItem on an unrelated item shape can legitimately come back without
	// the key attribute populated; normalize so callers always see it.
	if user.Key == "" {
		user.Key = key
	}

	return &user, nil
}

// ListDevices enumerates a user's devices in sort-key order. Sort-key order
// is the enumeration order that breaks lastUpdated ties.
func (d *DynamoDirectory) ListDevices(ctx context.Context, userKey string) ([]types.DeviceRecord, error) {
	if d.client == nil {
		return nil, fmt.Errorf("DynamoDB client not initialized")
	}

	devices := make([]types.DeviceRecord, 0)
	var lastEvaluatedKey map[string]dynamodbtypes.AttributeValue

	for {
		input := &dynamodb.QueryInput{
			TableName:              aws.String(d.devicesTable),
			KeyConditionExpression: aws.String("user_key = :uk"),
			ExpressionAttributeValues: map[string]dynamodbtypes.AttributeValue{
				":uk": &dynamodbtypes.AttributeValueMemberS{Value: userKey},
			},
		}
		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		result, err := d.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query devices: %w", err)
		}

		for _, item := range result.Items {
			var device types.DeviceRecord
			if err := attributevalue.UnmarshalMap(item, &device); err != nil {
				log.Printf("⚠️  Failed to unmarshal device: %v", err)
				continue
			}
			devices = append(devices, device)
		}

		lastEvaluatedKey = result.LastEvaluatedKey
		if lastEvaluatedKey == nil {
			break
		}
	}

	return devices, nil
}

// LatestSample is a descending limit-1 query on the timestamp sort key.
func (d *DynamoDirectory) LatestSample(ctx context.Context, deviceID string) (*types.LocationSample, error) {
	if d.client == nil {
		return nil, fmt.Errorf("DynamoDB client not initialized")
	}

	result, err := d.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(d.locationsTable),
		KeyConditionExpression: aws.String("device_id = :did"),
		ExpressionAttributeValues: map[string]dynamodbtypes.AttributeValue{
			":did": &dynamodbtypes.AttributeValueMemberS{Value: deviceID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query latest sample: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, nil
	}

	var sample types.LocationSample
	if err := attributevalue.UnmarshalMap(result.Items[0], &sample); err != nil {
		return nil, fmt.Errorf("failed to unmarshal location sample: %w", err)
	}

	return &sample, nil
}
