package repository

import (
	"context"
	"errors"
	"strconv"

	"car_home_services/internal/domain/entities"
	"car_home_services/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServicesTableName = "services"

type serviceItem struct {
	Name            string `dynamodbav:"name"`
	Description     string `dynamodbav:"description"`
	BasePrice       string `dynamodbav:"base_price"`
	DurationMinutes int    `dynamodbav:"duration_minutes"`
	IsActive        bool   `dynamodbav:"is_active"`
}

// ServiceDynamoRepository persists Service catalog entries in DynamoDB.
//
// Table requirements:
//   - PK: name (string) — the service name is the natural key used by
//     pricing lookups, so it doubles as the partition key.

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) FindActiveServices(ctx context.Context) ([]entities.Service, error) {
	var services []entities.Service

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#is_active = :active"),
		ExpressionAttributeNames: map[string]string{
			"#is_active": "is_active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []serviceItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			services = append(services, fromServiceItem(it))
		}
	}
	return services, nil
}

func (r *ServiceDynamoRepository) FindServiceByName(ctx context.Context, name entities.ServiceType) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: string(name)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

// SeedServices inserts the defaults without overwriting anything already
// present, so concurrent first reads stay idempotent.
func (r *ServiceDynamoRepository) SeedServices(ctx context.Context, services []entities.Service) error {
	for _, svc := range services {
		av, err := attributevalue.MarshalMap(toServiceItem(svc))
		if err != nil {
			return err
		}

		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#name)"),
			ExpressionAttributeNames: map[string]string{
				"#name": "name",
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return err
		}
	}
	return nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		Name:            string(s.Name),
		Description:     s.Description,
		BasePrice:       floatToString(s.BasePrice),
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	basePrice, _ := strconv.ParseFloat(it.BasePrice, 64)
	return entities.Service{
		Name:            entities.ServiceType(it.Name),
		Description:     it.Description,
		BasePrice:       basePrice,
		DurationMinutes: it.DurationMinutes,
		IsActive:        it.IsActive,
	}
}
