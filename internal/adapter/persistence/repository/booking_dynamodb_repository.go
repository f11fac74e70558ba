package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"car_home_services/internal/domain/entities"
	"car_home_services/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBookingsTableName = "bookings"

type bookingItem struct {
	ID            string   `dynamodbav:"id"`
	CustomerName  string   `dynamodbav:"customer_name"`
	Phone         string   `dynamodbav:"phone"`
	Address       string   `dynamodbav:"address"`
	VehicleMake   string   `dynamodbav:"vehicle_make"`
	VehicleModel  string   `dynamodbav:"vehicle_model"`
	ServiceName   string   `dynamodbav:"service_name"`
	PreferredDate string   `dynamodbav:"preferred_date"`
	PreferredTime string   `dynamodbav:"preferred_time"`
	Notes         string   `dynamodbav:"notes,omitempty"`
	PackageName   string   `dynamodbav:"package_name,omitempty"`
	AddonCodes    []string `dynamodbav:"addon_codes,omitempty"`
	Latitude      *float64 `dynamodbav:"latitude,omitempty"`
	Longitude     *float64 `dynamodbav:"longitude,omitempty"`
	QuotedPrice   string   `dynamodbav:"quoted_price"`
	Status        string   `dynamodbav:"status"`
	CreatedAt     string   `dynamodbav:"created_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Listing scans the table and orders in memory; booking volume is bounded by
// the caller-supplied cap, so a scan stays acceptable here.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Insert(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) Find(ctx context.Context, status entities.BookingStatus, limit int) ([]entities.Booking, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames = map[string]string{"#status": "status"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	var bookings []entities.Booking
	p := dynamodb.NewScanPaginator(r.ddb, input)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []bookingItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			bookings = append(bookings, fromBookingItem(it))
		}
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	if limit > 0 && len(bookings) > limit {
		bookings = bookings[:limit]
	}
	return bookings, nil
}

func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		Phone:         b.Phone,
		Address:       b.Address,
		VehicleMake:   b.VehicleMake,
		VehicleModel:  b.VehicleModel,
		ServiceName:   string(b.ServiceName),
		PreferredDate: b.PreferredDate,
		PreferredTime: b.PreferredTime,
		Notes:         b.Notes,
		PackageName:   b.PackageName,
		AddonCodes:    b.AddonCodes,
		Latitude:      b.Latitude,
		Longitude:     b.Longitude,
		QuotedPrice:   floatToString(b.QuotedPrice),
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	quotedPrice, _ := strconv.ParseFloat(it.QuotedPrice, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Booking{
		ID:            it.ID,
		CustomerName:  it.CustomerName,
		Phone:         it.Phone,
		Address:       it.Address,
		VehicleMake:   it.VehicleMake,
		VehicleModel:  it.VehicleModel,
		ServiceName:   entities.ServiceType(it.ServiceName),
		PreferredDate: it.PreferredDate,
		PreferredTime: it.PreferredTime,
		Notes:         it.Notes,
		PackageName:   it.PackageName,
		AddonCodes:    it.AddonCodes,
		Latitude:      it.Latitude,
		Longitude:     it.Longitude,
		QuotedPrice:   quotedPrice,
		Status:        entities.BookingStatus(it.Status),
		CreatedAt:     createdAt,
	}
}
