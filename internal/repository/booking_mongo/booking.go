package booking_mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"logistics/internal/entities"
	"logistics/internal/service/booking"
)

type Repository struct {
	collection Collection
	now        func() time.Time
}

func New(collection Collection) *Repository {
	return &Repository{
		collection: collection,
		now:        time.Now,
	}
}

// EnsureIndexes создает индексы под выборки по статусу, заказчику и водителю.
func EnsureIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "driverId", Value: 1}, {Key: "createdAt", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create booking indexes: %w", err)
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, b entities.Booking) error {
	doc, err := toDocument(b)
	if err != nil {
		return err
	}

	_, err = r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return booking.ErrBookingExists
		}
		return r.wrap("create", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Booking, error) {
	var doc bookingDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, r.wrap("getbyid", err)
	}
	return toDomain(&doc)
}

func (r *Repository) ListAll(ctx context.Context) ([]entities.Booking, error) {
	return r.list(ctx, "listall", bson.M{})
}

func (r *Repository) ListByStatus(ctx context.Context, status entities.BookingStatus) ([]entities.Booking, error) {
	return r.list(ctx, "listbystatus", bson.M{"status": status.String()})
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]entities.Booking, error) {
	return r.list(ctx, "listbyuser", bson.M{"userId": userID})
}

func (r *Repository) ListByDriver(ctx context.Context, driverID string) ([]entities.Booking, error) {
	return r.list(ctx, "listbydriver", bson.M{"driverId": driverID})
}

func (r *Repository) list(ctx context.Context, op string, filter bson.M) ([]entities.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, r.wrap(op, err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, r.wrap(op, err)
	}

	result := make([]entities.Booking, 0, len(docs))
	for i := range docs {
		b, err := toDomain(&docs[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	return result, nil
}

// UpdateFields кладет guard в фильтр FindOneAndUpdate, документ меняется атомарно.
func (r *Repository) UpdateFields(
	ctx context.Context,
	id string,
	modify entities.BookingModify,
	guard *entities.BookingGuard,
) (*entities.Booking, error) {
	set := bson.M{"updatedAt": r.now().UTC()}
	if modify.Status != nil {
		set["status"] = modify.Status.String()
	}
	if modify.DriverID != nil {
		set["driverId"] = *modify.DriverID
	}
	if modify.DriverLocation != nil {
		set["driverLocation"] = locationDocument{
			Latitude:  modify.DriverLocation.Latitude,
			Longitude: modify.DriverLocation.Longitude,
		}
	}

	filter := bson.M{"_id": id}
	if guard != nil {
		if len(guard.Statuses) > 0 {
			filter["status"] = bson.M{"$in": statusStrings(guard.Statuses)}
		}
		if guard.DriverID != nil {
			filter["driverId"] = *guard.DriverID
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc bookingDocument
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.missedUpdate(ctx, id, guard)
		}
		return nil, r.wrap("update", err)
	}
	return toDomain(&doc)
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.BookingStatus]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, r.wrap("countbystatus", err)
	}
	defer cursor.Close(ctx)

	var rows []statusCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, r.wrap("countbystatus", err)
	}

	counts := make(map[entities.BookingStatus]int64, len(rows))
	for _, row := range rows {
		counts[entities.BookingStatus(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *Repository) missedUpdate(ctx context.Context, id string, guard *entities.BookingGuard) error {
	if guard == nil {
		return booking.ErrBookingNotFound
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return r.wrap("update", err)
	}
	if count == 0 {
		return booking.ErrBookingNotFound
	}
	return booking.ErrBookingConflict
}

func (r *Repository) wrap(op string, err error) error {
	switch {
	case isConnectivityError(err):
		return fmt.Errorf("booking mongo repository %s: %w: %v", op, booking.ErrStoreUnavailable, err)
	case isPermissionError(err):
		return fmt.Errorf("booking mongo repository %s: %w: %v", op, booking.ErrStorePermission, err)
	default:
		return fmt.Errorf("unexpected booking mongo repository %s error: %w", op, err)
	}
}
