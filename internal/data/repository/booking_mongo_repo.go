package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"event-booking/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const bookingCollection = "bookings"

type bookingDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	Event      string             `bson:"event"`
	TicketType string             `bson:"ticketType"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

func (d *bookingDocument) toEntity() *entity.Booking {
	return &entity.Booking{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		Email:      d.Email,
		Event:      d.Event,
		TicketType: d.TicketType,
		CreatedAt:  d.CreatedAt.UTC(),
	}
}

type bookingMongoRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewBookingMongoRepository(coll *mongo.Collection, log *zap.Logger) BookingRepository {
	return &bookingMongoRepository{
		coll: coll,
		log:  log.With(zap.String("repository", "booking"), zap.String("store", "mongo")),
	}
}

// EnsureSchema creates the lookup indexes used by search and listing.
func (r *bookingMongoRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create booking indexes: %w", err)
	}
	return nil
}

func (r *bookingMongoRepository) Create(ctx context.Context, booking *entity.Booking) error {
	doc := bookingDocument{
		ID:         primitive.NewObjectID(),
		Name:       booking.Name,
		Email:      booking.Email,
		Event:      booking.Event,
		TicketType: booking.TicketType,
		CreatedAt:  booking.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("email", booking.Email),
			zap.String("event", booking.Event),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	booking.ID = doc.ID.Hex()
	return nil
}

func (r *bookingMongoRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	bookings, err := r.find(ctx, bson.D{})
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingMongoRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc bookingDocument
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return doc.toEntity(), nil
}

func (r *bookingMongoRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	bookings, err := r.find(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		r.log.Error("Failed to find bookings by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find bookings by email %s: %w", email, err)
	}
	return bookings, nil
}

func (r *bookingMongoRepository) FindByEventContains(ctx context.Context, term string) ([]*entity.Booking, error) {
	filter := bson.D{{Key: "event", Value: primitive.Regex{
		Pattern: regexp.QuoteMeta(term),
		Options: "i",
	}}}

	bookings, err := r.find(ctx, filter)
	if err != nil {
		r.log.Error("Failed to filter bookings by event",
			zap.Error(err),
			zap.String("event", term),
		)
		return nil, fmt.Errorf("filter bookings by event %s: %w", term, err)
	}
	return bookings, nil
}

func (r *bookingMongoRepository) Update(ctx context.Context, id string, patch entity.BookingPatch) (*entity.Booking, error) {
	if patch.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.D{}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Email != nil {
		set = append(set, bson.E{Key: "email", Value: *patch.Email})
	}
	if patch.Event != nil {
		set = append(set, bson.E{Key: "event", Value: *patch.Event})
	}
	if patch.TicketType != nil {
		set = append(set, bson.E{Key: "ticketType", Value: *patch.TicketType})
	}

	var doc bookingDocument
	err = r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("update booking %s: %w", id, err)
	}

	return doc.toEntity(), nil
}

func (r *bookingMongoRepository) Delete(ctx context.Context, id string) (*entity.Booking, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc bookingDocument
	err = r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("delete booking %s: %w", id, err)
	}

	return doc.toEntity(), nil
}

func (r *bookingMongoRepository) find(ctx context.Context, filter bson.D) ([]*entity.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	bookings := make([]*entity.Booking, 0, len(docs))
	for i := range docs {
		bookings = append(bookings, docs[i].toEntity())
	}
	return bookings, nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w %q", ErrInvalidID, id)
	}
	return oid, nil
}
