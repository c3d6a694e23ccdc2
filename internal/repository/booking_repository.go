package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/staynest/staynest-api/internal/model"
)

// BookingRepo persists bookings in the `bookings` collection.  It holds a
// reference to the place repository because "my bookings" is served as an
// explicit read-side join: bookings are loaded first, then their places
// are fetched in one query and attached to each result.
type BookingRepo struct {
	Col    *mongo.Collection
	Places *PlaceRepo
}

func NewBookingRepo(db *mongo.Database, places *PlaceRepo) *BookingRepo {
	return &BookingRepo{Col: db.Collection("bookings"), Places: places}
}

// Create inserts a new booking.  The caller sets Place and User before
// calling; the repository assigns the id.  Bookings are never updated or
// deleted afterwards.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	b.ID = primitive.NewObjectID()
	_, err := r.Col.InsertOne(ctx, b)
	return err
}

// ListByUser returns all bookings created by the given user with each
// referenced place expanded.  A booking whose place has meanwhile
// disappeared is still returned, with an empty place document.
func (r *BookingRepo) ListByUser(ctx context.Context, user primitive.ObjectID) ([]model.BookingWithPlace, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user": user})
	if err != nil {
		return nil, err
	}
	var bookings []model.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(bookings))
	seen := map[primitive.ObjectID]bool{}
	for _, b := range bookings {
		if !seen[b.Place] {
			seen[b.Place] = true
			ids = append(ids, b.Place)
		}
	}
	places, err := r.Places.listByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.BookingWithPlace, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, model.BookingWithPlace{Booking: b, PlaceDoc: places[b.Place]})
	}
	return out, nil
}
