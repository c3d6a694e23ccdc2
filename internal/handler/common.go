package handler // handler defines http handlers

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/staynest/staynest-api/internal/model"
)

// The handlers depend on narrow store interfaces rather than concrete
// repositories, so tests can substitute in-memory fakes.  The Mongo
// repositories in internal/repository satisfy these.

// UserStore persists and looks up user accounts.
type UserStore interface {
	Create(ctx context.Context, name, email, password string, cost int) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error)
}

// PlaceStore persists and looks up property listings.
type PlaceStore interface {
	Create(ctx context.Context, p *model.Place) error
	GetByID(ctx context.Context, id primitive.ObjectID) (model.Place, error)
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]model.Place, error)
	ListAll(ctx context.Context) ([]model.Place, error)
	Update(ctx context.Context, p *model.Place) error
}

// BookingStore persists bookings and serves the joined read view.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	ListByUser(ctx context.Context, user primitive.ObjectID) ([]model.BookingWithPlace, error)
}

// getUserID extracts the authenticated subject from echo.Context and
// converts it to an ObjectID.  The session middleware stores the id as a
// hex string; tests may store an ObjectID directly.
func getUserID(c echo.Context) (primitive.ObjectID, error) {
	switch t := c.Get("user_id").(type) {
	case primitive.ObjectID:
		return t, nil
	case string:
		if id, err := primitive.ObjectIDFromHex(t); err == nil {
			return id, nil
		}
	}
	return primitive.NilObjectID, errors.New("invalid user_id in context")
}
