package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/staynest/staynest-api/internal/metrics"
	"github.com/staynest/staynest-api/internal/model"
	"github.com/staynest/staynest-api/internal/queue"
	"github.com/staynest/staynest-api/internal/repository"
	queue_publisher "github.com/staynest/staynest-api/internal/service"
)

// BookingHandler bundles the booking and listing stores.  Publish points
// at the queue publisher by default; tests swap in a stub.
type BookingHandler struct {
	Bookings BookingStore
	Places   PlaceStore
	Publish  func(ctx context.Context, ev queue.BookingCreatedEvent) error
}

func NewBookingHandler(bookings BookingStore, places PlaceStore) *BookingHandler {
	if bookings == nil || places == nil {
		panic("nil store passed to NewBookingHandler")
	}
	return &BookingHandler{
		Bookings: bookings,
		Places:   places,
		Publish:  queue_publisher.PublishBookingCreated,
	}
}

type bookingReq struct {
	Place          string    `json:"place"`
	CheckIn        time.Time `json:"checkIn"`
	CheckOut       time.Time `json:"checkOut"`
	NumberOfNights int       `json:"numberOfNights"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Price          int       `json:"price"`
}

// Create handles POST /bookings.  The booking user is always the
// authenticated subject, and the referenced place must exist; a booking
// can never point at a listing that was never there.  After the insert a
// booking.created event is published in the background; publish failures
// are logged by the publisher and never fail the request.
func (h *BookingHandler) Create(c echo.Context) error {
	user, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body bookingReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	placeID, err := primitive.ObjectIDFromHex(body.Place)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid place id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	place, err := h.Places.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "place not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	booking := &model.Booking{
		Place:          place.ID,
		User:           user,
		CheckIn:        body.CheckIn,
		CheckOut:       body.CheckOut,
		NumberOfNights: body.NumberOfNights,
		Name:           body.Name,
		Phone:          body.Phone,
		Price:          body.Price,
	}
	if err := h.Bookings.Create(ctx, booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create booking"})
	}
	metrics.BookingsCreatedCounter.Inc()

	ev := queue.BookingCreatedEvent{
		BookingID:  booking.ID.Hex(),
		UserID:     user.Hex(),
		PlaceID:    place.ID.Hex(),
		PlaceTitle: place.Title,
		CheckIn:    booking.CheckIn.UTC().Format(time.RFC3339),
		CheckOut:   booking.CheckOut.UTC().Format(time.RFC3339),
		Nights:     booking.NumberOfNights,
		Price:      booking.Price,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	go func() { _ = h.Publish(context.Background(), ev) }()

	return c.JSON(http.StatusCreated, booking)
}

// ListMine handles GET /bookings and returns the subject's bookings with
// each referenced place expanded by the store's read-side join.
func (h *BookingHandler) ListMine(c echo.Context) error {
	user, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	items, err := h.Bookings.ListByUser(ctx, user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}
