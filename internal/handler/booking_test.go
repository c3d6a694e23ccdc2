package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/staynest/staynest-api/internal/model"
	"github.com/staynest/staynest-api/internal/queue"
)

func seedPlace(t *testing.T, store *memPlaceStore, owner primitive.ObjectID) model.Place {
	t.Helper()
	p := &model.Place{
		Owner:     owner,
		Title:     "Cabin",
		Address:   "1 Forest Rd",
		Photos:    []string{"a.jpg"},
		Perks:     []string{"wifi"},
		CheckIn:   14,
		CheckOut:  11,
		MaxGuests: 4,
		Price:     100,
	}
	if err := store.Create(context.Background(), p); err != nil {
		t.Fatalf("seed place: %v", err)
	}
	return *p
}

func bookingPayload(place model.Place) map[string]any {
	return map[string]any{
		"place":          place.ID.Hex(),
		"checkIn":        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
		"checkOut":       time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
		"numberOfNights": 3,
		"name":           "Ann",
		"phone":          "555-0100",
		"price":          300,
	}
}

func TestCreateBookingUnknownPlace(t *testing.T) {
	places := newMemPlaceStore()
	h := NewBookingHandler(newMemBookingStore(places), places)
	h.Publish = func(context.Context, queue.BookingCreatedEvent) error { return nil }

	payload := bookingPayload(model.Place{ID: primitive.NewObjectID()})
	c, rec := newJSONContext(t, http.MethodPost, "/bookings", payload)
	c.Set("user_id", primitive.NewObjectID().Hex())
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCreateAndListBookings(t *testing.T) {
	places := newMemPlaceStore()
	bookings := newMemBookingStore(places)
	h := NewBookingHandler(bookings, places)

	published := make(chan queue.BookingCreatedEvent, 1)
	h.Publish = func(_ context.Context, ev queue.BookingCreatedEvent) error {
		published <- ev
		return nil
	}

	owner := primitive.NewObjectID()
	ann := primitive.NewObjectID()
	place := seedPlace(t, places, owner)

	c, rec := newJSONContext(t, http.MethodPost, "/bookings", bookingPayload(place))
	c.Set("user_id", ann.Hex())
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", rec.Code)
	}
	var created model.Booking
	decodeBody(t, rec, &created)
	if created.User != ann || created.Place != place.ID {
		t.Errorf("booking references = user %s place %s", created.User.Hex(), created.Place.Hex())
	}
	if created.NumberOfNights != 3 || created.Price != 300 {
		t.Errorf("booking = %+v", created)
	}

	select {
	case ev := <-published:
		if ev.BookingID != created.ID.Hex() || ev.PlaceTitle != "Cabin" {
			t.Errorf("published event = %+v", ev)
		}
	case <-time.After(time.Second):
		t.Error("booking.created event not published")
	}

	// My bookings: exactly one, with the place document expanded.
	c, rec = newJSONContext(t, http.MethodGet, "/bookings", nil)
	c.Set("user_id", ann.Hex())
	if err := h.ListMine(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	var mine []model.BookingWithPlace
	decodeBody(t, rec, &mine)
	if len(mine) != 1 {
		t.Fatalf("len(mine) = %d, want 1", len(mine))
	}
	if mine[0].PlaceDoc.ID != place.ID || mine[0].PlaceDoc.Title != place.Title || mine[0].PlaceDoc.Price != place.Price {
		t.Errorf("expanded place = %+v, want %+v", mine[0].PlaceDoc, place)
	}

	// The serialized "place" key must carry the expanded document, not
	// the raw reference id.
	if body := rec.Body.String(); !strings.Contains(body, `"place":{`) {
		t.Errorf("response place key is not expanded: %s", body)
	}

	// Another user sees nothing.
	c, rec = newJSONContext(t, http.MethodGet, "/bookings", nil)
	c.Set("user_id", primitive.NewObjectID().Hex())
	if err := h.ListMine(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	var other []model.BookingWithPlace
	decodeBody(t, rec, &other)
	if len(other) != 0 {
		t.Errorf("foreign bookings leaked: %+v", other)
	}
}
