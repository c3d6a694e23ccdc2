package handler

// In-memory store fakes backing the handler tests, in place of the Mongo
// repositories.  They reproduce the repository contracts: sentinel
// errors, owner-filtered replacement and the booking read-side join.

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/staynest/staynest-api/internal/model"
	"github.com/staynest/staynest-api/internal/repository"
	"github.com/staynest/staynest-api/internal/utils"
)

type memUserStore struct {
	byEmail map[string]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byEmail: map[string]model.User{}}
}

func (s *memUserStore) Create(_ context.Context, name, email, password string, cost int) (model.User, error) {
	if _, ok := s.byEmail[email]; ok {
		return model.User{}, repository.ErrEmailExists
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.User{}, err
	}
	u := model.User{ID: primitive.NewObjectID(), Name: name, Email: email, Password: hash}
	s.byEmail[email] = u
	return u, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (s *memUserStore) GetByID(_ context.Context, id primitive.ObjectID) (model.User, error) {
	for _, u := range s.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

type memPlaceStore struct {
	byID map[primitive.ObjectID]model.Place
}

func newMemPlaceStore() *memPlaceStore {
	return &memPlaceStore{byID: map[primitive.ObjectID]model.Place{}}
}

func (s *memPlaceStore) Create(_ context.Context, p *model.Place) error {
	p.ID = primitive.NewObjectID()
	s.byID[p.ID] = *p
	return nil
}

func (s *memPlaceStore) GetByID(_ context.Context, id primitive.ObjectID) (model.Place, error) {
	p, ok := s.byID[id]
	if !ok {
		return model.Place{}, repository.ErrNotFound
	}
	return p, nil
}

func (s *memPlaceStore) ListByOwner(_ context.Context, owner primitive.ObjectID) ([]model.Place, error) {
	out := []model.Place{}
	for _, p := range s.byID {
		if p.Owner == owner {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memPlaceStore) ListAll(_ context.Context) ([]model.Place, error) {
	out := []model.Place{}
	for _, p := range s.byID {
		out = append(out, p)
	}
	return out, nil
}

func (s *memPlaceStore) Update(_ context.Context, p *model.Place) error {
	cur, ok := s.byID[p.ID]
	if !ok || cur.Owner != p.Owner {
		return repository.ErrNotFound
	}
	s.byID[p.ID] = *p
	return nil
}

type memBookingStore struct {
	bookings []model.Booking
	places   *memPlaceStore
}

func newMemBookingStore(places *memPlaceStore) *memBookingStore {
	return &memBookingStore{places: places}
}

func (s *memBookingStore) Create(_ context.Context, b *model.Booking) error {
	b.ID = primitive.NewObjectID()
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *memBookingStore) ListByUser(_ context.Context, user primitive.ObjectID) ([]model.BookingWithPlace, error) {
	out := []model.BookingWithPlace{}
	for _, b := range s.bookings {
		if b.User != user {
			continue
		}
		out = append(out, model.BookingWithPlace{Booking: b, PlaceDoc: s.places.byID[b.Place]})
	}
	return out, nil
}

// newJSONContext builds an echo context carrying a JSON body, returning
// the recorder the handler writes into.
func newJSONContext(t *testing.T, method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}
