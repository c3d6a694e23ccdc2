package handler // handler package contains the listing endpoints

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/staynest/staynest-api/internal/model"
	"github.com/staynest/staynest-api/internal/repository"
)

// PlaceHandler bundles the listing store for the place endpoints.
type PlaceHandler struct {
	Places PlaceStore
}

func NewPlaceHandler(places PlaceStore) *PlaceHandler {
	if places == nil {
		panic("nil store passed to NewPlaceHandler")
	}
	return &PlaceHandler{Places: places}
}

// placeReq mirrors the client payload for create and update.  The photo
// filenames arrive under addedPhotos, matching the upload endpoints'
// return values.
type placeReq struct {
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	AddedPhotos []string `json:"addedPhotos"`
	Description string   `json:"description"`
	Perks       []string `json:"perks"`
	ExtraInfo   string   `json:"extraInfo"`
	CheckIn     int      `json:"checkIn"`
	CheckOut    int      `json:"checkOut"`
	MaxGuests   int      `json:"maxGuests"`
	Price       int      `json:"price"`
}

// Create handles POST /places and creates a listing owned by the
// authenticated user.  The owner is taken from the session, never from
// the payload, and is immutable from then on.
func (h *PlaceHandler) Create(c echo.Context) error {
	owner, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body placeReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	title := strings.TrimSpace(body.Title)
	if title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}

	place := &model.Place{
		Owner:       owner,
		Title:       title,
		Address:     body.Address,
		Photos:      body.AddedPhotos,
		Description: body.Description,
		Perks:       body.Perks,
		ExtraInfo:   body.ExtraInfo,
		CheckIn:     body.CheckIn,
		CheckOut:    body.CheckOut,
		MaxGuests:   body.MaxGuests,
		Price:       body.Price,
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Places.Create(ctx, place); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create place"})
	}
	return c.JSON(http.StatusCreated, place)
}

// ListMine handles GET /user-places and returns the listings owned by
// the authenticated user.
func (h *PlaceHandler) ListMine(c echo.Context) error {
	owner, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	items, err := h.Places.ListByOwner(ctx, owner)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetByID handles GET /places/:id.  The route is public; no session is
// required to view a listing.
func (h *PlaceHandler) GetByID(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	place, err := h.Places.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "place not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, place)
}

// Update handles PUT /places/:id.  Every field except the owner is
// replaced wholesale with the payload.  A caller who is not the owner
// gets a 403 and the stored document stays untouched.  Two owners'
// sessions racing on the same listing are last-write-wins.
func (h *PlaceHandler) Update(c echo.Context) error {
	subject, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body placeReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	place, err := h.Places.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "place not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if !place.OwnedBy(subject) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	place.Title = body.Title
	place.Address = body.Address
	place.Photos = body.AddedPhotos
	place.Description = body.Description
	place.Perks = body.Perks
	place.ExtraInfo = body.ExtraInfo
	place.CheckIn = body.CheckIn
	place.CheckOut = body.CheckOut
	place.MaxGuests = body.MaxGuests
	place.Price = body.Price

	if err := h.Places.Update(ctx, &place); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "place not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, place)
}

// ListAll handles GET /places and returns every listing for the public
// index page.
func (h *PlaceHandler) ListAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	items, err := h.Places.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}
