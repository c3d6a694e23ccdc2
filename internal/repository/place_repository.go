package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/staynest/staynest-api/internal/model"
)

// PlaceRepo persists places in the `places` collection.
type PlaceRepo struct{ Col *mongo.Collection }

func NewPlaceRepo(db *mongo.Database) *PlaceRepo {
	return &PlaceRepo{Col: db.Collection("places")}
}

// Create inserts a new place.  The caller sets Owner before calling; the
// repository assigns the id.
func (r *PlaceRepo) Create(ctx context.Context, p *model.Place) error {
	p.ID = primitive.NewObjectID()
	_, err := r.Col.InsertOne(ctx, p)
	return err
}

// GetByID fetches a place by object id.
func (r *PlaceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (model.Place, error) {
	var p model.Place
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Place{}, ErrNotFound
	}
	return p, err
}

// ListByOwner returns all places owned by the given user.
func (r *PlaceRepo) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]model.Place, error) {
	cur, err := r.Col.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, err
	}
	out := []model.Place{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll returns every place, used by the public index page.
func (r *PlaceRepo) ListAll(ctx context.Context) ([]model.Place, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out := []model.Place{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the stored document with p.  The filter keeps the owner
// in the match so a concurrent owner change can never slip through, but
// the real authorization decision happens in the handler before this call.
// Concurrent updates to the same place are last-write-wins.
func (r *PlaceRepo) Update(ctx context.Context, p *model.Place) error {
	res, err := r.Col.ReplaceOne(ctx, bson.M{"_id": p.ID, "owner": p.Owner}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// listByIDs fetches the given places and returns them keyed by id.  Used
// by the booking repository for its read-side join.
func (r *PlaceRepo) listByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.Place, error) {
	out := map[primitive.ObjectID]model.Place{}
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var places []model.Place
	if err := cur.All(ctx, &places); err != nil {
		return nil, err
	}
	for _, p := range places {
		out[p.ID] = p
	}
	return out, nil
}
