package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/staynest/staynest-api/internal/model"
	"github.com/staynest/staynest-api/internal/utils"
)

// UserRepo persists users in the `users` collection.
type UserRepo struct{ Col *mongo.Collection }

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{Col: db.Collection("users")}
}

// Create hashes the password and inserts a new user.  The email is kept
// exactly as submitted (lookups are case-sensitive); only surrounding
// whitespace is trimmed.  A collision with the unique email index maps to
// ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, name, email, password string, cost int) (model.User, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.User{}, err
	}
	u := model.User{
		ID:       primitive.NewObjectID(),
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: hash,
	}
	if _, err := r.Col.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.User{}, ErrEmailExists
		}
		return model.User{}, err
	}
	return u, nil
}

// GetByEmail fetches a user by exact email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.Col.FindOne(ctx, bson.M{"email": strings.TrimSpace(email)}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// GetByID fetches a user by object id.
func (r *UserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	var u model.User
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	return u, err
}
