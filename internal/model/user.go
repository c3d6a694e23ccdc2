package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents an account document in the `users` collection.
// The email is unique (enforced by an index created at startup) and is
// stored exactly as submitted; lookups are case-sensitive.  The password
// field holds only the bcrypt digest and is excluded from JSON so it can
// never leak through a handler response.
//
// Fields:
//  ID       – Mongo object id (_id).
//  Name     – display name shown to other users.
//  Email    – unique login email.
//  Password – bcrypt digest, never serialized.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}
