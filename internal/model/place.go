package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Place represents a rentable property document in the `places` collection.
// Every place belongs to exactly one owner, assigned at creation and never
// changed afterwards; all other fields are replaced wholesale on update.
//
// Fields:
//  ID          – Mongo object id (_id).
//  Owner       – user id of the owner; immutable after creation.
//  Title       – short listing title.
//  Address     – street address of the property.
//  Photos      – ordered stored photo filenames, served under /uploads.
//  Description – long form description.
//  Perks       – amenity tags (wifi, parking, ...).
//  ExtraInfo   – free text shown under "extra info".
//  CheckIn     – earliest check-in hour of day.
//  CheckOut    – latest check-out hour of day.
//  MaxGuests   – maximum number of guests.
//  Price       – nightly price.
type Place struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Owner       primitive.ObjectID `bson:"owner" json:"owner"`
	Title       string             `bson:"title" json:"title"`
	Address     string             `bson:"address" json:"address"`
	Photos      []string           `bson:"photos" json:"photos"`
	Description string             `bson:"description" json:"description"`
	Perks       []string           `bson:"perks" json:"perks"`
	ExtraInfo   string             `bson:"extraInfo" json:"extraInfo"`
	CheckIn     int                `bson:"checkIn" json:"checkIn"`
	CheckOut    int                `bson:"checkOut" json:"checkOut"`
	MaxGuests   int                `bson:"maxGuests" json:"maxGuests"`
	Price       int                `bson:"price" json:"price"`
}

// OwnedBy reports whether the given subject may mutate this place.
// Only the owner recorded at creation may do so.
func (p *Place) OwnedBy(userID primitive.ObjectID) bool {
	return p.Owner == userID
}
