package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking represents a reservation document in the `bookings` collection.
// A booking always references an existing place and the user who created
// it; once written it is immutable (there is no update or cancel surface).
//
// Fields:
//  ID             – Mongo object id (_id).
//  Place          – id of the booked place.
//  User           – id of the booking user.
//  CheckIn        – arrival date.
//  CheckOut       – departure date.
//  NumberOfNights – night count as submitted by the client.
//  Name           – contact name for the stay.
//  Phone          – contact phone number.
//  Price          – total price for the stay.
type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Place          primitive.ObjectID `bson:"place" json:"place"`
	User           primitive.ObjectID `bson:"user" json:"user"`
	CheckIn        time.Time          `bson:"checkIn" json:"checkIn"`
	CheckOut       time.Time          `bson:"checkOut" json:"checkOut"`
	NumberOfNights int                `bson:"numberOfNights" json:"numberOfNights"`
	Name           string             `bson:"name" json:"name"`
	Phone          string             `bson:"phone" json:"phone"`
	Price          int                `bson:"price" json:"price"`
}

// BookingWithPlace is the read-side view returned by "my bookings": the
// booking fields plus its place document expanded in full.  PlaceDoc sits
// at depth zero so its json tag shadows the embedded Place reference and
// the serialized "place" key carries the whole document.
type BookingWithPlace struct {
	Booking  `bson:",inline"`
	PlaceDoc Place `bson:"-" json:"place"`
}
