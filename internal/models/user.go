package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is an account created on signup. Password is kept exactly as the
// client sent it.
type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"-"`
	Email     string        `bson:"email" json:"email"`
	FullName  string        `bson:"fullName" json:"fullName"`
	Password  string        `bson:"password" json:"-"`
	CreatedAt time.Time     `bson:"createdAt" json:"-"`
}

// Profile is the public view returned by signup and login.
type Profile struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

func (u *User) Profile() Profile {
	return Profile{Email: u.Email, FullName: u.FullName}
}
