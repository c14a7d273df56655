package model

import "go.mongodb.org/mongo-driver/v2/bson"

type User struct {
	ID       bson.ObjectID
	Name     string
	Username string
	Password []byte
}

// Identity is what a verified token asserts about the caller.
type Identity struct {
	ID       string
	Username string
}
