package model

import "go.mongodb.org/mongo-driver/v2/bson"

type Review struct {
	ID       bson.ObjectID
	MovieID  bson.ObjectID
	Username string
	Text     string
	Rating   float64
}

// UsageEvent is a fire-and-forget analytics record.
type UsageEvent struct {
	Category  string
	Action    string
	Label     string
	Value     int
	Dimension string
	Metric    int
}
