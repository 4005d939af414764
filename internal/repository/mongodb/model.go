package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskDocument is the stored representation of a task
type TaskDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	IsChecked   bool               `bson:"isChecked"`
	DateCreated time.Time          `bson:"dateCreated"`
}

// DeleteOutcome reports how many documents a delete removed
type DeleteOutcome struct {
	DeletedCount int64
}
