package article

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article is the persisted blog article model. The bson/json field names
// (date, image) are fixed: existing collections and clients already use them.
type Article struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title   string             `json:"title" bson:"title"`
	Content string             `json:"content" bson:"content"`
	Date    time.Time          `json:"date" bson:"date"`
	Image   string             `json:"image" bson:"image"`
}

// Patch carries the fields applied by an update. Title and Content are
// mandatory (updates run the same validation as creates); Date and Image are
// replaced only when present in the payload.
type Patch struct {
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Date    *time.Time `json:"date,omitempty"`
	Image   string     `json:"image,omitempty"`
}
