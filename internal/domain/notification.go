package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification represents a message persisted for a provider as a side
// effect of a successful booking. Stored in the document database; the
// service only creates notifications, delivery is handled elsewhere.
type Notification struct {
	ID          primitive.ObjectID `bson:"_id"`
	RecipientID string             `bson:"recipient_id"`
	Content     string             `bson:"content"`
	Read        bool               `bson:"read"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}
