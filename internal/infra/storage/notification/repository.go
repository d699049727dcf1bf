package notification

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// CollectionName имя коллекции уведомлений в MongoDB
const CollectionName = "notifications"

// Repository репозиторий уведомлений поверх MongoDB
// Уведомления хранятся в документной базе: записи создаются часто,
// читаются лентой и не участвуют в реляционных связях
type Repository struct {
	coll *mongo.Collection
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(CollectionName)}
}

// Create сохраняет новое уведомление
// Идентификатор и временные метки присваиваются репозиторием
func (r *Repository) Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error) {
	now := time.Now().UTC()

	notification.ID = primitive.NewObjectID()
	notification.Read = false
	notification.CreatedAt = now
	notification.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, notification); err != nil {
		return nil, fmt.Errorf("%w: Create - insert one: %v", ErrInsert, err)
	}

	return notification, nil
}
