package repositories

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vidshare-app/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// notificationBatchSize is the hard ceiling on records per batch write,
// matching the store's batch API limit.
const notificationBatchSize = 25

// NotificationRepository defines the interface for notification persistence.
// Lookups return (nil, nil) when the record does not exist.
type NotificationRepository interface {
	Save(ctx context.Context, notification *models.Notification) error
	BatchSave(ctx context.Context, notifications []models.Notification) error
	GetByNotificationID(ctx context.Context, notificationID string) (*models.Notification, error)
	DeleteByKey(ctx context.Context, recipientUserID, createdAt string) error
	// ListByRecipient returns up to limit notifications newest first. A
	// non-empty beforeCreatedAt resumes strictly below that sort key.
	ListByRecipient(ctx context.Context, recipientUserID string, limit int64, beforeCreatedAt string) ([]models.Notification, error)
	ListUnread(ctx context.Context, recipientUserID string, limit int64) ([]models.Notification, error)
	CountUnread(ctx context.Context, recipientUserID string) (int, error)
	MarkRead(ctx context.Context, recipientUserID, createdAt string) error
}

// MongoNotificationRepository implements NotificationRepository for MongoDB
type MongoNotificationRepository struct {
	collection *mongo.Collection
	log        *logrus.Logger
}

// NewMongoNotificationRepository creates a new MongoNotificationRepository
func NewMongoNotificationRepository(db *mongo.Database, log *logrus.Logger) *MongoNotificationRepository {
	return &MongoNotificationRepository{collection: db.Collection("notifications"), log: log}
}

// Save inserts a single notification
func (r *MongoNotificationRepository) Save(ctx context.Context, notification *models.Notification) error {
	_, err := r.collection.InsertOne(ctx, notification)
	return err
}

// BatchSave inserts notifications in chunks of at most 25 records per call,
// one store call per chunk.
func (r *MongoNotificationRepository) BatchSave(ctx context.Context, notifications []models.Notification) error {
	for i, batch := range chunkNotifications(notifications, notificationBatchSize) {
		docs := make([]interface{}, len(batch))
		for j := range batch {
			docs[j] = batch[j]
		}
		if _, err := r.collection.InsertMany(ctx, docs); err != nil {
			return err
		}
		r.log.WithFields(logrus.Fields{
			"count": len(batch),
			"batch": i + 1,
		}).Info("batch saved notifications")
	}
	return nil
}

// chunkNotifications splits notifications into slices of at most size items.
func chunkNotifications(notifications []models.Notification, size int) [][]models.Notification {
	var chunks [][]models.Notification
	for start := 0; start < len(notifications); start += size {
		end := start + size
		if end > len(notifications) {
			end = len(notifications)
		}
		chunks = append(chunks, notifications[start:end])
	}
	return chunks
}

// GetByNotificationID resolves a notification by its globally unique id,
// independent of the (recipient, createdAt) key.
func (r *MongoNotificationRepository) GetByNotificationID(ctx context.Context, notificationID string) (*models.Notification, error) {
	var notification models.Notification
	err := r.collection.FindOne(ctx, bson.M{"notification_id": notificationID}).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

// DeleteByKey removes a notification under its composite key
func (r *MongoNotificationRepository) DeleteByKey(ctx context.Context, recipientUserID, createdAt string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{
		"recipient_user_id": recipientUserID,
		"created_at":        createdAt,
	})
	return err
}

// ListByRecipient returns notifications for a recipient, newest first
func (r *MongoNotificationRepository) ListByRecipient(ctx context.Context, recipientUserID string, limit int64, beforeCreatedAt string) ([]models.Notification, error) {
	filter := bson.M{"recipient_user_id": recipientUserID}
	if beforeCreatedAt != "" {
		filter["created_at"] = bson.M{"$lt": beforeCreatedAt}
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// ListUnread returns the recipient's unread notifications, newest first
func (r *MongoNotificationRepository) ListUnread(ctx context.Context, recipientUserID string, limit int64) ([]models.Notification, error) {
	filter := bson.M{"recipient_user_id": recipientUserID, "is_read": "false"}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// CountUnread counts the recipient's unread notifications
func (r *MongoNotificationRepository) CountUnread(ctx context.Context, recipientUserID string) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"recipient_user_id": recipientUserID,
		"is_read":           "false",
	})
	return int(count), err
}

// MarkRead flips a notification's read flag under its composite key
func (r *MongoNotificationRepository) MarkRead(ctx context.Context, recipientUserID, createdAt string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"recipient_user_id": recipientUserID, "created_at": createdAt},
		bson.M{"$set": bson.M{"is_read": "true"}},
	)
	return err
}
