package repositories

import (
	"context"

	"github.com/vidshare-app/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// VideoLikeRepository defines the interface for video like records.
// Get returns (nil, nil) when no like exists.
type VideoLikeRepository interface {
	Get(ctx context.Context, userID, videoID string) (*models.VideoLike, error)
	Save(ctx context.Context, like *models.VideoLike) error
	Delete(ctx context.Context, userID, videoID string) error
}

// MongoVideoLikeRepository implements VideoLikeRepository for MongoDB
type MongoVideoLikeRepository struct {
	collection *mongo.Collection
}

// NewMongoVideoLikeRepository creates a new MongoVideoLikeRepository
func NewMongoVideoLikeRepository(db *mongo.Database) *MongoVideoLikeRepository {
	return &MongoVideoLikeRepository{collection: db.Collection("video_likes")}
}

func videoLikeKey(userID, videoID string) bson.M {
	return bson.M{"user_id": userID, "video_id": videoID}
}

// Get retrieves a like record by its (userID, videoID) key
func (r *MongoVideoLikeRepository) Get(ctx context.Context, userID, videoID string) (*models.VideoLike, error) {
	var like models.VideoLike
	err := r.collection.FindOne(ctx, videoLikeKey(userID, videoID)).Decode(&like)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

// Save inserts a new like record
func (r *MongoVideoLikeRepository) Save(ctx context.Context, like *models.VideoLike) error {
	_, err := r.collection.InsertOne(ctx, like)
	return err
}

// Delete removes a like record
func (r *MongoVideoLikeRepository) Delete(ctx context.Context, userID, videoID string) error {
	_, err := r.collection.DeleteOne(ctx, videoLikeKey(userID, videoID))
	return err
}
