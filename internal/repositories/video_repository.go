package repositories

import (
	"context"

	"github.com/vidshare-app/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VideoRepository defines the video lookups and counter mutations the comment
// and like services need. Get returns (nil, nil) when the video is absent.
type VideoRepository interface {
	Get(ctx context.Context, videoID string) (*models.Video, error)
	Save(ctx context.Context, video *models.Video) error
	AddToCommentCount(ctx context.Context, videoID string, delta int) error
	AddToLikeCount(ctx context.Context, videoID string, delta int) (int64, error)
}

// MongoVideoRepository implements VideoRepository for MongoDB
type MongoVideoRepository struct {
	collection *mongo.Collection
}

// NewMongoVideoRepository creates a new MongoVideoRepository
func NewMongoVideoRepository(db *mongo.Database) *MongoVideoRepository {
	return &MongoVideoRepository{collection: db.Collection("videos")}
}

// Get retrieves a video by id
func (r *MongoVideoRepository) Get(ctx context.Context, videoID string) (*models.Video, error) {
	var video models.Video
	err := r.collection.FindOne(ctx, bson.M{"_id": videoID}).Decode(&video)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &video, nil
}

// Save upserts a video record
func (r *MongoVideoRepository) Save(ctx context.Context, video *models.Video) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": video.VideoID}, video, opts)
	return err
}

// AddToCommentCount atomically adjusts the video's comment counter. A negative
// delta only applies when the counter is at least that large; otherwise the
// decrement is skipped rather than clamped.
func (r *MongoVideoRepository) AddToCommentCount(ctx context.Context, videoID string, delta int) error {
	filter := bson.M{"_id": videoID}
	if delta < 0 {
		filter["comment_count"] = bson.M{"$gte": -delta}
	}
	_, err := r.collection.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"comment_count": delta}})
	return err
}

// AddToLikeCount atomically adjusts the video's like counter and returns the
// new value. Decrements are floored at zero.
func (r *MongoVideoRepository) AddToLikeCount(ctx context.Context, videoID string, delta int) (int64, error) {
	filter := bson.M{"_id": videoID}
	if delta < 0 {
		filter["like_count"] = bson.M{"$gte": -delta}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Video
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$inc": bson.M{"like_count": delta}}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		current, getErr := r.Get(ctx, videoID)
		if getErr != nil || current == nil {
			return 0, getErr
		}
		return current.LikeCount, nil
	}
	if err != nil {
		return 0, err
	}
	return updated.LikeCount, nil
}
