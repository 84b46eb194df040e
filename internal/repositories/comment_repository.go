package repositories

import (
	"context"

	"github.com/vidshare-app/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentRepository defines the interface for comment data operations.
// Lookups return (nil, nil) when the record does not exist.
type CommentRepository interface {
	Get(ctx context.Context, videoID, commentID string) (*models.Comment, error)
	Save(ctx context.Context, comment *models.Comment) error
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, videoID, commentID string) error
	ListByVideo(ctx context.Context, videoID string) ([]models.Comment, error)
	ListReplies(ctx context.Context, videoID, parentCommentID string) ([]models.Comment, error)
	AddToReplyCount(ctx context.Context, videoID, commentID string, delta int) error
	AddToLikeCount(ctx context.Context, videoID, commentID string, delta int) (int, error)
}

// MongoCommentRepository implements CommentRepository for MongoDB
type MongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new MongoCommentRepository
func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{collection: db.Collection("comments")}
}

func commentKey(videoID, commentID string) bson.M {
	return bson.M{"video_id": videoID, "comment_id": commentID}
}

// Get retrieves a comment by its (videoID, commentID) key
func (r *MongoCommentRepository) Get(ctx context.Context, videoID, commentID string) (*models.Comment, error) {
	var comment models.Comment
	err := r.collection.FindOne(ctx, commentKey(videoID, commentID)).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// Save inserts a new comment
func (r *MongoCommentRepository) Save(ctx context.Context, comment *models.Comment) error {
	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

// Update replaces an existing comment under its key
func (r *MongoCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	_, err := r.collection.ReplaceOne(ctx, commentKey(comment.VideoID, comment.CommentID), comment)
	return err
}

// Delete removes a comment record entirely (hard delete, no tombstone)
func (r *MongoCommentRepository) Delete(ctx context.Context, videoID, commentID string) error {
	_, err := r.collection.DeleteOne(ctx, commentKey(videoID, commentID))
	return err
}

// ListByVideo returns all non-deleted comments of a video, roots and replies
func (r *MongoCommentRepository) ListByVideo(ctx context.Context, videoID string) ([]models.Comment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"video_id": videoID, "is_deleted": false})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// ListReplies returns the direct replies of a comment, oldest first
func (r *MongoCommentRepository) ListReplies(ctx context.Context, videoID, parentCommentID string) ([]models.Comment, error) {
	filter := bson.M{
		"video_id":          videoID,
		"parent_comment_id": parentCommentID,
		"is_deleted":        false,
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var replies []models.Comment
	if err = cursor.All(ctx, &replies); err != nil {
		return nil, err
	}
	return replies, nil
}

// AddToReplyCount atomically adjusts a comment's reply counter. Decrements
// are floored at zero: the update filter skips the write when the counter
// is already zero.
func (r *MongoCommentRepository) AddToReplyCount(ctx context.Context, videoID, commentID string, delta int) error {
	filter := commentKey(videoID, commentID)
	if delta < 0 {
		filter["reply_count"] = bson.M{"$gte": -delta}
	}
	_, err := r.collection.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"reply_count": delta}})
	return err
}

// AddToLikeCount atomically adjusts a comment's like counter and returns the
// new value. Decrements are floored at zero the same way as AddToReplyCount;
// a skipped decrement returns the current value.
func (r *MongoCommentRepository) AddToLikeCount(ctx context.Context, videoID, commentID string, delta int) (int, error) {
	filter := commentKey(videoID, commentID)
	if delta < 0 {
		filter["like_count"] = bson.M{"$gte": -delta}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Comment
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$inc": bson.M{"like_count": delta}}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		// Decrement hit the floor; report the counter as it stands.
		current, getErr := r.Get(ctx, videoID, commentID)
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
