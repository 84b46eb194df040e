package repositories

import (
	"context"

	"github.com/vidshare-app/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CommentLikeRepository defines the interface for comment like records.
// Get returns (nil, nil) when no like exists.
type CommentLikeRepository interface {
	Get(ctx context.Context, commentID, userID string) (*models.CommentLike, error)
	Save(ctx context.Context, like *models.CommentLike) error
	Delete(ctx context.Context, commentID, userID string) error
	Count(ctx context.Context, commentID string) (int, error)
}

// MongoCommentLikeRepository implements CommentLikeRepository for MongoDB
type MongoCommentLikeRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentLikeRepository creates a new MongoCommentLikeRepository
func NewMongoCommentLikeRepository(db *mongo.Database) *MongoCommentLikeRepository {
	return &MongoCommentLikeRepository{collection: db.Collection("comment_likes")}
}

func commentLikeKey(commentID, userID string) bson.M {
	return bson.M{"comment_id": commentID, "user_id": userID}
}

// Get retrieves a like record by its (commentID, userID) key
func (r *MongoCommentLikeRepository) Get(ctx context.Context, commentID, userID string) (*models.CommentLike, error) {
	var like models.CommentLike
	err := r.collection.FindOne(ctx, commentLikeKey(commentID, userID)).Decode(&like)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

// Save inserts a new like record
func (r *MongoCommentLikeRepository) Save(ctx context.Context, like *models.CommentLike) error {
	_, err := r.collection.InsertOne(ctx, like)
	return err
}

// Delete removes a like record
func (r *MongoCommentLikeRepository) Delete(ctx context.Context, commentID, userID string) error {
	_, err := r.collection.DeleteOne(ctx, commentLikeKey(commentID, userID))
	return err
}

// Count enumerates the like records for a comment. This is a live count and
// may disagree with the comment's denormalized like counter.
func (r *MongoCommentLikeRepository) Count(ctx context.Context, commentID string) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"comment_id": commentID})
	return int(count), err
}
