package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidshare-app/backend/internal/apperrors"
	"github.com/vidshare-app/backend/internal/models"
)

type commentLikeFixture struct {
	svc      *CommentLikeService
	likes    *fakeCommentLikeRepo
	comments *fakeCommentRepo
	notifier *recordingNotifier
}

func newCommentLikeFixture() *commentLikeFixture {
	likes := newFakeCommentLikeRepo()
	comments := newFakeCommentRepo()
	notifier := &recordingNotifier{}

	comments.comments[commentMapKey("video-1", "comment-1")] = &models.Comment{
		VideoID:   "video-1",
		CommentID: "comment-1",
		UserID:    "alice",
		Content:   "nice video",
	}

	svc := NewCommentLikeService(likes, comments, notifier, testLogger())
	svc.now = newTestClock().Now

	return &commentLikeFixture{svc: svc, likes: likes, comments: comments, notifier: notifier}
}

func TestToggleCommentLike(t *testing.T) {
	f := newCommentLikeFixture()
	ctx := context.Background()

	resp, err := f.svc.ToggleLike(ctx, "video-1", "comment-1", "bob")
	require.NoError(t, err)
	assert.True(t, resp.Liked)
	assert.Equal(t, 1, resp.LikeCount)

	status, err := f.svc.CheckLiked(ctx, "comment-1", "bob")
	require.NoError(t, err)
	assert.True(t, status.Liked)

	// Second toggle removes the like and decrements the counter.
	resp, err = f.svc.ToggleLike(ctx, "video-1", "comment-1", "bob")
	require.NoError(t, err)
	assert.False(t, resp.Liked)
	assert.Equal(t, 0, resp.LikeCount)

	status, err = f.svc.CheckLiked(ctx, "comment-1", "bob")
	require.NoError(t, err)
	assert.False(t, status.Liked)
}

func TestToggleCommentLikeNotifiesAuthor(t *testing.T) {
	f := newCommentLikeFixture()

	_, err := f.svc.ToggleLike(context.Background(), "video-1", "comment-1", "bob")
	require.NoError(t, err)

	require.Len(t, f.notifier.requests, 1)
	req := f.notifier.requests[0]
	assert.Equal(t, models.NotificationCommentLiked, req.Type)
	assert.Equal(t, "alice", req.RecipientUserID)
	assert.Equal(t, "bob", req.ActorUserID)
	assert.Equal(t, "comment-1", req.CommentID)
}

func TestToggleCommentLikeSelfLikeSkipsNotification(t *testing.T) {
	f := newCommentLikeFixture()

	resp, err := f.svc.ToggleLike(context.Background(), "video-1", "comment-1", "alice")
	require.NoError(t, err)
	assert.True(t, resp.Liked)
	assert.Empty(t, f.notifier.requests)
}

func TestToggleCommentLikeNotifierFailureIsSwallowed(t *testing.T) {
	f := newCommentLikeFixture()
	f.notifier.err = assert.AnError

	resp, err := f.svc.ToggleLike(context.Background(), "video-1", "comment-1", "bob")
	require.NoError(t, err)
	assert.True(t, resp.Liked)
	assert.Equal(t, 1, resp.LikeCount)
}

func TestToggleCommentLikeMissingComment(t *testing.T) {
	f := newCommentLikeFixture()

	_, err := f.svc.ToggleLike(context.Background(), "video-1", "missing", "bob")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCommentLikeCountIsLive(t *testing.T) {
	f := newCommentLikeFixture()
	ctx := context.Background()

	_, err := f.svc.ToggleLike(ctx, "video-1", "comment-1", "bob")
	require.NoError(t, err)
	_, err = f.svc.ToggleLike(ctx, "video-1", "comment-1", "carol")
	require.NoError(t, err)

	resp, err := f.svc.GetLikeCount(ctx, "comment-1")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.LikeCount)

	// The live count enumerates like records and may diverge from the
	// denormalized counter if the counter drifts.
	comment := f.comments.comments[commentMapKey("video-1", "comment-1")]
	comment.LikeCount = 99
	resp, err = f.svc.GetLikeCount(ctx, "comment-1")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.LikeCount)

	// An unknown comment simply has zero like records.
	resp, err = f.svc.GetLikeCount(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.LikeCount)
}
