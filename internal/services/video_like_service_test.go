package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidshare-app/backend/internal/apperrors"
	"github.com/vidshare-app/backend/internal/models"
)

type videoLikeFixture struct {
	svc      *VideoLikeService
	likes    *fakeVideoLikeRepo
	videos   *fakeVideoRepo
	notifier *recordingNotifier
}

func newVideoLikeFixture() *videoLikeFixture {
	likes := newFakeVideoLikeRepo()
	videos := newFakeVideoRepo()
	notifier := &recordingNotifier{}

	videos.videos["video-1"] = &models.Video{VideoID: "video-1", UserID: "owner", Title: "Launch Day"}

	svc := NewVideoLikeService(likes, videos, notifier, testLogger())
	svc.now = newTestClock().Now

	return &videoLikeFixture{svc: svc, likes: likes, videos: videos, notifier: notifier}
}

func TestToggleVideoLike(t *testing.T) {
	f := newVideoLikeFixture()
	ctx := context.Background()

	resp, err := f.svc.ToggleLike(ctx, "alice", "video-1")
	require.NoError(t, err)
	assert.True(t, resp.IsLiked)
	assert.Equal(t, int64(1), resp.TotalLikes)
	assert.Equal(t, "Video liked successfully", resp.Message)

	resp, err = f.svc.ToggleLike(ctx, "alice", "video-1")
	require.NoError(t, err)
	assert.False(t, resp.IsLiked)
	assert.Equal(t, int64(0), resp.TotalLikes)
	assert.Equal(t, "Video unliked successfully", resp.Message)
}

func TestToggleVideoLikeNotifiesOwner(t *testing.T) {
	f := newVideoLikeFixture()

	_, err := f.svc.ToggleLike(context.Background(), "alice", "video-1")
	require.NoError(t, err)

	require.Len(t, f.notifier.requests, 1)
	req := f.notifier.requests[0]
	assert.Equal(t, models.NotificationVideoLiked, req.Type)
	assert.Equal(t, "owner", req.RecipientUserID)
	assert.Equal(t, "alice", req.ActorUserID)
	assert.Equal(t, "video-1", req.VideoID)
}

func TestToggleVideoLikeSelfLikeSkipsNotification(t *testing.T) {
	f := newVideoLikeFixture()

	resp, err := f.svc.ToggleLike(context.Background(), "owner", "video-1")
	require.NoError(t, err)
	assert.True(t, resp.IsLiked)
	assert.Empty(t, f.notifier.requests)
}

func TestToggleVideoLikeMissingVideo(t *testing.T) {
	f := newVideoLikeFixture()

	_, err := f.svc.ToggleLike(context.Background(), "alice", "missing")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestVideoLikeStatus(t *testing.T) {
	f := newVideoLikeFixture()
	ctx := context.Background()

	status, err := f.svc.GetLikeStatus(ctx, "alice", "video-1")
	require.NoError(t, err)
	assert.False(t, status.IsLiked)
	assert.Equal(t, int64(0), status.TotalLikes)

	_, err = f.svc.ToggleLike(ctx, "alice", "video-1")
	require.NoError(t, err)

	status, err = f.svc.GetLikeStatus(ctx, "alice", "video-1")
	require.NoError(t, err)
	assert.True(t, status.IsLiked)
	assert.Equal(t, int64(1), status.TotalLikes)
}
