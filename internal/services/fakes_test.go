package services

import (
	"context"
	"sort"

	"github.com/vidshare-app/backend/internal/models"
)

// In-memory repository fakes mirroring the storage semantics the services
// rely on: (nil, nil) lookups on missing records, floored counter decrements
// and deleted-comment filtering in listings.

type fakeCommentRepo struct {
	comments map[string]*models.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[string]*models.Comment)}
}

func commentMapKey(videoID, commentID string) string {
	return videoID + "/" + commentID
}

func (r *fakeCommentRepo) Get(_ context.Context, videoID, commentID string) (*models.Comment, error) {
	comment, ok := r.comments[commentMapKey(videoID, commentID)]
	if !ok {
		return nil, nil
	}
	copied := *comment
	return &copied, nil
}

func (r *fakeCommentRepo) Save(_ context.Context, comment *models.Comment) error {
	copied := *comment
	r.comments[commentMapKey(comment.VideoID, comment.CommentID)] = &copied
	return nil
}

func (r *fakeCommentRepo) Update(_ context.Context, comment *models.Comment) error {
	copied := *comment
	r.comments[commentMapKey(comment.VideoID, comment.CommentID)] = &copied
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, videoID, commentID string) error {
	delete(r.comments, commentMapKey(videoID, commentID))
	return nil
}

func (r *fakeCommentRepo) ListByVideo(_ context.Context, videoID string) ([]models.Comment, error) {
	var out []models.Comment
	for _, comment := range r.comments {
		if comment.VideoID == videoID && !comment.IsDeleted {
			out = append(out, *comment)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) ListReplies(_ context.Context, videoID, parentCommentID string) ([]models.Comment, error) {
	var out []models.Comment
	for _, comment := range r.comments {
		if comment.VideoID == videoID && comment.ParentCommentID == parentCommentID && !comment.IsDeleted {
			out = append(out, *comment)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, nil
}

func (r *fakeCommentRepo) AddToReplyCount(_ context.Context, videoID, commentID string, delta int) error {
	comment, ok := r.comments[commentMapKey(videoID, commentID)]
	if !ok {
		return nil
	}
	if delta < 0 && comment.ReplyCount < -delta {
		return nil
	}
	comment.ReplyCount += delta
	return nil
}

func (r *fakeCommentRepo) AddToLikeCount(_ context.Context, videoID, commentID string, delta int) (int, error) {
	comment, ok := r.comments[commentMapKey(videoID, commentID)]
	if !ok {
		return 0, nil
	}
	if delta < 0 && comment.LikeCount < -delta {
		return comment.LikeCount, nil
	}
	comment.LikeCount += delta
	return comment.LikeCount, nil
}

type fakeCommentLikeRepo struct {
	likes map[string]*models.CommentLike
}

func newFakeCommentLikeRepo() *fakeCommentLikeRepo {
	return &fakeCommentLikeRepo{likes: make(map[string]*models.CommentLike)}
}

func (r *fakeCommentLikeRepo) Get(_ context.Context, commentID, userID string) (*models.CommentLike, error) {
	like, ok := r.likes[commentID+"/"+userID]
	if !ok {
		return nil, nil
	}
	copied := *like
	return &copied, nil
}

func (r *fakeCommentLikeRepo) Save(_ context.Context, like *models.CommentLike) error {
	copied := *like
	r.likes[like.CommentID+"/"+like.UserID] = &copied
	return nil
}

func (r *fakeCommentLikeRepo) Delete(_ context.Context, commentID, userID string) error {
	delete(r.likes, commentID+"/"+userID)
	return nil
}

func (r *fakeCommentLikeRepo) Count(_ context.Context, commentID string) (int, error) {
	count := 0
	for _, like := range r.likes {
		if like.CommentID == commentID {
			count++
		}
	}
	return count, nil
}

type fakeVideoLikeRepo struct {
	likes map[string]*models.VideoLike
}

func newFakeVideoLikeRepo() *fakeVideoLikeRepo {
	return &fakeVideoLikeRepo{likes: make(map[string]*models.VideoLike)}
}

func (r *fakeVideoLikeRepo) Get(_ context.Context, userID, videoID string) (*models.VideoLike, error) {
	like, ok := r.likes[userID+"/"+videoID]
	if !ok {
		return nil, nil
	}
	copied := *like
	return &copied, nil
}

func (r *fakeVideoLikeRepo) Save(_ context.Context, like *models.VideoLike) error {
	copied := *like
	r.likes[like.UserID+"/"+like.VideoID] = &copied
	return nil
}

func (r *fakeVideoLikeRepo) Delete(_ context.Context, userID, videoID string) error {
	delete(r.likes, userID+"/"+videoID)
	return nil
}

type fakeVideoRepo struct {
	videos map[string]*models.Video
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{videos: make(map[string]*models.Video)}
}

func (r *fakeVideoRepo) Get(_ context.Context, videoID string) (*models.Video, error) {
	video, ok := r.videos[videoID]
	if !ok {
		return nil, nil
	}
	copied := *video
	return &copied, nil
}

func (r *fakeVideoRepo) Save(_ context.Context, video *models.Video) error {
	copied := *video
	r.videos[video.VideoID] = &copied
	return nil
}

func (r *fakeVideoRepo) AddToCommentCount(_ context.Context, videoID string, delta int) error {
	video, ok := r.videos[videoID]
	if !ok {
		return nil
	}
	if delta < 0 && video.CommentCount < -delta {
		return nil
	}
	video.CommentCount += delta
	return nil
}

func (r *fakeVideoRepo) AddToLikeCount(_ context.Context, videoID string, delta int) (int64, error) {
	video, ok := r.videos[videoID]
	if !ok {
		return 0, nil
	}
	if delta < 0 && video.LikeCount < int64(-delta) {
		return video.LikeCount, nil
	}
	video.LikeCount += int64(delta)
	return video.LikeCount, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, user := range users {
		repo.users[user.UID] = user
	}
	return repo
}

func (r *fakeUserRepo) GetByUID(uid string) (*models.User, error) {
	user, ok := r.users[uid]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) Create(user *models.User) error {
	copied := *user
	r.users[user.UID] = &copied
	return nil
}

type fakeChannelRepo struct {
	channels map[string]*models.Channel
}

func newFakeChannelRepo(channels ...*models.Channel) *fakeChannelRepo {
	repo := &fakeChannelRepo{channels: make(map[string]*models.Channel)}
	for _, channel := range channels {
		repo.channels[channel.ChannelID] = channel
	}
	return repo
}

func (r *fakeChannelRepo) GetByID(channelID string) (*models.Channel, error) {
	channel, ok := r.channels[channelID]
	if !ok {
		return nil, nil
	}
	copied := *channel
	return &copied, nil
}

type fakeSubscriptionRepo struct {
	subscriptions []models.Subscription
}

func (r *fakeSubscriptionRepo) ListByChannel(channelID string) ([]models.Subscription, error) {
	var out []models.Subscription
	for _, sub := range r.subscriptions {
		if sub.ChannelID == channelID {
			out = append(out, sub)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	notifications []models.Notification
	batchCalls    [][]models.Notification
}

func (r *fakeNotificationRepo) Save(_ context.Context, notification *models.Notification) error {
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *fakeNotificationRepo) BatchSave(_ context.Context, notifications []models.Notification) error {
	r.batchCalls = append(r.batchCalls, notifications)
	r.notifications = append(r.notifications, notifications...)
	return nil
}

func (r *fakeNotificationRepo) GetByNotificationID(_ context.Context, notificationID string) (*models.Notification, error) {
	for i := range r.notifications {
		if r.notifications[i].NotificationID == notificationID {
			copied := r.notifications[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeNotificationRepo) DeleteByKey(_ context.Context, recipientUserID, createdAt string) error {
	kept := r.notifications[:0]
	for _, n := range r.notifications {
		if n.RecipientUserID == recipientUserID && n.CreatedAt == createdAt {
			continue
		}
		kept = append(kept, n)
	}
	r.notifications = kept
	return nil
}

func (r *fakeNotificationRepo) ListByRecipient(_ context.Context, recipientUserID string, limit int64, beforeCreatedAt string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.RecipientUserID != recipientUserID {
			continue
		}
		if beforeCreatedAt != "" && n.CreatedAt >= beforeCreatedAt {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeNotificationRepo) ListUnread(_ context.Context, recipientUserID string, limit int64) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.RecipientUserID == recipientUserID && n.IsRead == "false" {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context, recipientUserID string) (int, error) {
	count := 0
	for _, n := range r.notifications {
		if n.RecipientUserID == recipientUserID && n.IsRead == "false" {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, recipientUserID, createdAt string) error {
	for i := range r.notifications {
		if r.notifications[i].RecipientUserID == recipientUserID && r.notifications[i].CreatedAt == createdAt {
			r.notifications[i].IsRead = "true"
		}
	}
	return nil
}

// recordingNotifier captures notification requests and optionally fails, for
// asserting best-effort notification behavior.
type recordingNotifier struct {
	requests []models.CreateNotificationRequest
	err      error
}

func (n *recordingNotifier) CreateNotification(_ context.Context, req models.CreateNotificationRequest) (*models.CreateNotificationResponse, error) {
	if n.err != nil {
		return nil, n.err
	}
	n.requests = append(n.requests, req)
	return &models.CreateNotificationResponse{Success: true}, nil
}
