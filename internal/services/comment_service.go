package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vidshare-app/backend/internal/apperrors"
	"github.com/vidshare-app/backend/internal/models"
	"github.com/vidshare-app/backend/internal/repositories"
)

// maxCommentLength is the content limit in code points.
const maxCommentLength = 10000

// inlineRepliesCap is the fixed number of replies inlined under a root
// comment in listings. Replies beyond the cap are not surfaced.
const inlineRepliesCap = 20

// CommentService owns the comment tree of a video: creation, threaded
// retrieval, edits and recursive cascade deletion, together with the
// reply-count and video comment-count invariants.
type CommentService struct {
	comments repositories.CommentRepository
	videos   repositories.VideoRepository
	users    repositories.UserRepository
	notifier Notifier
	log      *logrus.Logger
	now      func() time.Time
}

// NewCommentService creates a new CommentService
func NewCommentService(
	comments repositories.CommentRepository,
	videos repositories.VideoRepository,
	users repositories.UserRepository,
	notifier Notifier,
	log *logrus.Logger,
) *CommentService {
	return &CommentService{
		comments: comments,
		videos:   videos,
		users:    users,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

func validateCommentContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", apperrors.BadRequest("Comment content cannot be empty.")
	}
	if utf8.RuneCountInString(trimmed) > maxCommentLength {
		return "", apperrors.BadRequest("Comment content is too long (max 10000 characters).")
	}
	return trimmed, nil
}

// CreateComment posts a new comment or reply on a video. The author's name
// and avatar are snapshotted onto the comment. A resolved parent gets its
// reply counter incremented and the video's comment counter always is.
func (s *CommentService) CreateComment(ctx context.Context, videoID, userID string, req models.CreateCommentRequest) (*models.CreateCommentResponse, error) {
	content, err := validateCommentContent(req.Content)
	if err != nil {
		return nil, err
	}

	video, err := s.videos.Get(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, apperrors.NotFound("Video not found.")
	}

	user, err := s.users.GetByUID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found.")
	}

	parentCommentID := strings.TrimSpace(req.ParentCommentID)
	var parent *models.Comment
	if parentCommentID != "" {
		parent, err = s.comments.Get(ctx, videoID, parentCommentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperrors.NotFound("Parent comment not found.")
		}
		if parent.IsDeleted {
			return nil, apperrors.BadRequest("Cannot reply to a deleted comment.")
		}
	}

	comment := models.Comment{
		VideoID:         videoID,
		CommentID:       uuid.NewString(),
		UserID:          userID,
		UserName:        user.Name,
		UserAvatarURL:   user.AvatarURL,
		Content:         content,
		ParentCommentID: parentCommentID,
		CreatedAt:       formatTimestamp(s.now()),
	}

	if err := s.comments.Save(ctx, &comment); err != nil {
		return nil, err
	}

	if parent != nil {
		if err := s.comments.AddToReplyCount(ctx, videoID, parent.CommentID, 1); err != nil {
			return nil, err
		}
	}

	if err := s.videos.AddToCommentCount(ctx, videoID, 1); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"userId":    userID,
		"commentId": comment.CommentID,
		"videoId":   videoID,
	}).Info("created comment")

	s.notifyCommentCreated(ctx, video, parent, &comment)

	message := "Comment posted successfully"
	if parent != nil {
		message = "Reply posted successfully"
	}

	return &models.CreateCommentResponse{
		CommentID:       comment.CommentID,
		VideoID:         comment.VideoID,
		UserID:          comment.UserID,
		UserName:        comment.UserName,
		UserAvatarURL:   comment.UserAvatarURL,
		Content:         comment.Content,
		ParentCommentID: comment.ParentCommentID,
		LikeCount:       comment.LikeCount,
		ReplyCount:      comment.ReplyCount,
		CreatedAt:       comment.CreatedAt,
		Message:         message,
	}, nil
}

// notifyCommentCreated records the activity notification for a new comment:
// a reply notifies the parent comment's author, a root comment notifies the
// video owner. Failures are logged and never propagated to the comment path.
func (s *CommentService) notifyCommentCreated(ctx context.Context, video *models.Video, parent, comment *models.Comment) {
	var req models.CreateNotificationRequest
	switch {
	case parent != nil && parent.UserID != comment.UserID:
		req = models.CreateNotificationRequest{
			RecipientUserID: parent.UserID,
			ActorUserID:     comment.UserID,
			Type:            models.NotificationCommentReplied,
			VideoID:         video.VideoID,
			CommentID:       parent.CommentID,
		}
	case parent == nil && video.UserID != comment.UserID:
		req = models.CreateNotificationRequest{
			RecipientUserID: video.UserID,
			ActorUserID:     comment.UserID,
			Type:            models.NotificationVideoCommented,
			VideoID:         video.VideoID,
			CommentID:       comment.CommentID,
		}
	default:
		return
	}

	if _, err := s.notifier.CreateNotification(ctx, req); err != nil {
		s.log.WithError(err).WithField("commentId", comment.CommentID).Error("failed to create comment notification")
	}
}

// GetComments returns a page of a video's comment thread. When a parent
// comment is given, only its direct replies are returned, oldest first.
// The response counts always cover the full comment set of the video.
func (s *CommentService) GetComments(ctx context.Context, videoID string, req models.GetCommentsRequest) (*models.GetCommentsResponse, error) {
	video, err := s.videos.Get(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, apperrors.NotFound("Video not found.")
	}

	if req.ParentCommentID != "" {
		replies, err := s.comments.ListReplies(ctx, videoID, req.ParentCommentID)
		if err != nil {
			return nil, err
		}
		dtos := make([]models.CommentDto, 0, len(replies))
		for _, reply := range replies {
			dtos = append(dtos, toCommentDto(reply))
		}
		return &models.GetCommentsResponse{
			VideoID:      videoID,
			Comments:     dtos,
			TotalCount:   len(dtos),
			RepliesCount: len(dtos),
		}, nil
	}

	all, err := s.comments.ListByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	var roots, replies []models.Comment
	for _, comment := range all {
		if comment.IsRoot() {
			roots = append(roots, comment)
		} else {
			replies = append(replies, comment)
		}
	}

	sortRootComments(roots, req.SortBy)

	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(roots) {
		offset = len(roots)
	}
	end := offset + limit
	if end > len(roots) {
		end = len(roots)
	}
	page := roots[offset:end]

	dtos := make([]models.CommentDto, 0, len(page))
	for _, root := range page {
		dto := toCommentDto(root)
		if req.IncludeReplies && root.ReplyCount > 0 {
			dto.Replies = inlineReplies(replies, root.CommentID)
		}
		dtos = append(dtos, dto)
	}

	return &models.GetCommentsResponse{
		VideoID:           videoID,
		Comments:          dtos,
		TotalCount:        len(all),
		RootCommentsCount: len(roots),
		RepliesCount:      len(replies),
	}, nil
}

func sortRootComments(roots []models.Comment, sortBy string) {
	switch strings.ToLower(sortBy) {
	case "popular":
		sort.SliceStable(roots, func(i, j int) bool {
			if roots[i].LikeCount != roots[j].LikeCount {
				return roots[i].LikeCount > roots[j].LikeCount
			}
			return roots[i].CreatedAt > roots[j].CreatedAt
		})
	case "oldest":
		sort.SliceStable(roots, func(i, j int) bool {
			return roots[i].CreatedAt < roots[j].CreatedAt
		})
	default: // recent
		sort.SliceStable(roots, func(i, j int) bool {
			return roots[i].CreatedAt > roots[j].CreatedAt
		})
	}
}

// inlineReplies picks a root's direct replies out of the video's reply set,
// oldest first, capped at inlineRepliesCap.
func inlineReplies(replies []models.Comment, parentCommentID string) []models.CommentDto {
	var direct []models.Comment
	for _, reply := range replies {
		if reply.ParentCommentID == parentCommentID {
			direct = append(direct, reply)
		}
	}
	sort.SliceStable(direct, func(i, j int) bool {
		return direct[i].CreatedAt < direct[j].CreatedAt
	})
	if len(direct) > inlineRepliesCap {
		direct = direct[:inlineRepliesCap]
	}

	dtos := make([]models.CommentDto, 0, len(direct))
	for _, reply := range direct {
		dtos = append(dtos, toCommentDto(reply))
	}
	return dtos
}

// UpdateComment edits a comment's content. Only the author may edit, and an
// edit to the identical content is rejected rather than silently accepted.
func (s *CommentService) UpdateComment(ctx context.Context, videoID, commentID, userID string, req models.UpdateCommentRequest) (*models.UpdateCommentResponse, error) {
	content, err := validateCommentContent(req.Content)
	if err != nil {
		return nil, err
	}

	comment, err := s.comments.Get(ctx, videoID, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperrors.NotFound("Comment not found.")
	}
	if comment.IsDeleted {
		return nil, apperrors.BadRequest("Cannot edit a deleted comment.")
	}
	if comment.UserID != userID {
		return nil, apperrors.Forbidden("You can only edit your own comments.")
	}
	if comment.Content == content {
		return nil, apperrors.BadRequest("New content is the same as current content.")
	}

	comment.Content = content
	comment.IsEdited = true
	comment.UpdatedAt = formatTimestamp(s.now())

	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"userId":    userID,
		"commentId": commentID,
		"videoId":   videoID,
	}).Info("updated comment")

	return &models.UpdateCommentResponse{
		CommentID: comment.CommentID,
		VideoID:   comment.VideoID,
		Content:   comment.Content,
		IsEdited:  comment.IsEdited,
		UpdatedAt: comment.UpdatedAt,
		Message:   "Comment updated successfully",
	}, nil
}

// DeleteComment hard-deletes a comment together with every transitive reply.
// The comment's author or the video's owner may delete. The walk is a
// multi-step, non-transactional sequence: a failure partway through leaves a
// partially deleted tree with no rollback.
func (s *CommentService) DeleteComment(ctx context.Context, videoID, commentID, userID string) (*models.DeleteCommentResponse, error) {
	comment, err := s.comments.Get(ctx, videoID, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperrors.NotFound("Comment not found.")
	}

	video, err := s.videos.Get(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, apperrors.NotFound("Video not found.")
	}

	isCommentOwner := comment.UserID == userID
	isVideoOwner := video.UserID == userID
	if !isCommentOwner && !isVideoOwner {
		return nil, apperrors.Forbidden("You can only delete your own comments or comments on your videos.")
	}

	thread, err := s.collectThread(ctx, videoID, commentID)
	if err != nil {
		return nil, err
	}
	totalDeleted := len(thread)

	for _, node := range thread {
		if err := s.comments.Delete(ctx, videoID, node.CommentID); err != nil {
			return nil, err
		}
	}

	if comment.ParentCommentID != "" {
		if err := s.comments.AddToReplyCount(ctx, videoID, comment.ParentCommentID, -1); err != nil {
			return nil, err
		}
	}

	// The repository skips the decrement when the video counter is smaller
	// than the deleted node count, rather than clamping.
	if err := s.videos.AddToCommentCount(ctx, videoID, -totalDeleted); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"userId":     userID,
		"commentId":  commentID,
		"videoId":    videoID,
		"childCount": totalDeleted - 1,
	}).Info("deleted comment thread")

	message := "Comment deleted successfully"
	if totalDeleted > 1 {
		message = fmt.Sprintf("Comment and %d replies deleted successfully", totalDeleted-1)
	}

	return &models.DeleteCommentResponse{
		CommentID:    commentID,
		VideoID:      videoID,
		DeletedCount: totalDeleted,
		Success:      true,
		Message:      message,
	}, nil
}

// collectThread gathers a comment and all of its transitive replies with an
// explicit worklist, so arbitrarily deep reply chains cannot exhaust the
// stack. No visitation order is guaranteed.
func (s *CommentService) collectThread(ctx context.Context, videoID, commentID string) ([]models.Comment, error) {
	var thread []models.Comment
	worklist := []string{commentID}

	for len(worklist) > 0 {
		id := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		node, err := s.comments.Get(ctx, videoID, id)
		if err != nil {
			return nil, err
		}
		if node == nil {
			continue
		}
		thread = append(thread, *node)

		children, err := s.comments.ListReplies(ctx, videoID, id)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			worklist = append(worklist, child.CommentID)
		}
	}

	return thread, nil
}

func toCommentDto(comment models.Comment) models.CommentDto {
	return models.CommentDto{
		CommentID:       comment.CommentID,
		VideoID:         comment.VideoID,
		UserID:          comment.UserID,
		UserName:        comment.UserName,
		UserAvatarURL:   comment.UserAvatarURL,
		Content:         comment.Content,
		ParentCommentID: comment.ParentCommentID,
		LikeCount:       comment.LikeCount,
		ReplyCount:      comment.ReplyCount,
		IsEdited:        comment.IsEdited,
		CreatedAt:       comment.CreatedAt,
		UpdatedAt:       comment.UpdatedAt,
	}
}
