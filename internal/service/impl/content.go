package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/Decentr-net/agora/internal/entities"
	"github.com/Decentr-net/agora/internal/service"
	"github.com/Decentr-net/agora/internal/storage"
)

func (s srv) CreatePost(ctx context.Context, caller string, p service.CreatePostParams) (*entities.Post, error) {
	if err := s.validate(p); err != nil {
		return nil, err
	}

	var post *entities.Post

	if err := s.apply(ctx, "create_post", func(tx storage.Storage, now time.Time) (*entities.Event, error) {
		if _, err := mustExist(ctx, tx, caller); err != nil {
			return nil, err
		}

		post = &entities.Post{
			Author:    caller,
			Content:   p.Content,
			Media:     p.Media,
			CreatedAt: now,
		}

		id, err := tx.CreatePost(ctx, post)
		if err != nil {
			return nil, fmt.Errorf("failed to create post: %w", err)
		}
		post.ID = id

		return entities.NewEvent(entities.PostCreatedEventType, entities.PostCreated{
			PostID:  id,
			Author:  caller,
			Content: p.Content,
		})
	}); err != nil {
		return nil, err
	}

	return post, nil
}

func (s srv) AddComment(ctx context.Context, caller string, postID uint64, content string) (*entities.Comment, error) {
	if err := s.validateVar("content", content, fmt.Sprintf("required,max=%d", maxCommentLength)); err != nil {
		return nil, err
	}

	var c *entities.Comment

	if err := s.apply(ctx, "add_comment", func(tx storage.Storage, now time.Time) (*entities.Event, error) {
		if _, err := mustGetPost(ctx, tx, postID); err != nil {
			return nil, err
		}

		if _, err := mustExist(ctx, tx, caller); err != nil {
			return nil, err
		}

		c = &entities.Comment{
			PostID:    postID,
			Author:    caller,
			Content:   content,
			CreatedAt: now,
		}

		id, err := tx.AddComment(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("failed to add comment: %w", err)
		}
		c.ID = id

		if err := tx.UpdatePostCounters(ctx, postID, storage.PostCountersDelta{Comments: 1}); err != nil {
			return nil, fmt.Errorf("failed to update post counters: %w", err)
		}

		return entities.NewEvent(entities.CommentAddedEventType, entities.CommentAdded{
			PostID:    postID,
			CommentID: id,
			Author:    caller,
			Content:   content,
		})
	}); err != nil {
		return nil, err
	}

	return c, nil
}

func (s srv) GetPost(ctx context.Context, id uint64) (*entities.Post, error) {
	return mustGetPost(ctx, s.s, id)
}

func (s srv) GetComments(ctx context.Context, postID uint64) ([]*entities.Comment, error) {
	if _, err := mustGetPost(ctx, s.s, postID); err != nil {
		return nil, err
	}

	cc, err := s.s.ListComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return cc, nil
}

func (s srv) GetUserPostIDs(ctx context.Context, author string) ([]uint64, error) {
	ids, err := s.s.ListUserPostIDs(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("failed to list user posts: %w", err)
	}

	return ids, nil
}

func (s srv) GetTotalPosts(ctx context.Context) (uint64, error) {
	c, err := s.s.CountPosts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return c, nil
}
