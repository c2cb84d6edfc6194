package post

import (
	"context"
	"strings"

	"github.com/amiskov/folio/pkg/logger"
	"github.com/amiskov/folio/pkg/user"
)

type IPostRepo interface {
	GetPosts(ctx context.Context) ([]*Post, error)
	GetPost(ctx context.Context, id string) (*Post, error)
	AddPost(ctx context.Context, p *Post) (*Post, error)
	UpdatePost(ctx context.Context, id string, in Input) (*Post, error)
	DeletePost(ctx context.Context, id string) error
	AddComment(ctx context.Context, postID string, c Comment) (*Comment, error)
}

type service struct {
	repo IPostRepo
}

func NewService(r IPostRepo) *service {
	return &service{
		repo: r,
	}
}

func (s *service) GetPosts(ctx context.Context) ([]*Post, error) {
	posts, err := s.repo.GetPosts(ctx)
	if err != nil {
		logger.Log(ctx).Errorf("post: can't get posts, %v", err)
		return nil, err
	}
	return posts, nil
}

func (s *service) GetPost(ctx context.Context, id string) (*Post, error) {
	return s.repo.GetPost(ctx, id)
}

func (s *service) AddPost(ctx context.Context, author *user.User, in Input) (*Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, errTitleRequired
	}
	p, err := s.repo.AddPost(ctx, &Post{
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Tags:      in.Tags,
		Author:    author.Name,
		CreatedAt: today(),
	})
	if err != nil {
		logger.Log(ctx).Errorf("post: failed add post, %v", err)
		return nil, err
	}
	logger.Log(ctx).Infof("post: `%s` added post `%s`", author.Email, p.ID)
	return p, nil
}

func (s *service) UpdatePost(ctx context.Context, id string, in Input) (*Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, errTitleRequired
	}
	return s.repo.UpdatePost(ctx, id, in)
}

func (s *service) DeletePost(ctx context.Context, id string) error {
	return s.repo.DeletePost(ctx, id)
}

// AddComment signs the comment with the commenter's name unless an author
// was given explicitly.
func (s *service) AddComment(ctx context.Context, usr *user.User, postID, author, content string) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errContentRequired
	}
	if strings.TrimSpace(author) == "" {
		author = usr.Name
	}
	return s.repo.AddComment(ctx, postID, Comment{
		Author:    author,
		Content:   content,
		CreatedAt: today(),
	})
}
