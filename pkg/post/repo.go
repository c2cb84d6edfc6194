package post

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
)

type PostRepo struct {
	mu            sync.RWMutex
	lastID        int
	lastCommentID int
	posts         map[string]*Post
}

func NewPostRepo(seed []Post) *PostRepo {
	r := &PostRepo{posts: make(map[string]*Post)}
	// Unnumbered seeds are numbered after the highest explicit id.
	for i := range seed {
		if n, err := strconv.Atoi(seed[i].ID); err == nil && n > r.lastID {
			r.lastID = n
		}
	}
	for i := range seed {
		p := clonePost(&seed[i])
		if p.ID == "" {
			r.lastID++
			p.ID = strconv.Itoa(r.lastID)
		}
		for _, c := range p.Comments {
			if n, err := strconv.Atoi(c.ID); err == nil && n > r.lastCommentID {
				r.lastCommentID = n
			}
		}
		r.posts[p.ID] = p
	}
	return r
}

func clonePost(p *Post) *Post {
	c := *p
	c.Tags = make([]string, len(p.Tags))
	copy(c.Tags, p.Tags)
	c.Comments = make([]Comment, len(p.Comments))
	copy(c.Comments, p.Comments)
	return &c
}

// GetPosts returns posts newest first.
func (r *PostRepo) GetPosts(_ context.Context) ([]*Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]*Post, 0, len(r.posts))
	for _, p := range r.posts {
		posts = append(posts, clonePost(p))
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt != posts[j].CreatedAt {
			return posts[i].CreatedAt > posts[j].CreatedAt
		}
		a, _ := strconv.Atoi(posts[i].ID)
		b, _ := strconv.Atoi(posts[j].ID)
		return a > b
	})
	return posts, nil
}

func (r *PostRepo) GetPost(_ context.Context, id string) (*Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("post/repo: can't get post with id `%s`, %w", id, ErrPostNotFound)
	}
	return clonePost(p), nil
}

func (r *PostRepo) AddPost(_ context.Context, p *Post) (*Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	stored := clonePost(p)
	stored.ID = strconv.Itoa(r.lastID)
	r.posts[stored.ID] = stored
	return clonePost(stored), nil
}

func (r *PostRepo) UpdatePost(_ context.Context, id string, in Input) (*Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("post/repo: can't update post with id `%s`, %w", id, ErrPostNotFound)
	}
	p.Title = in.Title
	p.Excerpt = in.Excerpt
	p.Content = in.Content
	p.Tags = append([]string(nil), in.Tags...)
	return clonePost(p), nil
}

func (r *PostRepo) DeletePost(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return fmt.Errorf("post/repo: can't delete post with id `%s`, %w", id, ErrPostNotFound)
	}
	delete(r.posts, id)
	return nil
}

func (r *PostRepo) AddComment(_ context.Context, postID string, c Comment) (*Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok {
		return nil, fmt.Errorf("post/repo: can't comment post with id `%s`, %w", postID, ErrPostNotFound)
	}
	r.lastCommentID++
	c.ID = strconv.Itoa(r.lastCommentID)
	p.Comments = append(p.Comments, c)
	return &c, nil
}
