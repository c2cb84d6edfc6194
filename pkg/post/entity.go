package post

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Tags      []string  `json:"tags"`
	CreatedAt string    `json:"createdAt"`
	Comments  []Comment `json:"comments"`
}

type Input struct {
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

var (
	ErrPostNotFound    = errors.New("post not found")
	errTitleRequired   = errors.New("title is required")
	errContentRequired = errors.New("comment content is required")
)

func today() string {
	return time.Now().Format(dateLayout)
}
