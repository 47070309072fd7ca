package entity

import "time"

type Comment struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"postId"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
