package types

import "time"

type CreatePostRequest struct {
	Message string `json:"message"`
}

// Author 帖子作者摘要
type Author struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Alias     string `json:"alias"`
}

// PostItem 帖子列表项，likedByMe 相对当前查看者
type PostItem struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	User      Author    `json:"user"`
	LikeCount int64     `json:"likeCount"`
	LikedByMe bool      `json:"likedByMe"`
}

type FeedPage struct {
	Items       []PostItem `json:"items"`
	Total       int64      `json:"total"`
	Page        int        `json:"page"`
	PageSize    int        `json:"pageSize"`
	TotalPages  int        `json:"totalPages"`
	HasNextPage bool       `json:"hasNextPage"`
	HasPrevPage bool       `json:"hasPrevPage"`
}

// LikeResult is returned by like and unlike. Created is true only when a
// like was newly recorded; it selects 201 over 200 and is not serialized.
type LikeResult struct {
	LikeCount int64 `json:"likeCount"`
	LikedByMe bool  `json:"likedByMe"`
	Created   bool  `json:"-"`
}
