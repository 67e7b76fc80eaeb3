package types

import "time"

// Profile 当前用户资料
type Profile struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	BirthDate time.Time `json:"birthDate"`
	Alias     string    `json:"alias"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
}

type Stats struct {
	Posts         int64 `json:"posts"`
	LikesGiven    int64 `json:"likesGiven"`
	LikesReceived int64 `json:"likesReceived"`
}
