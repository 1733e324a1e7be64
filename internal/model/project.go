// File: internal/model/project.go
package model

import "time"

type Project struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	ThumbnailURL *string   `db:"thumbnail_url" json:"thumbnail_url"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Assignment 是 project 與 user 之間的一條邊，沒有獨立的 ID
type Assignment struct {
	ProjectID int `db:"project_id" json:"project_id"`
	UserID    int `db:"user_id" json:"user_id"`
}
