package model

import "time"

// RenderRecord describes one exported chart artifact.
type RenderRecord struct {
	ID        int64     `db:"id" json:"id" gorm:"primaryKey,autoIncrement"`
	Path      string    `db:"path" json:"path"`
	Panels    int       `db:"panels" json:"panels"`
	Rows      int       `db:"rows" json:"rows"`
	SizeBytes int64     `db:"size_bytes" json:"size_bytes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
