package domain

import "time"

type Feedback struct {
	ID        string
	BookID    string
	Review    float64
	Comment   string
	CreatedBy string
	CreatedAt time.Time
}
