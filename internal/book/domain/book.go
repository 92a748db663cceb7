package domain

import "time"

type Book struct {
	ID         string
	Title      string
	AuthorName string
	ISBN       string
	Synopsis   string
	BookCover  string
	Archived   bool
	Shareable  bool
	OwnerID    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BookDetail is the read model for listings and detail views. Rate is the
// arithmetic mean of the book's feedback reviews, recomputed per read.
type BookDetail struct {
	Book
	OwnerName string
	Rate      float64
}

// TransactionHistory links a borrowing user to a book. A row with
// Returned == false is an open loan; at most one open loan may exist per
// book at any time.
type TransactionHistory struct {
	ID             string
	BookID         string
	UserID         string
	Returned       bool
	ReturnApproved bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BorrowedBook is the read model for borrow-history listings.
type BorrowedBook struct {
	BookID         string
	Title          string
	AuthorName     string
	ISBN           string
	Rate           float64
	Returned       bool
	ReturnApproved bool
}
