package dto

type BookRequest struct {
	Title      string `json:"title" validate:"required"`
	AuthorName string `json:"authorName" validate:"required"`
	ISBN       string `json:"isbn" validate:"required"`
	Synopsis   string `json:"synopsis" validate:"required"`
	Shareable  bool   `json:"shareable"`
}

type BookResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	AuthorName string  `json:"authorName"`
	ISBN       string  `json:"isbn"`
	Synopsis   string  `json:"synopsis"`
	Owner      string  `json:"owner"`
	BookCover  string  `json:"cover,omitempty"`
	Rate       float64 `json:"rate"`
	Archived   bool    `json:"archived"`
	Shareable  bool    `json:"shareable"`
}

type BorrowedBookResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	AuthorName     string  `json:"authorName"`
	ISBN           string  `json:"isbn"`
	Rate           float64 `json:"rate"`
	Returned       bool    `json:"returned"`
	ReturnApproved bool    `json:"returnApproved"`
}
