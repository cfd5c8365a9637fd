package command

import "library-service/internal/application/common"

type SaveBookCommand struct {
	ISBN            string `json:"isbn"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Genre           string `json:"genre"`
	PublicationYear int    `json:"publication_year"`
}

type SaveBookCommandResult struct {
	Result *common.BookResult `json:"result"`
}

type UpdateBookCommand struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Genre           string `json:"genre"`
	PublicationYear int    `json:"publication_year"`
	Availability    *bool  `json:"availability"`
}

type UpdateBookCommandResult struct {
	Result *common.BookResult `json:"result"`
}

type AddReviewCommand struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type AddReviewCommandResult struct {
	Result        *common.ReviewResult `json:"result"`
	AverageRating float64              `json:"average_rating"`
}
