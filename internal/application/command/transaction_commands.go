package command

import "library-service/internal/application/common"

type BorrowBooksCommand struct {
	ISBNs []string `json:"isbns"`
}

type BorrowBooksCommandResult struct {
	Transactions []*common.TransactionResult `json:"transactions"`
}

type ReturnBookCommand struct {
	TransactionId string `json:"transactionId"`
}

type ReturnBookCommandResult struct {
	Transaction *common.TransactionResult `json:"transaction"`
}
