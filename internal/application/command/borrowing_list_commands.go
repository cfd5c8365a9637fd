package command

import "library-service/internal/application/common"

type AddToBorrowingListCommand struct {
	ISBN string `json:"isbn"`
}

type BorrowingListCommandResult struct {
	Result *common.BorrowingListResult `json:"result"`
}
