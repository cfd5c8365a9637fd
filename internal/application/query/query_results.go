package query

import "library-service/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}

type BookQueryResult struct {
	Result *common.BookResult `json:"result"`
}

type BookQueryListResult struct {
	Result []*common.BookResult `json:"result"`
}

type BorrowingListQueryResult struct {
	Result *common.BorrowingListResult `json:"result"`
}

type TransactionQueryListResult struct {
	Result []*common.TransactionResult `json:"result"`
}

type ReviewQueryListResult struct {
	Result []*common.ReviewResult `json:"result"`
}
