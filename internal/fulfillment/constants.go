package fulfillment

import "github.com/orvane/Gemstore_Go/internal/domain"

// ==================== Error Messages ====================

const (
	ErrMsgAccountRequired         = "account id is required"
	ErrMsgOrderRequired           = "order id is required"
	ErrMsgFulfillmentRequired     = "fulfillment id is required"
	ErrMsgInvalidTargetStatusFmt  = "cannot resolve fulfillment to %q: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgGetFulfillmentCalled = "GetFulfillment called"
	LogMsgListByOrderCalled    = "ListByOrder called"
	LogMsgRetryFailedCalled    = "RetryFailed called"
	LogMsgResolveCalled        = "Resolve called"
	LogMsgFulfillmentsRequeued = "Failed fulfillments re-queued"
	LogMsgFulfillmentResolved  = "Fulfillment resolved"
)

// resolvableStatuses are the states the external delivery worker may report
// through the completion callback.
var resolvableStatuses = map[domain.FulfillmentStatus]bool{
	domain.FulfillmentProcessing: true,
	domain.FulfillmentCompleted:  true,
	domain.FulfillmentFailed:     true,
}
