package wallet

// ==================== Error Messages ====================

const (
	ErrMsgInvalidAmountFmt        = "invalid amount: %d: %w"
	ErrMsgAccountRequired         = "account id is required"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgRegisterCalled   = "RegisterAccount called"
	LogMsgWalletCreated    = "Wallet created"
	LogMsgGetWalletCalled  = "GetWallet called"
	LogMsgGetLedgerCalled  = "GetLedger called"
	LogMsgAdjustCalled     = "AdjustBalance called"
	LogMsgBalanceAdjusted  = "Balance adjusted"
)

// Ledger paging defaults
const (
	DefaultLedgerLimit = 50
	MaxLedgerLimit     = 200
)
