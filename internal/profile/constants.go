package profile

// ==================== Error Messages ====================

const (
	ErrMsgAccountRequired         = "account id is required"
	ErrMsgProfileRequired         = "profile id is required"
	ErrMsgNameRequired            = "profile name is required"
	ErrMsgNameTooLongFmt          = "profile name exceeds %d characters: %w"
	ErrMsgWrongAccount            = "profile belongs to a different account"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCreateProfileCalled = "CreateProfile called"
	LogMsgProfileCreated      = "Profile created"
	LogMsgActivateCalled      = "Activate called"
	LogMsgProfileActivated    = "Profile activated"
	LogMsgAlreadyActive       = "Profile already active"
	LogMsgDeleteCalled        = "DeleteProfile called"
	LogMsgProfileDeleted      = "Profile deleted"
)

// MaxNameLength bounds profile names; the column is VARCHAR(64).
const MaxNameLength = 64
