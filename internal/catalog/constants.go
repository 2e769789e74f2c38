package catalog

// ==================== Log Messages ====================

const (
	LogMsgListItemsCalled = "ListItems called"
)
