package equipment

// ==================== Error Messages ====================

const (
	ErrMsgProfileRequired         = "profile id is required"
	ErrMsgItemRequired            = "item id is required"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgEquipCalled       = "Equip called"
	LogMsgItemEquipped      = "Item equipped"
	LogMsgUnequipItemCalled = "UnequipItem called"
	LogMsgUnequipSlotCalled = "UnequipSlot called"
	LogMsgItemUnequipped    = "Item unequipped"
	LogMsgListCalled        = "ListEquipped called"
)
