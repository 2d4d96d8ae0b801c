package errs

// Sentinels shared by infrastructure adapters and the usecase layer.
var (
	// Locking
	ErrRoomLockUnavailable = New("room lock unavailable")
	ErrRoomLockLost        = New("room lock expired before release")

	// Messaging
	ErrPublishFailed = New("event publish failed")
)
