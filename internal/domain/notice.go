package domain

// Notice is a user-facing message produced by an action that did not fail
// hard, such as an export that degraded to an informational message.
type Notice struct {
	Level   NoticeLevel
	Message string
}
