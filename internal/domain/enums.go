package domain

// Verdict classifies a shrinkage result against the threshold.
type Verdict string

const (
	// VerdictPending means no initial weight has been entered, so there is
	// nothing to compare against yet.
	VerdictPending  Verdict = "pending"
	VerdictWithin   Verdict = "within"
	VerdictExceeded Verdict = "exceeded"
)

// NoticeLevel grades a message shown to the user after an action.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
)
