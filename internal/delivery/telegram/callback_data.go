package telegram

// Callback action constants.
const (
	actionCompletion = "completion"
)

// Completion sub-actions.
const (
	completionClose = "close"
)

func buildCompletionCloseCallback() string {
	return actionCompletion + ":" + completionClose
}
