package ui

// User-facing texts shown through the Notifier and in the render model.
const (
	MsgSaved           = "Memo saved."
	MsgUpdated         = "Memo updated."
	MsgDeleted         = "Memo deleted."
	MsgCopied          = "Body copied."
	MsgTitleGenerated  = "Title generated."
	MsgWrongPassword   = "Wrong password."
	MsgTitleBodyNeeded = "Please enter a title and a body."
	MsgBodyNeeded      = "Please enter a body."
	MsgCodeDigitsOnly  = "Only 4 digits are allowed."
	MsgGenerating      = "Generating..."

	PromptNewCode     = "Enter a 4-digit code:"
	PromptUnlockCode  = "Enter the code:"
	ConfirmDeleteMemo = "Delete this memo?"

	HeadingNew   = "New memo"
	HeadingEdit  = "Edit memo"
	EmptyMessage = "No memos yet. Add one!"
	LockedBody   = "🔒 Locked memo"
	AllChipLabel = "All"
)
