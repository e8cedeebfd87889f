package session

// NoticeKind selects how a notice is styled.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
)

// Notice is a transient, informational message for the notification surface.
type Notice struct {
	Kind NoticeKind
	Text string
	Icon string
}

// Notice texts.
const (
	TextEndOfList       = "You've reached the end of the list!"
	TextAddedFavorite   = "Added to Favorites"
	TextRemovedFavorite = "Removed from Favorites"
	TextMarkedLearned   = "Marked as Learned!"
	IconAddedFavorite   = "⭐"
	IconRemovedFavorite = "🗑️"
)
