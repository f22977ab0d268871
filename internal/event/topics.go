package event

import "github.com/KurtErsin/perfume/internal/filter"

// TopicFilterChanged is published whenever a session's filter state changes.
// The payload is a FilterChanged.
const TopicFilterChanged = "filter.changed"

// FilterChanged is the payload of TopicFilterChanged.
type FilterChanged struct {
	SessionID string
	Change    filter.Change
}
