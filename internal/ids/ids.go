package ids

import "github.com/segmentio/ksuid"

// New returns a sortable unique id for catalog and user records.
func New() string {
	return ksuid.New().String()
}
