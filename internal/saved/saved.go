// Package saved keeps the user's bookmarked job ids.
package saved

import (
	"encoding/json"

	"github.com/anuragpatil2882004-ui/job-traking/internal/store"
)

// Key is the store key holding the saved id list.
const Key = "jnt_saved_ids"

// List reads and writes saved job ids through a Store. Ids keep their
// save order.
type List struct {
	kv store.Store
}

func NewList(kv store.Store) *List {
	return &List{kv: kv}
}

// IDs returns the saved job ids, oldest save first.
func (l *List) IDs() []string {
	raw, ok := l.kv.Get(Key)
	if !ok {
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return []string{}
	}
	return ids
}

// IsSaved reports whether id is in the list.
func (l *List) IsSaved(id string) bool {
	for _, saved := range l.IDs() {
		if saved == id {
			return true
		}
	}
	return false
}

// Toggle saves id when absent and unsaves it when present, returning
// the resulting list.
func (l *List) Toggle(id string) []string {
	ids := l.IDs()

	next := make([]string, 0, len(ids)+1)
	removed := false
	for _, saved := range ids {
		if saved == id {
			removed = true
			continue
		}
		next = append(next, saved)
	}
	if !removed {
		next = append(next, id)
	}

	l.set(next)
	return next
}

func (l *List) set(ids []string) bool {
	data, err := json.Marshal(ids)
	if err != nil {
		return false
	}
	return l.kv.Set(Key, string(data))
}
