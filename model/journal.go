package model

// JournalEntry is a user-authored daily wellbeing record, independent of
// uploaded files. WellBeingScore ranges 1 (worst) to 5 (best).
type JournalEntry struct {
	ID             string   `json:"id"`
	Date           string   `json:"date"`
	WellBeingScore int      `json:"well_being_score"`
	Description    string   `json:"description"`
	Symptoms       []string `json:"symptoms"`
}

// JournalList is the locally cached entries list. Mutations mirror the
// server-side change and are followed by a refetch.
type JournalList []JournalEntry

// Prepend puts a newly created entry first.
func (l JournalList) Prepend(e JournalEntry) JournalList {
	return append(JournalList{e}, l...)
}

// Replace swaps the entry with a matching id, leaving others untouched.
func (l JournalList) Replace(e JournalEntry) JournalList {
	out := make(JournalList, len(l))
	for i, cur := range l {
		if cur.ID == e.ID {
			out[i] = e
		} else {
			out[i] = cur
		}
	}
	return out
}

// Remove filters out the entry with the given id.
func (l JournalList) Remove(id string) JournalList {
	var out JournalList
	for _, cur := range l {
		if cur.ID != id {
			out = append(out, cur)
		}
	}
	return out
}
