package subtitle

// represents single subtitle entry: a start timestamp and its text
type Entry struct {
	Start Timestamp
	Text  string
}

// represents complete subtitle track in source order
type Track struct {
	Entries  []Entry
	Language string
	Path     string
}

// reports whether the track parsed to zero usable entries
func (t Track) Empty() bool {
	return len(t.Entries) == 0
}
