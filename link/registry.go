package link

// Record ties a tag to the half-open range of runes [Start, Start+Length)
// in a label's display buffer.
type Record struct {
	Tag    string
	Start  int
	Length int
}

// End returns the offset one past the last rune of r.
func (r Record) End() int {
	return r.Start + r.Length
}

// Contains reports whether the rune offset i falls within r.
func (r Record) Contains(i int) bool {
	return i >= r.Start && i < r.End()
}

// Registry is an ordered, append-only list of link records.
type Registry struct {
	records []Record
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Reset removes every record.
func (reg *Registry) Reset() {
	reg.records = nil
}

// Append records that textLength runes tagged with tag were appended to a
// buffer that held bufferLength runes beforehand. Negative arguments are
// treated as zero. A zero-length record is kept but never matches.
func (reg *Registry) Append(tag string, textLength, bufferLength int) {
	if textLength < 0 {
		textLength = 0
	}
	if bufferLength < 0 {
		bufferLength = 0
	}
	reg.records = append(reg.records, Record{
		Tag:    tag,
		Start:  bufferLength,
		Length: textLength,
	})
}

// FindTag returns the tag of the first record, in insertion order, whose
// range contains the rune offset i.
func (reg *Registry) FindTag(i int) (string, bool) {
	for _, r := range reg.records {
		if r.Contains(i) {
			return r.Tag, true
		}
	}
	return "", false
}

// Len returns the number of records.
func (reg *Registry) Len() int {
	return len(reg.records)
}

// Records returns a copy of the records in insertion order.
func (reg *Registry) Records() []Record {
	if len(reg.records) == 0 {
		return nil
	}
	return append([]Record(nil), reg.records...)
}
