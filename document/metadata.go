package document

import "time"

// Metadata contains document-level information exposed by a source format.
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Keywords     []string
	Creator      string
	Producer     string
	CreationDate time.Time
	ModDate      time.Time
	// Custom holds format-specific metadata that has no dedicated field.
	Custom map[string]string
}

// IsEmpty reports whether the metadata carries no information at all.
func (m *Metadata) IsEmpty() bool {
	if m == nil {
		return true
	}
	return m.Title == "" && m.Author == "" && m.Subject == "" &&
		len(m.Keywords) == 0 && m.Creator == "" && m.Producer == "" &&
		m.CreationDate.IsZero() && m.ModDate.IsZero() && len(m.Custom) == 0
}
