package model

// ClozeDeletion is one named set of masked spans within a motif.
type ClozeDeletion struct {
	UUID       string      `json:"uuid"`
	MotifUUID  string      `json:"motif_uuid,omitempty"`
	MaskTuples IntervalSet `json:"mask_tuples"`
}

// Motif is a stored text fragment with an optional citation.
type Motif struct {
	UUID           string          `json:"uuid"`
	Content        string          `json:"content"`
	Citation       string          `json:"citation,omitempty"`
	CreatedAt      string          `json:"created_at,omitempty"`
	ClozeDeletions []ClozeDeletion `json:"cloze_deletions,omitempty"`
}

// Length returns the content length in runes, the unit mask tuples index.
func (m Motif) Length() int {
	return len([]rune(m.Content))
}

// FindClozeDeletion returns the deletion with the given uuid.
func (m Motif) FindClozeDeletion(uuid string) (ClozeDeletion, bool) {
	for _, cd := range m.ClozeDeletions {
		if cd.UUID == uuid {
			return cd, true
		}
	}

	return ClozeDeletion{}, false
}

// Citation is a named source attributed to one or more motifs.
type Citation struct {
	UUID      string `json:"uuid"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at,omitempty"`
}

// MotifPage is one page of a paginated motif listing.
type MotifPage struct {
	Motifs     []Motif `json:"motifs"`
	TotalCount int     `json:"total_count"`
}
