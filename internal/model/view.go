package model

// DeletionPreview pairs a cloze deletion with the hover rendering of its
// motif. Err is set instead of Segments when the stored tuples do not fit
// the content.
type DeletionPreview struct {
	ClozeDeletion ClozeDeletion
	Segments      []Segment
	Err           error
}

// MotifPreview is a motif ready for display with every deletion previewed.
type MotifPreview struct {
	Motif     Motif
	Deletions []DeletionPreview
}
