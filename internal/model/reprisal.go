package model

// Segment is a run of content text; Flagged runs are the ones covered by a
// cloze deletion and get highlighted when rendered.
type Segment struct {
	Text    string
	Flagged bool
}

// Reprisal is a motif prepared for self-testing: Masked hides every cloze
// deletion, Segments reproduce the original text with the deletions flagged.
type Reprisal struct {
	Motif    Motif
	Masked   string
	Segments []Segment
}
