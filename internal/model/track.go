package model

// Record is one recorded play parsed from a listing line.
//
// The tokenizer fills Index, Title and Artist (already lowercased and
// joined); the duration codec fills Duration in seconds. Records are not
// retained individually: they are folded into an aggregation table as soon
// as they are produced.
type Record struct {
	// Index is the lowercased, underscore-joined index token sequence.
	Index string

	// Title is the lowercased, space-joined title token sequence.
	Title string

	// Artist is the lowercased, space-joined artist token sequence.
	Artist string

	// Duration is the play duration in seconds.
	Duration float64
}

// TrackKey is the composite aggregation identity of a track.
//
// Two lines contribute to the same aggregated row exactly when all four
// fields match. LabelCode is resolved from Index before the key is built,
// so the same index under different label tables yields different keys.
type TrackKey struct {
	Index     string
	Title     string
	Artist    string
	LabelCode string
}

// Key builds the aggregation key for a record with the given resolved
// label code.
func (r Record) Key(labelCode string) TrackKey {
	return TrackKey{
		Index:     r.Index,
		Title:     r.Title,
		Artist:    r.Artist,
		LabelCode: labelCode,
	}
}
