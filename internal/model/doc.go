// Package model defines the core data types for the GEMA track-listing
// processor.
//
// A track listing is a semicolon-delimited text file with one recorded play
// per line: a composite filename and a duration token. Parsing one accepted
// line produces a Record; aggregation folds Records into per-TrackKey
// duration totals.
//
// # Record
//
// Record is the result of tokenizing one accepted line:
//
//	rec := model.Record{
//	    Index:    "01",
//	    Title:    "track one",
//	    Artist:   "artist name",
//	    Duration: 3.45,
//	}
//
// All string fields are lowercased by the tokenizer; Duration is in seconds.
//
// # TrackKey
//
// TrackKey is the aggregation identity: (index, title, artist, label code).
// Equality is exact string equality on all four fields, which makes the
// struct usable directly as a Go map key.
package model
