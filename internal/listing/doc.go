// Package listing generates track-listing text files from folders of
// tagged MP3 files.
//
// The processor consumes semicolon-delimited listings, but recordings
// often arrive as a folder of audio files instead. Generate bridges the
// gap: it reads each file's ID3 tag, takes the play length from the TLEN
// frame and writes one "<filename>;<duration>" line per file. The
// generated file then goes through the normal processing path, where the
// filename tokenizer extracts index, title and artist.
package listing
