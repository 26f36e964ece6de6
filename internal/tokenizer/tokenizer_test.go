package tokenizer

import "testing"

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Fields
	}{
		{
			name:     "canonical index title artist",
			filename: "01_TRACK_ONE_Artist_Name.txt",
			want:     Fields{Index: "01", Title: "track one", Artist: "artist name"},
		},
		{
			name:     "multi token index",
			filename: "lc_01_02_SONG_Someone.wav",
			want:     Fields{Index: "lc_01_02", Title: "song", Artist: "someone"},
		},
		{
			name:     "no digit bearing token",
			filename: "Just_Some_Name.txt",
			want:     Fields{Index: "just_some_name"},
		},
		{
			// Only the first dot ends the stem; the rest of the name up to
			// it is classified, the remainder is dropped.
			name:     "multiple dots",
			filename: "01_TRACK_Artist.v2.txt",
			want:     Fields{Index: "01", Title: "track", Artist: "artist"},
		},
		{
			// Without an uppercase token the scanner never leaves
			// afterDigit, so trailing tokens accumulate into index.
			name:     "no uppercase token after digit",
			filename: "01_some_artist.txt",
			want:     Fields{Index: "01_some_artist"},
		},
		{
			name:     "lowercase tokens between digit and title stay in index",
			filename: "01_xx_TRACK_Artist.txt",
			want:     Fields{Index: "01_xx", Title: "track", Artist: "artist"},
		},
		{
			name:     "artist absorbs uppercase after it starts",
			filename: "01_TRACK_Artist_DJ_Name.txt",
			want:     Fields{Index: "01", Title: "track", Artist: "artist dj name"},
		},
		{
			// Digit-only tokens carry no letters, so they cannot start a
			// title; a digit-bearing token with uppercase letters can.
			name:     "numeric tokens are never uppercase",
			filename: "01_22_MIX2000_Artist.txt",
			want:     Fields{Index: "01_22", Title: "mix2000", Artist: "artist"},
		},
		{
			name:     "umlaut title and artist",
			filename: "07_GRÜN_Künstler_Name.txt",
			want:     Fields{Index: "07", Title: "grün", Artist: "künstler name"},
		},
		{
			name:     "empty filename",
			filename: "",
			want:     Fields{},
		},
		{
			name:     "extension only",
			filename: ".txt",
			want:     Fields{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.filename)
			if got != tt.want {
				t.Errorf("Tokenize(%q) = %+v, want %+v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestIsUpperToken(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"TRACK", true},
		{"MIX2000", true},
		{"Track", false},
		{"track", false},
		{"01", false},
		{"", false},
		{"A", true},
		{"ÜBER", true},
	}

	for _, tt := range tests {
		if got := isUpperToken(tt.token); got != tt.want {
			t.Errorf("isUpperToken(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}
