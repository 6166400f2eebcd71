package store

import "testing"

func TestExtractApplicationID(t *testing.T) {
	tests := []struct {
		key    string
		wantID string
		wantOK bool
	}{
		{key: "link_apply:abc", wantID: "abc", wantOK: true},
		{key: "link_apply:", wantOK: false},
		{key: "session:abc", wantOK: false},
		{key: "data", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			id, ok := ExtractApplicationID(tt.key)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("ExtractApplicationID(%q) = (%q, %v), want (%q, %v)", tt.key, id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}
