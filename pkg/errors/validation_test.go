package errors

import (
	"strings"
	"testing"
)

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "a golden retriever wearing a party hat", false},
		{"valid multiline", "line one\nline two", false},
		{"valid with tab", "col1\tcol2", false},

		{"empty", "", true},
		{"whitespace only", "   \n\t ", true},
		{"too long", strings.Repeat("x", 2001), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDescription(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDescription(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMessageText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "Happy birthday, Sam!", false},
		{"empty is valid", "", false},
		{"whitespace only is valid", "  \n ", false},
		{"multiline", "dear friend\nwith love", false},

		{"too long", strings.Repeat("x", 4001), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x07bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMessageText(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMessageText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "card.pdf", false},
		{"valid relative", "out/card.svg", false},
		{"valid absolute", "/tmp/card.png", false},

		{"empty", "", true},
		{"too long", strings.Repeat("x", 501), true},
		{"path traversal", "foo/../bar.pdf", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "out\\card.pdf", true},
		{"control char", "card\x01.pdf", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://example.com/path", false},
		{"http", "http://example.com/path", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"file", "file:///etc/passwd", true},
		{"javascript", "javascript:alert(1)", true},
		{"no scheme", "example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCardID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid uuid", "2be4c6a8-11f0-4a7c-9c5d-0b0e4a1d9f3e", false},

		{"empty", "", true},
		{"uppercase", "2BE4C6A8-11F0-4A7C-9C5D-0B0E4A1D9F3E", true},
		{"short", "2be4c6a8", true},
		{"path traversal", "../../../etc/passwd", true},
		{"wrong grouping", "2be4c6a811f0-4a7c-9c5d-0b0e4a1d9f3e", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCardID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCardID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
