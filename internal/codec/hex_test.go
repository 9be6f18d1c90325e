package codec

import (
	"bytes"
	"testing"
)

func TestHexRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"single byte", []byte{0x00}},
		{"all ones", []byte{0xff, 0xff, 0xff}},
		{"mixed", []byte{0x01, 0xab, 0xcd, 0xef}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodeHex(tt.data)
			decoded, err := DecodeHex(encoded)
			if err != nil {
				t.Fatalf("DecodeHex() error = %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Errorf("round trip failed: got %v, want %v", decoded, tt.data)
			}
		})
	}
}

func TestEncodeHex_Lowercase(t *testing.T) {
	got := EncodeHex([]byte{0xAB, 0xCD, 0xEF})
	want := "abcdef"
	if got != want {
		t.Errorf("EncodeHex() = %q, want %q", got, want)
	}
}

func TestDecodeHex_CaseInsensitive(t *testing.T) {
	lower, err := DecodeHex("abcdef")
	if err != nil {
		t.Fatalf("DecodeHex(lower) error = %v", err)
	}
	upper, err := DecodeHex("ABCDEF")
	if err != nil {
		t.Fatalf("DecodeHex(upper) error = %v", err)
	}
	if !bytes.Equal(lower, upper) {
		t.Errorf("case mismatch: %v != %v", lower, upper)
	}
}

func TestDecodeHex_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"odd length", "abc"},
		{"non-hex character", "zz"},
		{"embedded space", "ab cd ef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeHex(tt.in); err == nil {
				t.Fatalf("DecodeHex(%q) expected error, got nil", tt.in)
			} else if _, ok := err.(*InvalidEncoding); !ok {
				t.Errorf("expected *InvalidEncoding, got %T", err)
			}
		})
	}
}
