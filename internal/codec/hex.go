package codec

import (
	"encoding/hex"
	"fmt"
)

// EncodeHex encodes data as lowercase hexadecimal.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeHex decodes a hexadecimal string. Decoding is case-insensitive but
// rejects odd-length input and any byte outside [0-9a-fA-F].
func DecodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, &InvalidEncoding{Which: Hex, Reason: fmt.Sprintf("odd length %d", len(s))}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		isHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
		if !isHex {
			return nil, &InvalidEncoding{Which: Hex, Reason: fmt.Sprintf("non-hex character %q at offset %d", c, i)}
		}
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, &InvalidEncoding{Which: Hex, Reason: err.Error()}
	}
	return data, nil
}
