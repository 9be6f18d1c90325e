package codec

import "encoding/base64"

// EncodeB64 encodes data as standard, padded base64 (RFC 4648 §4).
func EncodeB64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeB64 decodes standard, padded base64. It rejects characters outside
// the standard alphabet, malformed padding, and trailing garbage after the
// final padding character — anything [encoding/base64.StdEncoding] itself
// would reject.
func DecodeB64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &InvalidEncoding{Which: Base64, Reason: err.Error()}
	}
	return data, nil
}
