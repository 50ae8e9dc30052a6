package interaction

import (
	"encoding/hex"
	"strings"
)

// BuildCallData encodes a contract call as endpoint@hex(arg0)@hex(arg1)...
func BuildCallData(endpoint string, args ...[]byte) []byte {
	var sb strings.Builder
	sb.WriteString(endpoint)
	for _, arg := range args {
		sb.WriteString("@")
		sb.WriteString(hex.EncodeToString(arg))
	}
	return []byte(sb.String())
}

// EncodeQueryArgs hex-encodes each argument for a VM query request.
func EncodeQueryArgs(args ...[]byte) []string {
	encoded := make([]string, 0, len(args))
	for _, arg := range args {
		encoded = append(encoded, hex.EncodeToString(arg))
	}
	return encoded
}
