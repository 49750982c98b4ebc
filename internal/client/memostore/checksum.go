package memostore

import (
	"strconv"
	"unicode/utf16"
)

// Checksum is the 32-bit rolling hash stored in Memo.Password. It only gates
// casual viewing: a 4-digit code has 10,000 candidates.
func Checksum(s string) string {
	var hash int32
	for _, c := range utf16.Encode([]rune(s)) {
		hash = (hash << 5) - hash + int32(c)
	}
	return strconv.FormatInt(int64(hash), 10)
}

// VerifyPassword reports whether candidate hashes to stored.
func VerifyPassword(stored, candidate string) bool {
	return Checksum(candidate) == stored
}
