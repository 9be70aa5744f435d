package export

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the lowercase hex SHA-256 digest of b. The digest is the
// integrity anchor for export artifacts: auditors verify a downloaded file by
// recomputing it and comparing against the recorded value.
func SHA256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
