package binarycodec

import "crypto/sha512"

// Hash prefixes from rippled's include/xrpl/protocol/HashPrefix.h, each the
// big-endian bytes of a 3-character tag followed by a zero byte.
const (
	txSigPrefix               = "53545800" // STX
	txMultiSigPrefix          = "534D5400" // SMT
	paymentChannelClaimPrefix = "434C4D00" // CLM
	batchPrefix               = "42434800" // BCH
	transactionIDPrefix       = "54584E00" // TXN
)

// makeHashPrefix computes a hash prefix from 3 characters, mirroring
// rippled's detail::make_hash_prefix().
func makeHashPrefix(a, b, c byte) uint32 {
	return (uint32(a) << 24) + (uint32(b) << 16) + (uint32(c) << 8)
}

// sha512Half returns the first 32 bytes of the SHA-512 digest of data, the
// hash rippled uses for transaction and ledger object IDs.
func sha512Half(data []byte) []byte {
	sum := sha512.Sum512(data)
	return sum[:32]
}
