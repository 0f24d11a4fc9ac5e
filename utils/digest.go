package utils

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// DomainSequence separates sequence digests from any other use of SHA3-256.
const DomainSequence = "ltp-sequence-v1"

// SHA3256 computes the SHA3-256 cryptographic hash of the input.
func SHA3256(input []byte) []byte {
	h := sha3.New256()
	h.Write(input)
	return h.Sum(nil)
}

// HashWithDomain computes a domain-separated SHA3-256 hash.
// The data is prefixed with the domain length and the domain itself.
// Panics if domain is longer than 255 bytes.
func HashWithDomain(domain string, data []byte) []byte {
	domainBytes := []byte(domain)
	if len(domainBytes) > 255 {
		panic("domain string must be at most 255 bytes")
	}
	h := sha3.New256()
	h.Write([]byte{byte(len(domainBytes))})
	h.Write(domainBytes)
	h.Write(data)
	return h.Sum(nil)
}

// SequenceDigest fingerprints an ordered list of LTPs.
// Each value is encoded as 4 little-endian bytes; two runs agree on the digest
// only if they produced the same values in the same order.
func SequenceDigest(values []uint32) []byte {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return HashWithDomain(DomainSequence, buf)
}
