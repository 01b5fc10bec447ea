package tokens

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// Metaplex Token Metadata program ID
const metaplexProgramID = "metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s"

// ErrInvalidAddress is returned for strings that are not Solana public keys.
var ErrInvalidAddress = errors.New("invalid solana address")

// ValidateAddress checks that s is base58 and decodes to 32 bytes.
func ValidateAddress(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAddress)
	}
	b, err := base58.Decode(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(b) != 32 {
		return fmt.Errorf("%w: decoded length %d", ErrInvalidAddress, len(b))
	}
	return nil
}

// MetadataAddress derives the Metaplex metadata PDA for a mint.
// Seeds: ["metadata", metaplex_program_id, mint]
func MetadataAddress(mint string) (string, error) {
	if err := ValidateAddress(mint); err != nil {
		return "", err
	}
	mintBytes, _ := base58.Decode(mint)
	programBytes, err := base58.Decode(metaplexProgramID)
	if err != nil {
		return "", fmt.Errorf("decode program id: %w", err)
	}

	seeds := [][]byte{
		[]byte("metadata"),
		programBytes,
		mintBytes,
	}

	pda := derivePDA(seeds, programBytes)
	if pda == "" {
		return "", fmt.Errorf("no valid bump for %s", mint)
	}
	return pda, nil
}

// derivePDA derives a Program Derived Address using the Solana algorithm:
// sha256(seeds || bump || programID || "ProgramDerivedAddress") for the
// first bump from 255 down whose hash is off the ed25519 curve.
func derivePDA(seeds [][]byte, programID []byte) string {
	for bump := byte(255); bump > 0; bump-- {
		h := sha256.New()
		for _, seed := range seeds {
			h.Write(seed)
		}
		h.Write([]byte{bump})
		h.Write(programID)
		h.Write([]byte("ProgramDerivedAddress"))
		sum := h.Sum(nil)

		if !isOnCurve(sum) {
			return base58.Encode(sum)
		}
	}
	return ""
}

func isOnCurve(point []byte) bool {
	if len(point) != 32 {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(point)
	return err == nil
}
