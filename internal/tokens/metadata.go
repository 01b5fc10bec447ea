package tokens

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strings"
	"time"

	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/solana"
	"solana-signal-lab/internal/storage"
)

// ErrMintNotFound is returned when the mint account does not exist.
var ErrMintNotFound = errors.New("mint account not found")

// MetadataResolver reads mint and Metaplex accounts and caches the
// result in a TokenMetadataStore.
type MetadataResolver struct {
	rpc    solana.AccountReader
	store  storage.TokenMetadataStore
	now    func() time.Time
	logger *log.Logger
}

// NewMetadataResolver creates a resolver. store may be nil.
func NewMetadataResolver(rpc solana.AccountReader, store storage.TokenMetadataStore, logger *log.Logger) *MetadataResolver {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &MetadataResolver{rpc: rpc, store: store, now: time.Now, logger: logger}
}

// Resolve returns metadata for mint, from the store when cached.
func (r *MetadataResolver) Resolve(ctx context.Context, mint string) (*domain.TokenMetadata, error) {
	if err := ValidateAddress(mint); err != nil {
		return nil, err
	}

	if r.store != nil {
		cached, err := r.store.GetByMint(ctx, mint)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			r.logger.Printf("WARNING: metadata cache read %s: %v", mint, err)
		}
	}

	meta, err := r.fetch(ctx, mint)
	if err != nil {
		return nil, err
	}

	if r.store != nil {
		if err := r.store.Insert(ctx, meta); err != nil && !errors.Is(err, storage.ErrDuplicateKey) {
			r.logger.Printf("WARNING: metadata cache write %s: %v", mint, err)
		}
	}
	return meta, nil
}

func (r *MetadataResolver) fetch(ctx context.Context, mint string) (*domain.TokenMetadata, error) {
	meta := &domain.TokenMetadata{
		Mint:      mint,
		FetchedAt: r.now().UnixMilli(),
	}

	mintInfo, err := r.rpc.GetAccountInfo(ctx, mint)
	if err != nil {
		return nil, fmt.Errorf("get mint account info: %w", err)
	}
	if mintInfo == nil {
		return nil, fmt.Errorf("%s: %w", mint, ErrMintNotFound)
	}
	if err := parseMintData(mintInfo.Data, meta); err != nil {
		r.logger.Printf("WARNING: parse mint %s: %v", mint, err)
	}

	pda, err := MetadataAddress(mint)
	if err != nil {
		return meta, nil
	}
	meta.MetadataAccount = pda

	metaInfo, err := r.rpc.GetAccountInfo(ctx, pda)
	if err != nil {
		r.logger.Printf("WARNING: get metadata account %s: %v", pda, err)
		return meta, nil
	}
	if metaInfo != nil {
		parseMetaplexData(metaInfo.Data, meta)
	}
	return meta, nil
}

// parseMintData parses SPL Token Mint account data.
// SPL Token Mint layout (82 bytes):
// - mintAuthority: Option<Pubkey> (36 bytes: 4 + 32)
// - supply: u64 (8 bytes)
// - decimals: u8 (1 byte)
// - isInitialized: bool (1 byte)
// - freezeAuthority: Option<Pubkey> (36 bytes: 4 + 32)
func parseMintData(data string, meta *domain.TokenMetadata) error {
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return fmt.Errorf("decode mint data: %w", err)
	}
	if len(decoded) < 82 {
		return fmt.Errorf("mint data too short: %d", len(decoded))
	}

	supply := binary.LittleEndian.Uint64(decoded[36:44])
	decimals := int(decoded[44])

	meta.Decimals = decimals
	adjusted := float64(supply) / math.Pow(10, float64(decimals))
	meta.Supply = &adjusted
	return nil
}

// parseMetaplexData reads name and symbol from a MetadataV1 account:
// key u8 (4), updateAuthority, mint, then borsh strings name and symbol.
// Malformed data leaves meta unchanged.
func parseMetaplexData(data string, meta *domain.TokenMetadata) {
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil || len(decoded) < 69 || decoded[0] != 4 {
		return
	}

	offset := 65
	name, offset, ok := readBorshString(decoded, offset, 100)
	if !ok {
		return
	}
	if name != "" {
		meta.Name = &name
	}

	symbol, _, ok := readBorshString(decoded, offset, 20)
	if ok && symbol != "" {
		meta.Symbol = &symbol
	}
}

func readBorshString(b []byte, offset, maxLen int) (string, int, bool) {
	if offset+4 > len(b) {
		return "", offset, false
	}
	n := int(binary.LittleEndian.Uint32(b[offset:]))
	offset += 4
	if n > maxLen || offset+n > len(b) {
		return "", offset, false
	}
	s := strings.TrimRight(string(b[offset:offset+n]), "\x00")
	return s, offset + n, true
}
