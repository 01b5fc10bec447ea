package tokens

import (
	"context"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/mr-tron/base58"

	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/solana/stub"
	"solana-signal-lab/internal/storage/memory"
)

const wifMint = "EKpQGSJtjMFqKZ9KQanSqYXRcF8fBopzLHYxdM65zcjm"

func TestBySymbol_CaseInsensitive(t *testing.T) {
	tok, ok := BySymbol("wif")
	if !ok {
		t.Fatal("expected WIF in directory")
	}
	if tok.Address != wifMint || tok.Category != domain.CategoryMeme {
		t.Errorf("unexpected token %+v", tok)
	}

	if _, ok := BySymbol("NOPE"); ok {
		t.Error("expected unknown symbol to miss")
	}
}

func TestByAddress(t *testing.T) {
	tok, ok := ByAddress("HeLp6NuQkmYB4pYWo2zYs22mESHXPQYzXbB8n4V98jwC")
	if !ok || tok.Symbol != "AI16Z" {
		t.Errorf("expected AI16Z, got %+v ok=%v", tok, ok)
	}
}

func TestSearch(t *testing.T) {
	if got := Search("", ""); len(got) != len(All()) {
		t.Errorf("empty query should return all %d tokens, got %d", len(All()), len(got))
	}

	for _, tok := range Search("sol", "") {
		if !containsFold(tok.Symbol, "sol") && !containsFold(tok.Address, "sol") && !containsFold(string(tok.Category), "sol") {
			t.Errorf("unexpected match %+v", tok)
		}
	}

	stable := Search("", domain.CategoryStablecoin)
	if len(stable) == 0 {
		t.Fatal("expected stablecoins")
	}
	for _, tok := range stable {
		if tok.Category != domain.CategoryStablecoin {
			t.Errorf("category filter leaked %+v", tok)
		}
	}

	if got := Search("usdc", domain.CategoryMeme); len(got) != 0 {
		t.Errorf("expected no meme USDC, got %v", got)
	}
}

func TestPopularAndCategories(t *testing.T) {
	if got := len(Popular()); got != len(popularSymbols) {
		t.Errorf("expected %d popular tokens, got %d", len(popularSymbols), got)
	}
	total := 0
	for _, toks := range ByCategory() {
		total += len(toks)
	}
	if total != len(All()) {
		t.Errorf("grouping lost tokens: %d vs %d", total, len(All()))
	}
}

func TestDirectoryAddressesValid(t *testing.T) {
	for _, tok := range All() {
		if err := ValidateAddress(tok.Address); err != nil {
			t.Errorf("%s: %v", tok.Symbol, err)
		}
	}
}

func TestResolve(t *testing.T) {
	tok, err := Resolve("BONK")
	if err != nil || tok.Symbol != "BONK" {
		t.Errorf("expected BONK, got %+v %v", tok, err)
	}

	raw := base58.Encode(make([]byte, 32))
	tok, err = Resolve(raw)
	if err != nil {
		t.Fatalf("Resolve raw address: %v", err)
	}
	if tok.Address != raw || tok.Category != domain.CategoryOther {
		t.Errorf("unexpected token %+v", tok)
	}

	if _, err := Resolve("not-an-address!"); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("expected ErrInvalidAddress, got %v", err)
	}
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{wifMint, true},
		{"So11111111111111111111111111111111111111112", true},
		{"", false},
		{"0OIl", false},
		{base58.Encode([]byte{1, 2, 3}), false},
	}
	for _, tt := range tests {
		err := ValidateAddress(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("ValidateAddress(%q) = %v", tt.in, err)
		}
	}
}

func TestMetadataAddress(t *testing.T) {
	a, err := MetadataAddress(wifMint)
	if err != nil {
		t.Fatalf("MetadataAddress: %v", err)
	}
	b, _ := MetadataAddress(wifMint)
	if a != b {
		t.Error("derivation not deterministic")
	}
	if err := ValidateAddress(a); err != nil {
		t.Errorf("derived address invalid: %v", err)
	}
	decoded, _ := base58.Decode(a)
	if isOnCurve(decoded) {
		t.Error("PDA must be off curve")
	}

	other, _ := MetadataAddress("So11111111111111111111111111111111111111112")
	if other == a {
		t.Error("different mints must derive different PDAs")
	}

	if _, err := MetadataAddress("bad"); err == nil {
		t.Error("expected error for invalid mint")
	}
}

func mintAccount(supply uint64, decimals byte) []byte {
	b := make([]byte, 82)
	binary.LittleEndian.PutUint64(b[36:44], supply)
	b[44] = decimals
	b[45] = 1
	return b
}

func metaplexAccount(name, symbol string) []byte {
	b := make([]byte, 65, 200)
	b[0] = 4
	b = appendBorsh(b, name, 32)
	b = appendBorsh(b, symbol, 10)
	b = appendBorsh(b, "https://example.invalid/meta.json", 200)
	return b
}

func appendBorsh(b []byte, s string, width int) []byte {
	padded := make([]byte, width)
	copy(padded, s)
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(width))
	b = append(b, n[:]...)
	return append(b, padded...)
}

func TestMetadataResolver_FetchAndCache(t *testing.T) {
	ctx := context.Background()
	rpc := stub.NewAccountReader()
	rpc.SetAccount(wifMint, mintAccount(998_840_000_000_000, 6))
	pda, err := MetadataAddress(wifMint)
	if err != nil {
		t.Fatal(err)
	}
	rpc.SetAccount(pda, metaplexAccount("dogwifhat", "$WIF"))

	r := NewMetadataResolver(rpc, memory.NewTokenMetadataStore(), nil)

	meta, err := r.Resolve(ctx, wifMint)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if meta.Decimals != 6 || meta.Supply == nil || *meta.Supply != 998_840_000 {
		t.Errorf("unexpected mint fields %+v", meta)
	}
	if meta.Name == nil || *meta.Name != "dogwifhat" || meta.Symbol == nil || *meta.Symbol != "$WIF" {
		t.Errorf("unexpected metaplex fields name=%v symbol=%v", meta.Name, meta.Symbol)
	}
	if meta.MetadataAccount != pda {
		t.Errorf("expected metadata account %s, got %s", pda, meta.MetadataAccount)
	}

	if _, err := r.Resolve(ctx, wifMint); err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if calls := rpc.Calls(wifMint); calls != 1 {
		t.Errorf("expected cached second lookup, got %d rpc calls", calls)
	}
}

func TestMetadataResolver_MissingMetaplexAccount(t *testing.T) {
	rpc := stub.NewAccountReader()
	rpc.SetAccount(wifMint, mintAccount(1000, 0))

	meta, err := NewMetadataResolver(rpc, nil, nil).Resolve(context.Background(), wifMint)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if meta.Name != nil || meta.Symbol != nil {
		t.Errorf("expected no name/symbol, got %+v", meta)
	}
	if meta.Supply == nil || *meta.Supply != 1000 {
		t.Errorf("unexpected supply %v", meta.Supply)
	}
}

func TestMetadataResolver_MintNotFound(t *testing.T) {
	r := NewMetadataResolver(stub.NewAccountReader(), nil, nil)
	_, err := r.Resolve(context.Background(), wifMint)
	if !errors.Is(err, ErrMintNotFound) {
		t.Errorf("expected ErrMintNotFound, got %v", err)
	}
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
