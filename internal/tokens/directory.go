// Package tokens resolves Solana tokens: the built-in directory, address
// validation and on-chain metadata lookup.
package tokens

import (
	"strings"

	"solana-signal-lab/internal/domain"
)

// All returns a copy of the directory.
func All() []domain.Token {
	out := make([]domain.Token, len(known))
	copy(out, known)
	return out
}

// Popular returns the quick-pick tokens in directory order.
func Popular() []domain.Token {
	want := make(map[string]struct{}, len(popularSymbols))
	for _, s := range popularSymbols {
		want[s] = struct{}{}
	}
	var out []domain.Token
	for _, t := range known {
		if _, ok := want[t.Symbol]; ok {
			out = append(out, t)
		}
	}
	return out
}

// BySymbol finds a token by symbol, ignoring case.
func BySymbol(symbol string) (domain.Token, bool) {
	for _, t := range known {
		if strings.EqualFold(t.Symbol, symbol) {
			return t, true
		}
	}
	return domain.Token{}, false
}

// ByAddress finds a token by exact mint address.
func ByAddress(address string) (domain.Token, bool) {
	for _, t := range known {
		if t.Address == address {
			return t, true
		}
	}
	return domain.Token{}, false
}

// Search matches query against symbol, address and category, ignoring
// case. An empty query matches everything. A non-empty category narrows
// the result to that category.
func Search(query string, category domain.TokenCategory) []domain.Token {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []domain.Token{}
	for _, t := range known {
		if category != "" && !strings.EqualFold(string(t.Category), string(category)) {
			continue
		}
		if q == "" ||
			strings.Contains(strings.ToLower(t.Symbol), q) ||
			strings.Contains(strings.ToLower(t.Address), q) ||
			strings.Contains(strings.ToLower(string(t.Category)), q) {
			out = append(out, t)
		}
	}
	return out
}

// ByCategory groups the directory by category.
func ByCategory() map[domain.TokenCategory][]domain.Token {
	out := make(map[domain.TokenCategory][]domain.Token)
	for _, t := range known {
		cat := t.Category
		if cat == "" {
			cat = domain.CategoryOther
		}
		out[cat] = append(out[cat], t)
	}
	return out
}

// Resolve accepts a symbol from the directory or a raw mint address.
// Unknown but valid addresses resolve to an uncategorized token.
func Resolve(symbolOrAddress string) (domain.Token, error) {
	s := strings.TrimSpace(symbolOrAddress)
	if t, ok := BySymbol(s); ok {
		return t, nil
	}
	if t, ok := ByAddress(s); ok {
		return t, nil
	}
	if err := ValidateAddress(s); err != nil {
		return domain.Token{}, err
	}
	return domain.Token{Address: s, Category: domain.CategoryOther}, nil
}
