package domain

// TokenCategory groups directory tokens for browsing.
type TokenCategory string

const (
	CategoryAI             TokenCategory = "AI"
	CategoryMeme           TokenCategory = "Meme"
	CategoryDeFi           TokenCategory = "DeFi"
	CategoryLST            TokenCategory = "LST"
	CategoryStablecoin     TokenCategory = "Stablecoin"
	CategoryWrapped        TokenCategory = "Wrapped"
	CategoryInfrastructure TokenCategory = "Infrastructure"
	CategoryOther          TokenCategory = "Other"
)

// Token is a directory entry.
type Token struct {
	Symbol   string        `json:"symbol"`
	Address  string        `json:"address"`
	Category TokenCategory `json:"category"`
}

// TokenMetadata is on-chain metadata for a mint.
type TokenMetadata struct {
	Mint            string   `json:"mint"`
	MetadataAccount string   `json:"metadata_account"` // Metaplex PDA
	Name            *string  `json:"name,omitempty"`
	Symbol          *string  `json:"symbol,omitempty"`
	Decimals        int      `json:"decimals"`
	Supply          *float64 `json:"supply,omitempty"`
	FetchedAt       int64    `json:"fetched_at"` // ms
}
