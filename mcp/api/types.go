package api

// Chain describes one supported network.
type Chain struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ChainID     int64  `json:"chainId"`
	NativeToken string `json:"nativeToken"`
}

// Token describes one tracked token on a chain.
type Token struct {
	Chain    string `json:"chain"`
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
	LogoURL  string `json:"logoUrl,omitempty"`
}

// TokenPrice is the spot price of a token.
type TokenPrice struct {
	Chain     string  `json:"chain"`
	Address   string  `json:"address"`
	PriceUSD  float64 `json:"priceUsd"`
	Change24h float64 `json:"change24h"`
	UpdatedAt string  `json:"updatedAt"`
}

// Pool describes one liquidity pool.
type Pool struct {
	Chain        string  `json:"chain"`
	Address      string  `json:"address"`
	Protocol     string  `json:"protocol"`
	Token0       string  `json:"token0"`
	Token1       string  `json:"token1"`
	TVLUSD       float64 `json:"tvlUsd"`
	Volume24hUSD float64 `json:"volume24hUsd"`
	APR          float64 `json:"apr"`
}

// Quote is an indicative swap quote.
type Quote struct {
	Chain          string   `json:"chain"`
	TokenIn        string   `json:"tokenIn"`
	TokenOut       string   `json:"tokenOut"`
	AmountIn       string   `json:"amountIn"`
	AmountOut      string   `json:"amountOut"`
	PriceImpact    float64  `json:"priceImpact"`
	Route          []string `json:"route,omitempty"`
	GasEstimateUSD float64  `json:"gasEstimateUsd"`
}

// GasPrice carries per-tier gas prices for one chain, in gwei.
type GasPrice struct {
	Chain     string  `json:"chain"`
	Slow      float64 `json:"slow"`
	Standard  float64 `json:"standard"`
	Fast      float64 `json:"fast"`
	UpdatedAt string  `json:"updatedAt"`
}

// PoolsFilter narrows a pool listing.
type PoolsFilter struct {
	Chain string
	Token string
	Limit int
}

// QuoteRequest identifies a swap to be quoted.
type QuoteRequest struct {
	Chain    string
	TokenIn  string
	TokenOut string
	AmountIn string
}

// apiError is the wire shape of a non-2xx API response body.
type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
