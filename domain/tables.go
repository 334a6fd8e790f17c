package domain

// Table is a mongo collection name
type Table string

const (
	TableAccounts        Table = "accounts"
	TableBankAccounts    Table = "bank_accounts"
	TableTokens          Table = "tokens"
	TableTokenBalances   Table = "token_balances"
	TableTokenAllowances Table = "token_allowances"
	TableNftClasses      Table = "nft_classes"
	TableNftItems        Table = "nft_items"
	TableNftHoldings     Table = "nft_holdings"
	TableNftApprovals    Table = "nft_approvals"
	TableListings        Table = "listings"
	TableMarketSettings  Table = "market_settings"
	TableBlacklist       Table = "blacklist"
	TableSwaps           Table = "swaps"
	TableEvents          Table = "events"
	TableCounters        Table = "counters"
	TableFeedStates      Table = "feed_states"
)
