package risk

import "strings"

// SymbolRiskProfile holds the exchange risk parameters for a symbol class
type SymbolRiskProfile struct {
	MaintenanceMarginRate float64
	MaxLeverage           float64
}

// Maintenance margin rates by symbol class. These are the lowest-tier
// Bybit/Binance USDT-perp rates; callers needing exact per-tier rates
// supply MaintenanceMarginRate on TradeParameters directly.
const (
	majorMaintenanceMarginRate   = 0.004
	altcoinMaintenanceMarginRate = 0.005
)

var (
	majorProfile = SymbolRiskProfile{
		MaintenanceMarginRate: majorMaintenanceMarginRate,
		MaxLeverage:           125,
	}

	altcoinProfile = SymbolRiskProfile{
		MaintenanceMarginRate: altcoinMaintenanceMarginRate,
		MaxLeverage:           75,
	}
)

// symbolProfiles maps canonical symbols to their risk profile. Unknown
// symbols fall back to the conservative altcoin profile.
var symbolProfiles = map[string]SymbolRiskProfile{
	"BTCUSDT":  majorProfile,
	"BTCUSD":   majorProfile,
	"BTCPERP":  majorProfile,
	"ETHUSDT":  majorProfile,
	"ETHUSD":   majorProfile,
	"ETHPERP":  majorProfile,
	"SOLUSDT":  altcoinProfile,
	"BNBUSDT":  altcoinProfile,
	"XRPUSDT":  altcoinProfile,
	"ADAUSDT":  altcoinProfile,
	"DOGEUSDT": altcoinProfile,
}

// LookupSymbolProfile resolves the risk profile for a symbol.
// Exact table entries win; otherwise symbols containing BTC or ETH are
// classified as majors, everything else gets the altcoin profile.
func LookupSymbolProfile(symbol string) SymbolRiskProfile {
	canonical := strings.ToUpper(strings.TrimSpace(symbol))

	if profile, ok := symbolProfiles[canonical]; ok {
		return profile
	}

	if strings.Contains(canonical, "BTC") || strings.Contains(canonical, "ETH") {
		return majorProfile
	}

	return altcoinProfile
}

// MaintenanceMarginRate returns the maintenance margin rate for a symbol
func MaintenanceMarginRate(symbol string) float64 {
	return LookupSymbolProfile(symbol).MaintenanceMarginRate
}
