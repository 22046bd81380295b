package domain

import "sort"

// IndexSymbol identifies the benchmark index series.
const IndexSymbol = "NIFTY50"

// CompanyNames maps tracked NSE symbols to display names.
var CompanyNames = map[string]string{
	"RELIANCE":   "Reliance Industries",
	"TCS":        "Tata Consultancy Services",
	"HDFCBANK":   "HDFC Bank",
	"INFY":       "Infosys",
	"ICICIBANK":  "ICICI Bank",
	"HINDUNILVR": "Hindustan Unilever",
	"ITC":        "ITC",
	"SBIN":       "State Bank of India",
	"BHARTIARTL": "Bharti Airtel",
	"KOTAKBANK":  "Kotak Mahindra Bank",
	"LT":         "Larsen & Toubro",
	"AXISBANK":   "Axis Bank",
	"ASIANPAINT": "Asian Paints",
	"MARUTI":     "Maruti Suzuki",
	"SUNPHARMA":  "Sun Pharmaceutical",
	"TITAN":      "Titan Company",
	"WIPRO":      "Wipro",
	"ULTRACEMCO": "UltraTech Cement",
	"NTPC":       "NTPC",
	"POWERGRID":  "Power Grid Corporation",
	"TATAMOTORS": "Tata Motors",
	"TATASTEEL":  "Tata Steel",
	"BAJFINANCE": "Bajaj Finance",
	"HCLTECH":    "HCL Technologies",
	"ADANIENT":   "Adani Enterprises",
}

// Sectors maps tracked symbols to their sector bucket.
var Sectors = map[string]string{
	"RELIANCE":   "Energy",
	"TCS":        "IT",
	"HDFCBANK":   "Banking",
	"INFY":       "IT",
	"ICICIBANK":  "Banking",
	"HINDUNILVR": "FMCG",
	"ITC":        "FMCG",
	"SBIN":       "Banking",
	"BHARTIARTL": "Telecom",
	"KOTAKBANK":  "Banking",
	"LT":         "Infrastructure",
	"AXISBANK":   "Banking",
	"ASIANPAINT": "Consumer",
	"MARUTI":     "Auto",
	"SUNPHARMA":  "Pharma",
	"TITAN":      "Consumer",
	"WIPRO":      "IT",
	"ULTRACEMCO": "Cement",
	"NTPC":       "Power",
	"POWERGRID":  "Power",
	"TATAMOTORS": "Auto",
	"TATASTEEL":  "Metals",
	"BAJFINANCE": "Finance",
	"HCLTECH":    "IT",
	"ADANIENT":   "Conglomerate",
}

// SupportedSymbols lists all tracked symbols in a stable order.
var SupportedSymbols []string

// SymbolsBySector is the reverse grouping of Sectors.
var SymbolsBySector map[string][]string

func init() {
	SupportedSymbols = make([]string, 0, len(CompanyNames))
	for sym := range CompanyNames {
		SupportedSymbols = append(SupportedSymbols, sym)
	}
	sort.Strings(SupportedSymbols)

	SymbolsBySector = make(map[string][]string, len(Sectors))
	for _, sym := range SupportedSymbols {
		sector := Sectors[sym]
		SymbolsBySector[sector] = append(SymbolsBySector[sector], sym)
	}
}
