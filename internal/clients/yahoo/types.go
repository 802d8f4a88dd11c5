package yahoo

import "encoding/json"

// yfValue is Yahoo's wrapped numeric field: {"raw": 150.25, "fmt": "150.25"}.
// Some fields arrive as bare numbers in older payloads, so both are accepted.
type yfValue struct {
	Raw float64 `json:"raw"`
}

func (v *yfValue) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		v.Raw = num
		return nil
	}

	// {} placeholders appear for missing values; tolerate any shape
	var wrapped struct {
		Raw float64 `json:"raw"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		v.Raw = 0
		return nil
	}
	v.Raw = wrapped.Raw
	return nil
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []quoteSummaryResult `json:"result"`
		Error  any                  `json:"error"`
	} `json:"quoteSummary"`
}

type quoteSummaryResult struct {
	Price                priceModule         `json:"price"`
	SummaryDetail        summaryDetailModule `json:"summaryDetail"`
	AssetProfile         assetProfileModule  `json:"assetProfile"`
	DefaultKeyStatistics keyStatisticsModule `json:"defaultKeyStatistics"`
}

type priceModule struct {
	Symbol                     string  `json:"symbol"`
	LongName                   string  `json:"longName"`
	RegularMarketPrice         yfValue `json:"regularMarketPrice"`
	RegularMarketPreviousClose yfValue `json:"regularMarketPreviousClose"`
	RegularMarketVolume        yfValue `json:"regularMarketVolume"`
	RegularMarketDayHigh       yfValue `json:"regularMarketDayHigh"`
	RegularMarketDayLow        yfValue `json:"regularMarketDayLow"`
	RegularMarketOpen          yfValue `json:"regularMarketOpen"`
	MarketCap                  yfValue `json:"marketCap"`
}

type summaryDetailModule struct {
	TrailingPE                   yfValue `json:"trailingPE"`
	FiftyTwoWeekHigh             yfValue `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow              yfValue `json:"fiftyTwoWeekLow"`
	Beta                         yfValue `json:"beta"`
	DividendYield                yfValue `json:"dividendYield"`
	PayoutRatio                  yfValue `json:"payoutRatio"`
	PriceToSalesTrailing12Months yfValue `json:"priceToSalesTrailing12Months"`
	FiftyDayAverage              yfValue `json:"fiftyDayAverage"`
	TwoHundredDayAverage         yfValue `json:"twoHundredDayAverage"`
}

type assetProfileModule struct {
	Sector              string `json:"sector"`
	Industry            string `json:"industry"`
	Country             string `json:"country"`
	Website             string `json:"website"`
	LongBusinessSummary string `json:"longBusinessSummary"`
}

type keyStatisticsModule struct {
	EnterpriseValue yfValue `json:"enterpriseValue"`
	ForwardPE       yfValue `json:"forwardPE"`
	PriceToBook     yfValue `json:"priceToBook"`
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}
