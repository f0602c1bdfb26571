package market

import "time"

// Stances applied to generated headlines and signal cards
const (
	StanceBuy  = "buy"
	StanceHold = "hold"
	StanceSell = "sell"
)

// Headline is one synthetic news article
type Headline struct {
	Ticker    string    `json:"ticker"`
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
	Stance    string    `json:"stance"`
	Category  string    `json:"category"`
	Summary   string    `json:"summary"`
	Impact    string    `json:"impact"`
}

// SignalCard is a per-company recommendation card
type SignalCard struct {
	Ticker     string `json:"ticker"`
	Company    string `json:"company"`
	Direction  string `json:"direction"` // BUY, HOLD, SELL
	Confidence int    `json:"confidence"`
	Signals    int    `json:"signals"`
	Summary    string `json:"summary"`
	Horizon    string `json:"horizon"`
	Risk       string `json:"risk"`
}

// SentimentBand is a labeled share of overall market sentiment
type SentimentBand struct {
	Label   string `json:"label"`
	Percent int    `json:"percent"`
}

// SignalBoard bundles the signal cards with the sentiment bands
type SignalBoard struct {
	Cards []SignalCard    `json:"cards"`
	Bands []SentimentBand `json:"bands"`
}

// IndexSnapshot is one market index row
type IndexSnapshot struct {
	Index         string  `json:"index"`
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

// MacroMetric is one macro snapshot row
type MacroMetric struct {
	Asset         string  `json:"asset"`
	Value         float64 `json:"value"`
	ChangePercent float64 `json:"change_percent"`
}

// RiskAlert is a market risk warning for the dashboard sidebar
type RiskAlert struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"` // High, Medium, Low
	TimeAgo     string `json:"time_ago"`
}

// OpsAlert is an operations desk alert
type OpsAlert struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Status   string `json:"status"` // Unresolved, Investigating, Resolved
	Assignee string `json:"assignee"`
}

// StanceCounts tallies headline stances
type StanceCounts struct {
	Buy  int `json:"buy"`
	Hold int `json:"hold"`
	Sell int `json:"sell"`
}

// TickerCount is a ticker with its article count
type TickerCount struct {
	Ticker string `json:"ticker"`
	Count  int    `json:"count"`
}

// SentimentSummary aggregates the feed by stance and most-covered tickers
type SentimentSummary struct {
	Counts StanceCounts  `json:"counts"`
	Top    []TickerCount `json:"top"`
}

// SentimentSlice is one segment of the sentiment analysis rollup
type SentimentSlice struct {
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
	Label      string `json:"label"`
}

// PredictionSlice is one segment of the market prediction rollup
type PredictionSlice struct {
	Count int    `json:"count"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

// SentimentAnalysis groups the sentiment slices with the article total
type SentimentAnalysis struct {
	Positive SentimentSlice `json:"positive"`
	Negative SentimentSlice `json:"negative"`
	Neutral  SentimentSlice `json:"neutral"`
	Total    int            `json:"total"`
}

// MarketPredictions groups the direction slices
type MarketPredictions struct {
	Bullish PredictionSlice `json:"bullish"`
	Bearish PredictionSlice `json:"bearish"`
	Neutral PredictionSlice `json:"neutral"`
}

// MarketOverview summarizes feed coverage
type MarketOverview struct {
	TotalArticles int       `json:"total_articles"`
	Sources       int       `json:"sources"`
	LastUpdated   time.Time `json:"last_updated"`
}

// Analysis is the full analyzer rollup for the dashboard header
type Analysis struct {
	Sentiment   SentimentAnalysis `json:"sentiment_analysis"`
	Predictions MarketPredictions `json:"market_predictions"`
	Overview    MarketOverview    `json:"market_overview"`
}

// PortfolioPoint is one day of the synthetic portfolio curve
type PortfolioPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// SectorExposure is one sector weight/PnL row
type SectorExposure struct {
	Sector string  `json:"sector"`
	Weight float64 `json:"weight"`
	PnL    float64 `json:"pnl"`
}

// CompanySnapshot is a quote-style summary for one ticker
type CompanySnapshot struct {
	Ticker        string  `json:"ticker"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	VolumeM       float64 `json:"volume_millions"`
	MarketCapB    float64 `json:"market_cap_billions"`
	PERatio       float64 `json:"pe_ratio"`
	Beta          float64 `json:"beta"`
}

// PricePoint is one step of a daily price series
type PricePoint struct {
	Day   int     `json:"day"`
	Price float64 `json:"price"`
}

// ChartPoint is one intraday chart sample
type ChartPoint struct {
	Time   string  `json:"time"`
	Price  float64 `json:"price"`
	Volume int     `json:"volume"`
}

// ChartStats carries the stat strip under the intraday chart
type ChartStats struct {
	DaysRangeLow  float64 `json:"days_range_low"`
	DaysRangeHigh float64 `json:"days_range_high"`
	Volume        int     `json:"volume"`
	AvgVolume     int     `json:"avg_volume"`
	MarketCapB    float64 `json:"market_cap_billions"`
}

// ChartData is the full intraday chart payload for one ticker
type ChartData struct {
	Ticker        string       `json:"ticker"`
	CurrentPrice  float64      `json:"current_price"`
	Change        float64      `json:"change"`
	ChangePercent float64      `json:"change_percent"`
	IsPositive    bool         `json:"is_positive"`
	LineColor     string       `json:"line_color"`
	Points        []ChartPoint `json:"chart_data"`
	Stats         ChartStats   `json:"stats"`
	CloseTime     string       `json:"close_time"`
	Exchange      string       `json:"exchange"`
}

// StockData carries the fundamentals shown in the prediction modal
type StockData struct {
	CurrentPrice     float64 `json:"current_price"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"change_percent"`
	Beta             float64 `json:"beta"`
	RSI              float64 `json:"rsi"`
	Volatility       float64 `json:"volatility"`
	Volume           int64   `json:"volume"`
	MarketCapB       float64 `json:"market_cap_billions"`
	PERatio          float64 `json:"pe_ratio"`
	FiftyTwoWeekHigh float64 `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  float64 `json:"fifty_two_week_low"`
	Correlation      float64 `json:"correlation"`
	AverageVolume    int64   `json:"average_volume"`
}

// Prediction is the generated outlook for one ticker
type Prediction struct {
	Direction   string   `json:"direction"` // bullish or bearish
	Confidence  int      `json:"confidence"`
	TargetPrice float64  `json:"target_price"`
	Timeframe   string   `json:"timeframe"`
	Factors     []string `json:"factors"`
}

// PredictionModal is the full prediction payload for one ticker
type PredictionModal struct {
	Ticker          string       `json:"ticker"`
	Stock           StockData    `json:"stock_data"`
	Prediction      Prediction   `json:"prediction"`
	RelatedArticles []Headline   `json:"related_articles"`
	PriceSeries     []PricePoint `json:"price_series"`
}
