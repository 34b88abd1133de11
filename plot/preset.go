package plot

// Ready-made panel specs for the standard Bollinger and MACD figures.
// Column names follow the indicator table layout: tp/ubb/mbb/lbb/perb/bw
// for the Bollinger set and data/sma/ema/bb_up/bb_down/macd/signal for the
// moving-average overlay set.

// BollingerPanels is the three-panel Bollinger figure: price with the three
// bands, %B with overbought/middle/oversold guides, and bandwidth.
func BollingerPanels() []PanelSpec {
	return []PanelSpec{
		{
			Series: []SeriesStyle{
				{Column: "tp", Label: "Typical Price", Color: Black, Pattern: Solid},
				{Column: "ubb", Label: "Upper Bollinger Band", Color: Red, Pattern: Dashed},
				{Column: "mbb", Label: "Middle Bollinger Band", Color: Green, Pattern: Dashed},
				{Column: "lbb", Label: "Lower Bollinger Band", Color: Blue, Pattern: Dashed},
			},
			XLabel:    "Date",
			YLabel:    "Price",
			TightAxes: true,
		},
		{
			Series: []SeriesStyle{
				{Column: "perb", Label: "Percent B", Color: Black, Pattern: Solid},
			},
			ReferenceLines: []ReferenceLine{
				{Value: 1, Color: Red, Pattern: Dashed, Label: "Overbought"},
				{Value: 0.5, Color: Green, Pattern: Dashed, Label: "Middle"},
				{Value: 0, Color: Blue, Pattern: Dashed, Label: "Oversold"},
			},
			XLabel:    "Date",
			YLabel:    "Percent B",
			TightAxes: true,
		},
		{
			Series: []SeriesStyle{
				{Column: "bw", Label: "Bandwidth", Color: Black, Pattern: Solid},
			},
			XLabel:    "Date",
			YLabel:    "Bandwidth",
			TightAxes: true,
		},
	}
}

// OverlayPanels is the single-panel moving-average overlay: price with SMA,
// EMA and the Bollinger envelope.
func OverlayPanels() []PanelSpec {
	return []PanelSpec{
		{
			Series: []SeriesStyle{
				{Column: "data", Label: "Close", Color: Black, Pattern: Dashed},
				{Column: "sma", Label: "SMA", Color: Green, Pattern: Solid},
				{Column: "ema", Label: "EMA", Color: Orange, Pattern: Solid},
				{Column: "bb_up", Label: "BB Upper", Color: Red, Pattern: DashDot},
				{Column: "bb_down", Label: "BB Lower", Color: Blue, Pattern: DashDot},
			},
			XLabel: "Index",
			YLabel: "Value",
		},
	}
}

// MACDPanels is the single-panel MACD/signal figure.
func MACDPanels() []PanelSpec {
	return []PanelSpec{
		{
			Series: []SeriesStyle{
				{Column: "macd", Label: "MACD", Color: Red, Pattern: Solid},
				{Column: "signal", Label: "Signal", Color: Blue, Pattern: Dashed},
			},
			XLabel: "Index",
			YLabel: "Value",
		},
	}
}
