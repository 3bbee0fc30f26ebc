package report

// Insight severities.
const (
	SeverityCaution = "caution"
	SeverityWarning = "warning"
	SeverityNote    = "note"
)

// Insight codes.
const (
	InsightLowMargin   = "low_margin"
	InsightVehicleLoss = "vehicle_loss"
	InsightProfitable  = "profitable"
)

// Insight is a short qualitative recommendation derived from thresholds on
// aggregated metrics. Insights carry no side effects.
type Insight struct {
	Severity string `json:"severity"` // "caution", "warning", "note"
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// lowMarginThreshold is the profit margin (percent) below which the
// low-margin caution fires.
const lowMarginThreshold = 10

// DeriveInsights evaluates each recommendation rule independently against
// the summary and vehicle ranking. Zero or more insights apply; emission
// order follows the rule order below.
func DeriveInsights(s Summary, perf []VehiclePerformance) []Insight {
	var insights []Insight

	if s.ProfitMargin < lowMarginThreshold {
		insights = append(insights, Insight{
			Severity: SeverityCaution,
			Code:     InsightLowMargin,
			Message:  "Low profit margin. Consider reducing expenses or increasing service rates.",
		})
	}

	for _, v := range perf {
		if v.Profit < 0 {
			insights = append(insights, Insight{
				Severity: SeverityWarning,
				Code:     InsightVehicleLoss,
				Message:  "Some vehicles are operating at a loss. Review their usage and costs.",
			})
			break
		}
	}

	if s.NetProfit > 0 {
		insights = append(insights, Insight{
			Severity: SeverityNote,
			Code:     InsightProfitable,
			Message:  "Business is profitable. Consider expansion opportunities.",
		})
	}

	return insights
}
