package calendar

import (
	"time"

	"forex-dashboard/internal/types"
)

// MockEvents returns a canned week of economic events starting at startDate.
// Event names are in French to match the dashboard language.
func MockEvents(startDate time.Time) []types.EconomicEvent {
	day := func(offset int) string {
		return startDate.AddDate(0, 0, offset).Format("2006-01-02")
	}

	return []types.EconomicEvent{
		{Date: day(0), Time: "14:30", Currency: "USD", Impact: "high", Event: "Rapport sur l'emploi non-agricole", Actual: "353K", Forecast: "180K", Previous: "216K"},
		{Date: day(0), Time: "16:00", Currency: "USD", Impact: "high", Event: "ISM Services PMI", Actual: "53.4", Forecast: "52.0", Previous: "50.6"},
		{Date: day(1), Time: "10:00", Currency: "EUR", Impact: "medium", Event: "Ventes au détail Zone Euro", Forecast: "-1.3%", Previous: "-1.1%"},
		{Date: day(2), Time: "13:30", Currency: "GBP", Impact: "high", Event: "Décision taux BoE", Forecast: "5.25%", Previous: "5.25%"},
		{Date: day(2), Time: "15:00", Currency: "USD", Impact: "medium", Event: "Stocks de pétrole brut", Forecast: "2.1M", Previous: "1.2M"},
		{Date: day(3), Time: "09:00", Currency: "EUR", Impact: "high", Event: "PIB préliminaire Zone Euro", Forecast: "0.1%", Previous: "0.0%"},
		{Date: day(4), Time: "14:30", Currency: "CAD", Impact: "high", Event: "Rapport sur l'emploi", Forecast: "15.0K", Previous: "-24.8K"},
	}
}
