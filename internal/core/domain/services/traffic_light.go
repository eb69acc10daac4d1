package services

// TrafficLight is the colour shown next to a persona in listings.
type TrafficLight string

const (
	Green  TrafficLight = "green"
	Yellow TrafficLight = "yellow"
	Red    TrafficLight = "red"
)

// YellowThresholdDays is the longest wait still shown as yellow.
const YellowThresholdDays = 7

// TrafficLightOf colours a decision: eligible is green, a short wait is yellow,
// everything else is red.
func TrafficLightOf(d Decision) TrafficLight {
	switch {
	case d.Eligible:
		return Green
	case d.DaysRemaining != nil && *d.DaysRemaining <= YellowThresholdDays:
		return Yellow
	default:
		return Red
	}
}
