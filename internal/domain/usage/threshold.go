package usage

import "spoolmeter/internal/domain/entity"

const (
	materialLowFloor    = 0.09
	materialLowCeiling  = 0.11
	materialRanOutBelow = 0.01
)

// EvaluateMaterial classifies a post-update remaining fraction.
// Only the value itself is checked, so a reading that skips over the
// (0.09, 0.11) band between polls does not fire AlertMaterialLow.
func EvaluateMaterial(fraction float64) (entity.AlertKind, bool) {
	switch {
	case fraction > materialLowFloor && fraction < materialLowCeiling:
		return entity.AlertMaterialLow, true
	case fraction < materialRanOutBelow:
		return entity.AlertMaterialRanOut, true
	default:
		return "", false
	}
}

// EvaluateBattery classifies a post-update battery status.
func EvaluateBattery(status entity.BatteryStatus) (entity.AlertKind, bool) {
	switch status {
	case entity.BatteryLow:
		return entity.AlertBatteryLow, true
	case entity.BatteryDead:
		return entity.AlertBatteryDead, true
	default:
		return "", false
	}
}
