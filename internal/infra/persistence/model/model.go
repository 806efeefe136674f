package model

// All lists every mapped table, in foreign-key friendly order.
func All() []any {
	return []any{
		SpoolMeterModel{},
		SpoolMeterOwnerModel{},
		UsageLogModel{},
		NotificationPreferenceModel{},
		PushDestinationModel{},
	}
}
