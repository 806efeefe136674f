package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAlertKind_Compose(t *testing.T) {
	tests := []struct {
		kind      AlertKind
		wantTitle string
		wantBody  string
	}{
		{AlertMaterialLow, "Low Material Warning", "About 10% of the material is left on the spool connected to Printer A."},
		{AlertMaterialRanOut, "Spool Empty!", "The spool connected to Printer A is empty!"},
		{AlertBatteryLow, "Low Battery Warning", "The battery of Printer A is running low."},
		{AlertBatteryDead, "Dead Battery!", "The battery of Printer A is empty!"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			title, body := tt.kind.Compose("Printer A")
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantBody, body)
		})
	}

	title, body := AlertKind("unknown").Compose("Printer A")
	assert.Empty(t, title)
	assert.Empty(t, body)
}

func TestNotificationPreference_Allows(t *testing.T) {
	pref := DefaultNotificationPreference(uuid.New())
	for _, kind := range []AlertKind{AlertMaterialLow, AlertMaterialRanOut, AlertBatteryLow, AlertBatteryDead} {
		assert.True(t, pref.Allows(kind), kind)
	}

	pref.MaterialLow = false
	assert.False(t, pref.Allows(AlertMaterialLow))
	assert.True(t, pref.Allows(AlertMaterialRanOut))

	assert.False(t, pref.Allows(AlertKind("unknown")))

	var missing *NotificationPreference
	assert.False(t, missing.Allows(AlertBatteryDead))
}

func TestPushPlatform_IsValid(t *testing.T) {
	assert.True(t, PushPlatformFCM.IsValid())
	assert.True(t, PushPlatformWebPush.IsValid())
	assert.False(t, PushPlatform("sms").IsValid())
}
