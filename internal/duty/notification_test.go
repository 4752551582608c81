package duty_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customsduty/internal/duty"
)

func notificationTable(t *testing.T, body string) duty.NotificationTable {
	t.Helper()
	p, err := duty.DecodePayload("notification", json.RawMessage(body))
	require.NoError(t, err)
	return duty.NewNotificationTable(p)
}

func TestResolveNotification(t *testing.T) {
	table := notificationTable(t, `{"rs_bcdd":[
		{"notn":"005/2017","slno":"1","rta":5},
		{"notn":"005/2017","slno":"2","rta":7.5},
		{"notn":"050/2017","slno":"","rta":2},
		{"notn":"011/2021","slno":"9","rta":"Nil"}
	]}`)

	tests := []struct {
		name      string
		notn      string
		slno      string
		wantRate  float64
		wantLabel string
	}{
		{"no notification keeps fallback", "", "1", 10, ""},
		{"exact match", "005/2017", "1", 5, "005/2017-1"},
		{"second serial", "005/2017", "2", 7.5, "005/2017-2"},
		{"no serial takes first entry", "005/2017", "", 5, "005/2017-1"},
		{"entry without serial labels notification only", "050/2017", "", 2, "050/2017"},
		{"non-numeric rta keeps fallback but labels", "011/2021", "9", 10, "011/2021-9"},
		{"unknown notification", "999/2020", "1", 10, ""},
		{"known notification wrong serial", "005/2017", "3", 10, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, label := duty.ResolveNotification(table, tt.notn, tt.slno, 10)
			assert.Equal(t, tt.wantRate, rate)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestNewNotificationTable_TolerantOfShape(t *testing.T) {
	assert.Empty(t, notificationTable(t, `{}`))
	assert.Empty(t, notificationTable(t, `{"rs_bcdd":"none"}`))

	table := notificationTable(t, `{"rs_bcdd":[null, 3, {"notn":"1/2020","slno":4,"rta":0}]}`)
	require.Len(t, table, 1)
	assert.Equal(t, "1/2020", table[0].Notification)
	assert.Equal(t, "4", table[0].Serial)
	assert.True(t, table[0].RateValid)
	assert.Zero(t, table[0].Rate)
}

func TestNewNotificationTable_NumericStringRateIsNotARate(t *testing.T) {
	table := notificationTable(t, `{"rs_bcdd":[{"notn":"2/2020","slno":"1","rta":"5"}]}`)
	require.Len(t, table, 1)
	assert.False(t, table[0].RateValid)

	rate, label := duty.ResolveNotification(table, "2/2020", "1", 10)
	assert.Equal(t, 10.0, rate)
	assert.Equal(t, "2/2020-1", label)
}

func TestResolveNotification_ZeroRateOverrides(t *testing.T) {
	table := duty.NotificationTable{{Notification: "N", Serial: "1", Rate: 0, RateValid: true}}
	rate, label := duty.ResolveNotification(table, "N", "1", 10)
	assert.Zero(t, rate)
	assert.Equal(t, "N-1", label)
}
