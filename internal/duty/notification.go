package duty

// NotificationEntry is one row of the BCD notification table.
type NotificationEntry struct {
	Notification string
	Serial       string
	Rate         float64
	// RateValid is false when the upstream rta was not a JSON number; such
	// entries still match but leave the fallback rate in place.
	RateValid bool
}

// NotificationTable is scanned in order; the first match wins.
type NotificationTable []NotificationEntry

// NewNotificationTable reads the rs_bcdd list from the notification payload.
// Missing lists and non-object entries are skipped.
func NewNotificationTable(p Payload) NotificationTable {
	items, ok := p["rs_bcdd"].([]any)
	if !ok {
		return nil
	}
	table := make(NotificationTable, 0, len(items))
	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			continue
		}
		rate, valid := numeric(obj["rta"])
		table = append(table, NotificationEntry{
			Notification: text(obj["notn"]),
			Serial:       text(obj["slno"]),
			Rate:         rate,
			RateValid:    valid,
		})
	}
	return table
}

// ResolveNotification returns the BCD rate to apply and the display label for
// the selected notification. An empty notification leaves fallback untouched;
// an empty serial matches any serial under the notification.
func ResolveNotification(table NotificationTable, notification, serial string, fallback float64) (float64, string) {
	if notification == "" {
		return fallback, ""
	}
	for _, e := range table {
		if e.Notification != notification {
			continue
		}
		if serial != "" && e.Serial != serial {
			continue
		}
		rate := fallback
		if e.RateValid {
			rate = e.Rate
		}
		if e.Serial != "" {
			return rate, e.Notification + "-" + e.Serial
		}
		return rate, e.Notification
	}
	return fallback, ""
}
