// Package duty computes Indian import duty tables from ICEGATE rate payloads.
//
// The package performs no I/O and keeps no state between calls; Compute is
// safe for concurrent use with independent inputs.
package duty

import "math"

// Defaults applied inside the engine when an input is missing or invalid.
const (
	DefaultAssessableValue = 100000
	DefaultQuantity        = 1
)

// Input is everything one computation needs.
type Input struct {
	CTH             string
	Country         string
	AssessableValue float64
	Quantity        float64
	Notification    string
	Serial          string
	Payloads        Payloads
}

// Compute runs merge, notification override, cascade and assembly for in.
// The only error it returns is *InvalidPayloadError.
func Compute(in Input) (*Result, error) {
	decoded, err := in.Payloads.decode()
	if err != nil {
		return nil, err
	}

	value := positiveOr(in.AssessableValue, DefaultAssessableValue)
	quantity := positiveOr(in.Quantity, DefaultQuantity)

	rates := NewRateSet(MergePayloads(decoded.tariff, decoded.effective))
	rates.CessUnit = cessUnit(decoded.tariff, decoded.effective)

	table := NewNotificationTable(decoded.notification)
	effectiveBCD, label := ResolveNotification(table, in.Notification, in.Serial, rates.BCDRate)

	amounts := Cascade(rates, effectiveBCD, value, quantity)

	meta := Meta{
		CTH:             in.CTH,
		Country:         in.Country,
		AssessableValue: value,
		Quantity:        quantity,
	}
	return Assemble(meta, rates, effectiveBCD, label, amounts), nil
}

func positiveOr(v, def float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}
