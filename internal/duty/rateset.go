package duty

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// RateSet is the typed view of a merged rate payload. Every field is total:
// absent or non-numeric values are already replaced by 0 or "".
type RateSet struct {
	BCDRate        float64
	AIDCRate       float64
	CessRate       float64
	CessSpecAmount float64
	CHCessRate     float64
	EAIDCRate      float64
	SWSRate        float64
	IGSTRate       float64
	CCRate         float64

	IGSTNotification string
	IGSTSerial       string
	CessUnit         string

	// Display values for the "Spec Duty" columns, empty when the upstream value is falsy.
	CessSpecDisplay   string
	CHCessSpecDisplay string
	EAIDCSpecDisplay  string
}

// NewRateSet builds a RateSet from a merged payload.
func NewRateSet(p Payload) RateSet {
	return RateSet{
		BCDRate:        number(p["bcd_rate"]),
		AIDCRate:       number(p["aidc_rate"]),
		CessRate:       number(p["cess_rate"]),
		CessSpecAmount: number(p["cess_spc_amts"]),
		CHCessRate:     number(p["chess_rate"]),
		EAIDCRate:      number(p["adc_rate"]),
		SWSRate:        number(p["scd_rate"]),
		IGSTRate:       number(p["igst_rate"]),
		CCRate:         number(p["gstcess_rate"]),

		IGSTNotification: text(p["igst_notn"]),
		IGSTSerial:       text(p["igst_slno"]),
		CessUnit:         text(p["cess_uqc"]),

		CessSpecDisplay:   display(p["cess_spc_amts"]),
		CHCessSpecDisplay: display(p["chess_spc_amts"]),
		EAIDCSpecDisplay:  display(p["adc_spc_amts"]),
	}
}

// IGSTLabel joins the IGST notification and serial as "notn-slno", or returns
// whichever one is present.
func (r RateSet) IGSTLabel() string {
	switch {
	case r.IGSTNotification != "" && r.IGSTSerial != "":
		return r.IGSTNotification + "-" + r.IGSTSerial
	case r.IGSTNotification != "":
		return r.IGSTNotification
	default:
		return r.IGSTSerial
	}
}

// cessUnit prefers the tariff view's unit over the effective view's.
func cessUnit(tariff, effective Payload) string {
	if u := text(tariff["cess_uqc"]); u != "" {
		return u
	}
	return text(effective["cess_uqc"])
}

func number(v any) float64 {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// numeric reports v as a number only when it was a JSON number, not a numeric string.
// Payloads come from encoding/json, so float64 is the only numeric type.
func numeric(v any) (float64, bool) {
	if _, ok := v.(float64); !ok {
		return 0, false
	}
	return number(v), true
}

func text(v any) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(cast.ToString(v))
}

func display(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		if !t {
			return ""
		}
		return "true"
	case string:
		return strings.TrimSpace(t)
	}
	f := number(v)
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
