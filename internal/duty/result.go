package duty

// Line item names, in output order.
const (
	LineBCD    = "Basic Customs Duty(BCD)"
	LineAIDC   = "Customs AIDC"
	LineCHCess = "Custom Health CESS(CHCESS)"
	LineCess   = "CESS"
	LineEAIDC  = "Excise AIDC(EAIDC)"
	LineSWS    = "Social Welfare Surcharge(SWC)"
	LineIGST   = "IGST Levy"
	LineCC     = "Compensation Cess(CC)"
	LineTotal  = "Total Duty"
)

// Columns is the fixed column order of a duty table.
var Columns = []string{
	"Customs Duty",
	"Rate of Duty (Tariff)%",
	"Spec Duty",
	"Unit",
	"Notification -Slno",
	"Rate of Duty (Effective) %",
	"Spec Duty.1",
	"Unit.1",
	"Duty Amount",
}

// LineItem is one row of the duty table. The effective-side spec duty and unit
// always mirror the tariff side.
type LineItem struct {
	Name              string  `json:"Customs Duty"`
	TariffRate        float64 `json:"Rate of Duty (Tariff)%"`
	SpecDuty          string  `json:"Spec Duty"`
	Unit              string  `json:"Unit"`
	NotificationLabel string  `json:"Notification -Slno"`
	EffectiveRate     float64 `json:"Rate of Duty (Effective) %"`
	EffectiveSpecDuty string  `json:"Spec Duty.1"`
	EffectiveUnit     string  `json:"Unit.1"`
	Amount            float64 `json:"Duty Amount"`
}

// Meta describes the inputs a Result was computed for.
type Meta struct {
	CTH             string  `json:"Structure of Duty for CTH"`
	Country         string  `json:"country of Origin"`
	AssessableValue float64 `json:"assessable_value"`
	Quantity        float64 `json:"quantity"`
}

// Result is a complete duty computation for one classification code.
type Result struct {
	Meta     Meta       `json:"meta_data"`
	Rows     []LineItem `json:"rows"`
	TotalRow LineItem   `json:"total_row"`
}

func lineItem(name string, tariffRate, effectiveRate float64, spec, unit, label string, amount float64) LineItem {
	return LineItem{
		Name:              name,
		TariffRate:        tariffRate,
		SpecDuty:          spec,
		Unit:              unit,
		NotificationLabel: label,
		EffectiveRate:     effectiveRate,
		EffectiveSpecDuty: spec,
		EffectiveUnit:     unit,
		Amount:            amount,
	}
}

// Assemble builds the ordered duty table and its totals row.
func Assemble(meta Meta, rates RateSet, effectiveBCD float64, bcdLabel string, a Amounts) *Result {
	rows := []LineItem{
		lineItem(LineBCD, rates.BCDRate, effectiveBCD, "", "", bcdLabel, round2(a.BCD)),
		lineItem(LineAIDC, rates.AIDCRate, rates.AIDCRate, "", "", "", round2(a.AIDC)),
		lineItem(LineCHCess, rates.CHCessRate, rates.CHCessRate, rates.CHCessSpecDisplay, "", "", 0),
		lineItem(LineCess, rates.CessRate, rates.CessRate, rates.CessSpecDisplay, rates.CessUnit, "", round2(a.Cess)),
		lineItem(LineEAIDC, rates.EAIDCRate, rates.EAIDCRate, rates.EAIDCSpecDisplay, "", "", 0),
		lineItem(LineSWS, rates.SWSRate, rates.SWSRate, "", "", "", round2(a.SWS)),
		lineItem(LineIGST, rates.IGSTRate, rates.IGSTRate, "", "", rates.IGSTLabel(), round2(a.IGST)),
		lineItem(LineCC, rates.CCRate, rates.CCRate, "", "", "", round2(a.CC)),
	}

	var sum float64
	for i := range rows {
		sum += rows[i].Amount
	}

	total := lineItem(LineTotal,
		TotalTariffRate(rates, meta.AssessableValue),
		TotalEffectiveTariffRate(rates, meta.AssessableValue, effectiveBCD),
		"", "", "", round2(sum))

	return &Result{Meta: meta, Rows: rows, TotalRow: total}
}
