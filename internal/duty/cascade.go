package duty

// Amounts holds the unrounded duty amounts for the eight line items.
type Amounts struct {
	BCD    float64
	AIDC   float64
	CHCess float64
	Cess   float64
	EAIDC  float64
	SWS    float64
	IGST   float64
	CC     float64
}

// Cascade computes the line-item duty amounts. Each step may depend on the
// ones before it, so the order below is fixed. CHCess and EAIDC are reported
// with zero amounts; the aggregate rate functions account for them separately.
func Cascade(rates RateSet, effectiveBCD, assessableValue, quantity float64) Amounts {
	var a Amounts

	a.BCD = assessableValue * effectiveBCD / 100
	// AIDC is levied on BCD, not on the assessable value.
	a.AIDC = a.BCD * rates.AIDCRate / 100
	if rates.CessSpecAmount > 0 {
		a.Cess = rates.CessSpecAmount * quantity
	} else {
		a.Cess = assessableValue * rates.CessRate / 100
	}
	a.SWS = (a.BCD + a.AIDC + a.Cess) * rates.SWSRate / 100
	a.IGST = (assessableValue + a.BCD + a.AIDC + a.Cess + a.SWS) * rates.IGSTRate / 100
	a.CC = assessableValue * rates.CCRate / 100

	return a
}

// TotalEffectiveTariffRate returns the sum of all eight duty components as a
// percentage of the assessable value, rounded to 3 places. Unlike Cascade it
// includes CHCess and EAIDC, both in the SWS base and in the total, and always
// uses the ad-valorem cess rate. A zero assessable value yields 0.
func TotalEffectiveTariffRate(rates RateSet, assessableValue, overrideBCD float64) float64 {
	if assessableValue == 0 {
		return 0
	}

	bcd := assessableValue * overrideBCD / 100
	aidc := bcd * rates.AIDCRate / 100
	cess := assessableValue * rates.CessRate / 100
	chcess := assessableValue * rates.CHCessRate / 100
	eaidc := assessableValue * rates.EAIDCRate / 100
	sws := (bcd + aidc + cess + chcess + eaidc) * rates.SWSRate / 100
	igst := (assessableValue + bcd + aidc + cess + sws) * rates.IGSTRate / 100
	cc := assessableValue * rates.CCRate / 100

	total := bcd + aidc + cess + chcess + eaidc + sws + igst + cc
	return round3(total / assessableValue * 100)
}

// TotalTariffRate is TotalEffectiveTariffRate at the tariff-declared BCD rate.
func TotalTariffRate(rates RateSet, assessableValue float64) float64 {
	return TotalEffectiveTariffRate(rates, assessableValue, rates.BCDRate)
}
