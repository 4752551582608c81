package duty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"customsduty/internal/duty"
)

func TestCascade_Order(t *testing.T) {
	rates := duty.RateSet{
		BCDRate:  20, // ignored: the effective rate is passed separately
		AIDCRate: 10,
		CessRate: 5,
		SWSRate:  10,
		IGSTRate: 18,
		CCRate:   1,
	}

	a := duty.Cascade(rates, 10, 1000, 1)

	assert.Equal(t, 100.0, a.BCD)
	assert.Equal(t, 10.0, a.AIDC, "AIDC is levied on BCD")
	assert.Equal(t, 50.0, a.Cess)
	assert.InDelta(t, 16.0, a.SWS, 1e-9)
	assert.InDelta(t, (1000+100+10+50+16.0)*0.18, a.IGST, 1e-9)
	assert.Equal(t, 10.0, a.CC)
	assert.Zero(t, a.CHCess)
	assert.Zero(t, a.EAIDC)
}

func TestCascade_SpecificCessIgnoresRate(t *testing.T) {
	rates := duty.RateSet{CessRate: 99, CessSpecAmount: 2.5}
	a := duty.Cascade(rates, 0, 100000, 40)
	assert.Equal(t, 100.0, a.Cess)
}

func TestCascade_NegativeSpecificCessFallsBackToRate(t *testing.T) {
	rates := duty.RateSet{CessRate: 10, CessSpecAmount: -3}
	a := duty.Cascade(rates, 0, 1000, 5)
	assert.Equal(t, 100.0, a.Cess)
}

func TestTotalEffectiveTariffRate_ZeroValue(t *testing.T) {
	rates := duty.RateSet{BCDRate: 10, IGSTRate: 18, CHCessRate: 5}
	assert.Zero(t, duty.TotalEffectiveTariffRate(rates, 0, 10))
	assert.Zero(t, duty.TotalTariffRate(rates, 0))
}

func TestTotalEffectiveTariffRate_Rounding(t *testing.T) {
	rates := duty.RateSet{AIDCRate: 0, SWSRate: 10, IGSTRate: 18}
	// BCD 7.5% → 7.5 + 0.75 SWS + 18% of 108.25 = 19.485 → 27.735
	assert.Equal(t, 27.735, duty.TotalEffectiveTariffRate(rates, 100, 7.5))

	rates = duty.RateSet{BCDRate: 1.0 / 3}
	assert.Equal(t, 0.333, duty.TotalTariffRate(rates, 300))
}

func TestTotalEffectiveTariffRate_IgnoresSpecificCess(t *testing.T) {
	rates := duty.RateSet{CessRate: 2, CessSpecAmount: 1000}
	assert.Equal(t, 2.0, duty.TotalTariffRate(rates, 100))
}
