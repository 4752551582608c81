package domain

// TariffItem is one tariff line from the ICEGATE description lookup.
type TariffItem struct {
	TariffItem   string `json:"Tariff Item"`
	Description  string `json:"Description of Goods"`
	Unit         string `json:"Unit"`
	RateOfDuty   string `json:"Rate of Duty"`
	ImportPolicy string `json:"Import Policy"`
}

// CCRRecord is a compulsory compliance requirement row, passed through as received.
type CCRRecord map[string]any

// SwiftPGARecord is one participating-government-agency filing requirement.
type SwiftPGARecord struct {
	PGACode   string `json:"PGA Code"`
	PGAName   string `json:"PGA_Name"`
	InfoCode  string `json:"INFO_Code"`
	InfoDesc  string `json:"INFO_Desc"`
	QFRCode   string `json:"QFR_Code"`
	QFRDesc   string `json:"QFR Desc"`
	Required  string `json:"REQ"`
	Mandatory string `json:"Man Opt"`
}

// HSNCode is one row of the HSN master search result.
type HSNCode struct {
	MainHSNCode string `json:"main_hsn_code"`
	HSNCode     string `json:"hsn_code"`
	Description string `json:"description"`
	GSTRate     *int   `json:"gst"`
}
