package models

// RegionalPayload mirrors the response shape of the carbonintensity.org.uk
// regional endpoint (GET /regional/postcode/{postcode}).
type RegionalPayload struct {
	Data []RegionalData `json:"data"`
}

// RegionalData describes one distribution region matched by a postcode.
type RegionalData struct {
	RegionID  int               `json:"regionid"`
	DNORegion string            `json:"dnoregion,omitempty"`
	ShortName string            `json:"shortname"`
	Postcode  string            `json:"postcode"`
	Data      []IntensityWindow `json:"data"`
}

// IntensityWindow is a half-hour forecast window for a region.
type IntensityWindow struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Intensity Intensity `json:"intensity"`
}

// Intensity holds the forecast value and its categorical band
// ("very low" .. "very high").
type Intensity struct {
	Forecast int    `json:"forecast"`
	Index    string `json:"index"`
}
