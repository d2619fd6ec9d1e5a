package models

// Record is one stored carbon-intensity observation for a postal-code region.
//
// Postcode is the natural lookup key: the records table enforces its
// uniqueness, so Update and Delete always touch at most one row.
// RegionID, Name and Postcode are immutable after creation.
type Record struct {
	RegionID int    `json:"region_id"`
	Name     string `json:"name"`
	Postcode string `json:"postcode"`
	Forecast string `json:"forecast"`
	Index    string `json:"index"`

	// Date is carried as the caller submitted it and round-trips verbatim.
	Date string `json:"date"`
}

// TableName returns the name of the database table
// associated with the Record model.
func (r Record) TableName() string {
	return "records"
}

// RecordUpdate carries the mutable subset of a record for PUT requests.
// Fields other than the postcode key replace the stored values.
type RecordUpdate struct {
	Postcode string `json:"postcode"`
	Forecast string `json:"forecast"`
	Index    string `json:"index"`
	Date     string `json:"date"`
}

// RecordLookup is the outcome of a read by postcode. Exactly one field is
// set: Record when the observation is stored locally, Regional with the
// upstream payload when the postcode is known upstream but not stored yet.
type RecordLookup struct {
	Record   *Record
	Regional *RegionalPayload
}
