package dto

// ImportRowError reports one failed spreadsheet row.
type ImportRowError struct {
	Row     int    `json:"row"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

// ImportResult aggregates per-row outcomes of a spreadsheet import. Rows
// succeed or fail independently; there is no rollback across rows.
type ImportResult struct {
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}
