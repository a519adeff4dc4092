package students

type Student struct {
	ID     int    `json:"id"`
	TaxID  string `json:"tax_id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}
