package csv

import "encoding/json"

// ToJSON renders the document as a JSON array of header-keyed objects, one
// object per data row. The first row supplies the keys; for duplicated
// header names the first column wins, values beyond the header's width are
// dropped, and header columns beyond a row's width are absent from that
// row's object. A document with no rows, or with only a header row, renders
// as an empty array.
func (d *Document) ToJSON() ([]byte, error) {
	objects := make([]map[string]string, 0, max(d.Len()-1, 0))
	for i := 1; i < d.Len(); i++ {
		objects = append(objects, Row{doc: d, index: i}.Map())
	}
	return json.Marshal(objects)
}
