// Package arrowconv bridges csv documents and Apache Arrow records.
//
// A headed document converts to an arrow.Record whose fields carry the
// narrowest type every cell of a column fits: int64, then float64, then
// boolean, then utf8. Empty cells are nulls. The reverse direction turns a
// record of those types back into a document with the field names as its
// heading row.
package arrowconv
