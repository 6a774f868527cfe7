// Package layout defines the element/layout model shared by the synthesizer
// and the markup compiler. A Layout is an ordered list of Elements; order
// drives rendering order and the identifier assigned to each control (index
// 0 is "A", index 25 is "Z", index 26 is "AA"). Documents use the
// `{"data": [...]}` envelope and are validated against an OpenAPI 3 schema
// before decoding so malformed input surfaces as InputFormatError.
package layout
