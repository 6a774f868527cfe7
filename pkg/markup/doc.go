// Package markup compiles a layout into absolute-positioned HTML.
//
// Each element becomes a positioned container holding an input control whose
// id is derived from the element index. Sizing follows the element type:
// image controls are scaled from a 1x1 placeholder with a CSS transform,
// radio and checkbox controls keep their native size, every other control
// receives an explicit width and height. Radio and checkbox content is shown
// through a label bound to the control; other types carry it in a content
// attribute.
//
// Output is deterministic: the same layout always compiles to the same bytes.
package markup
