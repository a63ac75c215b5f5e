// Package layout provides the composable layout primitives the page builders
// and documents assemble HTML from.
//
// The hierarchy is Page > Column > Section > content, with Row, Col, and Grid
// as free-form flex/grid containers usable anywhere a child is accepted.
// Children of Row, Col, and Grid may be other layout nodes, raw HTML strings,
// or content blocks dispatched through a registry at render time.
package layout
