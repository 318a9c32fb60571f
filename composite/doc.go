// Package composite implements composite operators (spec component I):
// operators whose behavior is itself a private dataflow graph, exposed
// to the outer graph through a fixed set of named input/output ports.
package composite
