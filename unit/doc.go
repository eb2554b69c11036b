// Package unit implements a symbolic algebra over physical units.
//
// Quantities are built from three value types: Base (an atomic unit such as
// the meter), Derived (a canonical product of base units raised to integer
// powers), and Composite (a numeric coefficient paired with a unit). All
// arithmetic funnels through a shared combine routine that merges exponent
// maps, so multiplication, division and integer powers stay consistent across
// the three types. Every operation returns a new value; nothing is mutated.
package unit
