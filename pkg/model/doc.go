// Package model provides item sources for sheet axes: a general mutable
// list, the numbered header model, and a rows by columns virtual table
// whose cells are computed on demand.
package model
