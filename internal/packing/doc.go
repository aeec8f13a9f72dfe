// Package packing implements the box recommendation engine.
//
// It turns an order (items with dimensions in millimeters and quantities) and
// a snapshot of box models with stock into either a ranked list of single
// box models able to hold the whole order, or a greedy mixed-model plan that
// spreads the order across several models. Everything here is pure and
// synchronous: no I/O, no shared state, and identical inputs always produce
// identical outputs.
package packing
