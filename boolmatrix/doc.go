// Package boolmatrix is the bottom leaf of the engine: a shared-dimension
// family of sparse boolean matrices, one per edge label, with the algebra
// (union, boolean matmul, Kronecker product, resize, identity) that every
// other package in this module builds on.
package boolmatrix
