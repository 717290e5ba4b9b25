// Package commands implements the tabpfn command line: session setup, token
// handling and one-shot classification or regression of CSV files against
// the hosted model.
package commands
