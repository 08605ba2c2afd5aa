// Package pipeline scans many ms output files in parallel and hands their
// simulation summaries to the caller in input order.
package pipeline
