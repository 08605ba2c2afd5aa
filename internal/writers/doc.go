// Package writers turns parsed records and simulation summaries into
// serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, FASTA, JSONL).
//   - core/ stays parse-only; pipeline stays orchestration-only.
//   - JSONL goes through pkg/api (v1) for a stable wire format.
package writers
