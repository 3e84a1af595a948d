// Package writers turns hits into serialized outputs on a writer goroutine.
//
// Design:
//   - Writers own all presentation knowledge (CSV/TSV/JSONL).
//   - The scan engine stays domain-only; the pipeline stays orchestration-only.
//   - JSONL goes through pkg/api (v1) for a stable wire format.
package writers
