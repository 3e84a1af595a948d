// Package pipeline streams subjects through a scan.Strategy on a pool of
// workers and hands hits to a visit callback in canonical order.
//
// The contracts it needs are SubjectSource (Next) and scan.Strategy
// (ScanSubject), so fakes in tests can stand in for both.
package pipeline
