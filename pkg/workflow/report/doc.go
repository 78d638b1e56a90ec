// Package report accumulates migration statistics across mapping runs:
// action counts, component complexity distribution, components needing custom
// code, and the union of required target platform services. A single
// collector may be shared by concurrent runs.
package report
