// Package views computes every derived presentation of the goal collection:
// dashboard aggregates, status-filtered subsets, the date-grouped timeline
// and the insights panel. All functions are pure; callers recompute after
// each collection refresh.
package views
