// Package goalstore is the HTTP client for the remote GoalStore service,
// the durable owner of all goal records.
//
// The client covers the four CRUD endpoints plus the optional pre-aggregated
// dashboard endpoint. Every call is a single attempt; retry and backoff are
// deliberately absent, callers surface failures and move on.
package goalstore
