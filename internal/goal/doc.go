// Package goal defines the learning-goal record and its request payloads.
//
// A Goal is a single tracked learning item (skill name, resource type,
// platform, progress metadata). The GoalStore service owns the durable copy
// and assigns id/created_at/updated_at; clients only ever send the remaining
// fields.
package goal
