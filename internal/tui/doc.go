// Package tui implements the interactive terminal interface: a bubbletea
// controller that owns the goal collection, switches between the home,
// dashboard, skills, timeline and insights views, and talks to GoalStore
// through sequence-numbered background commands so that stale responses
// never clobber newer state.
package tui
