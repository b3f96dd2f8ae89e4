// Package cli implements the interactive SkillUp shell.
//
// The shell is a plain line-based REPL over the state container: every
// command calls a synchronization action (or a synchronous store
// transition), then renders the resulting state snapshot. Slice errors are
// shown once and cleared, so a stale failure never re-surfaces on the next
// prompt.
package cli
