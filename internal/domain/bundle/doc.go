// Package bundle contains core domain types for the bundling workflow.
//
// It defines Request (the immutable build configuration handed to the
// packaging tool) and Run (the phase tracker for one invocation), with
// transition validation so a merge can never start before a successful build.
package bundle
