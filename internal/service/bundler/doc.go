// Package bundler packages the tonsuu core library for the web.
//
// It invokes the external packaging tool (wasm-pack) with the fixed target
// and feature configuration, and on success merges the auxiliary
// prompt-spec.json artifact into the produced package directory. The
// workflow is strictly sequential and aborts on the first failure; a
// marker file guards against concurrent runs writing into the same
// output directory.
package bundler
