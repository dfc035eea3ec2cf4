// Package config holds the bundling settings shared by the bundler service.
//
// All values have fixed defaults matching the release pipeline (wasm-pack,
// web target, wasm feature, prompt-spec.json artifact). An optional local
// YAML file may override them for development; there is no runtime
// parameterization beyond that.
package config
