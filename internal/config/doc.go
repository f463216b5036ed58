// Package config defines the declarative load-balancer model consumed by the
// command generator.
//
// A YAML file is decoded into a [Document], which mirrors the user-facing
// shape and keeps optional fields as pointers. [Document.Expand] validates the
// document and applies defaults, producing the immutable [Config] that the
// generator walks. No cross-entity checks happen here: pool members and
// monitor references are resolved at generation time.
package config
