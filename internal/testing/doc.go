// Package testing provides test utilities, builders, and fixtures for unit and integration tests.
//
// This package centralizes common testing patterns to avoid duplication across test files:
//   - ConfigBuilder: Fluent builder for creating expanded test configurations
//   - Document fixtures: YAML inputs for loader and end-to-end tests
//   - MockObjectStore: testify mock of the bundle object store
//
// Usage:
//
//	cfg := testing.NewConfigBuilder().
//	    WithMetadata("L1", "web", "Common").
//	    WithNode("n1", "10.0.0.1").
//	    WithPool("p1", "gateway_icmp", "n1").
//	    Build()
package testing
