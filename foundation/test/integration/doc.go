// Package integration provides integration tests for the snowflake foundation.
//
// Package: integration
// Title: Snowflake Foundation Integration Tests
// Description: This package contains integration tests that verify the
//              interaction between the configuration, logging, error and
//              front-end packages across package boundaries.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of integration test suite
// - 2026-10-14 v0.2.0: Front-end pipeline tests
//
// Test Categories:
//
// Pipeline Tests (pipeline_integration_test.go):
// - Configuration file to engine to syntax tree
// - Structured log output of a parse, correlation ids included
// - Error code, severity and position consistency for every front-end stage
// - Token dumps agreeing with the parser
//
// Performance Tests (performance_test.go):
// - Scanning, normalizing and parsing generated programs of growing size
// - Concurrent use of one engine
//
// Running Integration Tests:
//
//   go test -v ./foundation/test/integration/
//   go test -v ./foundation/test/integration/ -bench=.
package integration
