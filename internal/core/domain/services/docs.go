// Package services holds the rules that read more than one aggregate or an
// aggregate plus its history.
//
// The package includes:
//   - EligibilityEngine: decides whether a persona may receive a new delivery
//   - History / BuildHistory: the delivery-log summary the engine reads
//   - TrafficLightOf: green/yellow/red rendering of a decision
//
// Everything here is pure and safe for concurrent use.
package services
