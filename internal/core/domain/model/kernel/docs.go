// Package kernel holds the value objects shared by every aggregate:
//   - UUID: identifiers for personas, deliveries, teams, users and audit entries
//   - Date: a calendar day with whole-day arithmetic
//   - Clock: the injectable source of "now"
package kernel
