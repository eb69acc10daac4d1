// Package team models the six service teams and the weekly duty rotation.
//
// Teams rotate one week at a time in the order AJ, BF, CI, DG, EH, KL,
// starting on 2025-08-03, so the schedule repeats every 42 days.
package team
