// Package delivery models the delivery log ("bitácora"): one record per
// approved package, followed through preparation, pickup and expiry.
//
// Key business rules:
//   - a record is created Approved and moves forward one step at a time
//   - preparing a package starts a 7 day pickup window
//   - a preparing or ready package past its window is Expired; callers see this
//     through EffectiveStatus even before the expiry sweep persists it
//   - Delivered and Expired are final
package delivery
