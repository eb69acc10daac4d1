// Package persona models the beneficiaries of the program.
//
// A persona is either on the regular rules (one delivery a month, six in total)
// or a special case with its own monthly cap (1 to 3) or no cap at all when the
// case is indefinite. The special fields change only through MarkSpecial and
// RemoveSpecial, which return new values.
package persona
