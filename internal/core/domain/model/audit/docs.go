// Package audit models the append-only audit log written alongside every
// mutation of personas, deliveries and teams.
package audit
