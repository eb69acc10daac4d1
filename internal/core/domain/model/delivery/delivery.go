package delivery

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/team"
	"aidtracker/internal/pkg/errs"
)

const (
	// ExpiryPeriod is how long a prepared package waits for pickup.
	ExpiryPeriod = 7 * 24 * time.Hour

	maxFolioLength = 20
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is one entry of the delivery log: a package approved for a persona
// and followed until it is handed over or expires.
//
// Invariants:
//   - timestamps are stamped in workflow order and never move backwards
//   - expiresAt is set once, at the Preparing step, to preparedAt + ExpiryPeriod
//   - a rejected transition leaves the record untouched
type Delivery struct {
	id          kernel.UUID
	personaID   kernel.UUID
	folio       string
	aidType     AidType
	team        team.Code
	status      Status
	approvedAt  time.Time
	preparedAt  *time.Time
	readyAt     *time.Time
	deliveredAt *time.Time
	expiresAt   *time.Time
	approvedBy  *kernel.UUID
	preparedBy  *kernel.UUID
	deliveredBy *kernel.UUID
	notes       string

	isConstructed bool
}

// NewDelivery creates an approved record stamped at approvedAt.
func NewDelivery(
	id, personaID kernel.UUID,
	folio string,
	aidType AidType,
	responsible team.Code,
	approvedBy *kernel.UUID,
	approvedAt time.Time,
	notes string,
) (*Delivery, error) {
	d := &Delivery{
		status:        Approved,
		approvedBy:    approvedBy,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setPersonaID(personaID),
		d.setFolio(folio),
		d.setAidType(aidType),
		d.setTeam(responsible),
		d.setApprovedAt(approvedAt),
	); err != nil {
		return nil, err
	}
	return d, nil
}

// State carries every stored field of a delivery.
type State struct {
	ID          kernel.UUID
	PersonaID   kernel.UUID
	Folio       string
	AidType     AidType
	Team        team.Code
	Status      Status
	ApprovedAt  time.Time
	PreparedAt  *time.Time
	ReadyAt     *time.Time
	DeliveredAt *time.Time
	ExpiresAt   *time.Time
	ApprovedBy  *kernel.UUID
	PreparedBy  *kernel.UUID
	DeliveredBy *kernel.UUID
	Notes       string
}

// RestoreDelivery rebuilds a record from storage and checks that the stamped
// timestamps agree with the stored status.
func RestoreDelivery(s State) (*Delivery, error) {
	d := &Delivery{
		preparedAt:    s.PreparedAt,
		readyAt:       s.ReadyAt,
		deliveredAt:   s.DeliveredAt,
		expiresAt:     s.ExpiresAt,
		approvedBy:    s.ApprovedBy,
		preparedBy:    s.PreparedBy,
		deliveredBy:   s.DeliveredBy,
		notes:         s.Notes,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(s.ID),
		d.setPersonaID(s.PersonaID),
		d.setFolio(s.Folio),
		d.setAidType(s.AidType),
		d.setTeam(s.Team),
		d.setApprovedAt(s.ApprovedAt),
		d.setStatus(s.Status),
	); err != nil {
		return nil, err
	}
	return d, nil
}

// State returns a copy of every field, for persistence.
func (d *Delivery) State() State {
	return State{
		ID:          d.id,
		PersonaID:   d.personaID,
		Folio:       d.folio,
		AidType:     d.aidType,
		Team:        d.team,
		Status:      d.status,
		ApprovedAt:  d.approvedAt,
		PreparedAt:  d.preparedAt,
		ReadyAt:     d.readyAt,
		DeliveredAt: d.deliveredAt,
		ExpiresAt:   d.expiresAt,
		ApprovedBy:  d.approvedBy,
		PreparedBy:  d.preparedBy,
		DeliveredBy: d.deliveredBy,
		Notes:       d.notes,
	}
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) PersonaID() kernel.UUID {
	return d.personaID
}

func (d *Delivery) Folio() string {
	return d.folio
}

func (d *Delivery) AidType() AidType {
	return d.aidType
}

func (d *Delivery) Team() team.Code {
	return d.team
}

// Status is the stored status. Use EffectiveStatus to account for expiry.
func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) ApprovedAt() time.Time {
	return d.approvedAt
}

func (d *Delivery) PreparedAt() *time.Time {
	return d.preparedAt
}

func (d *Delivery) ReadyAt() *time.Time {
	return d.readyAt
}

func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

func (d *Delivery) ExpiresAt() *time.Time {
	return d.expiresAt
}

func (d *Delivery) ApprovedBy() *kernel.UUID {
	return d.approvedBy
}

func (d *Delivery) PreparedBy() *kernel.UUID {
	return d.preparedBy
}

func (d *Delivery) DeliveredBy() *kernel.UUID {
	return d.deliveredBy
}

func (d *Delivery) Notes() string {
	return d.notes
}

// IsExpired reports whether a preparing or ready record is past its deadline at now.
func (d *Delivery) IsExpired(now time.Time) bool {
	return d.status.CanExpire() && d.expiresAt != nil && now.After(*d.expiresAt)
}

// EffectiveStatus is the status as observed at now.
func (d *Delivery) EffectiveStatus(now time.Time) Status {
	if d.IsExpired(now) {
		return Expired
	}
	return d.status
}

// Transition moves the record to target at now, recording actor where the
// workflow keeps one (approve, prepare, deliver). Out-of-order steps, steps
// out of a final state and steps on an expired record fail with
// errs.ErrInvalidTransition.
func (d *Delivery) Transition(target Status, actor *kernel.UUID, now time.Time) error {
	if target == Expired {
		return d.expire(now)
	}

	current := d.EffectiveStatus(now)
	if current == Expired {
		return errs.NewInvalidTransitionErrorWithCause(current.String(), target.String(),
			fmt.Errorf("package expired at %s", d.expiresAt.Format(time.RFC3339)))
	}

	next, err := current.Advance(target)
	if err != nil {
		return err
	}

	if last := d.lastStampedAt(); now.Before(last) {
		return errs.NewInvalidTransitionErrorWithCause(current.String(), target.String(),
			fmt.Errorf("%s is before the previous step at %s", now.Format(time.RFC3339), last.Format(time.RFC3339)))
	}

	stamp := now
	switch next { //nolint:exhaustive // Advance only returns forward steps
	case Preparing:
		expires := now.Add(ExpiryPeriod)
		d.preparedAt = &stamp
		d.expiresAt = &expires
		d.preparedBy = actor
	case Ready:
		d.readyAt = &stamp
	case Delivered:
		d.deliveredAt = &stamp
		d.deliveredBy = actor
	}

	d.status = next
	return nil
}

func (d *Delivery) expire(now time.Time) error {
	if !d.IsExpired(now) {
		return errs.NewInvalidTransitionErrorWithCause(d.status.String(), Expired.String(),
			errors.New("package is not past its expiry date"))
	}

	d.status = Expired
	return nil
}

func (d *Delivery) lastStampedAt() time.Time {
	last := d.approvedAt
	for _, ts := range []*time.Time{d.preparedAt, d.readyAt, d.deliveredAt} {
		if ts != nil && ts.After(last) {
			last = *ts
		}
	}
	return last
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setPersonaID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("persona id", err)
	}
	d.personaID = id
	return nil
}

func (d *Delivery) setFolio(folio string) error {
	folio = strings.TrimSpace(folio)
	if folio == "" {
		return errs.NewValueIsRequiredError("folio")
	}
	if n := utf8.RuneCountInString(folio); n > maxFolioLength {
		return errs.NewValueIsOutOfRangeError("folio length", n, 1, maxFolioLength)
	}
	d.folio = folio
	return nil
}

func (d *Delivery) setAidType(aidType AidType) error {
	if err := aidType.Validate(); err != nil {
		return err
	}
	d.aidType = aidType
	return nil
}

func (d *Delivery) setTeam(code team.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}
	d.team = code
	return nil
}

func (d *Delivery) setApprovedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("approved at")
	}
	d.approvedAt = at
	return nil
}

// setStatus checks that the stamps required by status are present.
func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	var missing []string
	if status != Approved {
		if d.preparedAt == nil && status != Expired {
			missing = append(missing, "prepared at")
		}
		if d.expiresAt == nil && d.preparedAt != nil {
			missing = append(missing, "expires at")
		}
	}
	if (status == Ready || status == Delivered) && d.readyAt == nil {
		missing = append(missing, "ready at")
	}
	if status == Delivered && d.deliveredAt == nil {
		missing = append(missing, "delivered at")
	}
	if len(missing) > 0 {
		return errs.NewValueIsInvalidErrorWithCause("status is inconsistent",
			fmt.Errorf("%s requires %s", status, strings.Join(missing, ", ")))
	}

	d.status = status
	return nil
}
