package session

import (
	"sort"
	"time"
)

// Slot names an independent timer. Each slot holds at most one pending ticket.
type Slot int

const (
	SlotFrame     Slot = iota // next simulation tick
	SlotIdle                  // idle delay before the demo countdown
	SlotCountdown             // one step of the demo countdown
	slotCount
)

// String returns the slot name.
func (s Slot) String() string {
	switch s {
	case SlotFrame:
		return "frame"
	case SlotIdle:
		return "idle"
	case SlotCountdown:
		return "countdown"
	default:
		return "unknown"
	}
}

// Ticket identifies one scheduled callback. A ticket is stale once its slot
// has been re-armed or cancelled.
type Ticket struct {
	Slot Slot
	Seq  uint64
}

// Driver delivers a ticket back to the scheduler owner after a delay.
// Delivery of stale tickets is allowed; the owner filters them with Accept.
type Driver interface {
	Deliver(t Ticket, after time.Duration)
}

// Scheduler tracks the single pending ticket of every slot.
type Scheduler struct {
	driver  Driver
	seq     uint64
	pending [slotCount]uint64 // 0 means nothing pending
}

// NewScheduler creates a scheduler delivering through d.
func NewScheduler(d Driver) *Scheduler {
	return &Scheduler{driver: d}
}

// Arm cancels whatever is pending in slot and schedules a new ticket.
func (s *Scheduler) Arm(slot Slot, after time.Duration) Ticket {
	s.seq++
	t := Ticket{Slot: slot, Seq: s.seq}
	s.pending[slot] = t.Seq
	s.driver.Deliver(t, after)
	return t
}

// Cancel drops the pending ticket of slot, if any.
func (s *Scheduler) Cancel(slot Slot) {
	s.pending[slot] = 0
}

// CancelAll drops every pending ticket.
func (s *Scheduler) CancelAll() {
	for i := range s.pending {
		s.pending[i] = 0
	}
}

// Pending reports whether slot has a live ticket.
func (s *Scheduler) Pending(slot Slot) bool {
	return s.pending[slot] != 0
}

// Accept consumes t if it is the live ticket of its slot. Stale tickets
// are rejected.
func (s *Scheduler) Accept(t Ticket) bool {
	if t.Slot < 0 || t.Slot >= slotCount || t.Seq == 0 || s.pending[t.Slot] != t.Seq {
		return false
	}
	s.pending[t.Slot] = 0
	return true
}

// Delivery is a ticket waiting in a ManualDriver.
type Delivery struct {
	Ticket Ticket
	At     time.Duration
}

// ManualDriver queues deliveries against a virtual clock. Tests and the
// headless simulator advance it explicitly.
type ManualDriver struct {
	Now   time.Duration
	queue []Delivery
}

// Deliver implements Driver.
func (m *ManualDriver) Deliver(t Ticket, after time.Duration) {
	m.queue = append(m.queue, Delivery{Ticket: t, At: m.Now + after})
	sort.SliceStable(m.queue, func(i, j int) bool { return m.queue[i].At < m.queue[j].At })
}

// Len returns the number of queued deliveries, stale ones included.
func (m *ManualDriver) Len() int {
	return len(m.queue)
}

// Pop removes the earliest delivery and moves the clock to its time.
func (m *ManualDriver) Pop() (Ticket, bool) {
	if len(m.queue) == 0 {
		return Ticket{}, false
	}
	d := m.queue[0]
	m.queue = m.queue[1:]
	if d.At > m.Now {
		m.Now = d.At
	}
	return d.Ticket, true
}

// Run moves the clock forward by d, handing every delivery that comes due
// to fire in order. Deliveries scheduled by fire itself run too if they
// fall inside the window.
func (m *ManualDriver) Run(d time.Duration, fire func(Ticket)) {
	deadline := m.Now + d
	for len(m.queue) > 0 && m.queue[0].At <= deadline {
		t, _ := m.Pop()
		fire(t)
	}
	m.Now = deadline
}
