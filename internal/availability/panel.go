package availability

import "sync"

type PanelState string

const (
	StateIdle         PanelState = "idle"
	StatePrompt       PanelState = "prompt"
	StateLoading      PanelState = "loading"
	StateAvailable    PanelState = "available"
	StateUnavailable  PanelState = "unavailable"
	StateRejected     PanelState = "rejected"
	StateNetworkError PanelState = "network_error"
)

type Autofill struct {
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	DurationHours int64  `json:"duration_hours"`
}

type Snapshot struct {
	State       PanelState `json:"state"`
	Message     string     `json:"message,omitempty"`
	BookedSlots []string   `json:"booked_slots,omitempty"`
	Autofill    *Autofill  `json:"autofill,omitempty"`
}

// Panel is a display model of the result area plus the booking form fields
// it auto-fills. Writers are not ordered: the last one to land wins.
type Panel struct {
	mu   sync.Mutex
	snap Snapshot
}

func NewPanel() *Panel {
	return &Panel{snap: Snapshot{State: StateIdle}}
}

func (p *Panel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.snap
	if s.BookedSlots != nil {
		s.BookedSlots = append([]string(nil), s.BookedSlots...)
	}
	if s.Autofill != nil {
		a := *s.Autofill
		s.Autofill = &a
	}
	return s
}

func (p *Panel) set(state PanelState, msg string, slots []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snap.State = state
	p.snap.Message = msg
	p.snap.BookedSlots = slots
}

func (p *Panel) Prompt(msg string) { p.set(StatePrompt, msg, nil) }

func (p *Panel) Loading() { p.set(StateLoading, "", nil) }

func (p *Panel) Available(msg string) { p.set(StateAvailable, msg, nil) }

func (p *Panel) Unavailable(msg string, bookedSlots []string) {
	var slots []string
	if len(bookedSlots) > 0 {
		slots = append(slots, bookedSlots...)
	}
	p.set(StateUnavailable, msg, slots)
}

func (p *Panel) Rejected(msg string) { p.set(StateRejected, msg, nil) }

func (p *Panel) NetworkError(msg string) { p.set(StateNetworkError, msg, nil) }

func (p *Panel) Fill(date, startTime string, durationHours int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snap.Autofill = &Autofill{Date: date, StartTime: startTime, DurationHours: durationHours}
}
