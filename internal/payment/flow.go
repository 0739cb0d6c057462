// Package payment implements the VIP checkout wizard: plan selection, the
// QR/reference step, and the simulated verification that promotes the user.
// There is deliberately no rejected-payment branch; verification is a timed
// simulation that always succeeds once a reference is submitted.
package payment

import (
	"errors"
	"strings"
	"sync"
	"time"
)

type Step string

const (
	StepSelection Step = "selection"
	StepQR        Step = "qr"
	StepVerifying Step = "verifying"
)

// DefaultVerifyDelay matches the frontend's verification animation.
const DefaultVerifyDelay = 4500 * time.Millisecond

type Plan struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Period   string   `json:"period"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular,omitempty"`
}

var Plans = []Plan{
	{
		Name:     "PRO MONTHLY",
		Price:    "₹99",
		Period:   "MONTH",
		Features: []string{"Direct Mirrors", "No Popups", "VIP Badge"},
	},
	{
		Name:     "PLATINUM VIP",
		Price:    "₹299",
		Period:   "YEAR",
		Features: []string{"4K Original Masters", "Parallel Downloading", "Dedicated Support", "Early Access"},
		Popular:  true,
	},
	{
		Name:     "ELITE FOREVER",
		Price:    "₹999",
		Period:   "LIFETIME",
		Features: []string{"Ultimate Access", "Beta Testing", "Custom Requests", "Cloud Backup"},
	},
}

var (
	ErrEmptyReference = errors.New("please enter the transaction id/reference number from your upi app")
	ErrUnknownPlan    = errors.New("unknown plan")
	ErrWrongStep      = errors.New("operation not valid in current step")
)

// Flow is one checkout wizard. Transitions are strictly sequential within a
// lifetime; Open and Close discard all progress. The success callback fires
// exactly once per completed verification, and never after Close.
type Flow struct {
	mu        sync.Mutex
	step      Step
	plan      string
	reference string

	// gen invalidates in-flight verification timers when the wizard is
	// torn down mid-delay.
	gen   int
	delay time.Duration

	onSuccess func(plan string)
}

func NewFlow(onSuccess func(plan string)) *Flow {
	return &Flow{
		step:      StepSelection,
		delay:     DefaultVerifyDelay,
		onSuccess: onSuccess,
	}
}

// SetVerifyDelay overrides the simulated verification time. Tests shorten
// it; production keeps the default.
func (f *Flow) SetVerifyDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delay = d
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

func (f *Flow) SelectedPlan() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.plan
}

// Open resets the wizard for a fresh modal lifetime.
func (f *Flow) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

// Close discards the wizard state. Closing while a verification delay is
// pending cancels it: the success callback will not fire for a disposed
// session.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Flow) reset() {
	f.gen++
	f.step = StepSelection
	f.plan = ""
	f.reference = ""
}

func (f *Flow) SelectPlan(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepSelection {
		return ErrWrongStep
	}
	for _, p := range Plans {
		if p.Name == name {
			f.plan = name
			f.step = StepQR
			return nil
		}
	}
	return ErrUnknownPlan
}

// Back returns from the QR step to plan selection. There is no way back out
// of verifying except Close.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepQR {
		return ErrWrongStep
	}
	f.step = StepSelection
	f.plan = ""
	return nil
}

// StartVerification validates the user-entered reference and enters the
// verifying step. An empty or whitespace reference is rejected locally with
// no state change. Once entered, verification completes after a fixed delay
// and invokes the success callback before the wizard resets, so the caller's
// role upgrade and persistence land before the modal goes away.
func (f *Flow) StartVerification(reference string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepQR {
		return ErrWrongStep
	}
	if strings.TrimSpace(reference) == "" {
		return ErrEmptyReference
	}

	f.reference = strings.TrimSpace(reference)
	f.step = StepVerifying
	gen := f.gen
	time.AfterFunc(f.delay, func() { f.finish(gen) })
	return nil
}

func (f *Flow) finish(gen int) {
	f.mu.Lock()
	if gen != f.gen {
		// Wizard was closed or reopened while the delay ran.
		f.mu.Unlock()
		return
	}
	// Commit point: invalidate the generation first so a racing Close
	// cannot produce a second outcome for this verification.
	f.gen++
	plan := f.plan
	cb := f.onSuccess
	f.mu.Unlock()

	if cb != nil {
		cb(plan)
	}

	// Side effects have landed; now the modal may come down.
	f.mu.Lock()
	f.step = StepSelection
	f.plan = ""
	f.reference = ""
	f.mu.Unlock()
}
