package generate

import (
	"time"

	"github.com/marioIncandeza/relay-settings/pkg/rdb"
)

// RelayResult is the outcome of one relay
type RelayResult struct {
	ID       string           `json:"id" yaml:"id"`
	Dir      string           `json:"dir" yaml:"dir"`
	WordBits int              `json:"word_bits" yaml:"word_bits"`
	Files    []rdb.FileResult `json:"files" yaml:"files"`
	Duration time.Duration    `json:"duration" yaml:"duration"`
}

// Totals sums line outcomes over the relay's files
func (r RelayResult) Totals() (matched, cleared, unmatched int) {
	return rdb.Summary{Files: r.Files}.Totals()
}

// Bytes is the total size of the rewritten files
func (r RelayResult) Bytes() int64 {
	var n int64
	for _, f := range r.Files {
		n += f.Bytes
	}
	return n
}

// Report describes one batch run
type Report struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	RelayType string        `json:"relay_type" yaml:"relay_type"`
	Family    string        `json:"family" yaml:"family"`
	Template  string        `json:"template" yaml:"template"`
	Output    string        `json:"output" yaml:"output"`
	Excluded  []string      `json:"excluded,omitempty" yaml:"excluded,omitempty"`
	Jobs      int           `json:"jobs" yaml:"jobs"`
	Started   time.Time     `json:"started" yaml:"started"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	Relays    []RelayResult `json:"relays" yaml:"relays"`
}

// Totals sums line outcomes over every relay
func (r *Report) Totals() (matched, cleared, unmatched int) {
	for _, relay := range r.Relays {
		m, c, u := relay.Totals()
		matched += m
		cleared += c
		unmatched += u
	}
	return
}

// Bytes is the total size of every rewritten file
func (r *Report) Bytes() int64 {
	var n int64
	for _, relay := range r.Relays {
		n += relay.Bytes()
	}
	return n
}
