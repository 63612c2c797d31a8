package phoneinput

import (
	"sync"
	"time"
)

// DefaultSearchDelay is the quiet period before a picker search runs.
const DefaultSearchDelay = 300 * time.Millisecond

const pickerSearchKey = "search"

// Picker backs a country selection list: it holds the allow-listed
// countries and re-filters them after the user stops typing.
type Picker struct {
	resolver  *Resolver
	scheduler *Scheduler
	language  Language
	delay     time.Duration
	onResults func(query string, results []CountryRecord)

	mu      sync.RWMutex
	query   string
	seq     uint64
	results []CountryRecord
}

// PickerOption configures a Picker
type PickerOption func(*Picker)

func WithPickerLanguage(lang Language) PickerOption {
	return func(p *Picker) {
		if lang.Valid() {
			p.language = lang
		}
	}
}

func WithSearchDelay(delay time.Duration) PickerOption {
	return func(p *Picker) {
		if delay >= 0 {
			p.delay = delay
		}
	}
}

func WithPickerScheduler(scheduler *Scheduler) PickerOption {
	return func(p *Picker) {
		if scheduler != nil {
			p.scheduler = scheduler
		}
	}
}

// WithResultsHandler registers a callback invoked after each search runs.
func WithResultsHandler(fn func(query string, results []CountryRecord)) PickerOption {
	return func(p *Picker) {
		p.onResults = fn
	}
}

func NewPicker(resolver *Resolver, opts ...PickerOption) *Picker {
	p := &Picker{
		resolver: resolver,
		language: DefaultLanguage,
		delay:    DefaultSearchDelay,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.scheduler == nil {
		p.scheduler = NewScheduler()
	}
	p.results = resolver.Countries()
	return p
}

// Search records text as the current query and schedules a filter run.
// A call made before the previous run fires replaces it.
func (p *Picker) Search(text string) {
	p.mu.Lock()
	p.query = text
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	p.scheduler.Schedule(pickerSearchKey, p.delay, func() {
		p.run(text, seq)
	})
}

// Flush runs the pending search immediately, if any.
func (p *Picker) Flush() {
	if !p.scheduler.Cancel(pickerSearchKey) {
		return
	}
	p.mu.RLock()
	query, seq := p.query, p.seq
	p.mu.RUnlock()
	p.run(query, seq)
}

// Query returns the latest text passed to Search.
func (p *Picker) Query() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.query
}

// Results returns the countries matched by the last completed search.
func (p *Picker) Results() []CountryRecord {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]CountryRecord, len(p.results))
	copy(out, p.results)
	return out
}

// Language returns the language rows are labelled in.
func (p *Picker) Language() Language {
	return p.language
}

// Close cancels pending searches.
func (p *Picker) Close() {
	p.scheduler.Stop()
}

// run stores the results for the search numbered seq. A run overtaken by a
// later Search is dropped.
func (p *Picker) run(query string, seq uint64) {
	results := p.resolver.SearchByText(query, p.language)

	p.mu.Lock()
	if seq != p.seq {
		p.mu.Unlock()
		return
	}
	p.results = results
	p.mu.Unlock()

	if p.onResults != nil {
		p.onResults(query, results)
	}
}
