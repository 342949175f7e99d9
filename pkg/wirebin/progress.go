package wirebin

// ProgressFunc is a caller-supplied function invoked synchronously during
// encode or decode, at configured byte intervals. It receives the current
// byte offset plus any extra arguments given to WithProgress. Returning an
// error aborts the whole operation with ErrCallback.
//
// The interval is evaluated once per value node, before its payload is
// processed, so a single payload larger than the interval completes
// without an intervening callback. Streams of many small values observe
// the configured cadence.
//
// The callback may start further encode or decode operations on unrelated
// data, but must not mutate the value tree or buffer currently being
// processed.
type ProgressFunc func(offset int, args ...any) error

// CallOption adjusts a single Serialize or Deserialize call.
type CallOption func(*progress)

// WithProgress installs a progress callback with optional extra arguments.
func WithProgress(fn ProgressFunc, args ...any) CallOption {
	return func(p *progress) {
		p.fn = fn
		p.args = args
	}
}

// WithInterval sets the number of processed bytes between progress callback
// invocations. The default is DefaultInterval.
func WithInterval(bytes int) CallOption {
	return func(p *progress) {
		p.interval = bytes
	}
}

// progress tracks callback cadence for one encode or decode call.
type progress struct {
	fn       ProgressFunc
	args     []any
	interval int
	last     int
}

func newProgress(opts []CallOption) *progress {
	p := &progress{interval: DefaultInterval}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// check invokes the callback when at least interval bytes were processed
// since the last invocation.
func (p *progress) check(off int) error {
	if p.fn == nil || off-p.last < p.interval {
		return nil
	}
	if err := p.fn(off, p.args...); err != nil {
		return wrapf(ErrCallback, "at offset <%d>: %v", off, err)
	}
	p.last = off
	return nil
}
