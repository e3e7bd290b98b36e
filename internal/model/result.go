package model // package model holds the data shapes returned by the API

// Result is the envelope every handler responds with.  OK reports whether
// the call succeeded and Data carries an optional payload.  Data has no
// omitempty tag so an empty payload is still written as "data": null.
type Result struct {
	OK   bool `json:"ok"`
	Data any  `json:"data"`
}

// OK returns a successful Result wrapping data (which may be nil).
func OK(data any) Result {
	return Result{OK: true, Data: data}
}
