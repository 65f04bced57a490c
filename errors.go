package oledcounter

// Code is a stable error identifier. It is comparable, allocation-free and implements error.
type Code string

func (c Code) Error() string { return string(c) }

const (
	// RateOutOfRange is returned for a frame rate of zero or above MaxFrameRate. Callers are
	// expected to substitute DefaultFrameRate and retry rather than give up.
	RateOutOfRange Code = "rate_out_of_range"
	// PeripheralInit means a display, timer or bus could not be brought up. There is no recovery
	// path; the firmware halts.
	PeripheralInit Code = "peripheral_init"
	// TransientDriver is a single failed peripheral call. It is logged and the previous
	// configuration stays in effect.
	TransientDriver Code = "transient_driver"
	NotSupported    Code = "not_supported"
	NotInitialized  Code = "not_initialized"
)

// Error keeps an operation name and an optional cause alongside a Code.
type Error struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *Error) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Code() Code { return e.C }

// Is lets errors.Is match an *Error against its bare Code.
func (e *Error) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// CodeOf extracts a Code from err. Errors that carry no code report TransientDriver, since
// anything a peripheral returns at runtime is treated as transient.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return TransientDriver
}

func newError(c Code, op, msg string, err error) error {
	return &Error{C: c, Op: op, Msg: msg, Err: err}
}
