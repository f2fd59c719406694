package sdk

// Status is the host-facing result code of one call across the plugin
// boundary. The plugin is a loaded library, not a process: there are no
// exit codes, only per-call statuses plus a message retrievable through
// Table.LastError.
type Status int32

const (
	StatusSuccess      Status = 0
	StatusFailure      Status = 1
	StatusTimeout      Status = -1
	StatusEOF          Status = 2
	StatusNotSupported Status = 3
)

func (st Status) String() string {
	switch st {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusTimeout:
		return "timeout"
	case StatusEOF:
		return "eof"
	case StatusNotSupported:
		return "not supported"
	}
	return "unknown"
}

// StatusOf maps an in-plugin error to the status the host sees. Every
// error surfaces synchronously as StatusFailure; nothing is retried on
// the plugin side.
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	return StatusFailure
}
