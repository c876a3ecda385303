package models

// Phase is the stage of the latest submission of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Session is the UI state of one user. It lives only in memory.
type Session struct {
	Language            string
	Message             string
	Error               string
	Loading             bool
	Translation         string
	CorrectedText       string
	NotificationVisible bool

	Phase     Phase
	Seq       uint64
	NotifySeq uint64
}
