package generator

// Stage is a step of the generation process. Stages only move forward.
type Stage int

const (
	Built       Stage = iota // sorted vials plus empty ones
	Shuffling                // random walk in progress
	Normalizing              // empty-count correction in progress
	Finalized                // exactly RequiredEmpty vials are empty
)

func (s Stage) String() string {
	switch s {
	case Built:
		return "built"
	case Shuffling:
		return "shuffling"
	case Normalizing:
		return "normalizing"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}
