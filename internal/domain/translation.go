package domain

// OutcomeKind tells how a translation request ended
type OutcomeKind int

const (
	OutcomeTranslated OutcomeKind = iota
	OutcomeAlreadyInTarget
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeTranslated:
		return "translated"
	case OutcomeAlreadyInTarget:
		return "already_in_target"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FailureStage is the gateway call that failed
type FailureStage string

const (
	StageDetect    FailureStage = "detect"
	StageTranslate FailureStage = "translate"
)

// TranslationFailure describes a failed gateway call
type TranslationFailure struct {
	Stage  FailureStage
	Reason string
	Err    error
}

// TranslationOutcome is the result of one translate procedure.
// It is never stored.
type TranslationOutcome struct {
	Kind       OutcomeKind
	SourceCode string
	Target     Language
	Original   string
	Translated string
	Failure    *TranslationFailure
}
