package genealogy

import "fmt"

// Kind is a stable, switchable token identifying the class of an *Error.
type Kind string

const (
	// KindNotFound means an operation referenced an identifier not in
	// the store.
	KindNotFound Kind = "NotFound"
	// KindPolicyViolation means a proposed edge broke a TreeSettings
	// rule. See Reason for which one.
	KindPolicyViolation Kind = "PolicyViolation"
	// KindIntegrityViolation means the Validator rejected a
	// deserialized payload.
	KindIntegrityViolation Kind = "IntegrityViolation"
	// KindInvariant means an internal check (e.g. a proposed edge would
	// introduce a cycle) would have produced an inconsistent graph.
	KindInvariant Kind = "Invariant"
)

// Reason qualifies a KindPolicyViolation error.
type Reason string

const (
	ReasonMonogamy     Reason = "monogamy"
	ReasonMaxSpouses   Reason = "maxSpouses"
	ReasonSameSex      Reason = "sameSex"
	ReasonSingleParent Reason = "singleParent"
	ReasonMaxParents   Reason = "maxParents"
)

// Error is the single error type the engine returns. Errors are values
// with a discriminated Kind, never bare strings to parse.
type Error struct {
	Kind    Kind
	Reason  Reason
	Member  string
	Message string
}

func (e *Error) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s(%s): %s", e.Kind, e.Reason, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is supports errors.Is(err, &Error{Kind: KindNotFound}) style checks by
// comparing Kind (and Reason, when the target sets one).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != "" && t.Kind != e.Kind {
		return false
	}
	if t.Reason != "" && t.Reason != e.Reason {
		return false
	}
	return true
}

func errNotFound(id string) *Error {
	return &Error{Kind: KindNotFound, Member: id, Message: fmt.Sprintf("member not found: %s", id)}
}

func errPolicy(reason Reason, message string) *Error {
	return &Error{Kind: KindPolicyViolation, Reason: reason, Message: message}
}

func errIntegrity(message string) *Error {
	return &Error{Kind: KindIntegrityViolation, Message: message}
}

func errInvariant(message string) *Error {
	return &Error{Kind: KindInvariant, Message: message}
}

// IsNotFound reports whether err is a KindNotFound *Error.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsPolicyViolation reports whether err is a KindPolicyViolation *Error,
// optionally narrowed to a specific reason (pass "" to match any reason).
func IsPolicyViolation(err error, reason Reason) bool {
	e, ok := err.(*Error)
	if !ok || e.Kind != KindPolicyViolation {
		return false
	}
	return reason == "" || e.Reason == reason
}

// IsIntegrityViolation reports whether err is a KindIntegrityViolation
// *Error.
func IsIntegrityViolation(err error) bool { return isKind(err, KindIntegrityViolation) }

// IsInvariant reports whether err is a KindInvariant *Error.
func IsInvariant(err error) bool { return isKind(err, KindInvariant) }

func isKind(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}
