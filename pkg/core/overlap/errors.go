package overlap

import "errors"

// Sentinel errors for family construction and input handling.
var (
	// ErrInvalidMember is returned by [Family.AddSet] when a member falls
	// outside [0, GroundSize).
	ErrInvalidMember = errors.New("overlap: member outside ground set")

	// ErrDuplicateMember is returned by [Family.AddSet] when a set repeats
	// an element.
	ErrDuplicateMember = errors.New("overlap: duplicate member in set")

	// ErrInputParse is returned by input-file readers (see package
	// familyio) when the whitespace-integer format is malformed. Defined
	// here so parser errors can be tested with errors.Is against the same
	// sentinel family as the rest of this package.
	ErrInputParse = errors.New("overlap: malformed input")

	// ErrConsistency is returned by higher-level runners (see package
	// runner) when two component labelings of the same family disagree.
	// Never returned by this package directly.
	ErrConsistency = errors.New("overlap: component labelings disagree")
)
