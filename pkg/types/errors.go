package types

import "errors"

// Identifier generation errors (docs/ARCHITECTURE.md § Identifier Generation).
var (
	// ErrIdentifierCollision is returned when a generated identifier matches
	// an existing entry of the results root, or when the random strategy
	// exhausts its retry budget.
	ErrIdentifierCollision = errors.New("experiment identifier collides with an existing box")

	// ErrInvalidIdentifier is returned when a candidate identifier is empty
	// or contains characters that are unsafe in directory names.
	ErrInvalidIdentifier = errors.New("invalid experiment identifier")
)

// Box layout and metadata errors.
var (
	// ErrLayout is returned when the box directory tree cannot be created,
	// e.g. the root exists as a regular file. Fatal during Init.
	ErrLayout = errors.New("cannot materialize box layout")

	// ErrCorruptMetadata is returned when meta.json is missing, unreadable,
	// or fails schema validation (exp_id, project, created_at required).
	ErrCorruptMetadata = errors.New("corrupt experiment metadata")

	// ErrExperimentNotFound is returned by Load when no box directory or
	// metadata file exists for the given identifier.
	ErrExperimentNotFound = errors.New("experiment not found")
)

// Logger backend errors.
var (
	// ErrBackendUnavailable is returned when the tracker backend is requested
	// but no tracker client is configured. The caller must pick the null
	// backend explicitly if logging is not wanted.
	ErrBackendUnavailable = errors.New("logger backend unavailable")

	// ErrLoggerClosed is returned by write operations after Close.
	ErrLoggerClosed = errors.New("logger is closed")

	// ErrUnknownLoggerKind is returned for an unrecognized backend name.
	ErrUnknownLoggerKind = errors.New("unknown logger kind")
)

// Lifecycle errors.
var (
	// ErrExperimentSaved is returned when Save is called on a context that
	// has already been saved. The box is sealed; load it again to reopen.
	ErrExperimentSaved = errors.New("experiment already saved")

	// ErrConfigLoad is returned when a configuration source cannot be read
	// or parsed into a mapping.
	ErrConfigLoad = errors.New("cannot load configuration")
)
