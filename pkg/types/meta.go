// Experiment metadata record, persisted as meta.json in the box root.
// See docs/ARCHITECTURE.md § Metadata Store.
package types

import (
	"fmt"
	"time"
)

// Meta is the durable description of one experiment. The on-disk meta.json
// copy is the authoritative cross-process representation; in-process the
// record is owned exclusively by the experiment context.
//
// ExpID and CreatedAt are set exactly once at Init and never change.
// FinishedAt is set exactly once at Save. Extra may be mutated freely by
// caller code between Init and Save.
type Meta struct {
	// ExpID is the experiment identifier, used as the directory name under
	// the results root.
	ExpID string `json:"exp_id"`

	// Project is the logical project name (free-form string).
	Project string `json:"project"`

	// Title is a short human-readable title (optional).
	Title string `json:"title,omitempty"`

	// Purpose is a short description of why the experiment exists (optional).
	Purpose string `json:"purpose,omitempty"`

	// CreatedAt is the timestamp of initialization (RFC 3339).
	CreatedAt time.Time `json:"created_at"`

	// FinishedAt is the timestamp of finalization; nil until Save.
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	// GitCommit is the commit hash captured at initialization, when the
	// results root lives inside a git work tree. Best effort; may be empty.
	GitCommit string `json:"git_commit,omitempty"`

	// ConfigPath is the box-relative path to the configuration snapshot.
	ConfigPath string `json:"config_path,omitempty"`

	// LoggerBackend is the backend selected at Init: "none", "file", or
	// "tracker". Load uses it to re-attach the file backend.
	LoggerBackend string `json:"logger_backend,omitempty"`

	// RunID is the tracker run identifier, set when the tracker backend
	// starts a run. Empty for the null and file backends.
	RunID string `json:"run_id,omitempty"`

	// EnvNote is a free-form note about the execution environment.
	EnvNote string `json:"env_note,omitempty"`

	// FinalNote is a free-form closing comment about the result.
	FinalNote string `json:"final_note,omitempty"`

	// Extra holds caller extensions: integration URLs, tags, notes. Values
	// must be JSON-serializable (string, number, bool, nil, nested mapping).
	Extra map[string]any `json:"extra"`
}

// Validate checks that the required metadata fields are present.
// Returns an error wrapping ErrCorruptMetadata on failure.
func (m *Meta) Validate() error {
	if m.ExpID == "" {
		return fmt.Errorf("%w: missing exp_id", ErrCorruptMetadata)
	}
	if m.Project == "" {
		return fmt.Errorf("%w: missing project", ErrCorruptMetadata)
	}
	if m.CreatedAt.IsZero() {
		return fmt.Errorf("%w: missing created_at", ErrCorruptMetadata)
	}
	return nil
}

// Finished reports whether the experiment has been finalized.
func (m *Meta) Finished() bool {
	return m.FinishedAt != nil
}
