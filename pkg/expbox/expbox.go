// Package expbox is the public experiment lifecycle API: Init creates a new
// experiment box, Load reopens an existing one, and Save seals it. One
// Context object is passed to user code; everything an experiment produces
// lives under <results root>/<exp_id>/.
// See docs/ARCHITECTURE.md § Main Interface.
package expbox

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/mesh-intelligence/expbox/internal/box"
	"github.com/mesh-intelligence/expbox/internal/config"
	"github.com/mesh-intelligence/expbox/internal/ids"
	"github.com/mesh-intelligence/expbox/internal/logger"
	"github.com/mesh-intelligence/expbox/internal/metaio"
	"github.com/mesh-intelligence/expbox/pkg/types"
)

// DefaultResultsRoot is used when no results root is given.
const DefaultResultsRoot = "results"

// Hooks overridable in tests.
var (
	now       = time.Now
	writeMeta = metaio.Write
)

// IDGenerator is a caller-supplied identifier strategy. The returned
// candidate is validated (non-empty, filesystem-safe, non-colliding) but
// not retried on the caller's behalf.
type IDGenerator func(project, resultsRoot string) (string, error)

// InitOptions configures Init. Only Project is commonly required; the zero
// value of everything else picks the defaults (datetime id, kebab link,
// null logger, "results" root).
type InitOptions struct {
	// Project is the logical project name.
	Project string

	// Title and Purpose are short human-readable descriptions.
	Title   string
	Purpose string

	// Config is the configuration source: nil, a map[string]any, or a path
	// to a JSON/YAML file. A snapshot is stored under artifacts/.
	Config any

	// Logger selects the backend: LoggerNone (default), LoggerFile, or
	// LoggerTracker. The tracker backend requires Tracker to be set.
	Logger  string
	Tracker types.TrackerClient

	// ResultsRoot is the directory holding all boxes.
	ResultsRoot string

	// ExpID fixes the identifier explicitly; no generation is performed.
	ExpID string

	// IDStyle, Prefix, Suffix, DatetimeLayout and LinkStyle feed the id
	// generator when ExpID is empty. IDGenerator, when set, takes
	// precedence over IDStyle.
	IDStyle        string
	Prefix         string
	Suffix         string
	DatetimeLayout string
	LinkStyle      string
	IDGenerator    IDGenerator

	// EnvNote is a free-form note about the execution environment.
	EnvNote string
}

// LoadOptions configures Load.
type LoadOptions struct {
	// ResultsRoot is the directory holding all boxes.
	ResultsRoot string
}

// SaveOptions configures Save.
type SaveOptions struct {
	// FinalNote is a free-form closing comment stored in the metadata.
	FinalNote string
}

// Context is the experiment handle passed to training and analysis code.
// It is the only object user code needs: paths for output files, the loaded
// configuration, the metadata record, and the active logger backend.
//
// A Context is single-writer by convention: exactly one process drives
// Init/Logger/Save for a given box at a time.
type Context struct {
	// ExpID is the experiment identifier.
	ExpID string

	// Project is the logical project name.
	Project string

	// Paths is the box directory structure.
	Paths types.BoxPaths

	// Config is the loaded configuration mapping.
	Config map[string]any

	// Meta is the metadata record. Extra may be mutated freely until Save.
	Meta *types.Meta

	// Logger is the active metric/figure backend.
	Logger types.Logger

	saved bool
}

// Init creates a new experiment box: decides the identifier, materializes
// the directory tree, snapshots the configuration, starts the logger
// backend, and persists the initial metadata record.
//
// On error no usable context is returned. The layout step is idempotent, so
// retrying Init with the same explicit identifier will not fail on
// directories left behind by the failed attempt.
func Init(opts InitOptions) (*Context, error) {
	resultsRoot := opts.ResultsRoot
	if resultsRoot == "" {
		resultsRoot = DefaultResultsRoot
	}

	expID, err := decideExpID(opts, resultsRoot)
	if err != nil {
		return nil, err
	}

	paths, err := box.Materialize(filepath.Join(resultsRoot, expID))
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, err
	}
	snapshotRel := path.Join("artifacts", config.SnapshotFileName)
	if err := config.Snapshot(cfg, filepath.Join(paths.Artifacts, config.SnapshotFileName)); err != nil {
		return nil, err
	}

	kind := opts.Logger
	if kind == "" {
		kind = types.LoggerNone
	}
	lg, err := logger.New(kind, paths, opts.Tracker)
	if err != nil {
		return nil, err
	}

	meta := &types.Meta{
		ExpID:         expID,
		Project:       opts.Project,
		Title:         opts.Title,
		Purpose:       opts.Purpose,
		CreatedAt:     now(),
		GitCommit:     gitCommit(resultsRoot),
		ConfigPath:    snapshotRel,
		LoggerBackend: kind,
		EnvNote:       opts.EnvNote,
		Extra:         map[string]any{},
	}
	if tl, ok := lg.(*logger.TrackerLogger); ok {
		meta.RunID = tl.RunID()
	}

	if err := writeMeta(meta, paths.MetaPath()); err != nil {
		if cerr := lg.Close(); cerr != nil {
			return nil, errors.Join(err, cerr)
		}
		return nil, err
	}

	return &Context{
		ExpID:   expID,
		Project: opts.Project,
		Paths:   paths,
		Config:  cfg,
		Meta:    meta,
		Logger:  lg,
	}, nil
}

// decideExpID picks the experiment identifier: explicit > custom generator
// > configured style.
func decideExpID(opts InitOptions, resultsRoot string) (string, error) {
	if opts.ExpID != "" {
		return ids.Validate(opts.ExpID, resultsRoot)
	}
	if opts.IDGenerator != nil {
		candidate, err := opts.IDGenerator(opts.Project, resultsRoot)
		if err != nil {
			return "", fmt.Errorf("custom id generator: %w", err)
		}
		return ids.Validate(candidate, resultsRoot)
	}
	return ids.Generate(opts.Project, resultsRoot, ids.Options{
		Style:          opts.IDStyle,
		Prefix:         opts.Prefix,
		Suffix:         opts.Suffix,
		DatetimeLayout: opts.DatetimeLayout,
		LinkStyle:      opts.LinkStyle,
	})
}

// Load reopens an existing box from its persisted metadata. No identifier
// is generated and no directories are created. Returns an error wrapping
// ErrExperimentNotFound when the box or its metadata file does not exist.
//
// The file backend is re-attached in append mode when the metadata names
// it; tracker runs are not re-attached and fall back to the null backend.
// A box whose metadata already carries a completion timestamp loads as
// sealed: Save on it fails with ErrExperimentSaved.
func Load(expID string, opts LoadOptions) (*Context, error) {
	resultsRoot := opts.ResultsRoot
	if resultsRoot == "" {
		resultsRoot = DefaultResultsRoot
	}

	paths := types.NewBoxPaths(filepath.Join(resultsRoot, expID))
	if _, err := os.Stat(paths.MetaPath()); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", types.ErrExperimentNotFound, expID)
		}
		return nil, fmt.Errorf("inspecting box %s: %w", expID, err)
	}

	meta, err := metaio.Read(paths.MetaPath())
	if err != nil {
		return nil, err
	}

	cfg := map[string]any{}
	cfgRel := meta.ConfigPath
	if cfgRel == "" {
		cfgRel = path.Join("artifacts", config.SnapshotFileName)
	}
	cfgPath := filepath.Join(paths.Root, filepath.FromSlash(cfgRel))
	if _, err := os.Stat(cfgPath); err == nil {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
	}

	var lg types.Logger = logger.NewNull()
	if meta.LoggerBackend == types.LoggerFile {
		lg, err = logger.NewFile(paths)
		if err != nil {
			return nil, err
		}
	}

	return &Context{
		ExpID:   meta.ExpID,
		Project: meta.Project,
		Paths:   paths,
		Config:  cfg,
		Meta:    meta,
		Logger:  lg,
		saved:   meta.Finished(),
	}, nil
}

// Save finalizes the experiment: sets the completion timestamp, persists
// the metadata record, and closes the logger backend. The box is sealed
// afterwards; a second Save fails with ErrExperimentSaved.
//
// If the metadata write fails the context stays active and Save can be
// retried; the logger is only closed after a successful write.
func (c *Context) Save(opts SaveOptions) error {
	if c.saved {
		return fmt.Errorf("%w: %s", types.ErrExperimentSaved, c.ExpID)
	}

	finished := now()
	if finished.Before(c.Meta.CreatedAt) {
		finished = c.Meta.CreatedAt
	}
	if opts.FinalNote != "" {
		c.Meta.FinalNote = opts.FinalNote
	}
	c.Meta.FinishedAt = &finished

	// Full overwrite with the in-process record, which owns the metadata
	// for the lifetime of the run.
	if _, err := metaio.Update(c.Paths.MetaPath(), func(m *types.Meta) {
		*m = *c.Meta
	}); err != nil {
		c.Meta.FinishedAt = nil
		return err
	}

	c.saved = true
	return c.Logger.Close()
}

// Saved reports whether the box has been sealed by Save.
func (c *Context) Saved() bool {
	return c.saved
}
