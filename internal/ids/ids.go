// Package ids generates unique, filesystem-safe experiment identifiers.
// Identifiers become directory names under the results root, so generation
// always checks the candidate against existing entries. The check is
// check-then-act with no cross-process lock; callers rely on the
// single-writer convention (docs/ARCHITECTURE.md § Identifier Generation).
package ids

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mesh-intelligence/expbox/pkg/types"
)

// Identifier styles.
const (
	StyleDatetime = "datetime"
	StyleDate     = "date"
	StyleSeq      = "seq"
	StyleRand     = "rand"
)

// Link styles controlling how id parts are joined.
const (
	LinkKebab = "kebab"
	LinkSnake = "snake"
)

// Default datetime layouts, e.g. "250124-1530" and "250124".
const (
	DefaultDatetimeLayout = "060102-1504"
	DefaultDateLayout     = "060102"
)

// Random token parameters. The alphabet omits characters that are easy to
// confuse when an id is read back from a terminal or a plot title
// (0/o, 1/l/i).
const (
	randAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"
	randLength   = 10
	randRetries  = 10
)

// Hooks overridable in tests.
var (
	now      = time.Now
	randIntN = rand.IntN
)

// invalidChars matches characters forbidden in directory names on POSIX
// and Windows systems.
var invalidChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// nonSlugChars matches everything Slugify replaces with '-'.
var nonSlugChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// dashRuns collapses repeated '-' produced by Slugify.
var dashRuns = regexp.MustCompile(`-{2,}`)

// Options controls identifier generation.
type Options struct {
	// Style is one of StyleDatetime, StyleDate, StyleSeq, StyleRand.
	// Empty defaults to StyleDatetime.
	Style string

	// Prefix and Suffix are slugified and joined around the core part.
	// Ignored by StyleSeq.
	Prefix string
	Suffix string

	// DatetimeLayout overrides the Go time layout for the datetime and
	// date styles.
	DatetimeLayout string

	// LinkStyle is LinkKebab ("-") or LinkSnake ("_"). Empty defaults
	// to LinkKebab.
	LinkStyle string
}

// EnsureSafe validates a candidate identifier for use as a directory name.
// Leading/trailing spaces and trailing dots are stripped. Returns the
// cleaned identifier, or an error wrapping ErrInvalidIdentifier.
func EnsureSafe(expID string) (string, error) {
	if invalidChars.MatchString(expID) {
		return "", fmt.Errorf("%w: %q contains forbidden characters", types.ErrInvalidIdentifier, expID)
	}
	expID = strings.TrimSpace(expID)
	expID = strings.TrimRight(expID, ". ")
	if expID == "" {
		return "", fmt.Errorf("%w: identifier is empty", types.ErrInvalidIdentifier)
	}
	return expID, nil
}

// Slugify normalizes text for use in identifier parts: lowercase, only
// [a-z0-9_-], runs of other characters become a single '-'. Returns "id"
// when nothing survives. Deliberately simple and deterministic.
func Slugify(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = nonSlugChars.ReplaceAllString(text, "-")
	text = dashRuns.ReplaceAllString(text, "-")
	text = strings.Trim(text, "-")
	if text == "" {
		return "id"
	}
	return text
}

// Validate cleans a caller-supplied candidate (explicit exp_id or the output
// of a custom generator) and checks it against existing boxes. No retry is
// performed on the caller's behalf.
func Validate(candidate, resultsRoot string) (string, error) {
	expID, err := EnsureSafe(candidate)
	if err != nil {
		return "", err
	}
	if exists(resultsRoot, expID) {
		return "", fmt.Errorf("%w: %q", types.ErrIdentifierCollision, expID)
	}
	return expID, nil
}

// Generate produces a new experiment identifier under the given options.
// The returned identifier does not collide with any existing top-level
// entry of the results root at the moment of generation.
func Generate(project, resultsRoot string, opts Options) (string, error) {
	sep := separator(opts.LinkStyle)

	style := opts.Style
	if style == "" {
		style = StyleDatetime
	}

	switch style {
	case StyleSeq:
		return generateSeq(project, resultsRoot, sep)
	case StyleRand:
		return generateRand(resultsRoot, sep, opts)
	case StyleDatetime, StyleDate:
		layout := opts.DatetimeLayout
		if layout == "" {
			layout = DefaultDatetimeLayout
			if style == StyleDate {
				layout = DefaultDateLayout
			}
		}
		return finish(resultsRoot, join(sep, opts, now().Format(layout)))
	default:
		return "", fmt.Errorf("%w: unknown id style %q", types.ErrInvalidIdentifier, style)
	}
}

// generateSeq scans existing boxes named <slug(project)><sep><NN> and emits
// the next number, zero-padded to at least two digits. Prefix and suffix
// are ignored for sequential ids.
func generateSeq(project, resultsRoot, sep string) (string, error) {
	slug := Slugify(project)
	pattern, err := regexp.Compile("^" + regexp.QuoteMeta(slug+sep) + `(\d+)$`)
	if err != nil {
		return "", fmt.Errorf("compiling sequence pattern: %w", err)
	}

	maxN := 0
	entries, err := os.ReadDir(resultsRoot)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("scanning results root: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m := pattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		// Unparsable numbers count as 0.
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > maxN {
			maxN = n
		}
	}

	return finish(resultsRoot, fmt.Sprintf("%s%s%02d", slug, sep, maxN+1))
}

// generateRand draws fixed-length tokens from the unambiguous alphabet,
// retrying on collision up to randRetries times.
func generateRand(resultsRoot, sep string, opts Options) (string, error) {
	for range randRetries {
		token := make([]byte, randLength)
		for i := range token {
			token[i] = randAlphabet[randIntN(len(randAlphabet))]
		}
		expID, err := EnsureSafe(join(sep, opts, string(token)))
		if err != nil {
			return "", err
		}
		if !exists(resultsRoot, expID) {
			return expID, nil
		}
	}
	return "", fmt.Errorf("%w: random id retries exhausted", types.ErrIdentifierCollision)
}

// join builds [prefix] core [suffix] with the given separator. Empty parts
// are dropped; prefix and suffix are slugified.
func join(sep string, opts Options, core string) string {
	var parts []string
	if opts.Prefix != "" {
		parts = append(parts, Slugify(opts.Prefix))
	}
	parts = append(parts, core)
	if opts.Suffix != "" {
		parts = append(parts, Slugify(opts.Suffix))
	}
	return strings.Join(parts, sep)
}

// finish validates the candidate and rejects collisions.
func finish(resultsRoot, candidate string) (string, error) {
	expID, err := EnsureSafe(candidate)
	if err != nil {
		return "", err
	}
	if exists(resultsRoot, expID) {
		return "", fmt.Errorf("%w: %q", types.ErrIdentifierCollision, expID)
	}
	return expID, nil
}

// exists reports whether the results root already has an entry named expID.
func exists(resultsRoot, expID string) bool {
	_, err := os.Stat(filepath.Join(resultsRoot, expID))
	return err == nil
}

// separator maps a link style to its join character. Kebab is the default.
func separator(linkStyle string) string {
	if linkStyle == LinkSnake {
		return "_"
	}
	return "-"
}
