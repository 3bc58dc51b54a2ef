package sentinel

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/google/uuid"

	"github.com/markmint/sentinel/internal/registry"
	"github.com/markmint/sentinel/internal/tokenutil"
)

// defaultRegistry holds the canonical instance of every sentinel minted by
// this process, keyed by identity token. Global so that serialization and
// copy paths can resolve instances without any handle threading.
var defaultRegistry = registry.New[uuid.UUID, *Sentinel]() //nolint:gochecknoglobals

// CompareFunc overrides a sentinel's ordering wholesale. It receives the
// raw operand and returns a cmp-style order, letting a sentinel bend
// ordering rules its payload alone couldn't express (like an
// always-greater marker).
type CompareFunc func(other any) (int, error)

// Opts are optional settings for a new sentinel which can be provided at
// creation time. The zero value (or a nil pointer) produces a plain named
// marker with no attributes and no ordered payload.
type Opts struct {
	// Attrs is a set of extra named attributes to attach to the sentinel,
	// readable through Sentinel.Attr. Values may be anything, including
	// funcs, which gives a sentinel behavior as well as data.
	Attrs map[string]any

	// Compare, if set, replaces payload-delegated ordering entirely.
	Compare CompareFunc

	// Logger is the structured logger used to emit a debug line when the
	// sentinel is minted.
	//
	// Defaults to a logger that discards everything.
	Logger *slog.Logger

	// Value is an ordered payload constructed with Tuple or Int. A
	// sentinel with a payload participates in ordinary ordering through
	// Compare while remaining unique by identity.
	Value Value
}

// Sentinel is a process-unique named marker value. Its identity lives in a
// token minted once per New call, so identity survives value copies and
// in-process serialization round trips; see Is.
//
// Sentinels are immutable after construction and safe for concurrent use.
// Pass them around by pointer. All methods are nil-safe: a nil sentinel
// prints as "<nil>", Is only nil, carries no attributes or payload, and
// isn't ordered against anything.
type Sentinel struct {
	attrs   map[string]any
	compare CompareFunc
	name    string
	serial  uint64
	token   uuid.UUID
	value   Value
}

// New mints a new sentinel. The returned value is a singleton: it compares
// identical only to itself (and to copies of itself), prints as name, and
// is registered so that serialization round trips within this process
// resolve back to it. Every call returns a distinct sentinel, including
// calls that share a name.
//
// Returns ErrNameRequired when name is empty.
func New(name string, opts *Opts) (*Sentinel, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if opts == nil {
		opts = &Opts{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	token, serial := tokenutil.Next()

	s := &Sentinel{
		attrs:   maps.Clone(opts.Attrs),
		compare: opts.Compare,
		name:    name,
		serial:  serial,
		token:   token,
		value:   opts.Value,
	}

	if err := defaultRegistry.Register(token, s); err != nil {
		return nil, err
	}

	logger.Debug("sentinel: minted new sentinel",
		slog.String("name", name),
		slog.Uint64("serial", serial),
		slog.String("token", token.String()))

	return s, nil
}

// MustNew is a version of New that panics on error, suitable for minting
// sentinels as package-level vars.
func MustNew(name string, opts *Opts) *Sentinel {
	s, err := New(name, opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the canonical sentinel instance for token, or false if
// this process never minted a sentinel with that token.
func Lookup(token uuid.UUID) (*Sentinel, bool) {
	return defaultRegistry.Lookup(token)
}

// Resolve returns the canonical instance for any copy of a sentinel,
// recovering pointer identity after a value copy or a decode into fresh
// memory. A nil sentinel resolves to nil.
func Resolve(s *Sentinel) *Sentinel {
	if s == nil {
		return nil
	}
	return s.Canonical()
}

// String returns exactly the sentinel's configured name.
func (s *Sentinel) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.name
}

// Token returns the sentinel's identity token, or uuid.Nil for a nil
// sentinel.
func (s *Sentinel) Token() uuid.UUID {
	if s == nil {
		return uuid.Nil
	}
	return s.token
}

// Serial returns the sentinel's creation serial: sentinels minted later in
// the process's lifetime have larger serials. Zero for a nil sentinel.
func (s *Sentinel) Serial() uint64 {
	if s == nil {
		return 0
	}
	return s.serial
}

// Is reports whether other denotes the same sentinel, comparing identity
// tokens rather than pointers. Identity is never based on name or payload
// contents: two sentinels minted with identical configuration are still
// distinct. Nil-safe; a nil sentinel Is only nil.
func (s *Sentinel) Is(other *Sentinel) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.token == other.token
}

// Attr returns the extra attribute attached under name at creation time.
func (s *Sentinel) Attr(name string) (any, bool) {
	if s == nil {
		return nil, false
	}
	val, ok := s.attrs[name]
	return val, ok
}

// Copy returns the sentinel itself: duplicating a singleton yields the
// singleton.
func (s *Sentinel) Copy() *Sentinel { return s }

// DeepCopy returns the sentinel itself, so structures deep-copied
// field-by-field keep referring to the one canonical instance.
func (s *Sentinel) DeepCopy() *Sentinel { return s }

// Canonical returns the canonical instance this sentinel was minted as, by
// registry lookup on its own token. For a sentinel obtained from New this
// is the receiver; for a value copy or decoded envelope it's the original
// instance.
func (s *Sentinel) Canonical() *Sentinel {
	if s == nil {
		return nil
	}
	if canonical, ok := defaultRegistry.Lookup(s.token); ok {
		return canonical
	}
	return s
}

// Value returns the sentinel's ordered payload, or nil when it was minted
// without one.
func (s *Sentinel) Value() Value {
	if s == nil {
		return nil
	}
	return s.value
}

// Compare orders the sentinel against other using its payload's rules: a
// tuple-payload sentinel orders against []any tuples, other tuple
// sentinels, and tuple Values; an integer-payload sentinel against Go
// integers and floats. The result is cmp-style. A Compare override
// supplied at creation wins over payload delegation.
//
// Ordering equality is not identity: a payload sentinel can order as 0
// against a value with equal contents that Is still distinguishes it from.
//
// Returns an error matching ErrNotOrdered when the sentinel has no payload
// or the operand's shape can't be ordered against it.
func (s *Sentinel) Compare(other any) (int, error) {
	if s == nil {
		return 0, fmt.Errorf("%w: nil sentinel", ErrNotOrdered)
	}
	if s.compare != nil {
		return s.compare(other)
	}
	if s.value == nil {
		return 0, fmt.Errorf("%w: sentinel %v has no ordered payload", ErrNotOrdered, s)
	}

	operand, err := coerceOperand(other)
	if err != nil {
		return 0, err
	}
	return s.value.Compare(operand)
}

// coerceOperand maps a raw comparison operand to a Value so payloads only
// ever order against their own kind.
func coerceOperand(other any) (Value, error) {
	switch other := other.(type) {
	case *Sentinel:
		if other == nil || other.value == nil {
			return nil, fmt.Errorf("%w: sentinel %v has no ordered payload", ErrNotOrdered, other)
		}
		return other.value, nil
	case Value:
		return other, nil
	case []any:
		return Tuple(other...)
	default:
		norm, err := normalizeElem(other)
		if err != nil {
			return nil, err
		}
		if tuple, ok := norm.(*tupleValue); ok {
			return tuple, nil
		}
		return &scalarValue{v: norm}, nil
	}
}
