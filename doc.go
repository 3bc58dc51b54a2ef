/*
Package sentinel mints unique singleton marker values, kind of like the
builtin nil, but named, printable, and distinguishable from every other
value in the process by identity.

Sentinels are useful anywhere a program needs a placeholder that can never
collide with real data: a missing-entry marker for lookups that may
legitimately contain nil, a terminator leaf for trees, or a special
condition flag threaded through ordinary data structures.

# Minting sentinels

Each call to [New] (or [MustNew], the panicking variant suitable for
package-level vars) produces a fresh sentinel. Two sentinels are never
identical, even when they share a name:

	var Missing = sentinel.MustNew("Missing", nil)

	config := map[string]any{"stdout": nil, "stdin": 0}
	if get(config, "stderr", Missing) == Missing {
		// "stderr" was genuinely absent, not set to nil.
	}

A sentinel's textual representation is exactly its configured name, so
sentinels embedded in logs or error messages read cleanly.

# Identity

Identity lives in a per-call token, not in a Go pointer. [Sentinel.Is]
reports whether two references denote the same sentinel, and stays true
across value copies, [Sentinel.DeepCopy], and serialization round trips
within the process. A process-wide registry maps each token back to the
canonical instance; [Lookup] and [Resolve] recover it.

# Attributes and ordering

Extra attributes can be attached at creation via [Opts].Attrs, and a
sentinel can additionally delegate ordering to a payload constructed with
[Tuple] or [Int]:

	var AlwaysSmaller = sentinel.MustNew("AlwaysSmaller", &sentinel.Opts{
		Value: sentinel.MustTuple(nil, nil, nil),
	})

Such a sentinel participates in ordinary tuple ordering through
[Sentinel.Compare], while remaining distinguishable by identity from any
tuple with equal contents.

# Serialization

Sentinels implement [encoding/json.Marshaler], [encoding/json.Unmarshaler],
and the gob codec interfaces. A decoded sentinel resolves back to its
canonical instance, so Is holds after a round trip. Identity is only
meaningful within a single process; decoding an envelope minted by another
process fails with [UnknownTokenError].
*/
package sentinel
