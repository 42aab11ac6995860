// Package header provides the header core of HTTP and RTSP messages:
// case-insensitive name tokens, validation of raw header bytes and
// an ordered multi-valued header collection.
//
// # Names
//
// Header names are compared ignoring ASCII case with [Eq] and hashed with [Hash].
// Names equal by [Eq] always have the same hash, so lookups compare the hash first
// and fall back to the byte comparison only on a hash hit.
//
// A [Name] is an immutable token that keeps the name bytes and the hash computed once.
// Well-known HTTP and RTSP names (see the constants of this package) are built
// into a static table at package init; [Intern] reuses a token from this table
// when the bytes match exactly and [Known] resolves a name ignoring case:
//
//	n, ok := header.Known("content-length") // n.String() == "Content-Length"
//
// # Validation
//
// [ValidateName] rejects empty names, non-ASCII bytes, whitespace, line breaks and
// the separators ',', ':', ';', '='. [ValidateValue] accepts the legacy obs-fold
// continuation (CRLF followed by SP or HT) and rejects bare CR, a trailing line break,
// VT and FF:
//
//	header.ValidateValue("line1\r\n line2") // nil
//	header.ValidateValue("line1\rline2")    // ErrInvalidHeaderValue
//
// # Collection
//
// [Headers] is an ordered multimap. Names keep the casing they were inserted with,
// values keep the insertion order, and every mutation is validated before it
// changes the collection:
//
//	hdrs := header.New()
//	hdrs.Add(header.Host, "example.com")
//	hdrs.AddValues(header.TransferEncoding, "gzip", header.ValueChunked)
//	hdrs.Set("content-length", 42)
//	hdrs.Get("Content-Length") // "42", true
//
// Non-string values are converted with [FormatValue]: numbers and booleans use their
// decimal form and [time.Time] the HTTP date format (see [FormatDate]).
//
// [Empty] returns the shared read-only empty collection. A nil *Headers behaves the same.
// Mutators of a read-only collection return [ErrUnsupportedOperation].
//
// # Rendering
//
// [Headers.WriteTo] writes the fields in insertion order as "Name: value\r\n" lines,
// [Headers.Render] returns the same text as a string.
//
// # Concurrency
//
// Tokens, the well-known name table and the date codec are immutable and safe for
// concurrent use. A [Headers] collection belongs to one message and must not be
// mutated concurrently.
package header
