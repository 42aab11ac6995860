package header

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/ioutil"
	"github.com/ghettovoice/httphdr/internal/util"
)

// Entry is a single header field as it appears on the wire.
type Entry struct {
	Name  Name
	Value string
}

// WriteTo writes the entry to w as "Name: value\r\n".
func (e Entry) WriteTo(w io.Writer) (int64, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Copy(e.Name)
	cw.WriteString(": ")
	cw.WriteString(e.Value)
	cw.WriteString("\r\n")
	return errtrace.Wrap2(cw.Result())
}

func (e Entry) String() string { return e.Name.String() + ": " + e.Value }

// Headers is an ordered collection of header fields.
// Names are matched ignoring ASCII case, a name may have any number of values,
// and the insertion order of all fields is kept.
//
// Every name and value is validated before it is stored, so a collection never holds
// malformed data. A failed mutation leaves the collection unchanged.
//
// Headers is not safe for concurrent mutation: it belongs to one message
// and is modified by one owner at a time.
//
// A nil *Headers and the collection returned by [Empty] are read-only and empty:
// every reader returns nothing, every mutator returns [ErrUnsupportedOperation].
type Headers struct {
	entries []Entry
	frozen  bool
}

// New returns an empty mutable collection.
func New() *Headers { return &Headers{} }

var empty = &Headers{frozen: true}

// Empty returns the shared read-only empty collection.
func Empty() *Headers { return empty }

// IsReadOnly reports whether the collection rejects mutations.
func (hs *Headers) IsReadOnly() bool { return hs == nil || hs.frozen }

func (hs *Headers) checkWritable() error {
	if hs.IsReadOnly() {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrUnsupportedOperation, "headers are read-only"))
	}
	return nil
}

// Get returns the first value of the named header.
func (hs *Headers) Get(name string) (string, bool) {
	if hs == nil {
		return "", false
	}
	h := Hash(name)
	for i := range hs.entries {
		if hs.entries[i].Name.match(h, name) {
			return hs.entries[i].Value, true
		}
	}
	return "", false
}

// Values returns all values of the named header in insertion order.
// The result is empty if the header is absent.
func (hs *Headers) Values(name string) []string {
	vals := []string{}
	if hs == nil {
		return vals
	}
	h := Hash(name)
	for i := range hs.entries {
		if hs.entries[i].Name.match(h, name) {
			vals = append(vals, hs.entries[i].Value)
		}
	}
	return vals
}

// Entries returns a copy of all fields in insertion order.
func (hs *Headers) Entries() []Entry {
	if hs == nil || len(hs.entries) == 0 {
		return []Entry{}
	}
	return slices.Clone(hs.entries)
}

// All returns an iterator over all fields in insertion order.
// The collection must not be modified during the iteration.
func (hs *Headers) All() iter.Seq2[Name, string] {
	return func(yield func(Name, string) bool) {
		if hs == nil {
			return
		}
		for _, e := range hs.entries {
			if !yield(e.Name, e.Value) {
				return
			}
		}
	}
}

// Names returns the distinct header names in order of first appearance,
// each spelled as it was first inserted.
func (hs *Headers) Names() []string {
	names := []string{}
	if hs == nil {
		return names
	}
	seen := make([]Name, 0, len(hs.entries))
	for _, e := range hs.entries {
		if slices.ContainsFunc(seen, func(n Name) bool { return n.match(e.Name.hash, e.Name.str) }) {
			continue
		}
		seen = append(seen, e.Name)
		names = append(names, e.Name.str)
	}
	return names
}

// Has reports whether the named header is present.
func (hs *Headers) Has(name string) bool {
	_, ok := hs.Get(name)
	return ok
}

// HasValue reports whether the named header has the given value.
// Values are compared exactly, or ignoring ASCII case if ignoreCase is true.
func (hs *Headers) HasValue(name, value string, ignoreCase bool) bool {
	if hs == nil {
		return false
	}
	h := Hash(name)
	for i := range hs.entries {
		if !hs.entries[i].Name.match(h, name) {
			continue
		}
		if v := hs.entries[i].Value; v == value || ignoreCase && Eq(v, value) {
			return true
		}
	}
	return false
}

func (hs *Headers) IsEmpty() bool { return hs.Len() == 0 }

// Len returns the number of fields.
func (hs *Headers) Len() int {
	if hs == nil {
		return 0
	}
	return len(hs.entries)
}

// Add appends a value to the named header.
// The value is converted with [FormatValue].
func (hs *Headers) Add(name string, value any) error {
	if err := hs.checkWritable(); err != nil {
		return errtrace.Wrap(err)
	}
	e, err := newEntry(name, value)
	if err != nil {
		return errtrace.Wrap(err)
	}
	hs.entries = append(hs.entries, e)
	return nil
}

// AddValues appends the values to the named header in order.
// It stops at the first nil value. Nothing is added if any value is invalid.
func (hs *Headers) AddValues(name string, values ...any) error {
	if err := hs.checkWritable(); err != nil {
		return errtrace.Wrap(err)
	}
	es, err := newEntries(name, values)
	if err != nil {
		return errtrace.Wrap(err)
	}
	hs.entries = append(hs.entries, es...)
	return nil
}

// AddHeaders appends all fields of other keeping their order.
// A nil other is empty, so nothing is added.
func (hs *Headers) AddHeaders(other *Headers) error {
	if err := hs.checkWritable(); err != nil {
		return errtrace.Wrap(err)
	}
	if other == nil {
		return nil
	}
	// fields of other are already validated
	hs.entries = append(hs.entries, slices.Clone(other.entries)...)
	return nil
}

// Set replaces all values of the named header with the value.
func (hs *Headers) Set(name string, value any) error {
	if err := hs.checkWritable(); err != nil {
		return errtrace.Wrap(err)
	}
	e, err := newEntry(name, value)
	if err != nil {
		return errtrace.Wrap(err)
	}
	hs.remove(e.Name.hash, name)
	hs.entries = append(hs.entries, e)
	return nil
}

// SetValues replaces all values of the named header with the values.
// Like [Headers.AddValues], it stops at the first nil value.
func (hs *Headers) SetValues(name string, values ...any) error {
	if err := hs.checkWritable(); err != nil {
		return errtrace.Wrap(err)
	}
	es, err := newEntries(name, values)
	if err != nil {
		return errtrace.Wrap(err)
	}
	hs.remove(Hash(name), name)
	hs.entries = append(hs.entries, es...)
	return nil
}

// SetHeaders replaces the whole content with the fields of other.
// A nil other is empty, so the collection is cleared.
func (hs *Headers) SetHeaders(other *Headers) error {
	if err := hs.checkWritable(); err != nil {
		return errtrace.Wrap(err)
	}
	if other == hs {
		return nil
	}
	clear(hs.entries)
	hs.entries = append(hs.entries[:0], other.Entries()...)
	return nil
}

// Remove deletes all values of the named header.
func (hs *Headers) Remove(name string) error {
	if err := hs.checkWritable(); err != nil {
		return errtrace.Wrap(err)
	}
	hs.remove(Hash(name), name)
	return nil
}

func (hs *Headers) remove(hash int32, name string) {
	kept := hs.entries[:0]
	for _, e := range hs.entries {
		if !e.Name.match(hash, name) {
			kept = append(kept, e)
		}
	}
	clear(hs.entries[len(kept):])
	hs.entries = kept
}

// Clear deletes all fields.
func (hs *Headers) Clear() error {
	if err := hs.checkWritable(); err != nil {
		return errtrace.Wrap(err)
	}
	clear(hs.entries)
	hs.entries = hs.entries[:0]
	return nil
}

func newEntry(name string, value any) (Entry, error) {
	if err := ValidateName(name); err != nil {
		return Entry{}, errtrace.Wrap(err)
	}
	v, err := FormatValue(value)
	if err != nil {
		return Entry{}, errtrace.Wrap(err)
	}
	if err := ValidateValue(v); err != nil {
		return Entry{}, errtrace.Wrap(err)
	}
	return Entry{Name: Intern(name), Value: v}, nil
}

func newEntries(name string, values []any) ([]Entry, error) {
	if err := ValidateName(name); err != nil {
		return nil, errtrace.Wrap(err)
	}
	n := Intern(name)
	es := make([]Entry, 0, len(values))
	for i, val := range values {
		if val == nil {
			break
		}
		v, err := FormatValue(val)
		if err != nil {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(err, "value #%d", i))
		}
		if err := ValidateValue(v); err != nil {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(err, "value #%d", i))
		}
		es = append(es, Entry{Name: n, Value: v})
	}
	return es, nil
}

// Clone returns a mutable copy of the collection.
// A clone of a read-only collection is empty and mutable.
func (hs *Headers) Clone() *Headers {
	if hs == nil {
		return nil
	}
	return &Headers{entries: slices.Clone(hs.entries)}
}

// Equal reports whether val holds the same fields in the same order.
// Names are compared ignoring ASCII case, values exactly.
func (hs *Headers) Equal(val any) bool {
	var other *Headers
	switch v := val.(type) {
	case Headers:
		other = &v
	case *Headers:
		other = v
	default:
		return false
	}

	if hs == other {
		return true
	} else if hs == nil || other == nil {
		return false
	}

	return slices.EqualFunc(hs.entries, other.entries, func(e1, e2 Entry) bool {
		return e1.Value == e2.Value && e1.Name.Equal(e2.Name)
	})
}

// WriteTo writes all fields to w in insertion order, each as "Name: value\r\n".
func (hs *Headers) WriteTo(w io.Writer) (int64, error) {
	if hs == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, e := range hs.entries {
		cw.Copy(e)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the wire form of all fields.
func (hs *Headers) Render() string {
	if hs == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hs.WriteTo(sb) //nolint:errcheck
	return sb.String()
}

func (hs *Headers) String() string { return hs.Render() }

// Format implements [fmt.Formatter] for custom formatting.
func (hs *Headers) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, hs.Render())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(hs.Render()))
		return
	default:
		if hs == nil {
			fmt.Fprint(f, "<nil>")
			return
		}
		fmt.Fprintf(f, fmt.FormatString(f, verb), hs.entries)
		return
	}
}

const logValueMaxLen = 128

// LogValue implements [slog.LogValuer] for structured logging.
func (hs *Headers) LogValue() slog.Value {
	if hs == nil {
		return slog.Value{}
	}
	attrs := make([]slog.Attr, 0, len(hs.entries))
	for _, e := range hs.entries {
		attrs = append(attrs, slog.String(e.Name.str, util.Ellipsis(e.Value, logValueMaxLen)))
	}
	return slog.GroupValue(attrs...)
}
