package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// ElementList is the shared ordinal scale of an enumeration attribute.
// Two enumeration fields are only mutually meaningful when their element
// lists match structurally, which is verified through a hash over the
// ordered, Unicode-normalized labels.
type ElementList struct {
	elements []string
	index    map[string]int
	hash     uint64
}

// NewElementList creates an element list from ordered labels. Labels are
// NFC-normalized before hashing so visually identical labels produce the
// same structural hash regardless of their Unicode encoding.
func NewElementList(elements []string) (*ElementList, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("element list must not be empty: %w", ErrInvalidValue)
	}

	index := make(map[string]int, len(elements))
	h := sha256.New()
	var lenBuf [8]byte
	for i, e := range elements {
		normalized := norm.NFC.String(e)
		if _, dup := index[normalized]; dup {
			return nil, fmt.Errorf("duplicate element %q: %w", e, ErrInvalidValue)
		}
		index[normalized] = i

		// Length-prefix each label so ["ab","c"] and ["a","bc"] hash apart.
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(normalized)))
		h.Write(lenBuf[:])
		h.Write([]byte(normalized))
	}

	sum := h.Sum(nil)
	return &ElementList{
		elements: append([]string(nil), elements...),
		index:    index,
		hash:     binary.BigEndian.Uint64(sum[:8]),
	}, nil
}

// Size returns the number of elements in the list.
func (l *ElementList) Size() int { return len(l.elements) }

// Element returns the label at the given ordinal position.
func (l *ElementList) Element(i int) (string, error) {
	if i < 0 || i >= len(l.elements) {
		return "", &IndexError{Kind: "element", Index: i, Size: len(l.elements)}
	}
	return l.elements[i], nil
}

// Elements returns a copy of the ordered labels.
func (l *ElementList) Elements() []string {
	return append([]string(nil), l.elements...)
}

// IndexOf returns the ordinal position of a label, or -1 when the label
// is not part of the scale. Lookup normalizes the query the same way the
// list was normalized at construction.
func (l *ElementList) IndexOf(element string) int {
	if i, ok := l.index[norm.NFC.String(element)]; ok {
		return i
	}
	return -1
}

// Hash returns the structural hash of the ordered labels.
func (l *ElementList) Hash() uint64 { return l.hash }

// HasEqualHash reports whether two element lists are structurally
// identical.
func (l *ElementList) HasEqualHash(other *ElementList) bool {
	return other != nil && l.hash == other.hash
}
