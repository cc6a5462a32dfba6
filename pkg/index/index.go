// Package index converts between the 1-based positions users type and the
// 0-based ids the registries store.
package index

import "fmt"

// Index is an immutable record position. The zero value is the first record.
type Index struct {
	zeroBased int
}

// FromZeroBased returns the Index for a 0-based id. It panics on negative input.
func FromZeroBased(i int) Index {
	if i < 0 {
		panic(fmt.Sprintf("index: negative zero-based index %d", i))
	}
	return Index{zeroBased: i}
}

// FromOneBased returns the Index for a 1-based position. It panics when i < 1.
func FromOneBased(i int) Index {
	if i < 1 {
		panic(fmt.Sprintf("index: one-based index %d is less than 1", i))
	}
	return Index{zeroBased: i - 1}
}

func (i Index) ZeroBased() int { return i.zeroBased }

func (i Index) OneBased() int { return i.zeroBased + 1 }

func (i Index) String() string { return fmt.Sprintf("%d", i.OneBased()) }

func (i Index) Equal(o Index) bool { return i == o }
