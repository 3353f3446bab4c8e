package iblt_test

import (
	"fmt"
	"sort"

	"github.com/jpl-au/iblt"
)

func Example() {
	// A table sized for 20 entries of 4-byte values
	t := iblt.New(20, 4, iblt.Config{})

	// Store an entry
	t.Insert(7, []byte{0xde, 0xad, 0xbe, 0xef})

	// Look it up
	res, value := t.Get(7)
	fmt.Printf("%v %x\n", res, value)
	// Output: Found deadbeef
}

func ExampleIBLT_Get() {
	t := iblt.New(20, 4, iblt.Config{})
	t.Insert(1, []byte{1, 1, 1, 1})

	// A key that was never inserted
	res, _ := t.Get(42)
	fmt.Println(res)
	// Output: NotPresent
}

func ExampleIBLT_ListEntries() {
	t := iblt.New(20, 4, iblt.Config{})
	t.Insert(1, []byte{0x10, 0x10, 0x10, 0x10})
	t.Insert(2, []byte{0x20, 0x20, 0x20, 0x20})
	t.Insert(3, []byte{0x30, 0x30, 0x30, 0x30})

	positive, _, ok := t.ListEntries()
	sort.Slice(positive, func(i, j int) bool { return positive[i].Key < positive[j].Key })
	for _, e := range positive {
		fmt.Printf("%d: %x\n", e.Key, e.Value)
	}
	fmt.Println("complete:", ok)
	// Output: 1: 10101010
	// 2: 20202020
	// 3: 30303030
	// complete: true
}

func ExampleIBLT_Subtract() {
	// Two peers each hold a set; neither wants to send its full
	// contents. Each builds an IBLT of the same shape, one side
	// subtracts, and the difference decodes both directions at once.
	a := iblt.New(20, 4, iblt.Config{})
	a.Insert(1, []byte{1, 1, 1, 1})
	a.Insert(2, []byte{2, 2, 2, 2})
	a.Insert(3, []byte{3, 3, 3, 3})

	b := iblt.New(20, 4, iblt.Config{})
	b.Insert(2, []byte{2, 2, 2, 2})
	b.Insert(3, []byte{3, 3, 3, 3})
	b.Insert(4, []byte{4, 4, 4, 4})

	c, _ := a.Subtract(b)
	positive, negative, _ := c.ListEntries()
	for _, e := range positive {
		fmt.Println("only in a:", e.Key)
	}
	for _, e := range negative {
		fmt.Println("only in b:", e.Key)
	}
	// Output: only in a: 1
	// only in b: 4
}

func ExampleKeyFromString() {
	t := iblt.New(20, 4, iblt.Config{})

	// Callers with string identifiers fold them to uint64 keys first
	key := iblt.KeyFromString("docs/readme.md")
	t.Insert(key, []byte{0xca, 0xfe, 0xf0, 0x0d})

	res, value := t.Get(key)
	fmt.Printf("%v %x\n", res, value)
	// Output: Found cafef00d
}

func ExampleConfig() {
	// Custom configuration
	cfg := iblt.Config{
		CheckMode: iblt.CheckModeWide64, // ~2^-64 false-pure rate
		Prefilter: true,                 // fast NotPresent answers
	}

	t := iblt.New(20, 4, cfg)
	t.Insert(9, []byte{9, 9, 9, 9})

	res, _ := t.Get(9)
	fmt.Println(res)
	// Output: Found
}
