package pkg_test

import (
	"bytes"
	"fmt"

	"hufftext/pkg"
)

func ExampleCompressBytes() {
	out, stats, err := pkg.CompressBytes([]byte("aab"), pkg.CompressOptions{})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", out)
	fmt.Println(stats.Symbols, stats.EncodedBits)

	back, err := pkg.DecompressBytes(out)
	if err != nil {
		panic(err)
	}
	fmt.Println(bytes.Equal(back, []byte("aab")))

	// Output:
	// "2\n97 2\n98 1\n\n110"
	// 2 3
	// true
}

func ExampleGenerateCodes() {
	t := pkg.CountFrequencies([]byte("abracadabra"))
	root, _ := pkg.BuildTree(t)
	codes := pkg.GenerateCodes(root)
	for _, e := range t.Entries() {
		fmt.Printf("%c %d %s\n", e.Symbol, e.Count, codes[e.Symbol])
	}
	// Output:
	// a 5 0
	// b 2 110
	// r 2 111
	// c 1 100
	// d 1 101
}
