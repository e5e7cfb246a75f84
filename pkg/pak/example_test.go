package pak_test

import (
	"fmt"

	"github.com/joshuapare/pakkit/pkg/pak"
)

// ExampleUnpack extracts an archive with default settings.
func ExampleUnpack() {
	err := pak.Unpack("main.pak", "out", nil, nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
}

// ExampleExtractAll demonstrates extraction with options.
func ExampleExtractAll() {
	a, err := pak.Open("main.pak", &pak.OpenOptions{})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	err = pak.ExtractAll(a, "out", &pak.ExtractOptions{
		Jobs:            4,
		ContinueOnError: true,
		OnProgress: func(done, total int) {
			fmt.Printf("Progress: %d/%d\n", done, total)
		},
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// ExampleParse parses the smallest valid archive: header and terminator only.
func ExampleParse() {
	a, err := pak.Parse([]byte{0xC0, 0x4A, 0xC0, 0xBA, 0, 0, 0, 0, 0x80}, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(a.Len(), a.DataOffset())
	// Output: 0 9
}
