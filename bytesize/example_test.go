package bytesize_test

import (
	"errors"
	"fmt"

	"bytesize/bytesize"
)

func ExampleByteSize_Humanize() {
	size := bytesize.Gigabytes(518)
	fmt.Println(size.Humanize(bytesize.FormatBinary))
	fmt.Println(size.Humanize(bytesize.FormatDecimal))
	fmt.Println(size.Humanize(bytesize.FormatSort))
	// Output:
	// 482.4 GiB
	// 518.0 GB
	// 482.4G
}

func ExampleParse() {
	for _, s := range []string{"500", "1.5KiB", "8P", "3 mb"} {
		b, err := bytesize.Parse(s)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%s = %d\n", s, b)
	}
	// Output:
	// 500 = 500
	// 1.5KiB = 1536
	// 8P = 8000000000000000
	// 3 mb = 3000000
}

func ExampleParse_error() {
	_, err := bytesize.Parse("12 XB")
	fmt.Println(err)
	fmt.Println(errors.Is(err, bytesize.ErrUnknownUnit))
	// Output:
	// bytesize: parsing "12 XB": unknown unit "XB"
	// true
}

func ExampleByteSize_Add() {
	total, err := bytesize.Megabytes(1).Add(bytesize.Kilobytes(100))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%v (%d bytes)\n", total, total)

	_, err = bytesize.Max.Add(1)
	fmt.Println(err)
	// Output:
	// 1.0 MiB (1100000 bytes)
	// byte size overflows uint64
}

func ExamplePad() {
	s := bytesize.ByteSize(357).String()
	fmt.Printf("|%s|\n", bytesize.Pad(s, 10, bytesize.AlignCenter, '-'))
	fmt.Printf("|%10v|\n", bytesize.ByteSize(357))
	// Output:
	// |--357 B---|
	// |     357 B|
}
