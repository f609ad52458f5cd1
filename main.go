package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/sagamusix/mod2mus/pkg/mod"
	"github.com/sagamusix/mod2mus/pkg/mus"
)

// Exit codes, one per failure class.
const (
	exitOK = iota
	exitInputError
	exitOutputError
	exitBadSignature
	exitTooManyOrders
)

func main() {
	if len(os.Args) != 3 {
		fmt.Println("mod2mus - convert ProTracker MOD to Psycho Pinball / Micro Machines 2 MUS")
		fmt.Printf("syntax: %s infile.mod outfile.mus\n", os.Args[0])
		os.Exit(exitOK)
	}

	fIn, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Println("error: cannot open input file")
		os.Exit(exitInputError)
	}
	defer fIn.Close()

	fOut, err := os.Create(os.Args[2])
	if err != nil {
		fmt.Println("error: cannot open output file")
		os.Exit(exitOutputError)
	}
	defer fOut.Close()

	header, err := mod.LoadHeader(fIn)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		switch errors.Cause(err) {
		case mod.ErrBadSignature:
			os.Exit(exitBadSignature)
		case mod.ErrTooManyOrders:
			os.Exit(exitTooManyOrders)
		default:
			os.Exit(exitInputError)
		}
	}

	song, err := mus.Convert(header, fIn)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(exitInputError)
	}

	if song.EmptyName() {
		fmt.Println("warning: song name is empty")
	}

	if err := song.WriteSong(fOut); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(exitOutputError)
	}
	if err := mus.WriteSamples(fOut, header, fIn); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(exitOutputError)
	}
}
