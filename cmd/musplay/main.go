package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/sagamusix/mod2mus/pkg/mod"
	"github.com/sagamusix/mod2mus/pkg/mus"
	"github.com/sagamusix/mod2mus/pkg/speaker"
)

const sampleRate = 48000

var noteNames = [12]string{"C-", "C#", "D-", "D#", "E-", "F-", "F#", "G-", "G#", "A-", "A#", "B-"}

func noteName(note byte) string {
	if note == 0 || note > 36 {
		return "..."
	}
	n := int(note) - 1
	return fmt.Sprintf("%s%d", noteNames[n%12], n/12+1)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("musplay - preview a MOD the way it sounds after MUS conversion")
		fmt.Printf("syntax: %s file.mod\n", os.Args[0])
		os.Exit(0)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fatal("error: cannot open input file")
	}
	defer f.Close()

	header, err := mod.LoadHeader(f)
	if err != nil {
		fatal("error: %v", err)
	}

	var rows [][]mus.Event
	restartRow := -1
	song, err := mus.ConvertTrace(header, f, func(order, row, ch int, ev mus.Event) {
		if ch == 0 {
			if order == int(header.RestartPos) && restartRow < 0 {
				restartRow = len(rows)
			}
			rows = append(rows, make([]mus.Event, header.NumChannels))
		}
		rows[len(rows)-1][ch] = ev
	})
	if err != nil {
		fatal("error: %v", err)
	}

	pcm, err := header.LoadSampleData(f)
	if err != nil {
		fatal("error: %v", err)
	}

	decodedRows := 0
	dec := mus.NewDecoder(song.Music, header.NumChannels)
	for {
		if _, err := dec.ReadRow(); err == io.EOF {
			break
		} else if err != nil {
			fatal("error: %v", err)
		}
		decodedRows++
	}

	player := mus.NewPlayer(sampleRate, header, rows, pcm, restartRow)
	if err := speaker.Init(sampleRate, sampleRate/100); err != nil {
		fatal("error: %v", err)
	}
	speaker.Play(player, nil)

	s, err := tcell.NewScreen()
	if err != nil {
		fatal("error: %v", err)
	}
	if err := s.Init(); err != nil {
		fatal("error: %v", err)
	}
	s.SetStyle(defStyle)
	s.Clear()

	quit := func() {
		speaker.Close()
		s.Fini()
		os.Exit(0)
	}

	go func() {
		for {
			s.Show()
			drawStatus(s, header, song, len(rows), decodedRows)
			drawSamples(s, header)
			drawRows(s, player)
			time.Sleep(time.Second / 30)
		}
	}()

	for {
		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				quit()
			}
			switch r := ev.Rune(); r {
			case 'q', 'Q':
				quit()
			case '1', '2', '3', '4':
				player.ToggleMute(int(r-'1'))
			}
		}
	}
}

func drawStatus(s tcell.Screen, header *mod.File, song *mus.Song, rows, decodedRows int) {
	drawText(s, 2, 0, 14, labelStyle, "mod2mus preview")
	drawText(s, 18, 0, 34, songStyle, header.Name)
	info := fmt.Sprintf("channels: %d  events: %d bytes  rows: %d (decoded %d)  restart: %d",
		header.NumChannels, len(song.Music), rows, decodedRows, song.RestartPos)
	drawText(s, 54, 0, 76, sampleStyle, info)
}

func drawSamples(s tcell.Screen, header *mod.File) {
	xPos, yPos := 1, 1
	width, height := 29, 33
	drawBox(s, xPos, yPos, xPos+width, yPos+height)
	xPos++
	yPos++
	for idx, sample := range header.Samples {
		drawText(s, xPos, yPos, width-2, sampleStyle,
			fmt.Sprintf("%02d %-22s %5d", idx+1, sample.Name, int(sample.Length)*2))
		yPos++
	}
}

func drawRows(s tcell.Screen, player *mus.Player) {
	x, y := 33, 1
	width, height := 18*4+8, 33
	drawBox(s, x, y, x+width, y+height)

	numRows := height - 2
	first := player.Row() - numRows/2
	if first < 0 {
		first = 0
	}

	for line := 0; line < numRows; line++ {
		rowIdx := first + line
		if rowIdx >= player.NumRows() {
			break
		}
		xPos := x + 1
		yPos := y + 1 + line

		style := sampleStyle
		if rowIdx == player.Row() {
			style = songStyle
		}
		drawText(s, xPos, yPos, 6, style, fmt.Sprintf("%05d", rowIdx))
		xPos += 6

		for _, ev := range player.RowEvents(rowIdx) {
			drawText(s, xPos, yPos, 1, style, "│")
			xPos++
			drawText(s, xPos, yPos, 4, style.Foreground(noteFgColour), noteName(ev.Note)+" ")
			xPos += 4
			if ev.Instr > 0 {
				drawText(s, xPos, yPos, 3, style.Foreground(instrFgColour), fmt.Sprintf("%02d ", ev.Instr))
			} else {
				drawText(s, xPos, yPos, 3, style, ".. ")
			}
			xPos += 3
			if ev.Command != mus.CmdNone {
				drawText(s, xPos, yPos, 6, style.Foreground(effectColour), fmt.Sprintf("%02x %02x", ev.Command, ev.Param))
			} else {
				drawText(s, xPos, yPos, 6, style, ".. ..")
			}
			xPos += 6
		}
	}
}
