package main

import (
	"github.com/gdamore/tcell/v2"
)

var backgroundColour = tcell.GetColor("#282a36")
var boxFgColour = tcell.GetColor("#526A9E")
var songColour = tcell.GetColor("#F879C0")
var sampleFgColour = tcell.GetColor("#626A86")
var noteFgColour = tcell.GetColor("#F879C0")
var instrFgColour = tcell.GetColor("#ffb86c")
var effectColour = tcell.GetColor("#88DEEB")
var mutedColour = tcell.GetColor("#44475a")

var defStyle = tcell.StyleDefault.Background(backgroundColour).Foreground(tcell.ColorReset)
var boxStyle = tcell.StyleDefault.Background(backgroundColour).Foreground(boxFgColour)
var songStyle = tcell.StyleDefault.Background(backgroundColour).Bold(true).Foreground(songColour)
var sampleStyle = tcell.StyleDefault.Background(backgroundColour).Foreground(sampleFgColour)
var labelStyle = tcell.StyleDefault.Background(backgroundColour).Bold(true).Foreground(sampleFgColour)

func drawBox(s tcell.Screen, x1, y1, x2, y2 int) {
	for row := y1; row <= y2; row++ {
		for col := x1; col <= x2; col++ {
			s.SetContent(col, row, ' ', nil, boxStyle)
		}
	}

	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, '─', nil, boxStyle)
		s.SetContent(col, y2, '─', nil, boxStyle)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, boxStyle)
		s.SetContent(x2, row, tcell.RuneVLine, nil, boxStyle)
	}

	if y1 != y2 && x1 != x2 {
		s.SetContent(x1, y1, '╭', nil, boxStyle)
		s.SetContent(x2, y1, '╮', nil, boxStyle)
		s.SetContent(x1, y2, '╰', nil, boxStyle)
		s.SetContent(x2, y2, '╯', nil, boxStyle)
	}
}

func drawText(s tcell.Screen, x, y, width int, style tcell.Style, text string) {
	xPos := x
	for _, r := range []rune(text) {
		if xPos >= x+width {
			break
		}
		s.SetContent(xPos, y, r, nil, style)
		xPos++
	}
	for xPos < x+width {
		s.SetContent(xPos, y, ' ', nil, style)
		xPos++
	}
}
