package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text, color string
}{
	{`             _                `, "#818cf8"},
	{`   __ _ _ __| |__   ___  _ __ `, "#a78bfa"},
	{`  / _' | '__| '_ \ / _ \| '__|`, "#c084fc"},
	{` | (_| | |  | |_) | (_) | |   `, "#e879f9"},
	{`  \__,_|_|  |_.__/ \___/|_|   `, "#f472b6"},
}

// PrintBanner writes the ASCII art banner to w using the terminal's color profile.
func PrintBanner(w io.Writer) {
	WriteBanner(w, termenv.ColorProfile())
}

// WriteBanner writes the banner with an explicit color profile.
func WriteBanner(w io.Writer, p termenv.Profile) {
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
