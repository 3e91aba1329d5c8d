package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`   ___ ___  _ __ ___  _ __   ___  ___  ___ _ __ `, "#818cf8"},
	{`  / __/ _ \| '_ ' _ \| '_ \ / _ \/ __|/ _ \ '__|`, "#a78bfa"},
	{` | (_| (_) | | | | | | |_) | (_) \__ \  __/ |   `, "#c084fc"},
	{`  \___\___/|_| |_| |_| .__/ \___/|___/\___|_|   `, "#e879f9"},
	{`                     |_|                         `, "#f472b6"},
}

// PrintBanner writes the composer banner to w, colored when the terminal allows it.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, out.String(line.text).Foreground(out.Color(line.color)))
	}
	fmt.Fprintln(w, "  Welcome to the Software Configuration Tool!")
	fmt.Fprintln(w)
}
