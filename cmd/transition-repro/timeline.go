package main

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/plastic-forks/live-view-transition-inconsistency/internal/scenario"
)

// printTimeline renders the recorded events as an aligned, colored table:
// one block per step, one line per target.
func printTimeline(sc *scenario.Scenario, events []scenario.Event) {
	p := termenv.ColorProfile()

	title := termenv.String(fmt.Sprintf("── %s ──", sc.Name)).Foreground(p.Color("#818cf8")).Bold()
	fmt.Println(title)

	for _, ev := range events {
		head := termenv.String(fmt.Sprintf("[%02d] %-28s", ev.Step, ev.Label)).Foreground(p.Color("#a78bfa"))
		meta := termenv.String(fmt.Sprintf("frame=%d t=%v", ev.Frame, ev.Elapsed)).Faint()
		fmt.Printf("%s %s\n", head, meta)

		for _, tgt := range ev.Targets {
			display := termenv.String("visible").Foreground(p.Color("#34d399"))
			if !tgt.Visible {
				display = termenv.String("hidden ").Foreground(p.Color("#f87171"))
			}
			tags := "(none)"
			if len(tgt.Tags) > 0 {
				tags = strings.Join(tgt.Tags, " ")
			}
			fmt.Printf("     %-12s %s  %s\n", tgt.ID, display, tags)
		}
	}
}
