package main

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fudanchii/sizefmt"
	"github.com/fudanchii/sizefmt/internal/kickstart"
	"github.com/fudanchii/sizefmt/internal/sysstats"
)

type configStruct struct {
	base     int
	style    string
	watch    bool
	interval int
}

var (
	config = configStruct{}
)

func init() {
	flag.IntVar(&config.base, "b", 2, "Unit base, 2 for KiB/MiB or 10 for KB/MB.")
	flag.StringVar(&config.style, "s", "default", "Unit style: default, abbrev, abbrev-lower, full, full-lower.")
	flag.BoolVar(&config.watch, "w", false, "Keep printing memory stats until interrupted.")
	flag.IntVar(&config.interval, "i", 1000, "Refresh interval for watch mode, in milliseconds.")
}

type appHandler struct {
	renderer sysstats.Renderer
}

func main() {
	flag.Parse()

	renderer, err := rendererFromConfig()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	// With operands, act as a plain formatter for the given byte counts.
	if flag.NArg() > 0 {
		formatArgs(renderer)
		return
	}

	if !config.watch {
		printDetail(renderer)
		return
	}

	err = kickstart.Init(setupFn).
		Loop(runFn).
		Every(time.Duration(config.interval) * time.Millisecond).
		Exec()

	if err != nil {
		logrus.WithError(err).Fatal("watch mode failed")
	}
}

func setupFn(kctx *kickstart.Context[appHandler]) error {
	renderer, err := rendererFromConfig()
	if err != nil {
		return err
	}

	kctx.App = appHandler{renderer: renderer}

	return nil
}

func runFn(kctx *kickstart.Context[appHandler]) error {
	snap, err := sysstats.Collect()
	if err != nil {
		return err
	}

	fmt.Println(kctx.App.renderer.Line(snap))

	return nil
}

func formatArgs(renderer sysstats.Renderer) {
	for _, arg := range flag.Args() {
		count, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			logrus.WithError(err).Fatalf("not a byte count: %q", arg)
		}

		fmt.Println(sizefmt.Size(count).Format().WithBase(renderer.Base).WithStyle(renderer.Style).String())
	}
}

func printDetail(renderer sysstats.Renderer) {
	snap, err := sysstats.Collect()
	if err != nil {
		logrus.WithError(err).Fatal("collecting system stats")
	}

	for _, line := range renderer.Detail(snap) {
		fmt.Println(line)
	}
}

func rendererFromConfig() (sysstats.Renderer, error) {
	base, err := parseBase(config.base)
	if err != nil {
		return sysstats.Renderer{}, err
	}

	style, err := parseStyle(config.style)
	if err != nil {
		return sysstats.Renderer{}, err
	}

	return sysstats.Renderer{Base: base, Style: style}, nil
}

func parseBase(base int) (sizefmt.Base, error) {
	switch base {
	case 2:
		return sizefmt.Base2, nil
	case 10:
		return sizefmt.Base10, nil
	}

	return sizefmt.Base2, fmt.Errorf("unsupported base %d, use 2 or 10", base)
}

func parseStyle(style string) (sizefmt.Style, error) {
	switch style {
	case "default":
		return sizefmt.StyleDefault, nil
	case "abbrev":
		return sizefmt.StyleAbbreviated, nil
	case "abbrev-lower":
		return sizefmt.StyleAbbreviatedLowercase, nil
	case "full":
		return sizefmt.StyleFull, nil
	case "full-lower":
		return sizefmt.StyleFullLowercase, nil
	}

	return sizefmt.StyleDefault, fmt.Errorf("unknown style %q", style)
}
