package main

import (
	"beadchain"
	"beadchain/modes"
	"beadchain/modes/debug"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
)

func main() {
	var (
		pngDir    = flag.String("png", "", "write eigenfrequency, amplitude and mode plots to this directory")
		framesDir = flag.String("frames", "", "write animation frames to this directory")
		htmlFile  = flag.String("html", "", "write an interactive chart page to this file")
		jsonFile  = flag.String("json", "", "write the sampled record as json to this file")
		csvFile   = flag.String("csv", "", "write sampled bead displacements as csv to this file")
		serve     = flag.String("serve", "", "serve the chart page on this address")
		fps       = flag.Float64("fps", 30, "animation frames per second")
		duration  = flag.Float64("duration", 5, "animation length in seconds")
		timeScale = flag.Float64("timescale", 1, "animation speed, 1 plays at real speed")
		zero      = flag.String("zero", "reject", "zero-frequency modes: reject or static")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] params.txt\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	var zeroMode modes.ZeroFrequency
	switch *zero {
	case "reject":
		zeroMode = modes.ZeroReject
	case "static":
		zeroMode = modes.ZeroStatic
	default:
		log.Fatalf("unknown zero-frequency policy %q", *zero)
	}

	chain := beadchain.NewChain(nil)
	filename := flag.Arg(flag.NArg() - 1)
	log.Printf("importing data from %s", filename)
	if err := chain.Load(filename); err != nil {
		log.Fatal(err)
	}
	log.Printf("solving %s with %d beads", chain.Kind(), chain.NumBeads())
	res, err := chain.Solve(func(s *modes.Solver) {
		s.Zero = zeroMode
	})
	if err != nil {
		log.Fatal(err)
	}
	res.Print(os.Stdout)

	if *pngDir != "" || *framesDir != "" {
		p, err := chain.Plot(debug.DefaultPlotConfig())
		if err != nil {
			log.Fatal(err)
		}
		if *pngDir != "" {
			files, err := p.Save(*pngDir)
			if err != nil {
				log.Fatal(err)
			}
			log.Printf("wrote %d plots to %s", len(files), *pngDir)
		}
		if *framesDir != "" {
			files, err := p.Animate(*framesDir, debug.AnimateConfig{FPS: *fps, Duration: *duration, TimeScale: *timeScale})
			if err != nil {
				log.Fatal(err)
			}
			log.Printf("wrote %d frames to %s", len(files), *framesDir)
		}
	}

	if *htmlFile == "" && *jsonFile == "" && *csvFile == "" && *serve == "" {
		return
	}
	charts := &debug.Charts{}
	if err := chain.Animate(charts, debug.AnimateConfig{FPS: *fps, Duration: *duration, TimeScale: *timeScale}); err != nil {
		log.Fatal(err)
	}
	write := func(name string, render func(f *os.File) error) {
		if name == "" {
			return
		}
		f, err := os.Create(name)
		if err != nil {
			log.Fatal(err)
		}
		if err := render(f); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", name)
	}
	write(*htmlFile, func(f *os.File) error { return charts.Render(f) })
	write(*jsonFile, func(f *os.File) error { return charts.Record.Render(f) })
	write(*csvFile, func(f *os.File) error { return charts.WriteCSV(f) })

	if *serve != "" {
		http.HandleFunc("/", charts.Handler)
		log.Printf("serving charts on %s", *serve)
		log.Fatal(http.ListenAndServe(*serve, nil))
	}
}
