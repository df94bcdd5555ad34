package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/dcazrael/color-sentence/engine"
	"github.com/dcazrael/color-sentence/naming"
	"github.com/dcazrael/color-sentence/speech"
)

var (
	modeFlag    = flag.String("mode", "", "Base color strategy: freq or anchor")
	denomFlag   = flag.String("denom", "", "Frequency divisor: visible, letters or matched")
	noPunctFlag = flag.Bool("no-punct", false, "Skip the punctuation adjustment")
	noFloorFlag = flag.Bool("no-floor", false, "Skip the sentence length adjustment")
	strictFlag  = flag.Bool("strict", false, "Reject characters outside the supported alphabet")
	speakFlag   = flag.Bool("speak", false, "Speak the result aloud")
	hexFlag     = flag.Bool("hex-in-speech", false, "Include the hex code in the spoken sentence")
	localeFlag  = flag.String("locale", "", "Speech locale, German phrasing for de-*")
	timeoutFlag = flag.Duration("timeout", 10*time.Second, "Deadline for one derivation")
	offlineFlag = flag.Bool("offline", false, "Skip the color naming service")
)

func main() {
	// Panic recovery: print the stack so crashes in audio goroutines
	// or terminal teardown stay diagnosable.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\ncolor-sentence crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: color-sentence [flags] <sentence>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := engine.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	var client naming.Client
	if !*offlineFlag {
		client = naming.NewPizzaClient(cfg.Naming)
	}

	var narrator speech.Narrator
	if cfg.Speech.Enabled {
		runner, err := buildNarrator(cfg.Speech)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Speech setup failed: %v (continuing without speech)\n", err)
		} else {
			narrator = runner
			defer runner.Shutdown()
		}
	}

	eng := engine.New(naming.NewResolver(client), narrator)

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	text := strings.Join(flag.Args(), " ")
	res, err := eng.Compute(ctx, text, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Derivation failed: %v\n", err)
		os.Exit(1)
	}

	c := res.Color
	fmt.Printf("RGB: (%d, %d, %d)  HEX: %s  NAME: %s [%s]\n",
		c.R, c.G, c.B, c.Hex(), res.Name, res.Source)
}

// applyFlags layers explicitly set flags over the loaded configuration
func applyFlags(cfg *engine.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = engine.Mode(*modeFlag)
		case "denom":
			cfg.Frequency.Denominator = engine.Denominator(*denomFlag)
		case "no-punct":
			cfg.Punct.Enabled = !*noPunctFlag
		case "no-floor":
			cfg.Floor.Enabled = !*noFloorFlag
		case "strict":
			cfg.Strict = *strictFlag
		case "speak":
			cfg.Speech.Enabled = *speakFlag
		case "hex-in-speech":
			cfg.Utterance.IncludeHex = *hexFlag
		case "locale":
			cfg.Utterance.Locale = *localeFlag
		}
	})
}

// buildNarrator assembles the speech pipeline behind the Narrator interface
func buildNarrator(cfg speech.Config) (*speech.Runner, error) {
	cache, err := speech.NewDiskCache(cfg.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("clip cache: %w", err)
	}
	runner, err := speech.NewRunner(cfg, speech.NewHTTPSynthesizer(cfg, cache), speech.NewBeepPlayer(cfg))
	if err != nil {
		return nil, err
	}
	runner.EnsureStarted()
	return runner, nil
}
