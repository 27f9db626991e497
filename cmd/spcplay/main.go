// Command spcplay loads an SPC700 snapshot and plays it back in real time
// through the system audio device, optionally dropping into the tcell
// debugger on breakpoints or an explicit --debug flag.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/urfave/cli"

	"github.com/kestrel-audio/spc700/internal/audiosink"
	"github.com/kestrel-audio/spc700/internal/debugger"
	"github.com/kestrel-audio/spc700/internal/snapshot"
	"github.com/kestrel-audio/spc700/internal/spccpu"
	"github.com/kestrel-audio/spc700/internal/spcdsp"
	"github.com/kestrel-audio/spc700/internal/spcmem"
	"github.com/kestrel-audio/spc700/internal/spcscheduler"
)

const sampleRate = 32000

func main() {
	app := cli.NewApp()
	app.Name = "spcplay"
	app.Usage = "spcplay [options] <snapshot file>"
	app.Description = "Plays back an SPC700/DSP sound snapshot"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "snapshot", Usage: "Path to the .spc snapshot file"},
		cli.BoolFlag{Name: "debug", Usage: "Open the interactive debugger before running"},
		cli.DurationFlag{Name: "duration", Usage: "Stop after this much playback time (0 = run until halted)"},
		cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn, or error"},
		cli.IntFlag{Name: "buffer", Value: 8192, Usage: "Ring buffer capacity in sample pairs"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("spcplay failed", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	configureLogging(c.String("log-level"))

	path := c.String("snapshot")
	if path == "" {
		if c.NArg() == 0 {
			cli.ShowAppHelp(c)
			return fmt.Errorf("no snapshot path provided")
		}
		path = c.Args().Get(0)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	img, err := snapshot.Load(f)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	mem := spcmem.New()
	mem.LoadRAM(img.RAM[:])

	dsp := spcdsp.New(mem)
	dsp.LoadRegisters(img.DSPRegisters[:])
	mem.SetDSP(dsp)

	cpu := spccpu.New(mem)
	cpu.SetState(img.CPU.PC, img.CPU.A, img.CPU.X, img.CPU.Y, img.CPU.PSW, img.CPU.SP)

	sink := audiosink.NewBuffer(c.Int("buffer"))
	sched := spcscheduler.New(cpu, mem, dsp, sink)

	dbg := debugger.New(cpu, mem, sched)
	sched.SetDebugger(dbg)

	player, err := startPlayback(sink)
	if err != nil {
		return fmt.Errorf("starting audio output: %w", err)
	}
	defer player.Close()

	if c.Bool("debug") {
		if err := dbg.Attach(); err != nil {
			return err
		}
		defer dbg.Detach()
		dbg.Break(img.CPU.PC)
	}

	if d := c.Duration("duration"); d > 0 {
		go func() {
			time.Sleep(d)
			sched.RequestStop()
		}()
	}

	return sched.Run()
}

func startPlayback(sink *audiosink.Buffer) (*oto.Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	player := ctx.NewPlayer(sink)
	player.Play()
	return player, nil
}

func configureLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
