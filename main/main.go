package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tools "github.com/igra9/sot-tools"
	"github.com/igra9/sot-tools/components/velocity"
	"github.com/igra9/sot-tools/config"
	"github.com/igra9/sot-tools/fake/biped"
	log "github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "", "path to a YAML config file (defaults are embedded)")
	ticks      = flag.Int("ticks", -1, "number of ticks to run (overrides sim.ticks)")
	commands   = flag.String("cmd", "", "semicolon-separated commands to run on the node before starting, e.g. \"initializePowerLaw 0.3 0.2 1 1\"")
	realtime   = flag.Bool("realtime", false, "tick at the node period rather than as fast as possible")
	debug      = flag.Bool("debug", false, "log every tick")
)

// reporter logs the state of the biped every few ticks.
type reporter struct {
	b     *biped.Biped
	n     *velocity.Node
	every int
	p     float64
}

func (r *reporter) Boot() error {
	return nil
}

func (r *reporter) Tick(t int) error {
	if r.every <= 0 || t%r.every != 0 {
		return nil
	}

	c := r.n.Command(t)
	p := r.n.Parameters()
	pos := r.b.Pose.Position
	log.WithFields(log.Fields{
		"t":      fmt.Sprintf("%.3fs", float64(t)*r.p),
		"radius": fmt.Sprintf("%.3f", math.Hypot(pos.X/p.RadiusX, pos.Y/p.RadiusY)),
	}).Infof("%s vel=%s", r.b.Pose, c)

	return nil
}

func main() {
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("error loading config: %s\n", err)
		os.Exit(1)
	}

	n := *ticks
	if n < 0 {
		n = cfg.Sim.Ticks
	}

	fmt.Println("Creating components...")
	node := velocity.New(cfg.Node.Name, cfg.PowerLaw, velocity.WithPeriod(cfg.Node.Period))
	bot := biped.New(node.Name(), cfg.Node.Period, cfg.Sim.StanceWidth, cfg.Sim.StartX, cfg.Sim.StartY, cfg.Sim.StartHeading)

	node.LeftFoot.Plug(bot.LeftFoot)
	node.RightFoot.Plug(bot.RightFoot)
	node.Waist.Plug(bot.Waist)
	bot.Command.Plug(node.Velocity)

	for _, line := range strings.Split(*commands, ";") {
		err := tools.ExecLine(node, line)
		if err != nil {
			fmt.Printf("error running command: %s\n", err)
			os.Exit(1)
		}
	}

	g := tools.NewGraph()
	g.Add(bot)
	g.Add(node)
	g.Add(&reporter{b: bot, n: node, every: cfg.Sim.LogEvery, p: cfg.Node.Period})

	fmt.Println("Booting components...")
	err = g.Boot()
	if err != nil {
		fmt.Printf("error while booting: %s\n", err)
		os.Exit(1)
	}

	// Catch both SIGINT (ctrl+c) and SIGTERM, to stop between two ticks rather
	// than halfway through one.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var tc <-chan time.Time
	if *realtime {
		t := time.NewTicker(time.Duration(cfg.Node.Period * float64(time.Second)))
		defer t.Stop()
		tc = t.C
	}

	fmt.Printf("Running %d ticks...\n", n)
loop:
	for i := 0; i < n; i++ {
		select {
		case <-stop:
			fmt.Println("Caught signal, shutting down...")
			break loop
		default:
		}

		if tc != nil {
			<-tc
		}

		err := g.Tick()
		if err != nil {
			fmt.Printf("error while ticking: %s\n", err)
			os.Exit(1)
		}
	}

	s := node.Stats()
	fmt.Printf("Done after %d ticks: %d evaluations, %d cache hits, %d fallbacks\n", g.Time(), s.Evaluations, s.CacheHits, s.Fallbacks)
}
