// Command hashlife evolves a Run Length Encoded Game of Life pattern
// and prints the result: population and generation counters, and
// optionally an ASCII viewport around the origin or a saved RLE file.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lifegrid/go-hashlife/life"
	"github.com/lifegrid/go-hashlife/rle"
)

var flags struct {
	file        string
	generations uint64
	warp        int
	view        string
	save        string
	gcInterval  int
	debug       bool
}

var rootCmd = &cobra.Command{
	Use:          "hashlife -f pattern.rle",
	Short:        "evolve a Game of Life pattern with hashlife",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flags.file, "file", "f", "", "RLE pattern file (required)")
	rootCmd.Flags().Uint64VarP(&flags.generations, "generations", "n", 0, "advance by exactly this many generations")
	rootCmd.Flags().IntVarP(&flags.warp, "warp", "w", 0, "take this many macro-steps instead of counting generations")
	rootCmd.Flags().StringVar(&flags.view, "view", "", "print an ASCII viewport of WxH cells around the origin")
	rootCmd.Flags().StringVar(&flags.save, "save", "", "write the evolved viewport region as RLE to this file")
	rootCmd.Flags().IntVar(&flags.gcInterval, "gc-interval", life.DefaultGCInterval, "evolution calls between cache collections (0 disables)")
	rootCmd.Flags().BoolVar(&flags.debug, "debug", false, "verbose logging")
	_ = rootCmd.MarkFlagRequired("file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flags.debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	f, err := os.Open(flags.file)
	if err != nil {
		return err
	}
	p, err := rle.Decode(f)
	f.Close()
	if err != nil {
		return err
	}
	logger.Info("pattern loaded",
		zap.String("file", flags.file),
		zap.Int64("width", p.Width),
		zap.Int64("height", p.Height),
		zap.Int("cells", len(p.Cells)))

	w := life.NewWorld()
	w.GCInterval = flags.gcInterval
	if err := w.Load(p); err != nil {
		return err
	}

	start := time.Now()
	switch {
	case flags.warp > 0:
		for i := 0; i < flags.warp; i++ {
			if err := w.Step(); err != nil {
				return err
			}
			gen := w.Generation()
			logger.Debug("macro-step",
				zap.Int("step", i+1),
				zap.String("generation", gen.Dec()),
				zap.Uint64("population", w.Population()))
		}
	case flags.generations > 0:
		if err := w.Advance(flags.generations); err != nil {
			return err
		}
	}
	gen := w.Generation()
	logger.Info("done",
		zap.String("generation", gen.Dec()),
		zap.Uint64("population", w.Population()),
		zap.Uint8("level", w.Root().Level()),
		zap.Duration("elapsed", time.Since(start)))

	if flags.view != "" {
		r, err := viewRect(flags.view)
		if err != nil {
			return err
		}
		printView(w, r)
		if flags.save != "" {
			out, err := os.Create(flags.save)
			if err != nil {
				return err
			}
			defer out.Close()
			if err := rle.Encode(out, w.Pattern(r)); err != nil {
				return err
			}
			logger.Info("saved", zap.String("file", flags.save))
		}
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// viewRect parses "WxH" into a rectangle centered on the origin.
func viewRect(s string) (life.Rect, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return life.Rect{}, fmt.Errorf("bad viewport %q, want WxH", s)
	}
	vw, err := strconv.ParseInt(ws, 10, 64)
	if err != nil || vw <= 0 {
		return life.Rect{}, fmt.Errorf("bad viewport width %q", ws)
	}
	vh, err := strconv.ParseInt(hs, 10, 64)
	if err != nil || vh <= 0 {
		return life.Rect{}, fmt.Errorf("bad viewport height %q", hs)
	}
	return life.Rect{MinX: -vw / 2, MinY: -vh / 2, MaxX: vw - vw/2, MaxY: vh - vh/2}, nil
}

func printView(w *life.World, r life.Rect) {
	grid := make(map[[2]int64]bool)
	w.Each(r, func(x, y int64) { grid[[2]int64{x, y}] = true })
	var b strings.Builder
	for y := r.MinY; y < r.MaxY; y++ {
		for x := r.MinX; x < r.MaxX; x++ {
			if grid[[2]int64{x, y}] {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}
