package subpixel

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/32bitkid/subpixel/screen"
)

// Result holds the products of one Process call.
type Result struct {
	// Antialiased is the intensity buffer after the shrink/grow pass.
	Antialiased *screen.Buffer
	// Grid is nil when Config.AntialiasOnly is set.
	Grid *screen.Grid
	// Output is the final image: the coloured blocks, or the
	// antialiased buffer with AntialiasOnly.
	Output image.Image
	// Comparison is nil unless Config.Comparison asks for one.
	Comparison image.Image
}

// Process runs the whole pipeline over img.
func Process(img image.Image, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := Logger()
	start := time.Now()

	source := img
	buf := screen.FromImage(img)
	log.Debug("subpixel: intensity buffer", "width", buf.Width(), "height", buf.Height())

	if cfg.Crop {
		first, last, ok := screen.ForegroundSpan(buf, uint8(cfg.ForegroundLevel))
		if !ok {
			return nil, fmt.Errorf("%w: level %d", ErrNoForeground, cfg.ForegroundLevel)
		}
		r := image.Rect(first, 0, last+1, buf.Height())
		buf = buf.Crop(r)
		source = imaging.Crop(img, r.Add(img.Bounds().Min))
		log.Debug("subpixel: cropped to foreground", "first", first, "last", last)
	}

	if cfg.Blur > 0 {
		buf = screen.Blur(buf, cfg.Blur)
	}

	aa, err := screen.Antialias(buf, cfg.Scale, cfg.Kernel)
	if err != nil {
		return nil, err
	}
	log.Debug("subpixel: antialiased", "scale", cfg.Scale, "kernel", cfg.Kernel)

	res := &Result{Antialiased: aa}
	if cfg.AntialiasOnly {
		res.Output = aa.Gray
		res.Comparison = compare(source, aa.Gray, cfg.Comparison)
		return res, nil
	}

	work := aa
	if cfg.Widen {
		if work, err = screen.Widen(aa, cfg.Scale); err != nil {
			return nil, err
		}
		log.Debug("subpixel: widened", "width", work.Width(), "height", work.Height())
	}

	grid, err := screen.Partition(work, cfg.Scale, cfg.Edge)
	if err != nil {
		return nil, err
	}
	log.Debug("subpixel: partitioned", "cols", grid.Cols, "rows", grid.Rows, "edge", cfg.Edge)

	colors, err := Colorize(grid, screen.Classifier{Threshold: cfg.DarkThreshold}, cfg.Colorizer(), cfg.Workers)
	if err != nil {
		return nil, err
	}

	out, err := screen.Composite(grid, colors, work.Size(), color.White)
	if err != nil {
		return nil, err
	}
	screen.Bleed(out, grid, colors, cfg.Bleed)

	res.Grid = grid
	res.Output = out
	res.Comparison = compare(source, out, cfg.Comparison)

	log.Debug("subpixel: processed", "mode", cfg.Mode, "elapsed", time.Since(start))
	return res, nil
}

// Colorize classifies and colours every block of g, returning colours
// in block order. With workers > 1 rows are handled concurrently; each
// row writes only its own slice of the result.
func Colorize(g *screen.Grid, cl screen.Classifier, cz screen.Colorizer, workers int) ([]color.Color, error) {
	colors := make([]color.Color, len(g.Blocks))

	row := func(j int) {
		for i := 0; i < g.Cols; i++ {
			idx := j*g.Cols + i
			colors[idx] = cz.Colorize(g.Blocks[idx], cl.Classify(g, i, j))
		}
	}

	if workers <= 1 {
		for j := 0; j < g.Rows; j++ {
			row(j)
		}
		return colors, nil
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	for j := 0; j < g.Rows; j++ {
		j := j
		eg.Go(func() error {
			row(j)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return colors, nil
}

// compare resizes the source to the result's size with nearest-neighbour
// and joins the two.
func compare(source, result image.Image, mode Comparison) image.Image {
	if mode == CompareNone {
		return nil
	}
	size := result.Bounds().Size()
	scaled := imaging.Resize(source, size.X, size.Y, imaging.NearestNeighbor)
	if mode == CompareHorizontal {
		return screen.SideBySide(scaled, result)
	}
	return screen.StackVertical(scaled, result)
}
