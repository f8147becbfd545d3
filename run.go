package subpixel

import (
	"github.com/32bitkid/subpixel/resource"
)

// Outputs lists the files written by Run. Comparison is empty when no
// comparison was requested.
type Outputs struct {
	Result     string
	Comparison string
}

// Run loads input, processes it and saves the result. An empty output
// derives the path from input, e.g. photo.jpg becomes
// photo_subpixelfied.jpg. A comparison is written beside the result.
func Run(input, output string, cfg Config) (Outputs, error) {
	var outs Outputs

	img, err := resource.Load(input)
	if err != nil {
		return outs, err
	}

	res, err := Process(img, cfg)
	if err != nil {
		return outs, err
	}

	kind := resource.KindSubpixelfied
	if cfg.AntialiasOnly {
		kind = resource.KindAntialiased
	}
	if output == "" {
		outs.Result = resource.OutputPath(input, kind)
	} else {
		outs.Result = output
	}

	if err := resource.Save(res.Output, outs.Result, cfg.Quality); err != nil {
		return outs, err
	}
	Logger().Info("subpixel: wrote result", "path", outs.Result)

	if res.Comparison != nil {
		if output == "" {
			outs.Comparison = resource.OutputPath(input, resource.KindComparison)
		} else {
			outs.Comparison = resource.SiblingPath(output, resource.KindComparison)
		}
		if err := resource.Save(res.Comparison, outs.Comparison, cfg.Quality); err != nil {
			return outs, err
		}
		Logger().Info("subpixel: wrote comparison", "path", outs.Comparison)
	}

	return outs, nil
}
