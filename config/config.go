package config

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/katalvlaran/spiro/pipeline"
	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/render"
	"github.com/katalvlaran/spiro/resample"
	"github.com/katalvlaran/spiro/timegrid"
)

// Section and key names recognized in the file.
const (
	pipelineSection = "pipeline"
	samplingSection = "sampling"
	outputSection   = "output"
	typeKey         = "type"
	modulesKey      = "modules"
)

// Sentinel errors for configuration loading.
var (
	// ErrMissingPipeline indicates the file has no [pipeline] section.
	ErrMissingPipeline = errors.New("config: missing [pipeline] section")
	// ErrNoModules indicates the modules list is empty.
	ErrNoModules = errors.New("config: [pipeline] lists no modules")
	// ErrMissingSection indicates a listed module has no section of its own.
	ErrMissingSection = errors.New("config: module has no section")
)

// Sampling bundles the grid and resampler settings of a run.
type Sampling struct {
	InitialSamples int
	OutputSamples  int
	UseArcLength   bool
}

// Result is a fully validated run description: the pipeline ready to
// execute, the frame to draw into, and the sampling plan.
type Result struct {
	Pipeline *pipeline.Pipeline
	Frame    render.Frame
	Sampling Sampling
	Filename string
}

// Load parses the INI file at path and assembles every stage through the
// registry. All validation happens here: a Result that comes back with a
// nil error is runnable.
func Load(path string, reg *pipeline.Registry) (*Result, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return build(f, reg)
}

// LoadBytes is Load for in-memory configuration text.
func LoadBytes(src []byte, reg *pipeline.Registry) (*Result, error) {
	f, err := ini.Load(src)
	if err != nil {
		return nil, fmt.Errorf("LoadBytes: %w", err)
	}

	return build(f, reg)
}

func build(f *ini.File, reg *pipeline.Registry) (*Result, error) {
	pipeSec, err := f.GetSection(pipelineSection)
	if err != nil {
		return nil, ErrMissingPipeline
	}

	names := splitModules(pipeSec.Key(modulesKey).String())
	if len(names) == 0 {
		return nil, ErrNoModules
	}

	pp := pipeline.NewParams(pipeSec.KeysHash())
	origin := plane.Pt(pp.Float("origin_x", 0), pp.Float("origin_y", 0))
	if err = pp.Err(); err != nil {
		return nil, fmt.Errorf("section [%s]: %w", pipelineSection, err)
	}

	stages := make([]pipeline.Stage, 0, len(names))
	for _, name := range names {
		stage, sErr := buildStage(f, reg, name)
		if sErr != nil {
			return nil, sErr
		}
		stages = append(stages, stage)
	}

	pipe, err := pipeline.New(origin, stages...)
	if err != nil {
		return nil, err
	}

	frame, filename, err := readOutput(f)
	if err != nil {
		return nil, err
	}
	frame.Origin = origin

	sampling, err := readSampling(f)
	if err != nil {
		return nil, err
	}

	return &Result{Pipeline: pipe, Frame: frame, Sampling: sampling, Filename: filename}, nil
}

// buildStage resolves one listed module: its section, its type and its
// parameters.
func buildStage(f *ini.File, reg *pipeline.Registry, name string) (pipeline.Stage, error) {
	sec, err := f.GetSection(name)
	if err != nil {
		return pipeline.Stage{}, fmt.Errorf("module %q: %w", name, ErrMissingSection)
	}

	typeName := sec.Key(typeKey).String()
	if typeName == "" {
		typeName = baseName(name)
	}

	kv := sec.KeysHash()
	delete(kv, typeKey)

	return reg.Build(name, typeName, pipeline.NewParams(kv))
}

// readOutput folds the optional [output] section over the default frame.
func readOutput(f *ini.File) (render.Frame, string, error) {
	frame := render.DefaultFrame()
	sec, err := f.GetSection(outputSection)
	if err != nil {
		return frame, "", nil
	}

	p := pipeline.NewParams(sec.KeysHash())
	frame.Width = p.Float("width", frame.Width)
	frame.Height = p.Float("height", frame.Height)
	frame.Margin = p.Float("margin", frame.Margin)
	frame.StrokeWidth = p.Float("stroke_width", frame.StrokeWidth)
	frame.StrokeColor = p.String("stroke_color", frame.StrokeColor)
	frame.BackgroundColor = p.String("background_color", frame.BackgroundColor)
	filename := p.String("filename", "")
	if err = p.Err(); err != nil {
		return frame, "", fmt.Errorf("section [%s]: %w", outputSection, err)
	}
	if err = frame.Validate(); err != nil {
		return frame, "", fmt.Errorf("section [%s]: %w", outputSection, err)
	}

	return frame, filename, nil
}

// readSampling folds the optional [sampling] section over the grid and
// resampler defaults.
func readSampling(f *ini.File) (Sampling, error) {
	s := Sampling{
		InitialSamples: timegrid.DefaultOptions().Samples,
		OutputSamples:  resample.DefaultOptions().OutputSamples,
		UseArcLength:   resample.DefaultOptions().UseArcLength,
	}
	sec, err := f.GetSection(samplingSection)
	if err != nil {
		return s, nil
	}

	p := pipeline.NewParams(sec.KeysHash())
	s.InitialSamples = p.Int("samples", s.InitialSamples)
	s.OutputSamples = p.Int("output_samples", s.OutputSamples)
	s.UseArcLength = p.Bool("arc_length", s.UseArcLength)
	if err = p.Err(); err != nil {
		return s, fmt.Errorf("section [%s]: %w", samplingSection, err)
	}

	return s, nil
}

// splitModules accepts commas and/or whitespace between names.
func splitModules(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// baseName is the section name up to the first dot, the implied type of
// a section like [circle.2].
func baseName(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}

	return name
}
