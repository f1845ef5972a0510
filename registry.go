package spiro

import (
	"fmt"

	"github.com/katalvlaran/spiro/generators"
	"github.com/katalvlaran/spiro/pipeline"
	"github.com/katalvlaran/spiro/plane"
	"github.com/katalvlaran/spiro/transforms"
)

// Configured type names. The registry is the single place a type string
// is interpreted; unknown names surface pipeline.ErrUnknownType with the
// referring module's name attached.
const (
	TypeSpirographGear = "spirograph_gear"
	TypeSpirographRail = "spirograph_rail"
	TypeHarmonograph   = "harmonograph"
	TypeLissajous      = "lissajous"
	TypeRose           = "rose"
	TypePolygon        = "polygon"
	TypeStar           = "star_shape"
	TypeSpiral         = "spiral_shape"
	TypeLine           = "line"
	TypeCircle         = "circle"
	TypeEllipse        = "ellipse"

	TypeRotation     = "rotation"
	TypeOscillation  = "oscillating_rotation"
	TypeTranslation  = "translation"
	TypeArc          = "arc"
	TypeBend         = "bend"
	TypeBendVertical = "bend_vertical"
	TypeSpiralArc    = "spiral_arc"
)

// DefaultRegistry returns the registry with every built-in module type
// bound. The table is assembled once at startup and validated
// exhaustively: a duplicate binding is a programming error and panics.
func DefaultRegistry() *pipeline.Registry {
	r := pipeline.NewRegistry()

	mustRegister(r, TypeSpirographGear, generatorBuilder(buildGear))
	mustRegister(r, TypeSpirographRail, generatorBuilder(buildRail))
	mustRegister(r, TypeHarmonograph, generatorBuilder(buildHarmonograph))
	mustRegister(r, TypeLissajous, generatorBuilder(buildLissajous))
	mustRegister(r, TypeRose, generatorBuilder(buildRose))
	mustRegister(r, TypePolygon, generatorBuilder(buildPolygon))
	mustRegister(r, TypeStar, generatorBuilder(buildStar))
	mustRegister(r, TypeSpiral, generatorBuilder(buildSpiral))
	mustRegister(r, TypeLine, generatorBuilder(buildLine))
	mustRegister(r, TypeCircle, generatorBuilder(buildCircle))
	mustRegister(r, TypeEllipse, generatorBuilder(buildEllipse))

	mustRegister(r, TypeRotation, transformBuilder(buildRotation))
	mustRegister(r, TypeOscillation, transformBuilder(buildOscillate))
	mustRegister(r, TypeTranslation, transformBuilder(buildTranslation))
	mustRegister(r, TypeArc, transformBuilder(buildArcSlide))
	mustRegister(r, TypeBend, transformBuilder(buildBend))
	mustRegister(r, TypeBendVertical, transformBuilder(buildBendVertical))
	mustRegister(r, TypeSpiralArc, transformBuilder(buildSpiralArc))

	return r
}

func mustRegister(r *pipeline.Registry, typeName string, b pipeline.Builder) {
	if err := r.Register(typeName, b); err != nil {
		panic(fmt.Sprintf("DefaultRegistry: %v", err))
	}
}

// generatorBuilder adapts a params→generator constructor into a Builder.
func generatorBuilder(fn func(p pipeline.Params) (pipeline.Generator, error)) pipeline.Builder {
	return func(name string, p pipeline.Params) (pipeline.Stage, error) {
		g, err := fn(p)
		if err != nil {
			return pipeline.Stage{}, err
		}

		return pipeline.Stage{Name: name, Generator: g}, nil
	}
}

// transformBuilder adapts a params→transform constructor into a Builder.
func transformBuilder(fn func(p pipeline.Params) (pipeline.Transform, error)) pipeline.Builder {
	return func(name string, p pipeline.Params) (pipeline.Stage, error) {
		tr, err := fn(p)
		if err != nil {
			return pipeline.Stage{}, err
		}

		return pipeline.Stage{Name: name, Transform: tr}, nil
	}
}

// point reads an x/y parameter pair.
func point(p pipeline.Params, xKey, yKey string, def plane.Point) plane.Point {
	return plane.Pt(p.Float(xKey, def.X), p.Float(yKey, def.Y))
}

//-----------------------------------------------------------------------------
// Generator builders: decode the raw parameter bag into typed options.
// Key names and defaults follow the configuration format.
//-----------------------------------------------------------------------------

func buildGear(p pipeline.Params) (pipeline.Generator, error) {
	o := generators.DefaultGearOptions()
	o.FixedTeeth = p.Int("fixed_teeth", o.FixedTeeth)
	o.RollingTeeth = p.Int("rolling_teeth", o.RollingTeeth)
	o.ToothPitch = p.Float("tooth_pitch", o.ToothPitch)
	o.HolePosition = p.Float("hole_position", o.HolePosition)
	o.Rotations = p.Int("rotations", o.Rotations)
	o.Inside = p.Bool("inside", o.Inside)
	o.Cycles = p.Float("cycles", o.Cycles)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return generators.NewGear(o)
}

func buildRail(p pipeline.Params) (pipeline.Generator, error) {
	o := generators.DefaultRailOptions()
	o.RailLength = p.Float("rail_length", o.RailLength)
	o.GearTeeth = p.Int("gear_teeth", o.GearTeeth)
	o.ToothPitch = p.Float("tooth_pitch", o.ToothPitch)
	o.HolePosition = p.Float("hole_position", o.HolePosition)
	o.Passes = p.Int("passes", o.Passes)
	o.Scale = p.Float("scale", o.Scale)
	o.RailAngle = p.Float("rail_angle", o.RailAngle)
	o.Cycles = p.Float("cycles", o.Cycles)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return generators.NewRail(o)
}

func buildHarmonograph(p pipeline.Params) (pipeline.Generator, error) {
	var o generators.HarmonographOptions
	switch preset := p.String("preset", ""); preset {
	case "":
		o = generators.DefaultHarmonographOptions()
	case "lateral":
		o = generators.LateralPreset()
	case "rotary":
		o = generators.RotaryPreset(p.Float("base_freq", 2.0), p.Float("detune", 0.01))
	case "complex":
		o = generators.ComplexPreset()
	default:
		return nil, fmt.Errorf("preset=%q: %w", preset, generators.ErrBadPreset)
	}

	// Explicit pendulum keys override whatever the preset chose.
	for i := range o.Pendulums {
		n := i + 1
		o.Pendulums[i].Freq = p.Float(fmt.Sprintf("freq%d", n), o.Pendulums[i].Freq)
		o.Pendulums[i].Amp = p.Float(fmt.Sprintf("amp%d", n), o.Pendulums[i].Amp)
		o.Pendulums[i].Phase = p.Float(fmt.Sprintf("phase%d", n), o.Pendulums[i].Phase)
		o.Pendulums[i].Decay = p.Float(fmt.Sprintf("decay%d", n), o.Pendulums[i].Decay)
	}
	o.Duration = p.Float("duration", o.Duration)
	o.Cycles = p.Float("cycles", o.Cycles)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return generators.NewHarmonograph(o)
}

func buildLissajous(p pipeline.Params) (pipeline.Generator, error) {
	o := generators.DefaultLissajousOptions()
	o.FreqX = p.Int("freq_x", o.FreqX)
	o.FreqY = p.Int("freq_y", o.FreqY)
	o.AmplitudeX = p.Float("amplitude_x", o.AmplitudeX)
	o.AmplitudeY = p.Float("amplitude_y", o.AmplitudeY)
	o.EndAmplitudeX = p.Float("end_amplitude_x", o.EndAmplitudeX)
	o.EndAmplitudeY = p.Float("end_amplitude_y", o.EndAmplitudeY)
	o.Phase = p.Float("phase", o.Phase)
	o.Cycles = p.Float("cycles", o.Cycles)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return generators.NewLissajous(o)
}

func buildRose(p pipeline.Params) (pipeline.Generator, error) {
	o := generators.DefaultRoseOptions()
	o.KNum = p.Int("k_num", o.KNum)
	o.KDen = p.Int("k_den", o.KDen)
	o.Radius = p.Float("radius", o.Radius)
	o.EndRadius = p.Float("end_radius", o.EndRadius)
	o.Cycles = p.Float("cycles", o.Cycles)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return generators.NewRose(o)
}

func buildPolygon(p pipeline.Params) (pipeline.Generator, error) {
	o := generators.DefaultPolygonOptions()
	o.Sides = p.Int("sides", o.Sides)
	o.Radius = p.Float("radius", o.Radius)
	o.EndRadius = p.Float("end_radius", o.EndRadius)
	o.Rotation = p.Float("rotation", o.Rotation)
	o.Cycles = p.Float("cycles", o.Cycles)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return generators.NewPolygon(o)
}

func buildStar(p pipeline.Params) (pipeline.Generator, error) {
	o := generators.DefaultStarOptions()
	o.Points = p.Int("points", o.Points)
	o.OuterRadius = p.Float("outer_radius", o.OuterRadius)
	o.InnerRadius = p.Float("inner_radius", o.InnerRadius)
	o.EndOuterRadius = p.Float("end_outer_radius", o.EndOuterRadius)
	o.EndInnerRadius = p.Float("end_inner_radius", o.EndInnerRadius)
	o.Rotation = p.Float("rotation", o.Rotation)
	o.Cycles = p.Float("cycles", o.Cycles)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return generators.NewStar(o)
}

func buildSpiral(p pipeline.Params) (pipeline.Generator, error) {
	o := generators.DefaultSpiralOptions()
	o.StartRadius = p.Float("start_radius", o.StartRadius)
	o.EndRadius = p.Float("end_radius", o.EndRadius)
	o.Turns = p.Float("turns", o.Turns)
	o.Direction = p.Int("direction", o.Direction)
	o.Cycles = p.Float("cycles", o.Cycles)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return generators.NewSpiral(o)
}

func buildLine(p pipeline.Params) (pipeline.Generator, error) {
	o := generators.DefaultLineOptions()
	o.Length = p.Float("length", o.Length)
	o.EndLength = p.Float("end_length", o.EndLength)
	o.Start = point(p, "start_x", "start_y", o.Start)
	o.End = point(p, "end_x", "end_y", plane.Pt(o.Length, 0))
	o.Cycles = p.Float("cycles", o.Cycles)
	o.StrokeTime = p.Float("stroke_time", o.StrokeTime)
	o.IdleAtEnd = p.String("idle_at", "start") == "end"
	if err := p.Err(); err != nil {
		return nil, err
	}

	return generators.NewLine(o)
}

func buildCircle(p pipeline.Params) (pipeline.Generator, error) {
	o := generators.DefaultCircleOptions()
	o.Radius = p.Float("radius", o.Radius)
	o.EndRadius = p.Float("end_radius", o.EndRadius)
	o.Cycles = p.Float("cycles", o.Cycles)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return generators.NewCircle(o)
}

func buildEllipse(p pipeline.Params) (pipeline.Generator, error) {
	o := generators.DefaultEllipseOptions()
	o.RadiusX = p.Float("radius_x", o.RadiusX)
	o.RadiusY = p.Float("radius_y", o.RadiusY)
	o.EndRadiusX = p.Float("end_radius_x", o.EndRadiusX)
	o.EndRadiusY = p.Float("end_radius_y", o.EndRadiusY)
	o.Rotation = p.Float("rotation", o.Rotation)
	o.Cycles = p.Float("cycles", o.Cycles)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return generators.NewEllipse(o)
}

//-----------------------------------------------------------------------------
// Transform builders.
//-----------------------------------------------------------------------------

func buildRotation(p pipeline.Params) (pipeline.Transform, error) {
	o := transforms.DefaultRotationOptions()
	o.TotalDegrees = p.Float("total_degrees", o.TotalDegrees)
	o.Origin = point(p, "origin_x", "origin_y", o.Origin)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return transforms.NewRotation(o)
}

func buildOscillate(p pipeline.Params) (pipeline.Transform, error) {
	o := transforms.DefaultOscillateOptions()
	o.AmplitudeDegrees = p.Float("amplitude_degrees", o.AmplitudeDegrees)
	o.Oscillations = p.Float("oscillations", o.Oscillations)
	o.Center = point(p, "center_x", "center_y", o.Center)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return transforms.NewOscillate(o)
}

func buildTranslation(p pipeline.Params) (pipeline.Transform, error) {
	o := transforms.DefaultTranslationOptions()
	o.Start = point(p, "start_x", "start_y", o.Start)
	o.End = point(p, "end_x", "end_y", o.End)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return transforms.NewTranslation(o)
}

func buildArcSlide(p pipeline.Params) (pipeline.Transform, error) {
	o := transforms.DefaultArcSlideOptions()
	o.Radius = p.Float("radius", o.Radius)
	o.StartDegrees = p.Float("start_angle", o.StartDegrees)
	o.SweepDegrees = p.Float("sweep_angle", o.SweepDegrees)
	o.Center = point(p, "center_x", "center_y", o.Center)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return transforms.NewArcSlide(o)
}

func buildBend(p pipeline.Params) (pipeline.Transform, error) {
	o := transforms.DefaultBendOptions()
	o.Radius = p.Float("radius", o.Radius)
	o.StartDegrees = p.Float("start_angle", o.StartDegrees)
	o.SweepDegrees = p.Float("sweep_angle", o.SweepDegrees)
	o.XRange = p.Float("x_range", o.XRange)
	o.Center = point(p, "center_x", "center_y", o.Center)
	o.Direction = p.Int("direction", o.Direction)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return transforms.NewBend(o)
}

func buildBendVertical(p pipeline.Params) (pipeline.Transform, error) {
	o := transforms.DefaultBendVerticalOptions()
	o.Radius = p.Float("radius", o.Radius)
	o.StartDegrees = p.Float("start_angle", o.StartDegrees)
	o.SweepDegrees = p.Float("sweep_angle", o.SweepDegrees)
	o.YRange = p.Float("y_range", o.YRange)
	o.Center = point(p, "center_x", "center_y", o.Center)
	o.Direction = p.Int("direction", o.Direction)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return transforms.NewBendVertical(o)
}

func buildSpiralArc(p pipeline.Params) (pipeline.Transform, error) {
	o := transforms.DefaultSpiralArcOptions()
	o.InnerRadius = p.Float("inner_radius", o.InnerRadius)
	o.OuterRadius = p.Float("outer_radius", o.OuterRadius)
	o.StartDegrees = p.Float("start_angle", o.StartDegrees)
	o.SweepDegrees = p.Float("sweep_angle", o.SweepDegrees)
	o.Center = point(p, "center_x", "center_y", o.Center)
	if err := p.Err(); err != nil {
		return nil, err
	}

	return transforms.NewSpiralArc(o)
}
