// Package pattern enumerates the combinatorial variant spaces a dataset is
// generated from. Iteration order is fixed (color, then size, then rotation)
// so numbering is reproducible across runs.
package pattern

import "fmt"

// Variant describes one image/caption pair to generate.
type Variant struct {
	Key      int
	Color    string
	Size     string // "large", "medium" or "small"
	Scale    float64
	Rotation int
	Caption  string
	// Base marks the fixed lead variants of the variation space, which are
	// rendered without scaling or rotation.
	Base bool
}

// Size pairs a human-readable size label with its scale factor.
type Size struct {
	Name  string
	Scale float64
}

// Defaults for the regeneration pattern: 3 colors x 3 sizes x 5 rotations
// = 45 variants.
var (
	DefaultColors    = []string{"white", "black", "gray"}
	DefaultSizes     = []Size{{"large", 1.0}, {"medium", 0.7}, {"small", 0.3}}
	DefaultRotations = []int{0, 15, -15, 30, -30}
)

// Options narrows or reorders the regeneration space. Zero fields fall back
// to the defaults.
type Options struct {
	Colors    []string
	Sizes     []Size
	Rotations []int
}

func (o Options) resolve() Options {
	if o.Colors == nil {
		o.Colors = DefaultColors
	}
	if o.Sizes == nil {
		o.Sizes = DefaultSizes
	}
	if o.Rotations == nil {
		o.Rotations = DefaultRotations
	}
	return o
}

// Build enumerates the regeneration pattern for the given caption tag.
// Keys are assigned from a counter threaded through the loop, starting at 1.
func Build(tag string, opts Options) []Variant {
	opts = opts.resolve()

	variants := make([]Variant, 0, len(opts.Colors)*len(opts.Sizes)*len(opts.Rotations))
	counter := 1
	for _, color := range opts.Colors {
		for _, size := range opts.Sizes {
			for _, rotation := range opts.Rotations {
				rotDesc := ""
				if rotation != 0 {
					rotDesc = fmt.Sprintf(", rotated %d degrees", rotation)
				}
				variants = append(variants, Variant{
					Key:      counter,
					Color:    color,
					Size:     size.Name,
					Scale:    size.Scale,
					Rotation: rotation,
					Caption:  fmt.Sprintf("%s, logo, %s size, %s background%s.", tag, size.Name, color, rotDesc),
				})
				counter++
			}
		}
	}
	return variants
}

// Variation-space defaults: two fixed base variants followed by
// 3 colors x 3 scales x 6 rotations = 54 combinations starting at key 3.
var (
	variationSizes     = []Size{{"large", 1.5}, {"medium", 1.0}, {"small", 0.7}}
	variationRotations = []int{10, -10, 20, -20, 30, -30}
)

func variationCaption(trigger, color string) string {
	return fmt.Sprintf("%s logo, flat design, %s background.\n", trigger, color)
}

// Variations enumerates the logo-variation space: base variants for white
// and black (medium scale, no rotation) at keys 1 and 2, then the full
// combinatorial space from key 3.
func Variations(trigger string) []Variant {
	variants := []Variant{
		{Key: 1, Color: "white", Size: "medium", Scale: 1.0, Base: true, Caption: variationCaption(trigger, "white")},
		{Key: 2, Color: "black", Size: "medium", Scale: 1.0, Base: true, Caption: variationCaption(trigger, "black")},
	}

	counter := 3
	for _, color := range DefaultColors {
		for _, size := range variationSizes {
			for _, rotation := range variationRotations {
				variants = append(variants, Variant{
					Key:      counter,
					Color:    color,
					Size:     size.Name,
					Scale:    size.Scale,
					Rotation: rotation,
					Caption:  variationCaption(trigger, color),
				})
				counter++
			}
		}
	}
	return variants
}
