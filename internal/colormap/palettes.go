package colormap

import colorful "github.com/lucasb-eyer/go-colorful"

// Palette definitions. Sequential maps (viridis, plasma, inferno,
// magma, greys) run dark to light; coolwarm is the diverging map for
// signed data. Stop colors are sampled from the matplotlib
// references; stops are spread uniformly over [0, 1].

var palettes = map[string]Palette{
	"viridis": uniform("viridis",
		"#440154", "#482374", "#404387", "#345e8d", "#29788e",
		"#20908c", "#22a784", "#44be70", "#79d151", "#bdde26", "#fde725"),
	"plasma": uniform("plasma",
		"#0d0887", "#4b03a1", "#7d03a8", "#a82296", "#cb4679",
		"#e56b5d", "#f89441", "#fdc328", "#f0f921"),
	"inferno": uniform("inferno",
		"#000004", "#280b54", "#65156e", "#9f2a63", "#d44842",
		"#f57d15", "#fac127", "#fcffa4"),
	"magma": uniform("magma",
		"#000004", "#1c1044", "#4f127b", "#812581", "#b5367a",
		"#e55064", "#fb8761", "#fec287", "#fcfdbf"),
	"coolwarm": uniform("coolwarm",
		"#3b4cc0", "#6788ee", "#9abbff", "#c9d7f0", "#edd1c2",
		"#f7a889", "#e26952", "#b40426"),
	"greys": uniform("greys",
		"#ffffff", "#d9d9d9", "#969696", "#525252", "#000000"),
}

// uniform builds a palette with the given colors spread evenly over
// [0, 1].
func uniform(name string, hexes ...string) Palette {
	stops := make([]Stop, len(hexes))
	last := float64(len(hexes) - 1)
	for i, h := range hexes {
		stops[i] = Stop{Pos: float64(i) / last, Color: mustHex(h)}
	}
	return Palette{Name: name, Stops: stops}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("colormap: bad palette hex " + s)
	}
	return c
}
