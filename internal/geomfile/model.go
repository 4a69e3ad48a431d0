package geomfile

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot decodes the top-level blocks of a shape-description file.
type fileRoot struct {
	Materials []*materialBlock `hcl:"material,block"`
	Solids    []*solidBlock    `hcl:"solid,block"`
	Volumes   []*volumeBlock   `hcl:"volume,block"`
}

// materialBlock is a material definition. Predefined toolkit materials set
// predefined = true and carry no density or elements.
type materialBlock struct {
	Name       string          `hcl:"name,label"`
	Predefined *bool           `hcl:"predefined"`
	Density    *float64        `hcl:"density"`
	Elements   []*elementBlock `hcl:"element,block"`
}

type elementBlock struct {
	Name     string  `hcl:"name,label"`
	Symbol   string  `hcl:"symbol"`
	Z        int     `hcl:"z"`
	A        float64 `hcl:"a"`
	Fraction float64 `hcl:"fraction"`
}

// solidBlock carries the solid kind as its first label; the body schema
// depends on the kind and is decoded in a second pass.
type solidBlock struct {
	Kind string   `hcl:"kind,label"`
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

type boxBody struct {
	X float64 `hcl:"x"`
	Y float64 `hcl:"y"`
	Z float64 `hcl:"z"`
}

type tubsBody struct {
	RMin *float64 `hcl:"rmin"`
	RMax float64  `hcl:"rmax"`
	Dz   float64  `hcl:"dz"`
	SPhi *float64 `hcl:"sphi"`
	DPhi *float64 `hcl:"dphi"`
}

type polyconeBody struct {
	R    []float64 `hcl:"r"`
	Z    []float64 `hcl:"z"`
	SPhi *float64  `hcl:"sphi"`
	DPhi *float64  `hcl:"dphi"`
}

// booleanBody references its operands by solid name. Translation moves the
// second operand; rotation is Euler angles around x, y, z.
type booleanBody struct {
	First       string     `hcl:"first"`
	Second      string     `hcl:"second"`
	Translation *[]float64 `hcl:"translation"`
	Rotation    *[]float64 `hcl:"rotation"`
}

type volumeBlock struct {
	Name     string `hcl:"name,label"`
	Solid    string `hcl:"solid"`
	Material string `hcl:"material"`
}
