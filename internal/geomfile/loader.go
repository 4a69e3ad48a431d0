package geomfile

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/hadesgeo/internal/ctxlog"
	"github.com/vk/hadesgeo/internal/geo"
)

// File is a loaded shape-description file: a fresh registry holding the
// materials, solids and logical volumes the file defines.
type File struct {
	name    string
	reg     *geo.Registry
	volumes map[string]*geo.LogicalVolume
}

// Registry returns the registry owning the file's contents.
func (f *File) Registry() *geo.Registry { return f.reg }

// Volume returns a logical volume defined by the file.
func (f *File) Volume(name string) (*geo.LogicalVolume, error) {
	lv, ok := f.volumes[name]
	if !ok {
		return nil, fmt.Errorf("%s: no volume %q in description file", f.name, name)
	}
	return lv, nil
}

// Load parses a shape-description file and binds the given dimension tokens.
// Every variable the file references must have a value in dims; a missing
// one is a SubstitutionError. Values are rounded to one decimal place before
// binding, matching the file format's historical formatting convention.
func Load(ctx context.Context, filename string, src []byte, dims map[string]float64) (*File, error) {
	logger := ctxlog.FromContext(ctx)

	hclFile, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %w", filename, diags)
	}

	// Check the referenced tokens against the supplied dimensions before
	// evaluating anything, so the caller gets the token name rather than a
	// generic evaluation failure.
	body, ok := hclFile.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("parsing %s: unexpected body type", filename)
	}
	for _, token := range referencedTokens(body) {
		if _, ok := dims[token]; !ok {
			return nil, &SubstitutionError{File: filename, Token: token}
		}
	}

	evalCtx := &hcl.EvalContext{Variables: make(map[string]cty.Value, len(dims))}
	for name, val := range dims {
		evalCtx.Variables[name] = cty.NumberFloatVal(roundOneDecimal(val))
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &root); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %w", filename, diags)
	}

	f := &File{name: filename, reg: geo.NewRegistry(), volumes: make(map[string]*geo.LogicalVolume)}
	if err := f.build(&root, evalCtx); err != nil {
		return nil, fmt.Errorf("building %s: %w", filename, err)
	}

	logger.Debug("Shape-description file loaded.",
		"file", filename, "tokens", len(dims), "volumes", len(f.volumes))
	return f, nil
}

// referencedTokens collects the distinct variable names used anywhere in the
// file body, in stable order.
func referencedTokens(body *hclsyntax.Body) []string {
	seen := make(map[string]struct{})

	var walkBody func(b *hclsyntax.Body)
	walkBody = func(b *hclsyntax.Body) {
		for _, attr := range b.Attributes {
			for _, traversal := range attr.Expr.Variables() {
				seen[traversal.RootName()] = struct{}{}
			}
		}
		for _, block := range b.Blocks {
			walkBody(block.Body)
		}
	}
	walkBody(body)

	tokens := make([]string, 0, len(seen))
	for name := range seen {
		tokens = append(tokens, name)
	}
	sort.Strings(tokens)
	return tokens
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

// build materializes the decoded blocks into the file's registry.
func (f *File) build(root *fileRoot, evalCtx *hcl.EvalContext) error {
	mats := make(map[string]*geo.Material, len(root.Materials))
	for _, mb := range root.Materials {
		m, err := buildMaterial(mb)
		if err != nil {
			return err
		}
		if err := f.reg.AddMaterial(m); err != nil {
			return err
		}
		mats[m.Name] = m
	}

	solids, err := buildSolids(root.Solids, evalCtx)
	if err != nil {
		return err
	}
	for _, s := range solids {
		if err := f.reg.AddSolid(s); err != nil {
			return err
		}
	}

	for _, vb := range root.Volumes {
		s, ok := solids[vb.Solid]
		if !ok {
			return fmt.Errorf("volume %q references unknown solid %q", vb.Name, vb.Solid)
		}
		m, ok := mats[vb.Material]
		if !ok {
			return fmt.Errorf("volume %q references unknown material %q", vb.Name, vb.Material)
		}
		lv, err := f.reg.NewLogicalVolume(s, m, vb.Name)
		if err != nil {
			return err
		}
		f.volumes[vb.Name] = lv
	}
	return nil
}

func buildMaterial(mb *materialBlock) (*geo.Material, error) {
	if mb.Predefined != nil && *mb.Predefined {
		return geo.PredefinedMaterial(mb.Name), nil
	}
	if mb.Density == nil {
		return nil, fmt.Errorf("material %q needs a density (or predefined = true)", mb.Name)
	}
	m := &geo.Material{Name: mb.Name, Density: *mb.Density}
	for _, eb := range mb.Elements {
		m.AddElement(geo.Element{Name: eb.Name, Symbol: eb.Symbol, Z: eb.Z, A: eb.A}, eb.Fraction)
	}
	return m, nil
}

// buildSolids resolves solids in dependency order: primitives first, then
// boolean solids once both their operands exist.
func buildSolids(blocks []*solidBlock, evalCtx *hcl.EvalContext) (map[string]geo.Solid, error) {
	solids := make(map[string]geo.Solid, len(blocks))

	var booleans []*solidBlock
	for _, sb := range blocks {
		switch sb.Kind {
		case "box", "tubs", "genericPolycone":
			s, err := buildPrimitive(sb, evalCtx)
			if err != nil {
				return nil, err
			}
			solids[sb.Name] = s
		case "union", "subtraction":
			booleans = append(booleans, sb)
		default:
			return nil, fmt.Errorf("solid %q has unknown kind %q", sb.Name, sb.Kind)
		}
	}

	// Booleans may reference other booleans; iterate until no progress.
	for len(booleans) > 0 {
		progressed := false
		remaining := booleans[:0]
		for _, sb := range booleans {
			s, ok, err := buildBoolean(sb, solids, evalCtx)
			if err != nil {
				return nil, err
			}
			if !ok {
				remaining = append(remaining, sb)
				continue
			}
			solids[sb.Name] = s
			progressed = true
		}
		if !progressed {
			return nil, fmt.Errorf("boolean solid %q has unresolved operands", remaining[0].Name)
		}
		booleans = remaining
	}
	return solids, nil
}

func buildPrimitive(sb *solidBlock, evalCtx *hcl.EvalContext) (geo.Solid, error) {
	switch sb.Kind {
	case "box":
		var b boxBody
		if diags := gohcl.DecodeBody(sb.Body, evalCtx, &b); diags.HasErrors() {
			return nil, fmt.Errorf("solid %q: %w", sb.Name, diags)
		}
		return &geo.Box{Name: sb.Name, X: b.X, Y: b.Y, Z: b.Z}, nil
	case "tubs":
		var b tubsBody
		if diags := gohcl.DecodeBody(sb.Body, evalCtx, &b); diags.HasErrors() {
			return nil, fmt.Errorf("solid %q: %w", sb.Name, diags)
		}
		t := &geo.Tubs{Name: sb.Name, RMax: b.RMax, Dz: b.Dz, DPhi: 2 * math.Pi}
		if b.RMin != nil {
			t.RMin = *b.RMin
		}
		if b.SPhi != nil {
			t.SPhi = *b.SPhi
		}
		if b.DPhi != nil {
			t.DPhi = *b.DPhi
		}
		return t, nil
	case "genericPolycone":
		var b polyconeBody
		if diags := gohcl.DecodeBody(sb.Body, evalCtx, &b); diags.HasErrors() {
			return nil, fmt.Errorf("solid %q: %w", sb.Name, diags)
		}
		if len(b.R) == 0 || len(b.R) != len(b.Z) {
			return nil, fmt.Errorf("solid %q: r and z must be non-empty and of equal length", sb.Name)
		}
		p := &geo.GenericPolycone{Name: sb.Name, R: b.R, Z: b.Z, DPhi: 2 * math.Pi}
		if b.SPhi != nil {
			p.SPhi = *b.SPhi
		}
		if b.DPhi != nil {
			p.DPhi = *b.DPhi
		}
		return p, nil
	}
	return nil, fmt.Errorf("solid %q has unknown kind %q", sb.Name, sb.Kind)
}

func buildBoolean(sb *solidBlock, solids map[string]geo.Solid, evalCtx *hcl.EvalContext) (geo.Solid, bool, error) {
	var b booleanBody
	if diags := gohcl.DecodeBody(sb.Body, evalCtx, &b); diags.HasErrors() {
		return nil, false, fmt.Errorf("solid %q: %w", sb.Name, diags)
	}

	first, ok := solids[b.First]
	if !ok {
		return nil, false, nil
	}
	second, ok := solids[b.Second]
	if !ok {
		return nil, false, nil
	}

	tr, err := booleanTransform(sb.Name, &b)
	if err != nil {
		return nil, false, err
	}

	switch sb.Kind {
	case "union":
		return &geo.Union{Name: sb.Name, First: first, Second: second, Trans: tr}, true, nil
	case "subtraction":
		return &geo.Subtraction{Name: sb.Name, First: first, Second: second, Trans: tr}, true, nil
	}
	return nil, false, fmt.Errorf("solid %q has unknown kind %q", sb.Name, sb.Kind)
}

func booleanTransform(name string, b *booleanBody) (geo.Transform, error) {
	var tr geo.Transform
	if b.Translation != nil {
		t := *b.Translation
		if len(t) != 3 {
			return tr, fmt.Errorf("solid %q: translation needs 3 components", name)
		}
		tr = geo.Translate(t[0], t[1], t[2])
	}
	if b.Rotation != nil {
		r := *b.Rotation
		if len(r) != 3 {
			return tr, fmt.Errorf("solid %q: rotation needs 3 components", name)
		}
		tr.Rotation = [3]float64{r[0], r[1], r[2]}
	}
	return tr, nil
}
