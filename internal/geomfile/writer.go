package geomfile

import (
	"fmt"
	"io"
	"sort"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/hadesgeo/internal/geo"
)

// Write serializes a fully placed registry back into the shape-description
// format, so a constructed scene can be handed to downstream consumers.
func Write(w io.Writer, reg *geo.Registry) error {
	if reg.World() == nil {
		return fmt.Errorf("cannot write a registry without a world volume")
	}

	f := hclwrite.NewEmptyFile()
	body := f.Body()

	writeMaterials(body, reg)
	if err := writeSolids(body, reg); err != nil {
		return err
	}
	writeVolumes(body, reg)
	writePlacements(body, reg)
	body.SetAttributeValue("world", cty.StringVal(reg.World().Name))

	_, err := f.WriteTo(w)
	return err
}

func writeMaterials(body *hclwrite.Body, reg *geo.Registry) {
	for _, name := range sortedMaterialNames(reg) {
		m, _ := reg.Material(name)
		b := body.AppendNewBlock("material", []string{m.Name}).Body()
		if m.Predefined {
			b.SetAttributeValue("predefined", cty.True)
			body.AppendNewline()
			continue
		}
		b.SetAttributeValue("density", cty.NumberFloatVal(m.Density))
		for _, c := range m.Components {
			eb := b.AppendNewBlock("element", []string{c.Element.Name}).Body()
			eb.SetAttributeValue("symbol", cty.StringVal(c.Element.Symbol))
			eb.SetAttributeValue("z", cty.NumberIntVal(int64(c.Element.Z)))
			eb.SetAttributeValue("a", cty.NumberFloatVal(c.Element.A))
			eb.SetAttributeValue("fraction", cty.NumberFloatVal(c.Fraction))
		}
		body.AppendNewline()
	}
}

func writeSolids(body *hclwrite.Body, reg *geo.Registry) error {
	// Primitives first, then booleans in name order. A boolean referencing
	// another boolean may point forward in the file; the loader resolves
	// boolean operands to a fixpoint, so order among booleans is free.
	names := sortedSolidNames(reg)
	for pass := 0; pass < 2; pass++ {
		for _, name := range names {
			s, _ := reg.Solid(name)
			_, boolean := s.(*geo.Union)
			if !boolean {
				_, boolean = s.(*geo.Subtraction)
			}
			if (pass == 0) == boolean {
				continue
			}
			if err := writeSolid(body, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSolid(body *hclwrite.Body, s geo.Solid) error {
	switch v := s.(type) {
	case *geo.Box:
		b := body.AppendNewBlock("solid", []string{"box", v.Name}).Body()
		b.SetAttributeValue("x", cty.NumberFloatVal(v.X))
		b.SetAttributeValue("y", cty.NumberFloatVal(v.Y))
		b.SetAttributeValue("z", cty.NumberFloatVal(v.Z))
	case *geo.Tubs:
		b := body.AppendNewBlock("solid", []string{"tubs", v.Name}).Body()
		b.SetAttributeValue("rmin", cty.NumberFloatVal(v.RMin))
		b.SetAttributeValue("rmax", cty.NumberFloatVal(v.RMax))
		b.SetAttributeValue("dz", cty.NumberFloatVal(v.Dz))
		b.SetAttributeValue("sphi", cty.NumberFloatVal(v.SPhi))
		b.SetAttributeValue("dphi", cty.NumberFloatVal(v.DPhi))
	case *geo.GenericPolycone:
		b := body.AppendNewBlock("solid", []string{"genericPolycone", v.Name}).Body()
		b.SetAttributeValue("r", floatList(v.R))
		b.SetAttributeValue("z", floatList(v.Z))
		b.SetAttributeValue("sphi", cty.NumberFloatVal(v.SPhi))
		b.SetAttributeValue("dphi", cty.NumberFloatVal(v.DPhi))
	case *geo.Union:
		writeBoolean(body, "union", v.Name, v.First, v.Second, v.Trans)
	case *geo.Subtraction:
		writeBoolean(body, "subtraction", v.Name, v.First, v.Second, v.Trans)
	default:
		return fmt.Errorf("cannot serialize solid %q (%T)", s.SolidName(), s)
	}
	body.AppendNewline()
	return nil
}

func writeBoolean(body *hclwrite.Body, kind, name string, first, second geo.Solid, tr geo.Transform) {
	b := body.AppendNewBlock("solid", []string{kind, name}).Body()
	b.SetAttributeValue("first", cty.StringVal(first.SolidName()))
	b.SetAttributeValue("second", cty.StringVal(second.SolidName()))
	b.SetAttributeValue("translation", floatList([]float64{tr.Translation.X, tr.Translation.Y, tr.Translation.Z}))
	b.SetAttributeValue("rotation", floatList(tr.Rotation[:]))
}

func writeVolumes(body *hclwrite.Body, reg *geo.Registry) {
	for _, name := range sortedVolumeNames(reg) {
		lv, _ := reg.LogicalVolume(name)
		b := body.AppendNewBlock("volume", []string{lv.Name}).Body()
		b.SetAttributeValue("solid", cty.StringVal(lv.Solid.SolidName()))
		b.SetAttributeValue("material", cty.StringVal(lv.Material.Name))
		body.AppendNewline()
	}
}

func writePlacements(body *hclwrite.Body, reg *geo.Registry) {
	names := reg.PhysicalVolumeNames()
	sort.Strings(names)
	for _, name := range names {
		pv, _ := reg.PhysicalVolume(name)
		b := body.AppendNewBlock("placement", []string{pv.Name}).Body()
		b.SetAttributeValue("volume", cty.StringVal(pv.Volume.Name))
		b.SetAttributeValue("mother", cty.StringVal(pv.Mother.Name))
		b.SetAttributeValue("translation", floatList([]float64{
			pv.Trans.Translation.X, pv.Trans.Translation.Y, pv.Trans.Translation.Z,
		}))
		b.SetAttributeValue("rotation", floatList(pv.Trans.Rotation[:]))
		body.AppendNewline()
	}
}

func floatList(vals []float64) cty.Value {
	list := make([]cty.Value, len(vals))
	for i, v := range vals {
		list[i] = cty.NumberFloatVal(v)
	}
	return cty.ListVal(list)
}

func sortedMaterialNames(reg *geo.Registry) []string {
	names := reg.MaterialNames()
	sort.Strings(names)
	return names
}

func sortedSolidNames(reg *geo.Registry) []string {
	names := reg.SolidNames()
	sort.Strings(names)
	return names
}

func sortedVolumeNames(reg *geo.Registry) []string {
	names := reg.LogicalVolumeNames()
	sort.Strings(names)
	return names
}
