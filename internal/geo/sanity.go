package geo

import (
	"fmt"
)

// CheckSanity validates the placement tree of a registry: a world volume
// must be set, the containment graph must be acyclic, every logical volume
// must be reachable from the world, and no physical volume may appear under
// two mothers. The same logical volume may be placed several times; the
// placements themselves must be distinct.
func CheckSanity(r *Registry) error {
	if r.world == nil {
		return fmt.Errorf("registry has no world volume")
	}

	// Classic depth-first search with permanent and temporary marks over
	// the logical-volume containment graph.
	permanent := make(map[*LogicalVolume]bool)
	temporary := make(map[*LogicalVolume]bool)
	seenPV := make(map[*PhysicalVolume]bool)

	var visit func(lv *LogicalVolume) error
	visit = func(lv *LogicalVolume) error {
		if temporary[lv] {
			return fmt.Errorf("containment cycle involving volume %q", lv.Name)
		}
		if permanent[lv] {
			return nil
		}
		if lv.reg != r {
			return fmt.Errorf("volume %q was never adopted into the scene registry", lv.Name)
		}

		temporary[lv] = true
		for _, pv := range lv.daughters {
			if seenPV[pv] {
				return fmt.Errorf("physical volume %q placed under two mothers", pv.Name)
			}
			seenPV[pv] = true
			if pv.Mother != lv {
				return fmt.Errorf("physical volume %q records mother %q but hangs under %q",
					pv.Name, pv.Mother.Name, lv.Name)
			}
			if err := visit(pv.Volume); err != nil {
				return err
			}
		}
		delete(temporary, lv)
		permanent[lv] = true
		return nil
	}

	if err := visit(r.world); err != nil {
		return err
	}

	for name, lv := range r.logicals {
		if !permanent[lv] {
			return fmt.Errorf("volume %q is not reachable from the world volume", name)
		}
	}
	for name, pv := range r.physicals {
		if !seenPV[pv] {
			return fmt.Errorf("physical volume %q is registered but not placed in the tree", name)
		}
	}
	return nil
}
