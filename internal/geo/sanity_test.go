package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sceneWithWorld(t *testing.T) (*Registry, *LogicalVolume) {
	t.Helper()
	reg := NewRegistry()
	world, err := reg.NewLogicalVolume(&Box{Name: "world", X: 100, Y: 100, Z: 100}, testMaterial("vacuum"), "world")
	require.NoError(t, err)
	require.NoError(t, reg.SetWorld(world))
	return reg, world
}

func TestCheckSanity_NoWorld(t *testing.T) {
	require.ErrorContains(t, CheckSanity(NewRegistry()), "no world volume")
}

func TestCheckSanity_ValidTree(t *testing.T) {
	reg, world := sceneWithWorld(t)
	child, err := reg.NewLogicalVolume(&Box{Name: "c", X: 10, Y: 10, Z: 10}, testMaterial("steel"), "Child")
	require.NoError(t, err)
	_, err = reg.PlaceVolume(child, world, "Child_PV", Translate(0, 0, 5))
	require.NoError(t, err)

	require.NoError(t, CheckSanity(reg))
}

func TestCheckSanity_SameVolumePlacedTwice(t *testing.T) {
	// Placing one logical volume under two names is legal; the placements
	// are distinct.
	reg, world := sceneWithWorld(t)
	child, err := reg.NewLogicalVolume(&Box{Name: "c", X: 10, Y: 10, Z: 10}, testMaterial("steel"), "Child")
	require.NoError(t, err)
	_, err = reg.PlaceVolume(child, world, "Child_PV_1", Translate(0, 0, 5))
	require.NoError(t, err)
	_, err = reg.PlaceVolume(child, world, "Child_PV_2", Translate(0, 0, -5))
	require.NoError(t, err)

	require.NoError(t, CheckSanity(reg))
}

func TestCheckSanity_UnreachableVolume(t *testing.T) {
	reg, _ := sceneWithWorld(t)
	_, err := reg.NewLogicalVolume(&Box{Name: "o", X: 1, Y: 1, Z: 1}, testMaterial("steel"), "Orphan")
	require.NoError(t, err)

	require.ErrorContains(t, CheckSanity(reg), "not reachable")
}

func TestCheckSanity_ContainmentCycle(t *testing.T) {
	reg, world := sceneWithWorld(t)
	a, err := reg.NewLogicalVolume(&Box{Name: "a", X: 10, Y: 10, Z: 10}, testMaterial("steel"), "A")
	require.NoError(t, err)
	b, err := reg.NewLogicalVolume(&Box{Name: "b", X: 5, Y: 5, Z: 5}, testMaterial("steel"), "B")
	require.NoError(t, err)

	_, err = reg.PlaceVolume(a, world, "A_PV", Identity)
	require.NoError(t, err)
	_, err = reg.PlaceVolume(b, a, "B_PV", Identity)
	require.NoError(t, err)
	_, err = reg.PlaceVolume(a, b, "A_in_B_PV", Identity)
	require.NoError(t, err)

	require.ErrorContains(t, CheckSanity(reg), "containment cycle")
}
