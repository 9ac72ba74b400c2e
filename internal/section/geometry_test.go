package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTBeamProperties(t *testing.T) {
	b := TBeam{WebHeight: 10, WebThickness: 3, FlangeWidth: 8, FlangeThickness: 4}
	props := b.CalculateProperties()

	assert.InDelta(t, 62.0, props.Area, 1e-12)
	assert.InDelta(t, 8.6129, props.Centroid, 1e-4)
	assert.InDelta(t, 1051.37631867699, props.Ixx, 1e-8)
	assert.InDelta(t, 193.16666666666, props.Iyy, 1e-8)
}

func TestFrustum(t *testing.T) {
	// A cylinder is a frustum with equal radii
	assert.InDelta(t, math.Pi*100*35, FrustumVolume(10, 10, 35), 1e-9)
	assert.InDelta(t, 17.5, FrustumCentroid(10, 10, 35), 1e-12)

	// A cone has its centroid at a quarter height from the base
	assert.InDelta(t, 2.5, FrustumCentroid(5, 0, 10), 1e-12)
	assert.InDelta(t, math.Pi/3*25*10, FrustumVolume(5, 0, 10), 1e-9)
}

func TestFrustumShellVolume(t *testing.T) {
	// Straight shell reduces to 2πRth
	assert.InDelta(t, 2*math.Pi*9.75*0.5*20, FrustumShellVolume(9.75, 9.75, 0.5, 0.5, 20), 1e-9)
}

func TestInertiaShift(t *testing.T) {
	i := CylinderInertia(10, 2, 6)
	assert.InDelta(t, 20.0, i.Izz, 1e-12)
	assert.InDelta(t, 10*(12+36)/12.0, i.Ixx, 1e-12)

	s := i.Shifted(10, 0, 0, 3)
	assert.InDelta(t, i.Ixx+90, s.Ixx, 1e-12)
	assert.InDelta(t, i.Izz, s.Izz, 1e-12)

	d := DiskInertia(4, 1)
	assert.InDelta(t, 2.0, d.Izz, 1e-12)
	assert.InDelta(t, 1.0, d.Ixx, 1e-12)
}
