package game

import (
	"image/color"
	"time"
)

// Flight constants
const (
	ThrustSpeed     = 1800.0   // units per second^2 along the heading
	RotationSpeed   = 200.0    // degrees per second^2
	GravityStrength = 800.0    // units per second^2 at ground level
	SpaceAltitude   = -20000.0 // gravity fades to zero at this height
	linearDrag      = 0.99
	angularDrag     = 0.9
	forceMultiplier = 0.8 // particle force growth per second
	GroundLevel     = 100.0
	crashMargin     = 50.0
	StarAltitude    = -15000.0
	starDensity     = 5000.0 // viewport px^2 per star
	upright         = 270.0
)

// Landing and docking targets
const (
	boosterRestY    = 145.0
	shipCaptureY    = -98.0
	shipDockedY     = 64.0
	chopsticksRestY = -80.0
	chopsticksDockY = 81.0
	catchRange      = 50.0
	catchMinAngle   = 250.0
	catchMaxAngle   = 290.0
)

// Mission constants
const (
	orbitTargetX        = 5000.0
	orbitTargetY        = -25000.0
	orbitTolerance      = 1000.0
	landingTargetX      = 0.0
	landingTargetY      = -80.0
	separationOffset    = 30.0
	separationImpulse   = 0.15
	satelliteCount      = 10
	satelliteAccel      = 15.0
	satelliteEjectDist  = 5.0
	maxExhaustParticles = 100
	exhaustPerTick      = 4
	exhaustForce        = 800.0
	explosionSpread     = 50.0
	explosionCount      = 500
	explosionForce      = 100.0
	cameraSmoothing     = 0.1
	shakeConstant       = 0.05
	launchShake         = 100.0
	launchOffsetX       = -20.0
	launchRotation      = -95.0
	startY              = -60.0
	unitsPerKm          = 200.0
	starFadeTop         = -18000.0
	starFadeDepth       = 3000.0
	groundBandOffset    = 168.0
	groundLineWidth     = 8.0
)

// Particle lifetimes
const (
	exhaustLifetime   = 100 * time.Millisecond
	explosionLifetime = time.Second
)

// Particle colors as r, g, b, alpha
var (
	exhaustColor   = [4]float64{140, 20, 252, 1}
	explosionOuter = [4]float64{255, 165, 0, 1}
	explosionInner = [4]float64{255, 0, 0, 1}
	starColor      = [4]float64{255, 255, 255, 1}
)

// Scenery colors
var (
	colorSky       = color.NRGBA{R: 116, G: 162, B: 255, A: 255}
	colorGrass     = color.NRGBA{R: 11, G: 176, B: 58, A: 255}
	colorGrassEdge = color.NRGBA{R: 10, G: 142, B: 47, A: 255}
	colorHUD       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)
