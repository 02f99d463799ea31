package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06 // s; longer frames are clamped so enemies never tunnel through the base

	BaseRadius = 46.0
	BaseMargin = 60.0 // distance of the base edge from the right and bottom borders

	// Laser
	PlayerFireRate  = 7.5 // shots per second
	HitscanDamage   = 24
	BeamDurationMs  = 90
	BlinkDurationMs = 90
	RecoilSeconds   = 0.015
	LaserPiercing   = false

	// Spawn placement
	MinSpawnDist     = 240.0
	MaxSpawnAttempts = 32
	SpawnEdgeInset   = 40.0  // keep spawns this far from the corners along an edge
	SpawnOffscreen   = -20.0 // spawn coordinate just outside the top/left border

	// Minions
	MinionOffsetMin = 8.0
	MinionOffsetMax = 16.0

	// Muzzle flash
	MuzzleParticles = 6
	MuzzleSpread    = 0.4 // radians either side of the beam
	MuzzleSpeedMin  = 120.0
	MuzzleSpeedMax  = 260.0
	MuzzleRadiusMin = 1.5
	MuzzleRadiusMax = 2.5
	MuzzleLifeMinMs = 120.0
	MuzzleLifeMaxMs = 220.0
	PuffParticles   = 10
	PuffSpeedMin    = 60.0
	PuffSpeedMax    = 180.0
	PuffRadiusMin   = 1.5
	PuffRadiusMax   = 3.0
	PuffLifeMinMs   = 150.0
	PuffLifeMaxMs   = 300.0

	// Disintegration glyphs
	GlyphCharset     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	GlyphMin         = 10
	GlyphMax         = 20
	GlyphBaseLifeMs  = 500.0
	GlyphLifeJitter  = 600.0
	GlyphSpeedMin    = 60.0
	GlyphSpeedMax    = 180.0
	GlyphSizeMin     = 10.0
	GlyphSizeMax     = 18.0
	GlyphMaxSpin     = 1.2 // rad/s
	GlyphDamping     = 0.94
	GlyphKillPower   = 1.4
	GlyphImpactPower = 0.9

	// HUD / grid
	GridStep       = 40
	GridOffset     = 20
	AimLineLength  = 80.0
	AimRecoilExtra = 30.0
)

var (
	BackgroundColor = color.RGBA{0x0a, 0x0b, 0x0f, 0xff}
	GridColor       = color.RGBA{0x12, 0x16, 0x25, 0xff}
	BeamColor       = color.RGBA{0xeb, 0x06, 0x06, 0xff}
	BeamGlowColor   = color.RGBA{0xff, 0x00, 0x00, 0x32}
	MuzzleColor     = color.RGBA{0x9b, 0xe1, 0xff, 0xff}
	GlyphColor      = color.RGBA{0x00, 0xff, 0x88, 0xff}
	AimColor        = color.RGBA{0xff, 0xff, 0xff, 0x55}
	BaseFillColor   = color.RGBA{0x0f, 0x1b, 0x12, 0xff}
	BaseRingColor   = color.RGBA{0x17, 0x33, 0x1f, 0xff}
	TextLightColor  = color.RGBA{0xc9, 0xd1, 0xd9, 0xff}
	HUDBorderColor  = color.RGBA{0x2b, 0x3a, 0x55, 0xff}
	HUDFillColor    = color.RGBA{0x0a, 0x0c, 0x12, 0xd9}
	HealthGood      = color.RGBA{0x7e, 0xe7, 0x87, 0xff}
	HealthWarn      = color.RGBA{0xff, 0xd1, 0x66, 0xff}
	HealthBad       = color.RGBA{0xff, 0x6b, 0x6b, 0xff}
	ScoreTextColor  = color.RGBA{0x9f, 0xb7, 0xff, 0xff}
	OverlayColor    = color.RGBA{0x00, 0x00, 0x00, 0x8c}
	BandColor       = color.RGBA{0x00, 0x00, 0x00, 0x73}
	BatteryFrame    = color.RGBA{0xbc, 0xd7, 0xff, 0xff}
)

// HealthColor picks the green/amber/red tint for a ratio in [0, 1].
func HealthColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.5:
		return HealthGood
	case ratio > 0.25:
		return HealthWarn
	default:
		return HealthBad
	}
}
