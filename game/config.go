package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// WindowTitle is shown by windowed hosts
	WindowTitle string

	// MaxFrame caps the simulated step of a single frame
	MaxFrame time.Duration

	// LaunchDelay is the countdown between pressing start and liftoff
	LaunchDelay time.Duration

	// ResetDelay is how long an explosion plays before the mission resets
	ResetDelay time.Duration

	// PayloadInterval staggers satellite releases
	PayloadInterval time.Duration

	// Seed feeds the effects random source, 0 picks one from the clock
	Seed int64

	// LogLevel and LogFormat configure logrus ("text" or "json")
	LogLevel  string
	LogFormat string

	// ProfileDir receives CPU profiles of slow frames
	ProfileDir string

	// ProfileThreshold is the frame time that triggers a capture, 0 disables profiling
	ProfileThreshold time.Duration

	// ProfileDuration is how long each capture records
	ProfileDuration time.Duration

	// ProfileCooldown is the minimum gap between captures
	ProfileCooldown time.Duration

	// SpriteDir holds PNG overrides named after sprite IDs, empty uses generated art
	SpriteDir string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      1024,
		ScreenHeight:     768,
		WindowTitle:      "Starship",
		MaxFrame:         100 * time.Millisecond,
		LaunchDelay:      5 * time.Second,
		ResetDelay:       time.Second,
		PayloadInterval:  500 * time.Millisecond,
		LogLevel:         "info",
		LogFormat:        "text",
		ProfileDir:       "profiles",
		ProfileThreshold: 0,
		ProfileDuration:  5 * time.Second,
		ProfileCooldown:  10 * time.Second,
	}
}

// LoadConfig layers defaults, an optional config file and STARSHIP_* environment
// variables. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	def := DefaultConfig()
	v := viper.New()

	v.SetDefault("screen.width", def.ScreenWidth)
	v.SetDefault("screen.height", def.ScreenHeight)
	v.SetDefault("window.title", def.WindowTitle)
	v.SetDefault("frame.max", def.MaxFrame)
	v.SetDefault("mission.launchDelay", def.LaunchDelay)
	v.SetDefault("mission.resetDelay", def.ResetDelay)
	v.SetDefault("mission.payloadInterval", def.PayloadInterval)
	v.SetDefault("mission.seed", def.Seed)
	v.SetDefault("log.level", def.LogLevel)
	v.SetDefault("log.format", def.LogFormat)
	v.SetDefault("profile.dir", def.ProfileDir)
	v.SetDefault("profile.threshold", def.ProfileThreshold)
	v.SetDefault("profile.duration", def.ProfileDuration)
	v.SetDefault("profile.cooldown", def.ProfileCooldown)
	v.SetDefault("assets.dir", def.SpriteDir)

	v.SetEnvPrefix("STARSHIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := Config{
		ScreenWidth:      v.GetInt("screen.width"),
		ScreenHeight:     v.GetInt("screen.height"),
		WindowTitle:      v.GetString("window.title"),
		MaxFrame:         v.GetDuration("frame.max"),
		LaunchDelay:      v.GetDuration("mission.launchDelay"),
		ResetDelay:       v.GetDuration("mission.resetDelay"),
		PayloadInterval:  v.GetDuration("mission.payloadInterval"),
		Seed:             v.GetInt64("mission.seed"),
		LogLevel:         v.GetString("log.level"),
		LogFormat:        v.GetString("log.format"),
		ProfileDir:       v.GetString("profile.dir"),
		ProfileThreshold: v.GetDuration("profile.threshold"),
		ProfileDuration:  v.GetDuration("profile.duration"),
		ProfileCooldown:  v.GetDuration("profile.cooldown"),
		SpriteDir:        v.GetString("assets.dir"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// withDefaults fills the fields whose zero value the frame loop cannot run
// with. Zero delays, seed, threshold and sprite dir are meaningful and kept.
// An all-zero Config becomes DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c == (Config{}) {
		return def
	}
	if c.ScreenWidth == 0 {
		c.ScreenWidth = def.ScreenWidth
	}
	if c.ScreenHeight == 0 {
		c.ScreenHeight = def.ScreenHeight
	}
	if c.WindowTitle == "" {
		c.WindowTitle = def.WindowTitle
	}
	if c.MaxFrame == 0 {
		c.MaxFrame = def.MaxFrame
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = def.LogFormat
	}
	if c.ProfileDir == "" {
		c.ProfileDir = def.ProfileDir
	}
	if c.ProfileDuration == 0 {
		c.ProfileDuration = def.ProfileDuration
	}
	if c.ProfileCooldown == 0 {
		c.ProfileCooldown = def.ProfileCooldown
	}
	return c
}

// Validate rejects settings the frame loop cannot run with.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.MaxFrame <= 0 {
		return fmt.Errorf("frame.max must be positive, got %s", c.MaxFrame)
	}
	if c.LaunchDelay < 0 || c.ResetDelay < 0 || c.PayloadInterval < 0 {
		return fmt.Errorf("mission delays must not be negative")
	}
	if c.ProfileThreshold > 0 && c.ProfileDuration <= 0 {
		return fmt.Errorf("profile.duration must be positive, got %s", c.ProfileDuration)
	}
	if c.ProfileCooldown < 0 {
		return fmt.Errorf("profile.cooldown must not be negative")
	}
	return nil
}
