package game

// ResourceConfig represents the top-level audio configuration loaded from YAML.
// It defines the structure of data/audio.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets/audio
//	groups:
//	  group_name:
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all audio files (e.g., "assets/audio")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related cues that can be loaded together.
//
// Example from audio.yaml:
//
//	player:
//	  sounds:
//	    - { id: SOUND_JUMP, path: player/jump, duration: 0.5 }
type ResourceGroup struct {
	Sounds []SoundResource `yaml:"sounds"` // List of sound resources in this group
}

// SoundResource represents a single cue definition.
//
// Fields:
//   - ID: Unique identifier for the cue (e.g., "SOUND_FOOTSTEP1")
//   - Path: Relative path from base_path to the audio file (".ogg" appended when no extension)
//   - Duration: Clip length in seconds, used to gate one-shot effects without decoding the file
//   - Loop: Whether the cue loops until stopped (ambience)
//
// Example:
//   - id: SOUND_KEY_PICKUP
//     path: items/key_pickup
//     duration: 0.8
type SoundResource struct {
	ID       string  `yaml:"id"`
	Path     string  `yaml:"path"`
	Duration float64 `yaml:"duration"`
	Loop     bool    `yaml:"loop,omitempty"`
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
//
// Parameters:
//   - basePath: The base path from ResourceConfig (e.g., "assets/audio")
//   - relativePath: The resource's relative path (e.g., "player/jump.ogg")
//
// Returns:
//   - The full file path (e.g., "assets/audio/player/jump.ogg")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
