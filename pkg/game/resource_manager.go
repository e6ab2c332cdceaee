package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for loading and caching audio cues.
// Cues are declared in data/audio.yaml and addressed by ID.
//
// Files are read from disk first and fall back to the embedded filesystem,
// so a build without bundled audio still runs (cues simply stay silent).
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is only used from the
// single-threaded game loop.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("data/audio.yaml"); err != nil {
//	    log.Printf("Failed to load audio config: %v", err)
//	}
type ResourceManager struct {
	audioContext *audio.Context           // Global audio context, nil disables decoding
	audioCache   map[string]*audio.Player // Cache for loaded players: path -> Player

	config      *ResourceConfig          // Parsed YAML configuration
	resourceMap map[string]SoundResource // Resource ID -> resolved sound definition
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context. May be nil in headless runs and
//     tests; lookups by ID and durations still work, loading returns an error.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext: audioContext,
		audioCache:   make(map[string]*audio.Player),
		resourceMap:  make(map[string]SoundResource),
	}
}

// LoadResourceConfig loads and parses the audio configuration file.
// Disk overrides the embedded copy (see config.ReadDataFile).
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := config.ReadDataFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}
	return rm.ParseResourceConfig(data)
}

// ParseResourceConfig parses audio configuration YAML and rebuilds the ID map.
func (rm *ResourceManager) ParseResourceConfig(data []byte) error {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse resource config: %w", err)
	}

	rm.config = &cfg
	rm.buildResourceMap()
	return nil
}

// buildResourceMap constructs a mapping from cue IDs to resolved definitions.
//
//	SOUND_JUMP -> assets/audio/player/jump.ogg
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]SoundResource)

	for _, group := range rm.config.Groups {
		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".ogg" // Default to OGG for sounds
			}
			resolved := sound
			resolved.Path = fullPath
			rm.resourceMap[sound.ID] = resolved
		}
	}
}

// LookupSound returns the resolved definition for a cue ID.
func (rm *ResourceManager) LookupSound(soundID string) (SoundResource, bool) {
	sound, ok := rm.resourceMap[soundID]
	return sound, ok
}

// SoundIDs returns every cue ID declared in a group.
func (rm *ResourceManager) SoundIDs(groupName string) []string {
	if rm.config == nil {
		return nil
	}
	group, ok := rm.config.Groups[groupName]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(group.Sounds))
	for _, s := range group.Sounds {
		ids = append(ids, s.ID)
	}
	return ids
}

// LoadSoundByID loads the cue identified by soundID.
// Looping cues are wrapped in an infinite loop.
func (rm *ResourceManager) LoadSoundByID(soundID string) (*audio.Player, error) {
	sound, ok := rm.resourceMap[soundID]
	if !ok {
		return nil, fmt.Errorf("sound resource ID not found: %s", soundID)
	}
	if sound.Loop {
		return rm.LoadAudio(sound.Path)
	}
	return rm.LoadSoundEffect(sound.Path)
}

// LoadAudio loads a looping audio stream (ambience) and caches the player.
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg) and WAV (.wav).
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.decode(path)
	if err != nil {
		return nil, err
	}

	loopStream := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadSoundEffect loads a one-shot sound effect and caches the player.
// Unlike LoadAudio, the stream is NOT wrapped in an infinite loop.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.decode(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// GetAudioPlayer retrieves a previously loaded player from the cache.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}

// LoadResourceGroup preloads every cue in a group.
// Missing files are skipped; the first error is returned after the whole group
// has been attempted.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	var firstErr error
	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundByID(sound.ID); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
	}
	return firstErr
}

type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

// decode reads the file fully into memory and decodes it by extension.
func (rm *ResourceManager) decode(path string) (decodedStream, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context, cannot load %s", path)
	}

	audioData, err := readAudioFile(path)
	if err != nil {
		return nil, err
	}
	reader := bytes.NewReader(audioData)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}
}

// readAudioFile reads from disk first, then from the embedded assets.
func readAudioFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) || !embedded.IsInitialized() {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}
	data, embErr := embedded.ReadFile(filepath.ToSlash(path))
	if embErr != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, embErr)
	}
	return data, nil
}
