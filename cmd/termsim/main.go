// termsim 在终端中运行关卡：tcell 负责输入与绘制，beep 负责提示音
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/game"
	"github.com/decker502/hollow/pkg/systems"
	"github.com/decker502/hollow/pkg/world"
	"github.com/gdamore/tcell/v2"
)

// tickRate 模拟频率（Hz）
const tickRate = 60

var (
	dataDir = flag.String("data", "data", "配置目录（player.yaml / level.yaml / audio.yaml）")
	logFile = flag.String("log", "", "日志输出文件，为空时丢弃日志")
	mute    = flag.Bool("mute", false, "关闭提示音")
)

// sim 终端模拟器：持有当前关卡，重新开始时整体替换
type sim struct {
	player *config.PlayerConfig
	level  *config.LevelConfig
	audio  systems.AudioSink

	world *world.World
	input termInput
}

func newSim(player *config.PlayerConfig, level *config.LevelConfig, audio systems.AudioSink) *sim {
	s := &sim{player: player, level: level, audio: audio}
	s.restart()
	return s
}

// restart 创建并开始一个新关卡
func (s *sim) restart() {
	s.world = world.New(world.Options{
		Player: s.player,
		Level:  s.level,
		Audio:  s.audio,
	})
	s.world.Start()
	log.Printf("[TermSim] Level %q started", s.level.Name)
}

// step 推进一帧；失败、通关或暂停时 r 重新开始
func (s *sim) step(dt float64) {
	in := s.input.Poll()
	s.input.Advance(dt)

	over := s.world.Session().IsPaused() || s.world.Won()
	if in.RestartPressed && over {
		s.restart()
		return
	}
	s.world.Update(dt, in)
}

func loadConfigs(dir string) (*config.PlayerConfig, *config.LevelConfig, *game.ResourceManager, error) {
	player, err := config.LoadPlayerConfig(filepath.Join(dir, "player.yaml"))
	if err != nil {
		return nil, nil, nil, err
	}
	level, err := config.LoadLevelConfig(filepath.Join(dir, "level.yaml"))
	if err != nil {
		return nil, nil, nil, err
	}
	rm := game.NewResourceManager(nil)
	if err := rm.LoadResourceConfig(filepath.Join(dir, "audio.yaml")); err != nil {
		log.Printf("[TermSim] Warning: %v (cues will be silent)", err)
	}
	return player, level, rm, nil
}

func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

func run() error {
	flag.Parse()

	logCloser, err := setupLogging(*logFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	player, level, rm, err := loadConfigs(*dataDir)
	if err != nil {
		return err
	}

	audio := newBeepAudio(rm, *mute)
	defer audio.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	s := newSim(player, level, audio)

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(screen, events, done)

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	const dt = 1.0 / tickRate
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				s.input.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}
			if s.input.quit {
				log.Printf("[TermSim] Quit")
				return nil
			}
		case <-ticker.C:
			s.step(dt)
			drawFrame(screen, s.world)
		}
	}
}

// eventPoller 阻塞式事件源（tcell.Screen）
type eventPoller interface {
	PollEvent() tcell.Event
}

// forwardEvents 把终端事件转发到 events，done 关闭或屏幕结束时退出
func forwardEvents(p eventPoller, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := p.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termsim: %v\n", err)
		os.Exit(1)
	}
}
