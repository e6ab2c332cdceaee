package main

import (
	"flag"
	"log"

	"github.com/decker502/hollow/pkg/app"
	"github.com/decker502/hollow/pkg/config"
	"github.com/decker502/hollow/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

var (
	verbose  = flag.Bool("verbose", false, "显示详细日志")
	dataDir  = flag.String("data", "data", "配置目录（player.yaml / level.yaml / audio.yaml）")
	skipMenu = flag.Bool("skip-menu", false, "跳过主菜单，直接进入关卡")
)

func main() {
	flag.Parse()

	embedded.Init(nil, dataFS)

	// 设置持久化失败时仍可运行，只是设置不会保存
	gdataManager, err := gdata.Open(gdata.Config{AppName: "hollow"})
	if err != nil {
		log.Printf("[Main] Warning: settings storage unavailable: %v", err)
		gdataManager = nil
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		SkipMenu: *skipMenu,
		DataDir:  *dataDir,
		Gdata:    gdataManager,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
	gameApp.GetSceneManager().Close()
}
