// @title HitEdu 后端 API
// @version 1.0
// @description HitEdu 智慧教育平台的数据服务。

// @host localhost:3001
// @BasePath /api

package main

import (
	"flag"
	"log"

	"hitedu_backend/internal/app"
	"hitedu_backend/internal/config"
	"hitedu_backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
