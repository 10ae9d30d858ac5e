package main

import (
	"flag"

	log "github.com/sirupsen/logrus"
	"lz/config"
	"lz/scenario"
	"lz/server"
)

func main() {
	path := flag.String("config", "conf/config.ini", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		log.WithError(err).Fatal("加载配置失败")
	}
	cfg.SetupLog()

	s, err := server.NewServer(cfg, scenario.NewStore())
	if err != nil {
		log.WithError(err).Fatal("创建服务失败")
	}
	if err := s.Serve(); err != nil {
		log.WithError(err).Fatal("服务退出")
	}
}
