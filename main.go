package main

import (
	"github.com/petalperfect/shop_service/config"
	"github.com/petalperfect/shop_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
