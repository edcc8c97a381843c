package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/scamdex/scamdex-api/api/handlers"
	"github.com/scamdex/scamdex-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	zap.S().Infow("scamdex-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
