package main

import (
	"github.com/AbdullahAljelamneh/repright-application/config"
	"github.com/AbdullahAljelamneh/repright-application/routes"

	"github.com/sirupsen/logrus"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()
	if err := r.Run(":8080"); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
