package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"jd-generator/config"
	apiv1 "jd-generator/controllers/v1"
	webcontrollers "jd-generator/controllers/web"
	_ "jd-generator/docs"
	"jd-generator/fiberlog"
	"jd-generator/initializers"
	"jd-generator/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
)

// @title Job Description Generator API
// @version 1.0
// @BasePath /
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 4 * 1024 * 1024, // limit of 4MB
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//форма
	webcontrollers.InitFormRouters(app, initializers.FormProfile, initializers.FormVariant)

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	apiV1.Use(middleware.WithBodyLimit(1024 * 1024))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST",
	}))
	apiv1.InitJobDescriptionApiRouters(apiV1, initializers.FormProfile.Name, initializers.FormVariant)
	apiv1.InitAiLogApiRouters(apiV1, initializers.AiLogStore)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
