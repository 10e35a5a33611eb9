package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"path"

	"gigbook/src/boot"
	"gigbook/src/middlewares"
	"gigbook/src/utils"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
)

const (
	apiPrefix string = "/api/v1"
)

var showDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := utils.ParseShowTime(date)
	return err == nil
}

var usStateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	state, ok := fl.Field().Interface().(string)
	if !ok || len(state) != 2 {
		return false
	}
	for _, r := range state {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.Use(middlewares.RequestID)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func apiv1Group(g *gin.Engine) *gin.RouterGroup {
	apiv1 := g.Group(apiPrefix)
	return apiv1
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("showdate", showDateValidatorFunc)
		v.RegisterValidation("usstate", usStateValidatorFunc)
	}
}

// initLogger splits the output: gin's request log goes to http.log plus the
// console, service log lines rotate in gigbook.log.
func initLogger() {
	cwd, _ := os.Getwd()
	serviceLogs := path.Join(cwd, "logs", "gigbook.log")
	httpLogs := path.Join(cwd, "logs", "http.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(httpLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serviceLogs,
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     14,
		Compress:   true,
	})
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()

	boot.InitDb()

	router := setupRouter()
	router.Use(cors.Default())

	registerValidators()

	apiv1 := apiv1Group(router)
	apiv1 = venueHandlers(apiv1)
	apiv1 = artistHandlers(apiv1)
	apiv1 = showHandlers(apiv1)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "5000"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %s", err)
	}
}
