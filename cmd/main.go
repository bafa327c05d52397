package main

import (
	"fmt"
	"os"

	"github.com/franciscosanchezn/restaurant-pizzas-api/docs"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/config"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/routes"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Restaurant Pizzas API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants sell them at
// @host localhost:5555
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize database connection
	db := setupDatabase(configuration)

	// Initialize Gin router
	router := routes.SetupRouter(routes.NewDependencies(db, log.StandardLogger()))

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%d", configuration.Host, configuration.Port)

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment.
// An explicit LOG_LEVEL wins over the environment default.
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})
	level := config.LevelForEnvironment(conf.Environment)
	if _, set := os.LookupEnv("LOG_LEVEL"); set {
		parsed, err := log.ParseLevel(conf.LogLevel)
		checkPanicErr(err)
		level = parsed
	}
	log.SetLevel(level)
	database.SetLogLevel(level)
	controllers.SetLogLevel(level)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the database, migrates the schema and seeds it when empty
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if conf.SeedData {
		_, err = database.SeedIfEmpty(db)
		checkPanicErr(err)
	}
	return db
}
