package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/freshmart/catalog-service/config"
	"github.com/freshmart/catalog-service/internal/controller"
	appmiddleware "github.com/freshmart/catalog-service/internal/middleware"
	"github.com/freshmart/catalog-service/internal/infrastructure/database/mongodb"
	"github.com/freshmart/catalog-service/internal/infrastructure/message-queue/kafka"
	objectstorage "github.com/freshmart/catalog-service/internal/infrastructure/object-storage"
	"github.com/freshmart/catalog-service/internal/infrastructure/tracing"
	"github.com/freshmart/catalog-service/internal/repository"
	"github.com/freshmart/catalog-service/internal/service"
	"github.com/freshmart/catalog-service/pkg/response"
	"github.com/freshmart/catalog-service/pkg/validation"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	conf := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", conf.MongoDBConfig.DBHost, conf.MongoDBConfig.DBPort), conf.MongoDBConfig.DBName)
	if err != nil {
		panic(err)
	}

	defer db.Client().Disconnect(context.Background())

	if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		log.Warn().Err(err).Msg("Failed to ensure indexes")
	}

	if conf.TracingConfig.CollectorHost != "" {
		tracerProvider, err := tracing.InitTracing(conf.TracingConfig.CollectorHost)
		if err != nil {
			panic(err)
		}
		defer tracerProvider.Shutdown(context.Background())
	}

	var kafkaProducer *kafkago.Conn
	if conf.KafkaConfig.BrokerAddress != "" {
		kafkaProducer = kafka.CreateKafkaProducer(conf)
		defer kafkaProducer.Close()
	}

	cloudinaryRepo, err := objectstorage.CreateCloudinaryRepository(conf.CloudinaryConfig)
	if err != nil {
		panic(err)
	}

	e := echo.New()
	e.Validator = validation.CreateRequestValidator()
	e.Use(appmiddleware.Logger)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     conf.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	g := e.Group("/api/v1")

	isLoggedIn := appmiddleware.IsLoggedIn(conf.JWTSecret)

	categoryRepo := repository.CreateMongoDBCategoryRepository(db)
	subCategoryRepo := repository.CreateMongoDBSubCategoryRepository(db)
	productRepo := repository.CreateMongoDBProductRepository(db)
	reviewRepo := repository.CreateMongoDBReviewRepository(db)
	userRepo := repository.CreateMongoDBUserRepository(db)
	imageUploadRepo := repository.CreateMongoDBImageUploadRepository(db)

	aggregator := service.CreateRatingAggregator(productRepo, reviewRepo)

	categorySvc := service.CreateCategoryService(categoryRepo, productRepo, cloudinaryRepo)
	subCategorySvc := service.CreateSubCategoryService(subCategoryRepo, categoryRepo)
	productSvc := service.CreateProductService(productRepo, categoryRepo, subCategoryRepo, cloudinaryRepo, kafkaProducer)
	reviewSvc := service.CreateReviewService(reviewRepo, productRepo, aggregator)
	userSvc := service.CreateUserService(userRepo, *conf)
	uploadSvc := service.CreateUploadService(imageUploadRepo, cloudinaryRepo, conf.CloudinaryConfig.Folder)

	controller.CreateCategoryController(g, categorySvc, isLoggedIn)
	controller.CreateSubCategoryController(g, subCategorySvc, isLoggedIn)
	controller.CreateProductController(g, productSvc, isLoggedIn)
	controller.CreateReviewController(g, reviewSvc, isLoggedIn)
	controller.CreateUserController(g, userSvc)
	controller.CreateUploadController(g, uploadSvc, isLoggedIn)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", conf.ServicePort)))
}
