package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "obrafacil/docs" // swag-generated documentation
	"obrafacil/internal/adapter/http/handlers"
	"obrafacil/internal/adapter/persistence/repository"
	"obrafacil/internal/infrastructure/payments"
	"obrafacil/internal/infrastructure/storage"
	"obrafacil/internal/usecase"
	"obrafacil/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	store, err := storage.NewFromEnv(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize storage backend: %v", err)
	}

	clientRepo := repository.NewClientRepository(store)
	estimateRepo := repository.NewEstimateRepository(store)
	serviceRepo := repository.NewServiceRepository(store)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	clientUseCase := usecase.NewClientUseCase(clientRepo)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, serviceRepo)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, paymentGateway)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase, clientUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBusinessRoutes(v1, clientHandler, estimateHandler, serviceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
