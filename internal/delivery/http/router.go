package http

import (
	"net/http"
	"time"

	"github.com/LavaJover/shvark-raffle-service/internal/config"
	"github.com/LavaJover/shvark-raffle-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-raffle-service/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-raffle-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-raffle-service/internal/usecase"
	"github.com/LavaJover/shvark-raffle-service/internal/usecase/purchase"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	PurchaseUsecase    purchase.PurchaseUsecase
	RaffleUsecase      usecase.RaffleUsecase
	OfferUsecase       usecase.OfferUsecase
	BankAccountUsecase usecase.BankAccountUsecase
	StaffUsecase       usecase.StaffUsecase
	ReportUsecase      usecase.ReportUsecase
	CustomerUsecase    usecase.CustomerUsecase
	Metrics            *metrics.RaffleMetrics
	RateLimits         config.RateLimits
}

func NewRouter(deps *RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	purchaseHandler := handlers.NewPurchaseHandler(deps.PurchaseUsecase)
	raffleHandler := handlers.NewRaffleHandler(deps.RaffleUsecase)
	offerHandler := handlers.NewOfferHandler(deps.OfferUsecase)
	bankAccountHandler := handlers.NewBankAccountHandler(deps.BankAccountUsecase)
	authHandler := handlers.NewAuthHandler(deps.StaffUsecase)
	reportHandler := handlers.NewReportHandler(deps.ReportUsecase, deps.CustomerUsecase)

	purchaseLimiter := middleware.NewRateLimiter(
		deps.RateLimits.PurchasePerMinute, time.Minute, "create_purchase", deps.Metrics)
	lookupLimiter := middleware.NewRateLimiter(
		deps.RateLimits.LookupPerMinute, time.Minute, "lookup_purchases", deps.Metrics)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// Public storefront.
	api.GET("/raffles", raffleHandler.GetCatalog)
	api.GET("/raffles/history", raffleHandler.GetHistory)
	api.GET("/raffles/:slug", raffleHandler.GetRaffleBySlug)
	api.GET("/raffles/:slug/offer-preview", offerHandler.PreviewBonusBySlug)
	api.GET("/raffles/:slug/winner", raffleHandler.FindWinner)
	api.GET("/bank-accounts", bankAccountHandler.ListActiveBankAccounts)
	api.POST("/purchases", purchaseLimiter.Handler(), purchaseHandler.CreatePurchase)
	api.POST("/purchases/lookup", lookupLimiter.Handler(), purchaseHandler.LookupPurchases)
	api.GET("/purchases/:reference", lookupLimiter.Handler(), purchaseHandler.TrackPurchase)

	// Staff authentication.
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/change-password", middleware.JWTAuth(deps.StaffUsecase), authHandler.ChangePassword)

	// Back office: operators and admins.
	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuth(deps.StaffUsecase))
	{
		admin.GET("/purchases", purchaseHandler.ListPurchases)
		admin.GET("/purchases/:id", purchaseHandler.GetPurchase)
		admin.POST("/purchases/:id/approve", purchaseHandler.ApprovePurchase)
		admin.POST("/purchases/:id/reject", purchaseHandler.RejectPurchase)

		admin.GET("/raffles/:id", raffleHandler.GetRaffleByID)
		admin.GET("/raffles/:id/calculator", raffleHandler.Calculator)
		admin.GET("/raffles/:id/offers", offerHandler.ListOffers)
		admin.GET("/raffles/:id/offer-preview", offerHandler.PreviewBonus)

		admin.GET("/reports/performance", reportHandler.Performance)
		admin.GET("/customers", reportHandler.ListCustomers)
		admin.GET("/customers/:phone", reportHandler.GetCustomerByPhone)

		admin.GET("/bank-accounts", bankAccountHandler.ListBankAccounts)
	}

	// Admin-only mutations.
	adminOnly := admin.Group("")
	adminOnly.Use(middleware.RequireAdmin())
	{
		adminOnly.POST("/raffles", raffleHandler.CreateRaffle)
		adminOnly.PUT("/raffles/:id", raffleHandler.UpdateRaffle)
		adminOnly.POST("/raffles/:id/activate", raffleHandler.ActivateRaffle)
		adminOnly.POST("/raffles/:id/deactivate", raffleHandler.DeactivateRaffle)
		adminOnly.GET("/raffles/suggest-tickets", raffleHandler.SuggestTicketCount)

		adminOnly.POST("/raffles/:id/offers", offerHandler.CreateOffer)
		adminOnly.PUT("/raffles/:id/offers/:offerId", offerHandler.UpdateOffer)
		adminOnly.DELETE("/raffles/:id/offers/:offerId", offerHandler.DeleteOffer)

		adminOnly.POST("/bank-accounts", bankAccountHandler.CreateBankAccount)
		adminOnly.PUT("/bank-accounts/:id", bankAccountHandler.UpdateBankAccount)
		adminOnly.DELETE("/bank-accounts/:id", bankAccountHandler.DeleteBankAccount)

		adminOnly.POST("/staff", authHandler.CreateStaffUser)
		adminOnly.POST("/staff/:id/reset-password", authHandler.ResetPassword)
	}

	return router
}
