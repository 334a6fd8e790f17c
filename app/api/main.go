package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/database/mongoclient"
	"github.com/mintora/goledger/base/database/redisclient"
	"github.com/mintora/goledger/base/execution"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/base/metrics"
	"github.com/mintora/goledger/base/pricefmt"
	bValidator "github.com/mintora/goledger/base/validator"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/marketplace"
	mmiddleware "github.com/mintora/goledger/middleware"
	"github.com/mintora/goledger/service/query"
	"github.com/mintora/goledger/service/redis"
	account_delivery "github.com/mintora/goledger/stores/account/delivery/http"
	account_repository "github.com/mintora/goledger/stores/account/repository"
	account_usecase "github.com/mintora/goledger/stores/account/usecase"
	auth_delivery "github.com/mintora/goledger/stores/auth/delivery/http"
	auth_middleware "github.com/mintora/goledger/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/mintora/goledger/stores/auth/usecase"
	bank_delivery "github.com/mintora/goledger/stores/bank/delivery/http"
	bank_repository "github.com/mintora/goledger/stores/bank/repository"
	bank_usecase "github.com/mintora/goledger/stores/bank/usecase"
	escrow_delivery "github.com/mintora/goledger/stores/escrow/delivery/http"
	escrow_repository "github.com/mintora/goledger/stores/escrow/repository"
	escrow_usecase "github.com/mintora/goledger/stores/escrow/usecase"
	event_delivery "github.com/mintora/goledger/stores/event/delivery/http"
	event_repository "github.com/mintora/goledger/stores/event/repository"
	event_usecase "github.com/mintora/goledger/stores/event/usecase"
	fungible_delivery "github.com/mintora/goledger/stores/fungible/delivery/http"
	fungible_repository "github.com/mintora/goledger/stores/fungible/repository"
	fungible_usecase "github.com/mintora/goledger/stores/fungible/usecase"
	hc_delivery "github.com/mintora/goledger/stores/healthcheck/delivery/http"
	hc_repo "github.com/mintora/goledger/stores/healthcheck/repository"
	hc_usecase "github.com/mintora/goledger/stores/healthcheck/usecase"
	marketplace_delivery "github.com/mintora/goledger/stores/marketplace/delivery/http"
	marketplace_repository "github.com/mintora/goledger/stores/marketplace/repository"
	marketplace_usecase "github.com/mintora/goledger/stores/marketplace/usecase"
	nft_delivery "github.com/mintora/goledger/stores/nft/delivery/http"
	nft_repository "github.com/mintora/goledger/stores/nft/repository"
	nft_usecase "github.com/mintora/goledger/stores/nft/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/mintora/goledger/app/api/docs"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			Mintora Ledger API
//	@version		1.0
//	@description	API Document for the Mintora ledger programs.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)

	mmiddleware.SetupCache(redisCache)

	marketplaceProgram := domain.Address(viper.GetString("marketplace.program")).ToLower()
	escrowProgram := domain.Address(viper.GetString("escrow.program")).ToLower()

	// one gate across every program, so a nested program call joins
	// the executing call instead of racing it
	gate := execution.NewGate()

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	accountRepo := account_repository.New(q, redisCache)
	bankRepo := bank_repository.New(q)
	tokenRepo := fungible_repository.NewTokenRepo(q)
	balanceRepo := fungible_repository.NewBalanceRepo(q)
	allowanceRepo := fungible_repository.NewAllowanceRepo(q)
	classRepo := nft_repository.NewClassRepo(q)
	itemRepo := nft_repository.NewItemRepo(q)
	holdingRepo := nft_repository.NewHoldingRepo(q)
	approvalRepo := nft_repository.NewApprovalRepo(q)
	listingRepo := marketplace_repository.NewListingRepo(q)
	settingsRepo := marketplace_repository.NewSettingsRepo(q)
	blacklistRepo := marketplace_repository.NewBlacklistRepo(q)
	swapRepo := escrow_repository.NewSwapRepo(q)
	eventRepo := event_repository.New(q)

	seedSettings(context, settingsRepo)

	hc := hc_usecase.New(hcRepo)
	event := event_usecase.New(&event_usecase.EventUseCaseCfg{
		EventRepo: eventRepo,
	})
	bank := bank_usecase.New(&bank_usecase.BankUseCaseCfg{
		BankRepo: bankRepo,
		Q:        q,
		Guard:    execution.NewGuard("bank", gate),
		Minter:   domain.Address(viper.GetString("bank.minter")).ToLower(),
	})
	fungible := fungible_usecase.New(&fungible_usecase.FungibleUseCaseCfg{
		TokenRepo:     tokenRepo,
		BalanceRepo:   balanceRepo,
		AllowanceRepo: allowanceRepo,
		Q:             q,
		Guard:         execution.NewGuard("fungible", gate),
	})
	nft := nft_usecase.New(&nft_usecase.NftUseCaseCfg{
		ClassRepo:    classRepo,
		ItemRepo:     itemRepo,
		HoldingRepo:  holdingRepo,
		ApprovalRepo: approvalRepo,
		Q:            q,
		Guard:        execution.NewGuard("nft", gate),
	})
	priceFormatter := pricefmt.NewFormatter(&pricefmt.FormatterCfg{
		Tokens: tokenRepo,
	})
	market := marketplace_usecase.New(&marketplace_usecase.MarketplaceUseCaseCfg{
		ListingRepo:     listingRepo,
		SettingsRepo:    settingsRepo,
		BlacklistRepo:   blacklistRepo,
		AssetAdapter:    marketplace_usecase.NewAssetAdapter(nft, marketplaceProgram),
		BankUseCase:     bank,
		FungibleUseCase: fungible,
		EventUseCase:    event,
		Formatter:       priceFormatter,
		Q:               q,
		Guard:           execution.NewGuard("marketplace", gate),
		Program:         marketplaceProgram,
	})
	swap := escrow_usecase.New(&escrow_usecase.EscrowUseCaseCfg{
		SwapRepo:        swapRepo,
		BankUseCase:     bank,
		FungibleUseCase: fungible,
		EventUseCase:    event,
		Q:               q,
		Guard:           execution.NewGuard("escrow", gate),
		Program:         escrowProgram,
	})
	account := account_usecase.New(&account_usecase.AccountUseCaseCfg{
		Repo:         accountRepo,
		SignatureMsg: viper.GetString("auth.signatureMsg"),
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), account)

	auth_middleware := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	account_delivery.New(e, account, auth_middleware)
	bank_delivery.New(e, bank, auth_middleware)
	fungible_delivery.New(e, fungible, auth_middleware)
	nft_delivery.New(e, nft, auth_middleware)
	marketplace_delivery.New(e, market, auth_middleware)
	escrow_delivery.New(e, swap, auth_middleware)
	event_delivery.New(e, event)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, auth_middleware.Auth())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

// seedSettings writes the initial program settings on a fresh
// database. An existing settings document is never touched, admin
// calls own it from then on.
func seedSettings(context ctx.Ctx, settingsRepo marketplace.SettingsRepo) {
	_, err := settingsRepo.Get(context)
	if err == nil {
		return
	}
	if err != domain.ErrNotFound {
		context.WithField("err", err).Panic("settings.Get failed")
	}
	now := time.Now()
	if err := settingsRepo.Upsert(context, &marketplace.Settings{
		Owner:        domain.Address(viper.GetString("marketplace.owner")),
		Treasury:     domain.Address(viper.GetString("marketplace.treasury")),
		BuyerFeeBps:  viper.GetInt64("marketplace.buyerFeeBps"),
		SellerFeeBps: viper.GetInt64("marketplace.sellerFeeBps"),
		UpdatedAt:    &now,
	}); err != nil {
		context.WithField("err", err).Panic("settings seeding failed")
	}
	context.WithFields(log.Fields{
		"owner":    viper.GetString("marketplace.owner"),
		"treasury": viper.GetString("marketplace.treasury"),
	}).Info("seeded settings")
}
