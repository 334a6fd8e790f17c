package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bCtx "github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/database/mongoclient"
	"github.com/mintora/goledger/base/feed"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/base/pricefmt"
	mmiddleware "github.com/mintora/goledger/middleware"
	"github.com/mintora/goledger/service/query"
	accountRepo "github.com/mintora/goledger/stores/account/repository"
	accountUsecase "github.com/mintora/goledger/stores/account/usecase"
	eventRepo "github.com/mintora/goledger/stores/event/repository"
	eventUseCase "github.com/mintora/goledger/stores/event/usecase"
	"github.com/mintora/goledger/stores/feed_state/repository/mongo"
	"github.com/mintora/goledger/stores/feed_state/usecase"
	fungibleRepo "github.com/mintora/goledger/stores/fungible/repository"
)

func init() {
	configFile := pflag.StringP("config", "c", `infra/configs/notifier/config.yaml`, "config file path")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	defer log.Sync()

	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	// start server to pass cloud run health check
	startEchoServer()

	pollInterval := viper.GetDuration("feed.pollInterval")
	batchSize := viper.GetInt32("feed.batchSize")
	siteUrl := viper.GetString("site.url")
	nativeSymbol := viper.GetString("native.symbol")
	discordBotKey := viper.GetString("discord.botKey")
	discordChannelId := viper.GetString("discord.tradeChannelId")

	ctx.WithFields(log.Fields{
		"pollInterval": pollInterval,
		"batchSize":    batchSize,
		"siteUrl":      siteUrl,
		"channelId":    discordChannelId,
	}).Info("config")

	ctx.Info("init mongo")
	q := initMongo()

	eventUC := eventUseCase.New(&eventUseCase.EventUseCaseCfg{
		EventRepo: eventRepo.New(q),
	})
	feedStateUC := usecase.NewFeedStateUseCase(
		mongo.NewFeedStateMongoRepo(q),
		viper.GetDuration("context.timeout"),
	)
	accountUC := accountUsecase.New(&accountUsecase.AccountUseCaseCfg{
		Repo:         accountRepo.New(q, nil),
		SignatureMsg: viper.GetString("auth.signatureMsg"),
	})
	tokenRepo := fungibleRepo.NewTokenRepo(q)
	priceFormatter := pricefmt.NewFormatter(&pricefmt.FormatterCfg{
		Tokens: tokenRepo,
	})

	tradeBot := feed.NewTradeBotHandler(feed.TradeBotConfig{
		DiscordBotKey:    discordBotKey,
		DiscordChannelId: discordChannelId,
		SiteUrl:          siteUrl,
		NativeSymbol:     nativeSymbol,
		Account:          accountUC,
		Fungible:         tokenRepo,
		Price:            priceFormatter,
	})

	errCh := make(chan error, 10)
	follower, err := feed.NewFollower(&feed.FollowerCfg{
		Name:             "tradeBot",
		Mongo:            q,
		EventUseCase:     eventUC,
		FeedStateUseCase: feedStateUC,
		Handler:          tradeBot,
		ErrorCh:          errCh,
		StartFromTail:    true,
		PollInterval:     pollInterval,
		BatchSize:        batchSize,
	})
	if err != nil {
		ctx.WithField("err", err).Panic("feed.NewFollower failed")
	}
	follower.Start(ctx)

	err = <-errCh
	ctx.WithField("err", err).Error("follower error")

	go func() {
		for range errCh {
		}
	}()
	cancel()
	follower.Wait()
}

func startEchoServer() {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}

func initMongo() query.Mongo {
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	return query.New(mongoClient, checkIndex)
}
