package feed

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/pricefmt"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/account"
	"github.com/mintora/goledger/domain/event"
	"github.com/mintora/goledger/domain/fungible"
)

type TradeBotConfig struct {
	DiscordBotKey    string
	DiscordChannelId string
	SiteUrl          string
	NativeSymbol     string
	Account          account.Usecase
	Fungible         fungible.TokenRepo
	Price            pricefmt.Formatter
}

type tradeBotHandler struct {
	config  TradeBotConfig
	discord *discordgo.Session
}

type notifyPayload struct {
	Price    string
	Symbol   string
	Contract domain.Address
	AssetId  domain.TokenId
}

func NewTradeBotHandler(config TradeBotConfig) Handler {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", config.DiscordBotKey))
	if err != nil {
		panic("failed to connect to discord")
	}

	return &tradeBotHandler{config, discord}
}

func (h *tradeBotHandler) ProcessEvents(c ctx.Ctx, events []*event.Event) error {
	for _, ev := range events {
		switch ev.Type {
		case event.TypeBought:
			if err := h.processBought(c, ev); err != nil {
				c.WithField("err", err).Error("failed to handle bought event")
				return err
			}
		case event.TypeClaimed:
			if err := h.processClaimed(c, ev); err != nil {
				c.WithField("err", err).Error("failed to handle claimed event")
				return err
			}
		}
	}

	return nil
}

func (h *tradeBotHandler) preNotifyPayload(c ctx.Ctx, ev *event.Event) (notifyPayload, error) {
	amount, err := domain.ParseAmount(ev.Amount)
	if err != nil {
		c.WithField("amount", ev.Amount).Warn("malformed amount")
		return notifyPayload{}, err
	}

	formattedPrice, err := h.config.Price.DisplayString(c, ev.PayToken, amount)
	if err != nil {
		return notifyPayload{}, err
	}

	symbol := h.config.NativeSymbol
	if !ev.PayToken.IsZero() {
		token, err := h.config.Fungible.FindOne(c, ev.PayToken)
		if err != nil {
			c.WithField("payToken", ev.PayToken).Warn("unknown token")
			return notifyPayload{}, err
		}
		symbol = token.Symbol
	}

	payload := notifyPayload{
		Price:    formattedPrice,
		Symbol:   symbol,
		Contract: ev.AssetContract,
		AssetId:  ev.AssetId,
	}

	return payload, nil
}

func (h *tradeBotHandler) processBought(c ctx.Ctx, ev *event.Event) error {
	payload, err := h.preNotifyPayload(c, ev)
	if err != nil {
		return err
	}
	return h.notifySold(c, payload, ev.Seller, ev.Account)
}

func (h *tradeBotHandler) processClaimed(c ctx.Ctx, ev *event.Event) error {
	payload, err := h.preNotifyPayload(c, ev)
	if err != nil {
		return err
	}
	return h.notifySold(c, payload, ev.Seller, ev.Winner)
}

func (h *tradeBotHandler) notifySold(c ctx.Ctx, payload notifyPayload, seller, buyer domain.Address) error {
	sellerAlias := "-"
	buyerAlias := "-"

	sellerInfo, _ := h.config.Account.Get(c, seller)
	if sellerInfo != nil && len(sellerInfo.Alias) > 0 {
		sellerAlias = sellerInfo.Alias
	}

	buyerInfo, _ := h.config.Account.Get(c, buyer)
	if buyerInfo != nil && len(buyerInfo.Alias) > 0 {
		buyerAlias = buyerInfo.Alias
	}

	msg := &discordgo.MessageEmbed{
		Title:       "Item sold!",
		Description: fmt.Sprintf("%s/asset/%s/%s", h.config.SiteUrl, payload.Contract, payload.AssetId),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Seller", Value: fmt.Sprintf("%s (%s)", seller, sellerAlias)},
			{Name: "Buyer", Value: fmt.Sprintf("%s (%s)", buyer, buyerAlias)},
			{Name: "Price", Value: fmt.Sprintf("%s %s", payload.Price, payload.Symbol)},
		},
	}

	if _, err := h.discord.ChannelMessageSendEmbed(h.config.DiscordChannelId, msg); err != nil {
		return err
	}
	return nil
}
