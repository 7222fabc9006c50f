package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"refgate.backend/internal/interfaces/http/handlers"
	"refgate.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	activationHandler  *handlers.ActivationHandler
	affiliateHandler   *handlers.AffiliateHandler
	attributionHandler *handlers.AttributionHandler
	webhookHandler     *handlers.WebhookHandler
	progressHandler    *handlers.ProgressHandler
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Activation routes (public; the proof travels in the body)
		auth := v1.Group("/auth")
		{
			auth.POST("/nonce", d.activationHandler.RequestNonce)
			auth.POST("/activate", d.activationHandler.Activate)
		}

		// Affiliate link issuance (requires a fresh activation proof)
		affiliate := v1.Group("/affiliate")
		{
			affiliate.POST("/link", middleware.IdempotencyMiddleware(), d.affiliateHandler.IssueLink)
		}

		// Referral routes
		referrals := v1.Group("/referrals")
		{
			referrals.POST("/bind", d.attributionHandler.Bind)
			referrals.GET("/progress/:wallet", d.progressHandler.GetProgress)
			referrals.GET("/conversions/:wallet", d.progressHandler.ListConversions)
		}

		// External conversion source intake
		webhooks := v1.Group("/webhooks")
		{
			webhooks.POST("/referral", d.webhookHandler.HandleReferralWebhook)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
