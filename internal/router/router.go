package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)

	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetMe(c *ginext.Context)

	SubmitParticipantRequest(c *ginext.Context)
	SubmitEntryPassRequest(c *ginext.Context)
	ListRequests(kind domain.Kind) ginext.HandlerFunc
	GetRequest(kind domain.Kind) ginext.HandlerFunc
	VerifyRequest(kind domain.Kind) ginext.HandlerFunc
	RejectRequest(kind domain.Kind) ginext.HandlerFunc
	ListPendingRegistrations(c *ginext.Context)
	GetRegistrationStatus(c *ginext.Context)

	RegisterParticipant(c *ginext.Context)
	ListMyParticipations(c *ginext.Context)
	ListEventParticipants(c *ginext.Context)
	UpdateAttendance(c *ginext.Context)

	IssueEntryPass(c *ginext.Context)
	ListMyEntryPasses(c *ginext.Context)
	GetEntryPass(c *ginext.Context)
	ListEventEntryPasses(c *ginext.Context)
	CheckInEntryPass(c *ginext.Context)

	CreatePromotion(c *ginext.Context)
	QuotePromotion(c *ginext.Context)
	GetPaymentInfo(c *ginext.Context)

	Upload(c *ginext.Context)
}

// multipartOverhead покрывает заголовки и границы multipart поверх самого файла.
const multipartOverhead = 64 << 10

type Auth interface {
	VerifyJWT() ginext.HandlerFunc
	OptionalJWT() ginext.HandlerFunc
}

func InitRouter(
	mode string,
	h Handler,
	auth Auth,
	uploadsDir string,
	maxUploadBytes int64,
	mw ...ginext.HandlerFunc,
) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	public := router.Group("/api")
	{
		public.GET("/events", h.ListEvents)
		public.GET("/events/:id", h.GetEvent)
		public.GET("/events/:id/payment-info", h.GetPaymentInfo)
		public.GET("/promotions/quote", h.QuotePromotion)

		// роль в теле учитывается только для админа
		public.POST("/users", auth.OptionalJWT(), h.CreateUser)
	}

	api := router.Group("/api", auth.VerifyJWT())
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events/:id/registration-status", h.GetRegistrationStatus)
		api.GET("/events/:id/participants", h.ListEventParticipants)
		api.GET("/events/:id/entry-passes", h.ListEventEntryPasses)

		// Users
		api.GET("/users", h.ListUsers)
		api.GET("/users/me", h.GetMe)

		// Pending registrations
		registerPending(api, "/pending-participants", domain.KindParticipant, h)
		api.POST("/pending-participants", h.SubmitParticipantRequest)
		registerPending(api, "/pending-entry-passes", domain.KindEntryPass, h)
		api.POST("/pending-entry-passes", h.SubmitEntryPassRequest)
		api.GET("/pending-registrations", h.ListPendingRegistrations)

		// Participants
		api.POST("/participants", h.RegisterParticipant)
		api.GET("/participants/me", h.ListMyParticipations)
		api.PATCH("/participants/:id/attendance", h.UpdateAttendance)

		// Entry passes
		api.POST("/entry-passes", h.IssueEntryPass)
		api.GET("/entry-passes/me", h.ListMyEntryPasses)
		api.GET("/entry-passes/:id", h.GetEntryPass)
		api.POST("/entry-passes/:id/check-in", h.CheckInEntryPass)

		// Promotions
		api.POST("/promotions", h.CreatePromotion)

		api.POST("/uploads", middleware.BodyLimit(maxUploadBytes+multipartOverhead), h.Upload)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if uploadsDir != "" {
		router.Static("/uploads", uploadsDir)
	}

	return router
}

func registerPending(g *gin.RouterGroup, path string, kind domain.Kind, h Handler) {
	g.GET(path, h.ListRequests(kind))
	g.GET(path+"/:id", h.GetRequest(kind))
	g.POST(path+"/:id/verify", h.VerifyRequest(kind))
	g.POST(path+"/:id/reject", h.RejectRequest(kind))
}
