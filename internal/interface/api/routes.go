package api

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every /api route on the router
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	s := h.store
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/current-user", h.CurrentUser)
	}

	api.GET("/dashboard/stats", h.DashboardStats)

	g := api.Group("/agencies")
	{
		g.GET("", listAll(h, agencies, s.ListAgencies))
		g.GET("/:id", getByID(h, agencies, s.GetAgency))
		g.POST("", create(h, agencies, CreateAgencyRequest.toEntity, s.CreateAgency))
		g.PATCH("/:id", update(h, agencies, s.UpdateAgency))
	}

	g = api.Group("/corporates")
	{
		g.GET("", listAll(h, corporates, s.ListCorporates))
		g.GET("/:id", getByID(h, corporates, s.GetCorporate))
		g.GET("/:id/vehicles", listByParent(h, corporates, vehicles, s.ListCorporateVehicles))
		g.GET("/:id/drivers", listByParent(h, corporates, drivers, s.ListCorporateDrivers))
		g.POST("", create(h, corporates, CreateCorporateRequest.toEntity, s.CreateCorporate))
		g.PATCH("/:id", update(h, corporates, s.UpdateCorporate))
	}

	g = api.Group("/parks")
	{
		g.GET("", listAll(h, parks, s.ListParks))
		g.GET("/code/:code", getByKey(h, parks, "code", s.GetParkByCode))
		g.GET("/:id", getByID(h, parks, s.GetPark))
		g.POST("", create(h, parks, CreateParkRequest.toEntity, s.CreatePark))
		g.PATCH("/:id", update(h, parks, s.UpdatePark))
	}

	g = api.Group("/vehicles")
	{
		g.GET("", listAll(h, vehicles, s.ListVehicles))
		g.GET("/active", listAll(h, vehicles, s.ListActiveVehicles))
		g.GET("/plate/:plate", getByKey(h, vehicles, "plate", s.GetVehicleByPlate))
		g.GET("/:id", getByID(h, vehicles, s.GetVehicle))
		g.GET("/:id/violations", listByParent(h, vehicles, violations, s.ListVehicleViolations))
		g.POST("", create(h, vehicles, CreateVehicleRequest.toEntity, s.CreateVehicle))
		g.PATCH("/:id", update(h, vehicles, s.UpdateVehicle))
	}

	g = api.Group("/drivers")
	{
		g.GET("", listAll(h, drivers, s.ListDrivers))
		g.GET("/:id", getByID(h, drivers, s.GetDriver))
		g.POST("", create(h, drivers, CreateDriverRequest.toEntity, s.CreateDriver))
		g.PATCH("/:id", update(h, drivers, s.UpdateDriver))
	}

	g = api.Group("/manifests")
	{
		g.GET("", listAll(h, manifests, s.ListManifests))
		g.GET("/recent", listRecent(h, manifests, s.ListRecentManifests))
		g.GET("/code/:code", getByKey(h, manifests, "code", s.GetManifestByCode))
		g.GET("/:id", getByID(h, manifests, s.GetManifest))
		g.GET("/:id/passengers", listByParent(h, manifests, passengers, s.ListManifestPassengers))
		g.GET("/:id/parcels", listByParent(h, manifests, parcels, s.ListManifestParcels))
		g.POST("", create(h, manifests, CreateManifestRequest.toEntity, s.CreateManifest))
		g.PATCH("/:id", update(h, manifests, s.UpdateManifest))
	}

	g = api.Group("/passengers")
	{
		g.GET("/:id", getByID(h, passengers, s.GetPassenger))
		g.POST("", create(h, passengers, CreatePassengerRequest.toEntity, s.CreatePassenger))
	}

	g = api.Group("/parcels")
	{
		g.GET("/tracking/:code", getByKey(h, parcels, "code", s.GetParcelByTrackingCode))
		g.GET("/:id", getByID(h, parcels, s.GetParcel))
		g.POST("", create(h, parcels, CreateParcelRequest.toEntity, s.CreateParcel))
		g.PATCH("/:id", update(h, parcels, s.UpdateParcel))
	}

	g = api.Group("/traffic-reports")
	{
		g.GET("", listAll(h, trafficReports, s.ListTrafficReports))
		g.GET("/recent", listRecent(h, trafficReports, s.ListRecentTrafficReports))
		g.GET("/:id", getByID(h, trafficReports, s.GetTrafficReport))
		g.POST("", create(h, trafficReports, CreateTrafficReportRequest.toEntity, s.CreateTrafficReport))
	}

	g = api.Group("/security-alerts")
	{
		g.GET("", listAll(h, securityAlerts, s.ListSecurityAlerts))
		g.GET("/recent", listRecent(h, securityAlerts, s.ListRecentSecurityAlerts))
		g.GET("/:id", getByID(h, securityAlerts, s.GetSecurityAlert))
		g.POST("", create(h, securityAlerts, CreateSecurityAlertRequest.toEntity, s.CreateSecurityAlert))
		g.PATCH("/:id", update(h, securityAlerts, s.UpdateSecurityAlert))
	}

	g = api.Group("/violations")
	{
		g.GET("", listAll(h, violations, s.ListViolations))
		g.GET("/recent", listRecent(h, violations, s.ListRecentViolations))
		g.GET("/:id", getByID(h, violations, s.GetViolation))
		g.POST("", create(h, violations, CreateViolationRequest.toEntity, s.CreateViolation))
		g.PATCH("/:id", update(h, violations, s.UpdateViolation))
	}
}
