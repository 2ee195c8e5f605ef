package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gizemabali/retaildiscountsapi/internal/domain"
	"github.com/gizemabali/retaildiscountsapi/internal/obs"
	"github.com/gizemabali/retaildiscountsapi/internal/service"
)

type Server struct {
	engine   *gin.Engine
	products *service.ProductService
	basket   *service.BasketService
	users    *service.UserService
	metrics  *Metrics
}

func NewServer(products *service.ProductService, basket *service.BasketService, users *service.UserService) *Server {
	r := gin.New()
	m := NewMetrics()
	r.Use(gin.Recovery(), m.Middleware())
	s := &Server{engine: r, products: products, basket: basket, users: users, metrics: m}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.engine.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	s.engine.GET("/products/:type", s.listProductsByType)
	s.engine.POST("/calculatebasket", s.calculateBasket)
	s.engine.POST("/user", s.createUser)
}

type calculateBasketReq struct {
	UserDetails   domain.UserDetails  `json:"userDetails"`
	BasketDetails []domain.BasketItem `json:"basketDetails"`
}

// @Summary Calculate basket total
// @Tags basket
// @Accept json
// @Produce json
// @Param input body calculateBasketReq true "Basket and user details"
// @Success 200 {object} domain.PriceResult
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /calculatebasket [post]
func (s *Server) calculateBasket(c *gin.Context) {
	var req calculateBasketReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	res, err := s.basket.Calculate(c.Request.Context(), req.UserDetails, req.BasketDetails)
	if err != nil {
		obs.Logger.Error("calculate basket", "error", err)
		c.JSON(mapErrorToStatus(err), gin.H{"error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List products of a type
// @Tags products
// @Produce json
// @Param type path string true "Product type"
// @Success 200 {array} domain.Product
// @Failure 503 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /products/{type} [get]
func (s *Server) listProductsByType(c *gin.Context) {
	list, err := s.products.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		obs.Logger.Error("list products", "type", c.Param("type"), "error", err)
		c.JSON(mapErrorToStatus(err), gin.H{"error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Register a user account
// @Tags users
// @Accept json
// @Produce json
// @Param input body domain.UserDetails true "User details with plaintext password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user [post]
func (s *Server) createUser(c *gin.Context) {
	var user domain.UserDetails
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "failure"})
		return
	}
	if err := s.users.Register(c.Request.Context(), user); err != nil {
		obs.Logger.Error("create user", "error", err)
		c.JSON(mapErrorToStatus(err), gin.H{"status": "failure"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrMalformedRequest):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage keeps response bodies generic; details stay in the logs.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrMalformedRequest):
		return "malformed request"
	case errors.Is(err, service.ErrCatalogUnavailable):
		return "catalog unavailable"
	default:
		return "unexpected error occur"
	}
}
