package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFS embed.FS

// NewRouter wires the storefront routes onto a gin engine with the embedded
// HTML renderer and session middleware installed.
func NewRouter(h *Handler) (*gin.Engine, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.HTMLRender = renderer
	r.Use(SessionMiddleware())

	r.GET("/", h.HandleHome)
	r.GET("/products/:id", h.HandleProduct)
	r.GET("/cart", h.HandleCart)
	r.POST("/checkout", h.HandleCheckout)

	api := r.Group("/api")
	{
		api.GET("/cart", h.HandleCartState)
		api.POST("/cart/items", h.HandleAddItem)
		api.PUT("/cart/items/:id", h.HandleUpdateQuantity)
		api.DELETE("/cart/items/:id", h.HandleRemoveItem)
		api.POST("/cart/clear", h.HandleClearCart)
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(static))

	r.GET("/healthz", func(c *gin.Context) { c.Status(200) })

	return r, nil
}
