package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	cartapp "github.com/dwikikusuma/shoply/internal/cart/app"
	cartdomain "github.com/dwikikusuma/shoply/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/shoply/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/shoply/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/shoply/internal/checkout/app"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Handler serves the storefront pages and the cart API.
type Handler struct {
	catalog  *catalogapp.Service
	carts    *cartapp.Manager
	checkout *checkoutapp.Service
	log      *slog.Logger
}

func NewHandler(catalog *catalogapp.Service, carts *cartapp.Manager, checkout *checkoutapp.Service, log *slog.Logger) *Handler {
	return &Handler{
		catalog:  catalog,
		carts:    carts,
		checkout: checkout,
		log:      log,
	}
}

func (h *Handler) store(c *gin.Context) *cartapp.Store {
	return h.carts.ForSession(c.Request.Context(), sessionID(c))
}

// HandleHome renders the product listing, optionally filtered by category.
// Categories and products are fetched concurrently; either failure renders
// the error page.
func (h *Handler) HandleHome(c *gin.Context) {
	ctx := c.Request.Context()
	selected := c.Query("category")

	var (
		categories []string
		products   []catalogdomain.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = h.catalog.ListCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		if selected == "" {
			products, err = h.catalog.ListProducts(gctx)
		} else {
			products, err = h.catalog.ListProductsByCategory(gctx, selected)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		h.renderCatalogError(c, err)
		return
	}

	c.HTML(http.StatusOK, "home", gin.H{
		"Title":            "Shoply",
		"CartCount":        h.store(c).ItemCount(),
		"Categories":       categories,
		"SelectedCategory": selected,
		"Products":         productViews(products),
	})
}

// HandleProduct renders a product detail page.
func (h *Handler) HandleProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderNotFound(c)
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.renderCatalogError(c, err)
		return
	}

	c.HTML(http.StatusOK, "product", gin.H{
		"Title":     product.Title,
		"CartCount": h.store(c).ItemCount(),
		"Product":   productView(product),
	})
}

// HandleCart renders the cart page.
func (h *Handler) HandleCart(c *gin.Context) {
	cart := h.store(c).Snapshot()

	c.HTML(http.StatusOK, "cart", gin.H{
		"Title":     "Your Cart",
		"CartCount": cart.ItemCount(),
		"Items":     lineViews(cart.Items),
		"Total":     cart.Total().StringFixed(2),
		"Empty":     len(cart.Items) == 0,
	})
}

// HandleCheckout acknowledges the order. Nothing is charged; the cart stays
// as it was so the shopper can keep going.
func (h *Handler) HandleCheckout(c *gin.Context) {
	receipt, err := h.checkout.Checkout(h.store(c).Snapshot())
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	lines := make([]gin.H, len(receipt.Lines))
	for i, line := range receipt.Lines {
		lines[i] = gin.H{
			"Title":     line.Title,
			"Quantity":  line.Quantity,
			"LineTotal": line.LineTotal.StringFixed(2),
		}
	}

	c.HTML(http.StatusOK, "receipt", gin.H{
		"Title":     "Order Received",
		"CartCount": h.store(c).ItemCount(),
		"Reference": receipt.Reference,
		"Lines":     lines,
		"Total":     receipt.Total.StringFixed(2),
		"PlacedAt":  receipt.PlacedAt.Format("Jan 2, 2006 15:04"),
	})
}

// HandleCartState returns the session's cart as JSON for the header badge
// and the cart page scripts.
func (h *Handler) HandleCartState(c *gin.Context) {
	h.respondCartState(c, h.store(c))
}

type addItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

// HandleAddItem fetches the product from the catalog and adds the captured
// snapshot to the cart.
func (h *Handler) HandleAddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}

	store := h.store(c)
	store.Add(c.Request.Context(), toCartProduct(product))
	h.respondCartState(c, store)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleUpdateQuantity sets a line item's quantity. Values below 1 and
// unknown ids leave the cart unchanged; the response carries the resulting
// state either way.
func (h *Handler) HandleUpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	store := h.store(c)
	store.SetQuantity(c.Request.Context(), id, req.Quantity)
	h.respondCartState(c, store)
}

// HandleRemoveItem removes a line item; removing an absent id is a no-op.
func (h *Handler) HandleRemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	store := h.store(c)
	store.Remove(c.Request.Context(), id)
	h.respondCartState(c, store)
}

// HandleClearCart empties the cart.
func (h *Handler) HandleClearCart(c *gin.Context) {
	store := h.store(c)
	store.Clear(c.Request.Context())
	h.respondCartState(c, store)
}

func (h *Handler) respondCartState(c *gin.Context, store *cartapp.Store) {
	cart := store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"items":      lineViews(cart.Items),
		"totalItems": cart.ItemCount(),
		"totalPrice": cart.Total().StringFixed(2),
	})
}

func (h *Handler) respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalogapp.ErrNotFound), errors.Is(err, catalogapp.ErrInvalidInput):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	default:
		h.log.Error("catalog request failed", slog.Any("err", err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
	}
}

func (h *Handler) renderCatalogError(c *gin.Context, err error) {
	if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogapp.ErrInvalidInput) {
		h.renderNotFound(c)
		return
	}
	h.log.Error("catalog request failed", slog.Any("err", err))
	c.HTML(http.StatusBadGateway, "error", gin.H{
		"Title":     "Something went wrong",
		"CartCount": h.store(c).ItemCount(),
		"Message":   "The catalog is unavailable right now. Please try again.",
	})
}

func (h *Handler) renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error", gin.H{
		"Title":     "Not Found",
		"CartCount": h.store(c).ItemCount(),
		"Message":   "We couldn't find that product.",
	})
}

func toCartProduct(p catalogdomain.Product) cartdomain.Product {
	out := cartdomain.Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
	}
	if p.Rating != nil {
		out.Rating = &cartdomain.Rating{Rate: p.Rating.Rate, Count: p.Rating.Count}
	}
	return out
}

type productViewModel struct {
	ID          int
	Title       string
	Price       string
	Description string
	Category    string
	Image       string
	RatingRate  float64
	RatingCount int
	HasRating   bool
}

func productView(p catalogdomain.Product) productViewModel {
	v := productViewModel{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price.StringFixed(2),
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
	}
	if p.Rating != nil {
		v.HasRating = true
		v.RatingRate = p.Rating.Rate
		v.RatingCount = p.Rating.Count
	}
	return v
}

func productViews(products []catalogdomain.Product) []productViewModel {
	views := make([]productViewModel, len(products))
	for i, p := range products {
		views[i] = productView(p)
	}
	return views
}

type lineViewModel struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

func lineViews(items []cartdomain.LineItem) []lineViewModel {
	views := make([]lineViewModel, len(items))
	for i, item := range items {
		views[i] = lineViewModel{
			ID:       item.ID,
			Title:    item.Title,
			Image:    item.Image,
			Price:    item.Price.StringFixed(2),
			Quantity: item.Quantity,
			Subtotal: item.Subtotal().StringFixed(2),
		}
	}
	return views
}
