package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"audiomart/internal/domain"
	"audiomart/internal/usecase"
)

type Server struct {
	router      *mux.Router
	catalog     *usecase.CatalogUC
	cart        *usecase.CartUC
	checkout    *usecase.CheckoutUC
	addresses   domain.AddressStore
	gateway     domain.PaymentGateway
	adminSecret []byte
}

func New(catalog *usecase.CatalogUC, cart *usecase.CartUC, checkout *usecase.CheckoutUC, addresses domain.AddressStore, gateway domain.PaymentGateway, adminSecret []byte) http.Handler {
	s := &Server{
		router:      mux.NewRouter(),
		catalog:     catalog,
		cart:        cart,
		checkout:    checkout,
		addresses:   addresses,
		gateway:     gateway,
		adminSecret: adminSecret,
	}
	s.routes()
	return Chain(s.router,
		RateLimit(60),
		Gzip,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/products", s.handleProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", s.handleProduct).Methods(http.MethodGet)
	api.HandleFunc("/filters", s.handleFilters).Methods(http.MethodGet)

	api.HandleFunc("/cart", s.handleCartGet).Methods(http.MethodGet)
	api.HandleFunc("/cart", s.handleCartAdd).Methods(http.MethodPost)
	api.HandleFunc("/cart/update", s.handleCartUpdate).Methods(http.MethodPost)
	api.HandleFunc("/cart/remove", s.handleCartRemove).Methods(http.MethodPost)
	api.HandleFunc("/cart/clear", s.handleCartClear).Methods(http.MethodPost)

	api.HandleFunc("/address", s.handleAddressGet).Methods(http.MethodGet)
	api.HandleFunc("/address", s.handleAddressPut).Methods(http.MethodPut)

	api.HandleFunc("/payment-methods", s.handlePaymentMethods).Methods(http.MethodGet)

	api.HandleFunc("/checkout", s.handleCheckoutBegin).Methods(http.MethodPost)
	api.HandleFunc("/checkout/{id}", s.handleCheckoutStatus).Methods(http.MethodGet)
	api.HandleFunc("/checkout/{id}", s.handleCheckoutClose).Methods(http.MethodDelete)
	api.HandleFunc("/checkout/{id}/address", s.handleCheckoutAddress).Methods(http.MethodPost)
	api.HandleFunc("/checkout/{id}/pay", s.handleCheckoutPay).Methods(http.MethodPost)
	api.HandleFunc("/checkout/{id}/order", s.handleCheckoutOrder).Methods(http.MethodGet)

	api.HandleFunc("/admin/export", s.requireAdmin(s.handleAdminExport)).Methods(http.MethodGet)
}

// productView layers the derived display values over the raw product.
type productView struct {
	domain.Product
	Seller             string                `json:"seller"`
	DiscountPercentage int                   `json:"discountPercentage"`
	DisplayRating      float64               `json:"displayRating"`
	Variants           []domain.ColorVariant `json:"colorVariants"`
}

func viewOf(p *domain.Product) productView {
	return productView{
		Product:            *p,
		Seller:             p.SellerName(),
		DiscountPercentage: p.DiscountPercentage(),
		DisplayRating:      domain.DisplayRating(p),
		Variants:           domain.ProductColorVariants(p),
	}
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	spec := parseQuerySpec(r)
	list, err := s.catalog.List(r.Context(), spec)
	if err != nil {
		s.fail(w, err)
		return
	}
	views := make([]productView, len(list))
	for i := range list {
		views[i] = viewOf(&list[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": views, "total": len(views)})
}

func parseQuerySpec(r *http.Request) usecase.QuerySpec {
	qv := r.URL.Query()
	spec := usecase.QuerySpec{
		Search: qv.Get("q"),
		Sort:   domain.ParseSortOption(qv.Get("sort")),
	}

	if brands := qv["brand"]; len(brands) > 0 {
		spec.Filters.Brands = brands
	}
	if minS, maxS := qv.Get("price_min"), qv.Get("price_max"); minS != "" || maxS != "" {
		pr := domain.PriceRange{Max: 1<<31 - 1}
		if n, err := strconv.Atoi(minS); err == nil {
			pr.Min = n
		}
		if n, err := strconv.Atoi(maxS); err == nil {
			pr.Max = n
		}
		spec.Filters.PriceRange = &pr
	}
	if v := qv.Get("min_rating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			spec.Filters.MinRating = &f
		}
	}
	if minS, maxS := qv.Get("battery_min"), qv.Get("battery_max"); minS != "" || maxS != "" {
		var band domain.BatteryBand
		if n, err := strconv.Atoi(minS); err == nil {
			band.Min = n
		}
		if n, err := strconv.Atoi(maxS); err == nil {
			band.Max = n
		}
		spec.Filters.BatteryLife = &band
	}
	if parseFlag(qv.Get("anc")) {
		t := true
		spec.Filters.HasANC = &t
	}
	if parseFlag(qv.Get("wireless")) {
		t := true
		spec.Filters.HasWirelessCharging = &t
	}
	return spec
}

func parseFlag(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	view := viewOf(p)
	gallery := domain.GalleryImages(p, firstVariant(view.Variants))
	writeJSON(w, http.StatusOK, map[string]any{"product": view, "gallery": gallery})
}

func firstVariant(vs []domain.ColorVariant) *domain.ColorVariant {
	if len(vs) == 0 {
		return nil
	}
	return &vs[0]
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	presets, err := s.catalog.Presets(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, presets)
}

type cartAddRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	var req cartAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	p, err := s.catalog.Get(r.Context(), req.ProductID)
	if err != nil {
		s.fail(w, err)
		return
	}

	var selected *domain.ColorVariant
	if req.Color != "" {
		for _, v := range domain.ProductColorVariants(p) {
			if v.Name == req.Color {
				sel := v
				selected = &sel
				break
			}
		}
		if selected == nil {
			http.Error(w, "unknown color variant", http.StatusBadRequest)
			return
		}
	}

	s.cart.AddToCart(*p, req.Quantity, selected)
	s.writeCart(w)
}

type cartUpdateRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) handleCartUpdate(w http.ResponseWriter, r *http.Request) {
	var req cartUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	s.cart.UpdateQuantity(req.ProductID, req.Quantity)
	s.writeCart(w)
}

func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	var req cartUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	s.cart.RemoveFromCart(req.ProductID)
	s.writeCart(w)
}

func (s *Server) handleCartClear(w http.ResponseWriter, r *http.Request) {
	s.cart.ClearCart()
	s.writeCart(w)
}

func (s *Server) handleCartGet(w http.ResponseWriter, r *http.Request) {
	s.writeCart(w)
}

func (s *Server) writeCart(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]any{
		"items":  s.cart.Items(),
		"totals": s.cart.Totals(),
	})
}

func (s *Server) handleAddressGet(w http.ResponseWriter, r *http.Request) {
	addr, err := s.addresses.Load()
	if err != nil {
		s.fail(w, err)
		return
	}
	if addr == nil {
		http.Error(w, "no saved address", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, addr)
}

func (s *Server) handleAddressPut(w http.ResponseWriter, r *http.Request) {
	var form domain.AddressForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"fieldErrors": errs})
		return
	}
	addr := form.ToSavedAddress()
	if err := s.addresses.Save(addr); err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addr)
}

func (s *Server) handlePaymentMethods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"methods": s.gateway.Methods()})
}

func (s *Server) handleCheckoutBegin(w http.ResponseWriter, r *http.Request) {
	c, err := s.checkout.Begin()
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c.Status())
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) *usecase.Checkout {
	c, err := s.checkout.Get(mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, err)
		return nil
	}
	return c
}

func (s *Server) handleCheckoutStatus(w http.ResponseWriter, r *http.Request) {
	c := s.session(w, r)
	if c == nil {
		return
	}
	writeJSON(w, http.StatusOK, c.Status())
}

func (s *Server) handleCheckoutClose(w http.ResponseWriter, r *http.Request) {
	c := s.session(w, r)
	if c == nil {
		return
	}
	c.Close()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCheckoutAddress(w http.ResponseWriter, r *http.Request) {
	c := s.session(w, r)
	if c == nil {
		return
	}
	var form domain.AddressForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	fieldErrs, err := c.SubmitAddress(&form)
	if errors.Is(err, domain.ErrValidation) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"fieldErrors": fieldErrs})
		return
	}
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c.Status())
}

type payRequest struct {
	Method string `json:"method"`
}

func (s *Server) handleCheckoutPay(w http.ResponseWriter, r *http.Request) {
	c := s.session(w, r)
	if c == nil {
		return
	}
	var req payRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	link, err := c.Pay(req.Method)
	if errors.Is(err, domain.ErrBadTransition) {
		s.fail(w, err)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	st := c.Status()
	writeJSON(w, http.StatusOK, map[string]any{"payLink": link, "status": st})
}

func (s *Server) handleCheckoutOrder(w http.ResponseWriter, r *http.Request) {
	c := s.session(w, r)
	if c == nil {
		return
	}
	order, tracking, err := c.Order()
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"order": order, "tracking": tracking})
}

// fail maps domain sentinels onto HTTP statuses.
func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrEmptyCart):
		http.Error(w, "cart is empty", http.StatusBadRequest)
	case errors.Is(err, domain.ErrBadTransition):
		http.Error(w, "not allowed in current checkout state", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
