package app

import (
	"net/http"

	"audiomart/internal/adapters/httpserver"
	"audiomart/internal/adapters/payments/upi"
	"audiomart/internal/adapters/repo/memory"
	"audiomart/internal/adapters/storage/localfs"
	"audiomart/internal/config"
	"audiomart/internal/domain"
	"audiomart/internal/usecase"
)

type App struct {
	Config     *config.Config
	CatalogUC  *usecase.CatalogUC
	CartUC     *usecase.CartUC
	CheckoutUC *usecase.CheckoutUC
	Addresses  domain.AddressStore
	Gateway    domain.PaymentGateway
}

func NewApp(cfg *config.Config) (*App, error) {
	prodRepo := memory.NewProductRepo()
	addresses := localfs.NewAddressStore(cfg.AddressFile)
	gateway := upi.NewGateway(cfg.UPIPayee, cfg.MerchantName)

	app := &App{Config: cfg}
	app.CatalogUC = &usecase.CatalogUC{Products: prodRepo}
	app.CartUC = usecase.NewCartUC()
	app.Addresses = addresses
	app.Gateway = gateway
	app.CheckoutUC = usecase.NewCheckoutUC(app.CartUC, addresses, gateway, usecase.RealClock(), usecase.CheckoutConfig{
		ConfirmAfter:  cfg.ConfirmAfter,
		DisplayWindow: cfg.DisplayWindow,
	})

	return app, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.CatalogUC, a.CartUC, a.CheckoutUC, a.Addresses, a.Gateway, []byte(a.Config.AdminSecret))
}

// Shutdown disposes pending checkout confirmation timers.
func (a *App) Shutdown() {
	a.CheckoutUC.Shutdown()
}
