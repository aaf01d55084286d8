package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmuwanga/ohns-backoffice/internal/client/api"
	"github.com/dmuwanga/ohns-backoffice/internal/client/config"
	"github.com/dmuwanga/ohns-backoffice/internal/client/keystore"
	"github.com/dmuwanga/ohns-backoffice/internal/client/query"
	"github.com/dmuwanga/ohns-backoffice/internal/client/services"
	"github.com/dmuwanga/ohns-backoffice/internal/client/state"
	"github.com/dmuwanga/ohns-backoffice/internal/logging"
)

// App owns the wired client: credential store, API client, query cache,
// resource services and the session state the REPL renders.
type App struct {
	cfg    *config.Config
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	store   keystore.Store
	cache   *query.Cache
	poller  *query.Poller
	session *state.App

	auth        *services.Auth
	airports    *services.Airports
	rideOptions *services.RideOptions
	bookings    *services.Bookings
	auditLogs   *services.AuditLogs
	employees   *services.Employees
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := keystore.Open(ctx, cfg.StoreBackend, cfg.DataDir, log)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}

	apiClient := api.New(cfg.APIBaseURL, store, log, api.WithTimeout(cfg.RequestTimeout))
	cache := query.NewCache(log)

	return &App{
		cfg:     cfg,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		store:   store,
		cache:   cache,
		poller:  query.NewPoller(log),
		session: state.New(),

		auth:        services.NewAuth(apiClient, store, log),
		airports:    services.NewAirports(apiClient, cache),
		rideOptions: services.NewRideOptions(apiClient, cache),
		bookings:    services.NewBookings(apiClient, cache),
		auditLogs:   services.NewAuditLogs(apiClient, cache),
		employees:   services.NewEmployees(apiClient, cache),
	}, nil
}

// Run restores the stored session, starts the REPL and blocks until the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	defer a.poller.StopAll()

	a.session.Bootstrap(ctx, a.auth.CurrentUser)
	if u := a.session.User(); u != nil {
		fmt.Fprintf(a.out, "Welcome back, %s\n", u.Name)
		a.startListPolling(ctx)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.User() != nil
}

// startListPolling keeps the active list screens fresh in the background.
func (a *App) startListPolling(ctx context.Context) {
	for _, r := range []query.Pollable{
		a.airports.ListResource(),
		a.rideOptions.ListResource(),
		a.bookings.ListResource(),
		a.employees.ListResource(),
	} {
		a.poller.Start(ctx, r)
	}
}
