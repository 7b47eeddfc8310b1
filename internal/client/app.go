package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/qa-demo-api/internal/adapter"
	"github.com/MKhiriev/qa-demo-api/internal/config"
	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/models"
)

// missingOrderID is never present in the catalog.
const missingOrderID = 2

var expectedOrder = models.Order{ID: 1, Total: 99.5, Currency: "USD"}

// check is one named step of the smoke run.
type check struct {
	name string
	run  func(ctx context.Context) error
}

type App struct {
	api         adapter.APIAdapter
	credentials models.Credentials

	logger *logger.Logger
}

func NewApp(api adapter.APIAdapter, cfg config.ClientCredentials, logger *logger.Logger) *App {
	return &App{
		api: api,
		credentials: models.Credentials{
			Username: cfg.Username,
			Password: cfg.Password,
		},
		logger: logger,
	}
}

// Run executes every check in order. Checks after a failed one still run;
// all failures are returned joined under ErrSmokeFailed.
func (a *App) Run(ctx context.Context) error {
	var errs []error

	for _, c := range a.checks() {
		if err := c.run(ctx); err != nil {
			a.logger.Error().Err(err).Str("check", c.name).Msg("FAIL")
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
			continue
		}
		a.logger.Info().Str("check", c.name).Msg("PASS")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrSmokeFailed, errors.Join(errs...))
	}
	return nil
}

func (a *App) checks() []check {
	return []check{
		{name: "health", run: a.checkHealth},
		{name: "version", run: a.checkVersion},
		{name: "add without token", run: a.checkAddRejected},
		{name: "login", run: a.checkLogin},
		{name: "add", run: a.checkAdd},
		{name: "get order", run: a.checkOrder},
		{name: "get missing order", run: a.checkMissingOrder},
	}
}

func (a *App) checkHealth(ctx context.Context) error {
	status, err := a.api.Health(ctx)
	if err != nil {
		return err
	}
	if status.Status != "ok" {
		return fmt.Errorf("%w: status %q", ErrUnexpectedResponse, status.Status)
	}
	return nil
}

func (a *App) checkVersion(ctx context.Context) error {
	version, err := a.api.Version(ctx)
	if err != nil {
		return err
	}
	if version == "" {
		return fmt.Errorf("%w: empty version", ErrUnexpectedResponse)
	}
	a.logger.Info().Str("server_version", version).Send()
	return nil
}

func (a *App) checkAddRejected(ctx context.Context) error {
	a.api.SetToken("")

	_, err := a.api.Add(ctx, 2, 3)
	if errors.Is(err, adapter.ErrUnauthorized) {
		return nil
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: add succeeded without a token", ErrUnexpectedResponse)
}

func (a *App) checkLogin(ctx context.Context) error {
	token, err := a.api.Login(ctx, a.credentials)
	if err != nil {
		return err
	}
	if token.AccessToken == "" || token.TokenType != "bearer" {
		return fmt.Errorf("%w: token %+v", ErrUnexpectedResponse, token)
	}
	return nil
}

func (a *App) checkAdd(ctx context.Context) error {
	result, err := a.api.Add(ctx, 2, 3)
	if err != nil {
		return err
	}
	a.logger.Info().Int("result", result.Result).Bool("bug_mode", result.BugMode).Msg("add answered")
	if result.Result != 1 {
		return fmt.Errorf("%w: result %d", ErrUnexpectedResponse, result.Result)
	}
	return nil
}

func (a *App) checkOrder(ctx context.Context) error {
	order, err := a.api.GetOrder(ctx, expectedOrder.ID)
	if err != nil {
		return err
	}
	if order != expectedOrder {
		return fmt.Errorf("%w: order %+v", ErrUnexpectedResponse, order)
	}
	return nil
}

func (a *App) checkMissingOrder(ctx context.Context) error {
	_, err := a.api.GetOrder(ctx, missingOrderID)
	if errors.Is(err, adapter.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: order %d exists", ErrUnexpectedResponse, missingOrderID)
}
