package handler

import (
	"net/http"

	"github.com/vfg2006/profit-manager-api/internal/api/handler/router"
	"github.com/vfg2006/profit-manager-api/internal/config"
	"github.com/vfg2006/profit-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/profit-manager-api/internal/usecases/calculating"
	"github.com/vfg2006/profit-manager-api/internal/usecases/configuring"
	"github.com/vfg2006/profit-manager-api/internal/usecases/selling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodGet,
			Handler: TiendanubeLogin(service),
		},
		{
			Path:    "/v1/auth/callback/tiendanube",
			Method:  http.MethodGet,
			Handler: TiendanubeCallback(service, cfg),
		},
		{
			Path:    "/v1/test-connection",
			Method:  http.MethodPost,
			Handler: TestConnection(service),
		},
	}
}

func Sales(service selling.DailySeller, authService authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/:date",
			Method:  http.MethodGet,
			Handler: GetDailySales(service, authService),
		},
	}
}

func Profitability(
	sellingService selling.DailySeller,
	calcService calculating.Calculator,
	authService authenticating.Authenticator,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/profitability/:date",
			Method:  http.MethodPost,
			Handler: ComputeProfitability(sellingService, calcService, authService),
		},
		{
			Path:    "/v1/calculations",
			Method:  http.MethodGet,
			Handler: ListCalculations(calcService),
		},
		{
			Path:    "/v1/calculations",
			Method:  http.MethodPost,
			Handler: SaveCalculation(calcService),
		},
	}
}

func UserConfig(service configuring.Configurer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/config",
			Method:  http.MethodGet,
			Handler: GetUserConfig(service),
		},
		{
			Path:    "/v1/config",
			Method:  http.MethodPost,
			Handler: SaveUserConfig(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
