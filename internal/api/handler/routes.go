package handler

import (
	"net/http"

	"github.com/stmbudget/sales-planning-api/internal/api/handler/router"
	"github.com/stmbudget/sales-planning-api/internal/usecases/authenticating"
	"github.com/stmbudget/sales-planning-api/internal/usecases/budgeting"
	"github.com/stmbudget/sales-planning-api/internal/usecases/cataloging"
	"github.com/stmbudget/sales-planning-api/internal/usecases/forecasting"
	"github.com/stmbudget/sales-planning-api/internal/usecases/reporting"
	"github.com/stmbudget/sales-planning-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Budgets(service budgeting.BudgetService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/budgets",
			Method:      http.MethodGet,
			Handler:     ListBudgetEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/budgets",
			Method:      http.MethodPost,
			Handler:     CreateBudgetEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Planners()},
		},
		{
			Path:        "/v1/budgets/bulk",
			Method:      http.MethodPost,
			Handler:     BulkCreateBudget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Planners()},
		},
		{
			Path:        "/v1/budgets/approve",
			Method:      http.MethodPost,
			Handler:     ApproveBudgetEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/budgets/:id",
			Method:      http.MethodGet,
			Handler:     GetBudgetEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/budgets/:id",
			Method:      http.MethodPut,
			Handler:     UpdateBudgetEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Planners()},
		},
		{
			Path:        "/v1/budgets/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteBudgetEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Planners()},
		},
		{
			Path:        "/v1/budgets/seasonal/:id",
			Method:      http.MethodPost,
			Handler:     ApplySeasonalDistribution(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Planners()},
		},
	}
}

func Forecasts(service forecasting.ForecastService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/forecasts",
			Method:      http.MethodGet,
			Handler:     ListForecastEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/forecasts",
			Method:      http.MethodPost,
			Handler:     CreateForecastEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Planners()},
		},
		{
			Path:        "/v1/forecasts/bulk",
			Method:      http.MethodPost,
			Handler:     BulkCreateForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Planners()},
		},
		{
			Path:        "/v1/forecasts/approve",
			Method:      http.MethodPost,
			Handler:     ApproveForecastEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/forecasts/:id",
			Method:      http.MethodGet,
			Handler:     GetForecastEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/forecasts/:id",
			Method:      http.MethodPut,
			Handler:     UpdateForecastEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Planners()},
		},
		{
			Path:        "/v1/forecasts/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteForecastEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Planners()},
		},
	}
}

func Reports(service reporting.ReportingService, kpiService reporting.KPIService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/variance",
			Method:      http.MethodGet,
			Handler:     GetVarianceAnalysis(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/budgets/summary",
			Method:      http.MethodGet,
			Handler:     GetBudgetSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/forecasts/summary",
			Method:      http.MethodGet,
			Handler:     GetForecastSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/budgets/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyBudgetDetail(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/forecasts/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyForecastDetail(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/budgets/export",
			Method:      http.MethodGet,
			Handler:     ExportBudgetReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/reports/kpis",
			Method:      http.MethodGet,
			Handler:     GetKPIDashboard(kpiService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/kpis/:year/:month/recalculate",
			Method:      http.MethodPost,
			Handler:     RecalculateKPIMetrics(kpiService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Catalog(service cataloging.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers",
			Method:      http.MethodGet,
			Handler:     ListCustomers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers",
			Method:      http.MethodPost,
			Handler:     CreateCustomer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodGet,
			Handler:     GetCustomer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCustomer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/items",
			Method:      http.MethodGet,
			Handler:     ListItems(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items",
			Method:      http.MethodPost,
			Handler:     CreateItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/items/:id",
			Method:      http.MethodGet,
			Handler:     GetItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:id",
			Method:      http.MethodPut,
			Handler:     UpdateItem(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/items/:id/inventory",
			Method:      http.MethodGet,
			Handler:     ListItemInventory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/items/:id/inventory",
			Method:      http.MethodPut,
			Handler:     UpsertItemInventory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
