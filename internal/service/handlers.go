package service

import (
	"net/http"

	"connectrpc.com/connect"
)

const (
	ExpenseServiceName   = "budget.v1.ExpenseService"
	CategoryServiceName  = "budget.v1.CategoryService"
	AnalyticsServiceName = "budget.v1.AnalyticsService"
)

// Procedure paths, in the /package.Service/Method form Connect routes on.
const (
	ExpenseServiceAddExpenseProcedure    = "/" + ExpenseServiceName + "/AddExpense"
	ExpenseServiceListExpensesProcedure  = "/" + ExpenseServiceName + "/ListExpenses"
	ExpenseServiceDeleteExpenseProcedure = "/" + ExpenseServiceName + "/DeleteExpense"
	ExpenseServiceGetSummaryProcedure    = "/" + ExpenseServiceName + "/GetSummary"

	CategoryServiceAddCategoryProcedure    = "/" + CategoryServiceName + "/AddCategory"
	CategoryServiceListCategoriesProcedure = "/" + CategoryServiceName + "/ListCategories"

	AnalyticsServiceGetTrendsProcedure            = "/" + AnalyticsServiceName + "/GetTrends"
	AnalyticsServiceGetCategoryBreakdownProcedure = "/" + AnalyticsServiceName + "/GetCategoryBreakdown"
	AnalyticsServiceGetSpendingTrendProcedure     = "/" + AnalyticsServiceName + "/GetSpendingTrend"
	AnalyticsServiceCompareMonthsProcedure        = "/" + AnalyticsServiceName + "/CompareMonths"
	AnalyticsServiceGetForecastProcedure          = "/" + AnalyticsServiceName + "/GetForecast"
)

// withCodec puts the JSON codecs ahead of caller options.
func withCodec(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{
		connect.WithCodec(JSONCodec{}),
		connect.WithCodec(JSONCodec{name: codecNameJSONCharset}),
	}, opts...)
}

// NewExpenseServiceHandler builds an HTTP handler for the ExpenseService and returns
// the path prefix to mount it on.
func NewExpenseServiceHandler(svc *ExpenseService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)

	mux := http.NewServeMux()
	mux.Handle(ExpenseServiceAddExpenseProcedure,
		connect.NewUnaryHandler(ExpenseServiceAddExpenseProcedure, svc.AddExpense, opts...))
	mux.Handle(ExpenseServiceListExpensesProcedure,
		connect.NewUnaryHandler(ExpenseServiceListExpensesProcedure, svc.ListExpenses, opts...))
	mux.Handle(ExpenseServiceDeleteExpenseProcedure,
		connect.NewUnaryHandler(ExpenseServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...))
	mux.Handle(ExpenseServiceGetSummaryProcedure,
		connect.NewUnaryHandler(ExpenseServiceGetSummaryProcedure, svc.GetSummary, opts...))

	return "/" + ExpenseServiceName + "/", mux
}

// NewCategoryServiceHandler builds an HTTP handler for the CategoryService.
func NewCategoryServiceHandler(svc *CategoryService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)

	mux := http.NewServeMux()
	mux.Handle(CategoryServiceAddCategoryProcedure,
		connect.NewUnaryHandler(CategoryServiceAddCategoryProcedure, svc.AddCategory, opts...))
	mux.Handle(CategoryServiceListCategoriesProcedure,
		connect.NewUnaryHandler(CategoryServiceListCategoriesProcedure, svc.ListCategories, opts...))

	return "/" + CategoryServiceName + "/", mux
}

// NewAnalyticsServiceHandler builds an HTTP handler for the AnalyticsService.
func NewAnalyticsServiceHandler(svc *AnalyticsService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)

	mux := http.NewServeMux()
	mux.Handle(AnalyticsServiceGetTrendsProcedure,
		connect.NewUnaryHandler(AnalyticsServiceGetTrendsProcedure, svc.GetTrends, opts...))
	mux.Handle(AnalyticsServiceGetCategoryBreakdownProcedure,
		connect.NewUnaryHandler(AnalyticsServiceGetCategoryBreakdownProcedure, svc.GetCategoryBreakdown, opts...))
	mux.Handle(AnalyticsServiceGetSpendingTrendProcedure,
		connect.NewUnaryHandler(AnalyticsServiceGetSpendingTrendProcedure, svc.GetSpendingTrend, opts...))
	mux.Handle(AnalyticsServiceCompareMonthsProcedure,
		connect.NewUnaryHandler(AnalyticsServiceCompareMonthsProcedure, svc.CompareMonths, opts...))
	mux.Handle(AnalyticsServiceGetForecastProcedure,
		connect.NewUnaryHandler(AnalyticsServiceGetForecastProcedure, svc.GetForecast, opts...))

	return "/" + AnalyticsServiceName + "/", mux
}
