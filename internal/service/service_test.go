package service

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/househub/internal/chores"
	"github.com/mmynk/househub/internal/household"
	"github.com/mmynk/househub/internal/ledger"
	"github.com/mmynk/househub/internal/middleware"
	"github.com/mmynk/househub/internal/schedule"
	"github.com/mmynk/househub/internal/testutil"
	"github.com/mmynk/househub/pkg/api/apiconnect"
)

type testClients struct {
	household apiconnect.HouseholdServiceClient
	chores    apiconnect.ChoreServiceClient
	finance   apiconnect.FinanceServiceClient
	schedule  apiconnect.ScheduleServiceClient
	url       string
}

// setupTestServer mounts every service on one test server backed by a
// temporary database.
func setupTestServer(t *testing.T) *testClients {
	t.Helper()

	store := testutil.NewTestStore(t)
	registry := household.NewRegistry(store)
	choreSvc := chores.NewService(store, registry)

	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor())

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewHouseholdServiceHandler(NewHouseholdService(registry), interceptors))
	mux.Handle(apiconnect.NewChoreServiceHandler(NewChoreService(choreSvc, registry), interceptors))
	mux.Handle(apiconnect.NewFinanceServiceHandler(NewFinanceService(ledger.New(store), registry), interceptors))
	mux.Handle(apiconnect.NewScheduleServiceHandler(NewScheduleService(schedule.NewService(store, registry)), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testClients{
		household: apiconnect.NewHouseholdServiceClient(http.DefaultClient, server.URL),
		chores:    apiconnect.NewChoreServiceClient(http.DefaultClient, server.URL),
		finance:   apiconnect.NewFinanceServiceClient(http.DefaultClient, server.URL),
		schedule:  apiconnect.NewScheduleServiceClient(http.DefaultClient, server.URL),
		url:       server.URL,
	}
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("expected code %v, got %v (%v)", want, got, err)
	}
}
