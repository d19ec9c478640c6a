package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/settleup/internal/metrics"
	"github.com/mmynk/settleup/internal/middleware"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
	"github.com/mmynk/settleup/internal/storage/sqlite"
	pb "github.com/mmynk/settleup/pkg/proto"
	"github.com/mmynk/settleup/pkg/proto/protoconnect"
)

type testServer struct {
	url     string
	metrics *metrics.Metrics
}

// client returns a LedgerService client acting as member. An empty member sends no header.
func (ts *testServer) client(member string) protoconnect.LedgerServiceClient {
	var opts []connect.ClientOption
	if member != "" {
		opts = append(opts, connect.WithInterceptors(middleware.SetMember(member)))
	}
	return protoconnect.NewLedgerServiceClient(http.DefaultClient, ts.url, opts...)
}

// setupTestServer starts a LedgerService over a temp SQLite database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return newTestServer(t, store)
}

// newTestServer starts a LedgerService over store and closes it on cleanup.
func newTestServer(t *testing.T, store storage.Store) *testServer {
	t.Helper()

	m := metrics.New(prometheus.NewRegistry())
	svc := NewLedgerService(store, WithMetrics(m))

	path, handler := protoconnect.NewLedgerServiceHandler(svc, connect.WithInterceptors(
		middleware.MemberInterceptor(ActingProcedures...),
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(m),
	))

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testServer{url: server.URL, metrics: m}
}

func createGroup(t *testing.T, client protoconnect.LedgerServiceClient, currency string, members ...string) *pb.Group {
	t.Helper()
	resp, err := client.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{
		Name:     "Trip",
		Currency: currency,
		Members:  members,
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return resp.Msg.Group
}

func addExpense(t *testing.T, client protoconnect.LedgerServiceClient, groupID, payer, amount string, participants ...string) *pb.Expense {
	t.Helper()
	resp, err := client.AddExpense(context.Background(), connect.NewRequest(&pb.AddExpenseRequest{
		GroupId:        groupID,
		PayerId:        payer,
		Amount:         amount,
		ParticipantIds: participants,
	}))
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	return resp.Msg.Expense
}

func expectCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}

func TestCreateGroup(t *testing.T) {
	ts := setupTestServer(t)
	client := ts.client("")

	group := createGroup(t, client, "usd", "alice", " bob ", "alice", "")

	if group.Id == "" {
		t.Error("expected non-empty group ID")
	}
	if group.Currency != "USD" {
		t.Errorf("currency: expected USD, got %s", group.Currency)
	}
	if len(group.Members) != 2 {
		t.Errorf("members: expected 2 after cleanup, got %v", group.Members)
	}
	if group.CreatedAt == 0 {
		t.Error("expected non-zero CreatedAt")
	}

	t.Run("unknown currency", func(t *testing.T) {
		_, err := client.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{
			Name: "Bad", Currency: "XYZ1",
		}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := client.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{
			Currency: "USD",
		}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestGetGroupAndAddMembers(t *testing.T) {
	ts := setupTestServer(t)
	client := ts.client("")
	ctx := context.Background()

	group := createGroup(t, client, "EUR", "alice")

	resp, err := client.AddMembers(ctx, connect.NewRequest(&pb.AddMembersRequest{
		GroupId: group.Id,
		Members: []string{"bob", "alice"},
	}))
	if err != nil {
		t.Fatalf("AddMembers failed: %v", err)
	}
	if got := resp.Msg.Group.Members; len(got) != 2 || got[0] != "alice" || got[1] != "bob" {
		t.Errorf("members: expected [alice bob], got %v", got)
	}

	getResp, err := client.GetGroup(ctx, connect.NewRequest(&pb.GetGroupRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if getResp.Msg.Group.Name != "Trip" {
		t.Errorf("name: expected 'Trip', got '%s'", getResp.Msg.Group.Name)
	}

	_, err = client.GetGroup(ctx, connect.NewRequest(&pb.GetGroupRequest{GroupId: "nonexistent"}))
	expectCode(t, err, connect.CodeNotFound)

	_, err = client.AddMembers(ctx, connect.NewRequest(&pb.AddMembersRequest{GroupId: "nonexistent", Members: []string{"x"}}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestAddExpenseValidation(t *testing.T) {
	ts := setupTestServer(t)
	client := ts.client("")
	group := createGroup(t, client, "USD", "alice", "bob")

	tests := []struct {
		name string
		req  *pb.AddExpenseRequest
		want connect.Code
	}{
		{"unknown payer", &pb.AddExpenseRequest{GroupId: group.Id, PayerId: "mallory", Amount: "10", ParticipantIds: []string{"alice"}}, connect.CodeInvalidArgument},
		{"unknown participant", &pb.AddExpenseRequest{GroupId: group.Id, PayerId: "alice", Amount: "10", ParticipantIds: []string{"zed"}}, connect.CodeInvalidArgument},
		{"no participants", &pb.AddExpenseRequest{GroupId: group.Id, PayerId: "alice", Amount: "10"}, connect.CodeInvalidArgument},
		{"zero amount", &pb.AddExpenseRequest{GroupId: group.Id, PayerId: "alice", Amount: "0", ParticipantIds: []string{"bob"}}, connect.CodeInvalidArgument},
		{"sub-cent amount", &pb.AddExpenseRequest{GroupId: group.Id, PayerId: "alice", Amount: "10.001", ParticipantIds: []string{"bob"}}, connect.CodeInvalidArgument},
		{"not a number", &pb.AddExpenseRequest{GroupId: group.Id, PayerId: "alice", Amount: "ten", ParticipantIds: []string{"bob"}}, connect.CodeInvalidArgument},
		{"missing group", &pb.AddExpenseRequest{GroupId: "nonexistent", PayerId: "alice", Amount: "10", ParticipantIds: []string{"bob"}}, connect.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.AddExpense(context.Background(), connect.NewRequest(tt.req))
			expectCode(t, err, tt.want)
		})
	}

	// Nothing above may have been stored.
	resp, err := client.ListExpenses(context.Background(), connect.NewRequest(&pb.ListExpensesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(resp.Msg.Expenses) != 0 {
		t.Errorf("expected no expenses, got %d", len(resp.Msg.Expenses))
	}
}

func TestAliceBobCharlie(t *testing.T) {
	ts := setupTestServer(t)
	client := ts.client("")
	ctx := context.Background()

	group := createGroup(t, client, "USD", "alice", "bob", "charlie")
	addExpense(t, client, group.Id, "alice", "100", "alice", "bob", "charlie")
	addExpense(t, client, group.Id, "bob", "200", "alice", "bob", "charlie")
	addExpense(t, client, group.Id, "charlie", "300.00", "alice", "bob", "charlie")

	balResp, err := client.GetBalances(ctx, connect.NewRequest(&pb.GetBalancesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetBalances failed: %v", err)
	}

	want := map[string]int64{"alice": -10000, "bob": 0, "charlie": 10000}
	if len(balResp.Msg.Balances) != 3 {
		t.Fatalf("expected 3 balances, got %d", len(balResp.Msg.Balances))
	}
	for _, b := range balResp.Msg.Balances {
		if b.NetMinor != want[b.MemberId] {
			t.Errorf("%s: expected %d, got %d", b.MemberId, want[b.MemberId], b.NetMinor)
		}
	}
	if alice := balResp.Msg.Balances[0]; alice.MemberId != "alice" || alice.Net != "-100.00" || alice.TotalPaid != "100.00" {
		t.Errorf("unexpected alice balance: %+v", alice)
	}
	if balResp.Msg.Skipped != 0 {
		t.Errorf("expected no skipped records, got %d", balResp.Msg.Skipped)
	}

	planResp, err := client.GetSettlementPlan(ctx, connect.NewRequest(&pb.GetSettlementPlanRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetSettlementPlan failed: %v", err)
	}
	plan := planResp.Msg.Transactions
	if len(plan) != 1 {
		t.Fatalf("expected 1 transaction, got %d: %+v", len(plan), plan)
	}
	if plan[0].FromId != "alice" || plan[0].ToId != "charlie" || plan[0].Amount != "100.00" || plan[0].Pending {
		t.Errorf("unexpected plan entry: %+v", plan[0])
	}
}

func TestSettlementPlanMemberFilter(t *testing.T) {
	ts := setupTestServer(t)
	client := ts.client("")
	ctx := context.Background()

	group := createGroup(t, client, "JPY", "alice", "bob", "charlie", "dave")
	addExpense(t, client, group.Id, "alice", "3000", "bob", "charlie", "dave")
	addExpense(t, client, group.Id, "bob", "600", "alice", "bob")

	all, err := client.GetSettlementPlan(ctx, connect.NewRequest(&pb.GetSettlementPlanRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetSettlementPlan failed: %v", err)
	}
	if len(all.Msg.Transactions) == 0 {
		t.Fatal("expected a non-empty plan")
	}
	for _, e := range all.Msg.Transactions {
		if strings.Contains(e.Amount, ".") {
			t.Errorf("JPY amounts have no fraction: %q", e.Amount)
		}
	}

	filtered, err := client.GetSettlementPlan(ctx, connect.NewRequest(&pb.GetSettlementPlanRequest{GroupId: group.Id, MemberId: "dave"}))
	if err != nil {
		t.Fatalf("GetSettlementPlan failed: %v", err)
	}
	if len(filtered.Msg.Transactions) != 1 {
		t.Fatalf("expected 1 transaction for dave, got %+v", filtered.Msg.Transactions)
	}
	if got := filtered.Msg.Transactions[0]; got.FromId != "dave" || got.ToId != "alice" || got.Amount != "1000" {
		t.Errorf("unexpected entry for dave: %+v", got)
	}
}

func TestSettlementRequestLifecycle(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	anon, a, b := ts.client(""), ts.client("A"), ts.client("B")

	group := createGroup(t, anon, "USD", "A", "B")
	addExpense(t, anon, group.Id, "B", "100", "A", "B")

	createResp, err := a.CreateSettlementRequest(ctx, connect.NewRequest(&pb.CreateSettlementRequestRequest{
		GroupId:  group.Id,
		ToId:     "B",
		Amount:   "50",
		ProofRef: "https://example.test/proof.jpg",
	}))
	if err != nil {
		t.Fatalf("CreateSettlementRequest failed: %v", err)
	}
	created := createResp.Msg.Request
	if created.Status != "pending" || created.FromId != "A" || created.AmountMinor != 5000 {
		t.Errorf("unexpected request: %+v", created)
	}

	t.Run("plan marks the pair pending", func(t *testing.T) {
		resp, err := anon.GetSettlementPlan(ctx, connect.NewRequest(&pb.GetSettlementPlanRequest{GroupId: group.Id}))
		if err != nil {
			t.Fatalf("GetSettlementPlan failed: %v", err)
		}
		if len(resp.Msg.Transactions) != 1 || !resp.Msg.Transactions[0].Pending {
			t.Errorf("expected one pending entry, got %+v", resp.Msg.Transactions)
		}
	})

	t.Run("duplicate is refused", func(t *testing.T) {
		_, err := a.CreateSettlementRequest(ctx, connect.NewRequest(&pb.CreateSettlementRequestRequest{
			GroupId: group.Id, ToId: "B", Amount: "30",
		}))
		expectCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("sender cannot confirm", func(t *testing.T) {
		_, err := a.ConfirmSettlementRequest(ctx, connect.NewRequest(&pb.ConfirmSettlementRequestRequest{RequestId: created.Id}))
		expectCode(t, err, connect.CodeFailedPrecondition)
	})

	confirmResp, err := b.ConfirmSettlementRequest(ctx, connect.NewRequest(&pb.ConfirmSettlementRequestRequest{RequestId: created.Id}))
	if err != nil {
		t.Fatalf("ConfirmSettlementRequest failed: %v", err)
	}
	if confirmResp.Msg.Request.Status != "confirmed" || confirmResp.Msg.Request.ResolvedAt == 0 {
		t.Errorf("unexpected confirmed request: %+v", confirmResp.Msg.Request)
	}
	st := confirmResp.Msg.Settlement
	if st.FromId != "A" || st.ToId != "B" || st.Amount != "50.00" || st.ConfirmedBy != "B" || st.RequestId != created.Id {
		t.Errorf("unexpected settlement: %+v", st)
	}

	t.Run("second confirm is refused", func(t *testing.T) {
		_, err := b.ConfirmSettlementRequest(ctx, connect.NewRequest(&pb.ConfirmSettlementRequestRequest{RequestId: created.Id}))
		expectCode(t, err, connect.CodeFailedPrecondition)
	})

	t.Run("history has exactly one settlement", func(t *testing.T) {
		resp, err := anon.ListSettlements(ctx, connect.NewRequest(&pb.ListSettlementsRequest{GroupId: group.Id}))
		if err != nil {
			t.Fatalf("ListSettlements failed: %v", err)
		}
		if len(resp.Msg.Settlements) != 1 {
			t.Errorf("expected 1 settlement, got %d", len(resp.Msg.Settlements))
		}
	})

	t.Run("balances reflect the settlement", func(t *testing.T) {
		resp, err := anon.GetBalances(ctx, connect.NewRequest(&pb.GetBalancesRequest{GroupId: group.Id}))
		if err != nil {
			t.Fatalf("GetBalances failed: %v", err)
		}
		for _, bal := range resp.Msg.Balances {
			if bal.NetMinor != 0 {
				t.Errorf("%s: expected settled, got %s", bal.MemberId, bal.Net)
			}
		}

		plan, err := anon.GetSettlementPlan(ctx, connect.NewRequest(&pb.GetSettlementPlanRequest{GroupId: group.Id}))
		if err != nil {
			t.Fatalf("GetSettlementPlan failed: %v", err)
		}
		if len(plan.Msg.Transactions) != 0 {
			t.Errorf("expected empty plan, got %+v", plan.Msg.Transactions)
		}
	})

	t.Run("list by status", func(t *testing.T) {
		resp, err := anon.ListSettlementRequests(ctx, connect.NewRequest(&pb.ListSettlementRequestsRequest{
			GroupId: group.Id, Status: "confirmed", MemberId: "B",
		}))
		if err != nil {
			t.Fatalf("ListSettlementRequests failed: %v", err)
		}
		if len(resp.Msg.Requests) != 1 || resp.Msg.Requests[0].ProofRef != "https://example.test/proof.jpg" {
			t.Errorf("unexpected requests: %+v", resp.Msg.Requests)
		}

		_, err = anon.ListSettlementRequests(ctx, connect.NewRequest(&pb.ListSettlementRequestsRequest{
			GroupId: group.Id, Status: "cancelled",
		}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})

	if n := testutil.CollectAndCount(ts.metrics.RequestTransitions); n == 0 {
		t.Error("expected request transitions to be recorded")
	}
}

func TestRejectThenRecreate(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	anon, a, b := ts.client(""), ts.client("A"), ts.client("B")

	group := createGroup(t, anon, "USD", "A", "B")

	createResp, err := a.CreateSettlementRequest(ctx, connect.NewRequest(&pb.CreateSettlementRequestRequest{
		GroupId: group.Id, ToId: "B", Amount: "12.34",
	}))
	if err != nil {
		t.Fatalf("CreateSettlementRequest failed: %v", err)
	}

	rejectResp, err := b.RejectSettlementRequest(ctx, connect.NewRequest(&pb.RejectSettlementRequestRequest{
		RequestId: createResp.Msg.Request.Id,
	}))
	if err != nil {
		t.Fatalf("RejectSettlementRequest failed: %v", err)
	}
	if rejectResp.Msg.Request.Status != "rejected" {
		t.Errorf("expected rejected, got %s", rejectResp.Msg.Request.Status)
	}

	if _, err := a.CreateSettlementRequest(ctx, connect.NewRequest(&pb.CreateSettlementRequestRequest{
		GroupId: group.Id, ToId: "B", Amount: "12.34",
	})); err != nil {
		t.Fatalf("re-create after reject failed: %v", err)
	}

	settlements, err := anon.ListSettlements(ctx, connect.NewRequest(&pb.ListSettlementsRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("ListSettlements failed: %v", err)
	}
	if len(settlements.Msg.Settlements) != 0 {
		t.Errorf("reject must not create settlements, got %d", len(settlements.Msg.Settlements))
	}
}

func TestSettlementRequestValidation(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	anon, a := ts.client(""), ts.client("A")

	group := createGroup(t, anon, "USD", "A", "B")

	t.Run("acting member required", func(t *testing.T) {
		_, err := anon.CreateSettlementRequest(ctx, connect.NewRequest(&pb.CreateSettlementRequestRequest{
			GroupId: group.Id, ToId: "B", Amount: "1",
		}))
		expectCode(t, err, connect.CodeUnauthenticated)
	})

	tests := []struct {
		name string
		req  *pb.CreateSettlementRequestRequest
		want connect.Code
	}{
		{"pay yourself", &pb.CreateSettlementRequestRequest{GroupId: group.Id, ToId: "A", Amount: "1"}, connect.CodeInvalidArgument},
		{"recipient outside group", &pb.CreateSettlementRequestRequest{GroupId: group.Id, ToId: "Z", Amount: "1"}, connect.CodeInvalidArgument},
		{"negative amount", &pb.CreateSettlementRequestRequest{GroupId: group.Id, ToId: "B", Amount: "-1"}, connect.CodeInvalidArgument},
		{"missing group", &pb.CreateSettlementRequestRequest{GroupId: "nonexistent", ToId: "B", Amount: "1"}, connect.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.CreateSettlementRequest(ctx, connect.NewRequest(tt.req))
			expectCode(t, err, tt.want)
		})
	}

	t.Run("unknown request", func(t *testing.T) {
		_, err := a.ConfirmSettlementRequest(ctx, connect.NewRequest(&pb.ConfirmSettlementRequestRequest{RequestId: "nonexistent"}))
		expectCode(t, err, connect.CodeNotFound)
	})
}

func TestListGroups(t *testing.T) {
	ts := setupTestServer(t)
	client := ts.client("")
	ctx := context.Background()

	trip := createGroup(t, client, "USD", "alice", "bob")
	flat := createGroup(t, client, "EUR", "bob", "carol")

	resp, err := client.ListGroups(ctx, connect.NewRequest(&pb.ListGroupsRequest{MemberId: "bob"}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	ids := map[string]bool{}
	for _, g := range resp.Msg.Groups {
		ids[g.Id] = true
	}
	if len(resp.Msg.Groups) != 2 || !ids[trip.Id] || !ids[flat.Id] {
		t.Errorf("expected both groups for bob, got %+v", resp.Msg.Groups)
	}

	resp, err = client.ListGroups(ctx, connect.NewRequest(&pb.ListGroupsRequest{MemberId: "carol"}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(resp.Msg.Groups) != 1 || resp.Msg.Groups[0].Id != flat.Id || resp.Msg.Groups[0].Currency != "EUR" {
		t.Errorf("expected only the EUR group for carol, got %+v", resp.Msg.Groups)
	}

	resp, err = client.ListGroups(ctx, connect.NewRequest(&pb.ListGroupsRequest{MemberId: "nobody"}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(resp.Msg.Groups) != 0 {
		t.Errorf("expected no groups, got %+v", resp.Msg.Groups)
	}

	_, err = client.ListGroups(ctx, connect.NewRequest(&pb.ListGroupsRequest{MemberId: " "}))
	expectCode(t, err, connect.CodeInvalidArgument)
}

func TestGetMemberSummary(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	anon, alice, bob := ts.client(""), ts.client("alice"), ts.client("bob")

	// alice owes 100.00 USD in the trip.
	trip := createGroup(t, anon, "USD", "alice", "bob", "charlie")
	addExpense(t, anon, trip.Id, "alice", "100", "alice", "bob", "charlie")
	addExpense(t, anon, trip.Id, "bob", "200", "alice", "bob", "charlie")
	addExpense(t, anon, trip.Id, "charlie", "300", "alice", "bob", "charlie")

	// alice is owed 25.00 EUR in the flat and 10.00 USD in the club.
	flat := createGroup(t, anon, "EUR", "alice", "bob")
	addExpense(t, anon, flat.Id, "alice", "50", "alice", "bob")
	club := createGroup(t, anon, "USD", "alice", "bob")
	addExpense(t, anon, club.Id, "alice", "10", "bob")

	// bob has two pending requests addressed to alice and one to charlie.
	for _, g := range []*pb.Group{flat, club} {
		if _, err := bob.CreateSettlementRequest(ctx, connect.NewRequest(&pb.CreateSettlementRequestRequest{
			GroupId: g.Id, ToId: "alice", Amount: "1",
		})); err != nil {
			t.Fatalf("CreateSettlementRequest failed: %v", err)
		}
	}
	if _, err := bob.CreateSettlementRequest(ctx, connect.NewRequest(&pb.CreateSettlementRequestRequest{
		GroupId: trip.Id, ToId: "charlie", Amount: "1",
	})); err != nil {
		t.Fatalf("CreateSettlementRequest failed: %v", err)
	}
	// alice's own outgoing request is not incoming.
	if _, err := alice.CreateSettlementRequest(ctx, connect.NewRequest(&pb.CreateSettlementRequestRequest{
		GroupId: trip.Id, ToId: "charlie", Amount: "100",
	})); err != nil {
		t.Fatalf("CreateSettlementRequest failed: %v", err)
	}

	resp, err := anon.GetMemberSummary(ctx, connect.NewRequest(&pb.GetMemberSummaryRequest{MemberId: "alice"}))
	if err != nil {
		t.Fatalf("GetMemberSummary failed: %v", err)
	}
	msg := resp.Msg

	if msg.MemberId != "alice" || len(msg.Groups) != 3 {
		t.Fatalf("expected three groups for alice, got %+v", msg)
	}
	nets := map[string]int64{}
	for _, g := range msg.Groups {
		nets[g.GroupId] = g.NetMinor
	}
	if nets[trip.Id] != -10000 || nets[flat.Id] != 2500 || nets[club.Id] != 1000 {
		t.Errorf("unexpected group positions: %v", nets)
	}

	if len(msg.Totals) != 2 {
		t.Fatalf("expected EUR and USD totals, got %+v", msg.Totals)
	}
	eur, usd := msg.Totals[0], msg.Totals[1]
	if eur.Currency != "EUR" || eur.Owed != "25.00" || eur.OwingMinor != 0 {
		t.Errorf("unexpected EUR total: %+v", eur)
	}
	if usd.Currency != "USD" || usd.OwedMinor != 1000 || usd.Owing != "100.00" {
		t.Errorf("unexpected USD total: %+v", usd)
	}

	if msg.PendingIncoming != 2 {
		t.Errorf("expected 2 pending incoming requests, got %d", msg.PendingIncoming)
	}
	if msg.Skipped != 0 {
		t.Errorf("expected no skipped records, got %d", msg.Skipped)
	}

	t.Run("member without groups", func(t *testing.T) {
		resp, err := anon.GetMemberSummary(ctx, connect.NewRequest(&pb.GetMemberSummaryRequest{MemberId: "nobody"}))
		if err != nil {
			t.Fatalf("GetMemberSummary failed: %v", err)
		}
		if len(resp.Msg.Groups) != 0 || len(resp.Msg.Totals) != 0 || resp.Msg.PendingIncoming != 0 {
			t.Errorf("expected an empty summary, got %+v", resp.Msg)
		}
	})

	t.Run("member required", func(t *testing.T) {
		_, err := anon.GetMemberSummary(ctx, connect.NewRequest(&pb.GetMemberSummaryRequest{}))
		expectCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestListSettlementRequestsByRecipient(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	anon, a, b := ts.client(""), ts.client("A"), ts.client("B")

	group := createGroup(t, anon, "USD", "A", "B", "C")
	for _, r := range []struct {
		client protoconnect.LedgerServiceClient
		to     string
	}{{a, "B"}, {a, "C"}, {b, "C"}} {
		if _, err := r.client.CreateSettlementRequest(ctx, connect.NewRequest(&pb.CreateSettlementRequestRequest{
			GroupId: group.Id, ToId: r.to, Amount: "5",
		})); err != nil {
			t.Fatalf("CreateSettlementRequest failed: %v", err)
		}
	}

	resp, err := anon.ListSettlementRequests(ctx, connect.NewRequest(&pb.ListSettlementRequestsRequest{
		GroupId: group.Id, ToId: "C",
	}))
	if err != nil {
		t.Fatalf("ListSettlementRequests failed: %v", err)
	}
	if len(resp.Msg.Requests) != 2 {
		t.Fatalf("expected 2 requests to C, got %+v", resp.Msg.Requests)
	}
	for _, r := range resp.Msg.Requests {
		if r.ToId != "C" {
			t.Errorf("expected recipient C, got %+v", r)
		}
	}

	resp, err = anon.ListSettlementRequests(ctx, connect.NewRequest(&pb.ListSettlementRequestsRequest{
		GroupId: group.Id, ToId: "C", MemberId: "B",
	}))
	if err != nil {
		t.Fatalf("ListSettlementRequests failed: %v", err)
	}
	if len(resp.Msg.Requests) != 1 || resp.Msg.Requests[0].FromId != "B" {
		t.Errorf("expected only B's request to C, got %+v", resp.Msg.Requests)
	}
}

// groupOutageStore fails every GetGroup once a settlement request has been resolved.
type groupOutageStore struct {
	storage.Store
	resolved atomic.Bool
}

func (s *groupOutageStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	if s.resolved.Load() {
		return nil, errors.New("group read unavailable")
	}
	return s.Store.GetGroup(ctx, groupID)
}

func (s *groupOutageStore) ResolveSettlementRequest(ctx context.Context, requestID string, status models.RequestStatus, resolvedAt int64, settlement *models.Settlement) error {
	if err := s.Store.ResolveSettlementRequest(ctx, requestID, status, resolvedAt, settlement); err != nil {
		return err
	}
	s.resolved.Store(true)
	return nil
}

func TestResolveSurvivesGroupReadFailureAfterCommit(t *testing.T) {
	for _, confirm := range []bool{true, false} {
		name := "reject"
		if confirm {
			name = "confirm"
		}
		t.Run(name, func(t *testing.T) {
			inner, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
			if err != nil {
				t.Fatalf("failed to create store: %v", err)
			}
			store := &groupOutageStore{Store: inner}
			ts := newTestServer(t, store)
			ctx := context.Background()
			a, b := ts.client("A"), ts.client("B")

			group := createGroup(t, ts.client(""), "USD", "A", "B")
			created, err := a.CreateSettlementRequest(ctx, connect.NewRequest(&pb.CreateSettlementRequestRequest{
				GroupId: group.Id, ToId: "B", Amount: "7.50",
			}))
			if err != nil {
				t.Fatalf("CreateSettlementRequest failed: %v", err)
			}
			id := created.Msg.Request.Id

			if confirm {
				resp, err := b.ConfirmSettlementRequest(ctx, connect.NewRequest(&pb.ConfirmSettlementRequestRequest{RequestId: id}))
				if err != nil {
					t.Fatalf("ConfirmSettlementRequest failed after commit: %v", err)
				}
				if resp.Msg.Settlement.Amount != "7.50" {
					t.Errorf("unexpected settlement: %+v", resp.Msg.Settlement)
				}
				settlements, err := inner.ListSettlementsByGroup(ctx, group.Id)
				if err != nil {
					t.Fatalf("ListSettlementsByGroup failed: %v", err)
				}
				if len(settlements) != 1 || settlements[0].RequestID != id {
					t.Errorf("expected the confirmed settlement to be stored, got %+v", settlements)
				}
			} else {
				resp, err := b.RejectSettlementRequest(ctx, connect.NewRequest(&pb.RejectSettlementRequestRequest{RequestId: id}))
				if err != nil {
					t.Fatalf("RejectSettlementRequest failed after commit: %v", err)
				}
				if resp.Msg.Request.Status != "rejected" || resp.Msg.Request.Amount != "7.50" {
					t.Errorf("unexpected rejected request: %+v", resp.Msg.Request)
				}
			}

			stored, err := inner.GetSettlementRequest(ctx, id)
			if err != nil {
				t.Fatalf("GetSettlementRequest failed: %v", err)
			}
			if stored.Status == models.RequestPending {
				t.Error("expected the request to be resolved")
			}
		})
	}
}
