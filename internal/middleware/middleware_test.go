package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"

	pb "github.com/mmynk/settleup/pkg/proto"
	"github.com/mmynk/settleup/pkg/proto/protoconnect"
)

// echoHandler reports the acting member it sees back to the caller.
type echoHandler struct {
	protoconnect.UnimplementedLedgerServiceHandler
}

func (echoHandler) GetGroup(ctx context.Context, _ *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	return connect.NewResponse(&pb.GetGroupResponse{Group: &pb.Group{Name: GetMemberID(ctx)}}), nil
}

func (echoHandler) CreateSettlementRequest(ctx context.Context, _ *connect.Request[pb.CreateSettlementRequestRequest]) (*connect.Response[pb.CreateSettlementRequestResponse], error) {
	return connect.NewResponse(&pb.CreateSettlementRequestResponse{Request: &pb.SettlementRequest{FromId: GetMemberID(ctx)}}), nil
}

type recordingObserver struct {
	mu    sync.Mutex
	codes map[string]string
}

func (o *recordingObserver) ObserveRPC(procedure, code string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.codes[procedure] = code
}

func setupServer(t *testing.T, obs RPCObserver) string {
	t.Helper()
	path, handler := protoconnect.NewLedgerServiceHandler(echoHandler{}, connect.WithInterceptors(
		LoggingInterceptor(),
		MetricsInterceptor(obs),
		MemberInterceptor(protoconnect.LedgerServiceCreateSettlementRequestProcedure),
	))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server.URL
}

func TestMemberInterceptor(t *testing.T) {
	obs := &recordingObserver{codes: map[string]string{}}
	url := setupServer(t, obs)
	ctx := context.Background()

	anon := protoconnect.NewLedgerServiceClient(http.DefaultClient, url)
	alice := protoconnect.NewLedgerServiceClient(http.DefaultClient, url, connect.WithInterceptors(SetMember("alice")))

	t.Run("header reaches the handler", func(t *testing.T) {
		resp, err := alice.CreateSettlementRequest(ctx, connect.NewRequest(&pb.CreateSettlementRequestRequest{}))
		if err != nil {
			t.Fatalf("CreateSettlementRequest failed: %v", err)
		}
		if resp.Msg.Request.FromId != "alice" {
			t.Errorf("expected member alice, got %q", resp.Msg.Request.FromId)
		}
	})

	t.Run("required procedure without header", func(t *testing.T) {
		_, err := anon.CreateSettlementRequest(ctx, connect.NewRequest(&pb.CreateSettlementRequestRequest{}))
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Fatalf("expected Unauthenticated, got %v", err)
		}
	})

	t.Run("optional procedure without header", func(t *testing.T) {
		resp, err := anon.GetGroup(ctx, connect.NewRequest(&pb.GetGroupRequest{}))
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if resp.Msg.Group.Name != "" {
			t.Errorf("expected no member, got %q", resp.Msg.Group.Name)
		}
	})

	t.Run("blank header counts as missing", func(t *testing.T) {
		blank := protoconnect.NewLedgerServiceClient(http.DefaultClient, url, connect.WithInterceptors(SetMember("  ")))
		_, err := blank.CreateSettlementRequest(ctx, connect.NewRequest(&pb.CreateSettlementRequestRequest{}))
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Fatalf("expected Unauthenticated, got %v", err)
		}
	})
}

func TestMetricsInterceptor(t *testing.T) {
	obs := &recordingObserver{codes: map[string]string{}}
	url := setupServer(t, obs)
	client := protoconnect.NewLedgerServiceClient(http.DefaultClient, url)
	ctx := context.Background()

	if _, err := client.GetGroup(ctx, connect.NewRequest(&pb.GetGroupRequest{})); err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if _, err := client.GetBalances(ctx, connect.NewRequest(&pb.GetBalancesRequest{})); err == nil {
		t.Fatal("expected GetBalances to be unimplemented")
	}

	obs.mu.Lock()
	defer obs.mu.Unlock()
	if got := obs.codes[protoconnect.LedgerServiceGetGroupProcedure]; got != "ok" {
		t.Errorf("GetGroup: expected code ok, got %q", got)
	}
	if got := obs.codes[protoconnect.LedgerServiceGetBalancesProcedure]; got != connect.CodeUnimplemented.String() {
		t.Errorf("GetBalances: expected code %q, got %q", connect.CodeUnimplemented.String(), got)
	}
}

func TestIsServerFault(t *testing.T) {
	tests := []struct {
		code connect.Code
		want bool
	}{
		{connect.CodeInternal, true},
		{connect.CodeUnavailable, true},
		{connect.CodeDataLoss, true},
		{connect.CodeUnknown, true},
		{connect.CodeInvalidArgument, false},
		{connect.CodeNotFound, false},
		{connect.CodeFailedPrecondition, false},
		{connect.CodeUnauthenticated, false},
	}
	for _, tt := range tests {
		if got := isServerFault(tt.code); got != tt.want {
			t.Errorf("isServerFault(%v) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestMemberIDContext(t *testing.T) {
	ctx := context.Background()
	if got := GetMemberID(ctx); got != "" {
		t.Errorf("expected empty member, got %q", got)
	}
	if got := GetMemberID(WithMemberID(ctx, "bob")); got != "bob" {
		t.Errorf("expected bob, got %q", got)
	}
}
