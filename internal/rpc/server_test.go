package rpc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/yardsale/internal/middleware"
	"github.com/mmynk/yardsale/internal/models"
	"github.com/mmynk/yardsale/internal/nav"
	"github.com/mmynk/yardsale/internal/session"
	"github.com/mmynk/yardsale/internal/state"
	"github.com/mmynk/yardsale/internal/storage"
	"github.com/mmynk/yardsale/internal/storage/memory"
	pb "github.com/mmynk/yardsale/pkg/proto"
	"github.com/mmynk/yardsale/pkg/proto/protoconnect"
)

// setupTestServer serves a session seeded with ds and returns a client for it
func setupTestServer(t *testing.T, ds models.Dataset, opts ...connect.ClientOption) (protoconnect.YardSaleServiceClient, func()) {
	t.Helper()
	ctx := context.Background()

	store := memory.New()
	if err := store.Write(ctx, &ds, storage.AllSlots...); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	c, err := state.Open(ctx, store)
	if err != nil {
		t.Fatalf("failed to open state: %v", err)
	}

	path, handler := protoconnect.NewYardSaleServiceHandler(NewServer(session.New(c, session.Options{})),
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)

	client := protoconnect.NewYardSaleServiceClient(
		http.DefaultClient,
		server.URL,
		opts...,
	)

	cleanup := func() {
		server.Close()
		store.Close()
	}
	return client, cleanup
}

func TestSaleOverRPC(t *testing.T) {
	client, cleanup := setupTestServer(t, models.Dataset{})
	defer cleanup()
	ctx := context.Background()

	resp, err := client.GetView(ctx, connect.NewRequest(&pb.EmptyRequest{}))
	if err != nil {
		t.Fatalf("GetView failed: %v", err)
	}
	if resp.Msg.View.Screen != string(nav.Settings) {
		t.Errorf("screen: expected '%s', got '%s'", nav.Settings, resp.Msg.View.Screen)
	}

	resp, err = client.AddSeller(ctx, connect.NewRequest(&pb.NameRequest{Name: "Alice"}))
	if err != nil {
		t.Fatalf("AddSeller failed: %v", err)
	}
	if len(resp.Msg.View.Sellers) != 1 {
		t.Fatalf("sellers: expected 1, got %d", len(resp.Msg.View.Sellers))
	}
	sellerID := resp.Msg.View.Sellers[0].Id

	if _, err := client.Back(ctx, connect.NewRequest(&pb.EmptyRequest{})); err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	resp, err = client.StartTransaction(ctx, connect.NewRequest(&pb.EmptyRequest{}))
	if err != nil {
		t.Fatalf("StartTransaction failed: %v", err)
	}
	if resp.Msg.View.Checkout == nil {
		t.Fatal("expected checkout on the transaction screen")
	}
	if len(resp.Msg.View.Checkout.QuickAmounts) == 0 {
		t.Error("expected quick amounts in checkout")
	}

	if _, err := client.SelectSeller(ctx, connect.NewRequest(&pb.IdRequest{Id: sellerID})); err != nil {
		t.Fatalf("SelectSeller failed: %v", err)
	}
	if _, err := client.SetItemName(ctx, connect.NewRequest(&pb.NameRequest{Name: "Mug"})); err != nil {
		t.Fatalf("SetItemName failed: %v", err)
	}
	resp, err = client.AddAmount(ctx, connect.NewRequest(&pb.AmountRequest{Amount: "2.5"}))
	if err != nil {
		t.Fatalf("AddAmount failed: %v", err)
	}
	lines := resp.Msg.View.Checkout.Lines
	if len(lines) != 1 {
		t.Fatalf("lines: expected 1, got %d", len(lines))
	}
	if lines[0].Name != "Mug" {
		t.Errorf("line name: expected 'Mug', got '%s'", lines[0].Name)
	}

	resp, err = client.Confirm(ctx, connect.NewRequest(&pb.EmptyRequest{}))
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	view := resp.Msg.View
	if view.Screen != string(nav.Home) {
		t.Errorf("screen: expected '%s', got '%s'", nav.Home, view.Screen)
	}
	if view.Status != session.StatusPurchaseConfirmed {
		t.Errorf("status: expected '%s', got '%s'", session.StatusPurchaseConfirmed, view.Status)
	}
	if view.Checkout != nil {
		t.Error("expected no checkout on Home")
	}
	if len(view.SoldItems) != 1 {
		t.Fatalf("sold items: expected 1, got %d", len(view.SoldItems))
	}
	if view.SoldItems[0].Amount != 2.5 {
		t.Errorf("amount: expected 2.5, got %v", view.SoldItems[0].Amount)
	}
	if view.SoldItems[0].SellerName != "Alice" {
		t.Errorf("seller name: expected 'Alice', got '%s'", view.SoldItems[0].SellerName)
	}
	if view.GetGrandTotal().GetValue() != 2.5 {
		t.Errorf("grand total: expected 2.5, got %v", view.GetGrandTotal().GetValue())
	}
}

func TestErrorCodes(t *testing.T) {
	ds := models.Dataset{
		Sellers:   []models.Seller{{ID: "s1", Name: "Alice"}},
		SoldItems: []models.SoldItem{{ID: "x1", Amount: 1, SellerID: "s1", Timestamp: 1}},
	}
	client, cleanup := setupTestServer(t, ds)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		code connect.Code
	}{
		{"blank seller name", func() error {
			_, err := client.AddSeller(ctx, connect.NewRequest(&pb.NameRequest{Name: "  "}))
			return err
		}, connect.CodeInvalidArgument},
		{"seller with sales", func() error {
			_, err := client.DeleteSeller(ctx, connect.NewRequest(&pb.DeleteRequest{Id: "s1", Confirmed: true}))
			return err
		}, connect.CodeFailedPrecondition},
		{"unknown sold item", func() error {
			_, err := client.DeleteSoldItem(ctx, connect.NewRequest(&pb.IdRequest{Id: "missing"}))
			return err
		}, connect.CodeNotFound},
		{"back from home", func() error {
			_, err := client.Back(ctx, connect.NewRequest(&pb.EmptyRequest{}))
			return err
		}, connect.CodeFailedPrecondition},
		{"amount from home", func() error {
			_, err := client.AddAmount(ctx, connect.NewRequest(&pb.AmountRequest{Amount: "5"}))
			return err
		}, connect.CodeFailedPrecondition},
		{"confirm from home", func() error {
			_, err := client.Confirm(ctx, connect.NewRequest(&pb.EmptyRequest{}))
			return err
		}, connect.CodeFailedPrecondition},
		{"malformed paste", func() error {
			_, err := client.SubmitPaste(ctx, connect.NewRequest(&pb.PasteRequest{Text: "{"}))
			return err
		}, connect.CodeInvalidArgument},
		{"save without edit", func() error {
			_, err := client.SaveEdit(ctx, connect.NewRequest(&pb.EditRequest{Kind: string(session.EditSeller)}))
			return err
		}, connect.CodeFailedPrecondition},
		{"unknown edit kind", func() error {
			_, err := client.BeginEdit(ctx, connect.NewRequest(&pb.EditRequest{Kind: "widget", Id: "s1"}))
			return err
		}, connect.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if code := connect.CodeOf(err); code != tt.code {
				t.Errorf("expected %v, got %v", tt.code, code)
			}
		})
	}

	resp, err := client.GetView(ctx, connect.NewRequest(&pb.EmptyRequest{}))
	if err != nil {
		t.Fatalf("GetView failed: %v", err)
	}
	if len(resp.Msg.View.Sellers) != 1 {
		t.Errorf("sellers: expected 1 after failed calls, got %d", len(resp.Msg.View.Sellers))
	}
	if len(resp.Msg.View.SoldItems) != 1 {
		t.Errorf("sold items: expected 1 after failed calls, got %d", len(resp.Msg.View.SoldItems))
	}
}

func TestSaveAndPasteOverRPC(t *testing.T) {
	client, cleanup := setupTestServer(t, models.Dataset{
		Sellers: []models.Seller{{ID: "s1", Name: "Alice"}},
	})
	defer cleanup()
	ctx := context.Background()

	resp, err := client.Save(ctx, connect.NewRequest(&pb.EmptyRequest{}))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if resp.Msg.View.Status != session.StatusSaveToModal {
		t.Errorf("status: expected '%s', got '%s'", session.StatusSaveToModal, resp.Msg.View.Status)
	}
	if !strings.Contains(resp.Msg.View.Export, `"sellers": [`) {
		t.Errorf("expected exported JSON with sellers, got %q", resp.Msg.View.Export)
	}

	resp, err = client.Load(ctx, connect.NewRequest(&pb.EmptyRequest{}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !resp.Msg.View.Pasting {
		t.Error("expected paste modal to be open")
	}

	resp, err = client.SubmitPaste(ctx, connect.NewRequest(&pb.PasteRequest{
		Text: `{"sellers":[{"id":"b1","name":"Bob"}],"quickItems":[],"soldItems":[]}`,
	}))
	if err != nil {
		t.Fatalf("SubmitPaste failed: %v", err)
	}
	view := resp.Msg.View
	if view.Pasting {
		t.Error("expected paste modal to be closed")
	}
	if len(view.Sellers) != 1 || view.Sellers[0].Id != "b1" || view.Sellers[0].Name != "Bob" {
		t.Errorf("sellers: expected [b1 Bob], got %v", view.Sellers)
	}
}

func TestEditOverRPC(t *testing.T) {
	client, cleanup := setupTestServer(t, models.Dataset{
		Sellers: []models.Seller{{ID: "s1", Name: "Alice"}},
	})
	defer cleanup()
	ctx := context.Background()

	if _, err := client.AddQuickItem(ctx, connect.NewRequest(&pb.QuickItemRequest{Name: "Book", Amount: "1", SellerId: "s1"})); err != nil {
		t.Fatalf("AddQuickItem failed: %v", err)
	}

	resp, err := client.BeginEdit(ctx, connect.NewRequest(&pb.EditRequest{Kind: string(session.EditSeller), Id: "s1"}))
	if err != nil {
		t.Fatalf("BeginEdit failed: %v", err)
	}
	if len(resp.Msg.View.Edits) != 1 {
		t.Fatalf("edits: expected 1, got %d", len(resp.Msg.View.Edits))
	}
	if got := resp.Msg.View.Edits[0].GetDraft().GetName(); got != "Alice" {
		t.Errorf("draft name: expected 'Alice', got '%s'", got)
	}

	if _, err := client.UpdateDraft(ctx, connect.NewRequest(&pb.EditRequest{
		Kind:  string(session.EditSeller),
		Draft: &pb.ItemDraft{Name: "Alicia"},
	})); err != nil {
		t.Fatalf("UpdateDraft failed: %v", err)
	}
	resp, err = client.SaveEdit(ctx, connect.NewRequest(&pb.EditRequest{Kind: string(session.EditSeller)}))
	if err != nil {
		t.Fatalf("SaveEdit failed: %v", err)
	}
	view := resp.Msg.View
	if len(view.Edits) != 0 {
		t.Errorf("edits: expected 0, got %d", len(view.Edits))
	}
	if view.Sellers[0].Name != "Alicia" {
		t.Errorf("seller name: expected 'Alicia', got '%s'", view.Sellers[0].Name)
	}
	if len(view.QuickItems) != 1 || view.QuickItems[0].SellerName != "Alicia" {
		t.Errorf("quick items: expected one for Alicia, got %v", view.QuickItems)
	}
}

func TestJSONClient(t *testing.T) {
	client, cleanup := setupTestServer(t, models.Dataset{
		Sellers: []models.Seller{{ID: "s1", Name: "Alice"}},
	}, connect.WithProtoJSON())
	defer cleanup()
	ctx := context.Background()

	if _, err := client.StartTransaction(ctx, connect.NewRequest(&pb.EmptyRequest{})); err != nil {
		t.Fatalf("StartTransaction failed: %v", err)
	}
	if _, err := client.SelectSeller(ctx, connect.NewRequest(&pb.IdRequest{Id: "s1"})); err != nil {
		t.Fatalf("SelectSeller failed: %v", err)
	}
	resp, err := client.AddAmount(ctx, connect.NewRequest(&pb.AmountRequest{Amount: "0.25"}))
	if err != nil {
		t.Fatalf("AddAmount failed: %v", err)
	}
	total := resp.Msg.View.GetCheckout().GetTotal()
	if total.GetValue() != 0.25 {
		t.Errorf("total: expected 0.25, got %v", total.GetValue())
	}
	if total.GetDisplay() != "25¢" {
		t.Errorf("display: expected '25¢', got '%s'", total.GetDisplay())
	}
}

func TestToConnectError(t *testing.T) {
	tests := []struct {
		err  error
		code connect.Code
	}{
		{context.Canceled, connect.CodeCanceled},
		{errors.New("disk full"), connect.CodeInternal},
		{nav.ErrNoSellers, connect.CodeFailedPrecondition},
		{nav.ErrInvalidTransition, connect.CodeFailedPrecondition},
	}
	for _, tt := range tests {
		if code := connect.CodeOf(toConnectError(tt.err)); code != tt.code {
			t.Errorf("%v: expected %v, got %v", tt.err, tt.code, code)
		}
	}
}
