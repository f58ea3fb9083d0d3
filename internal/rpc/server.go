// Package rpc serves the session as the connect YardSaleService. Every
// procedure answers with the fresh session View.
package rpc

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/yardsale/internal/service"
	"github.com/mmynk/yardsale/internal/session"
	pb "github.com/mmynk/yardsale/pkg/proto"
	"github.com/mmynk/yardsale/pkg/proto/protoconnect"
)

// Server implements the Connect YardSaleService over a Session.
type Server struct {
	protoconnect.UnimplementedYardSaleServiceHandler
	session *session.Session
}

// NewServer creates a Server for s.
func NewServer(s *session.Session) *Server {
	return &Server{session: s}
}

// respond answers a call with the fresh View. A failed call answers with the
// mapped connect error and the client reads the View, status message
// included, with GetView.
func (s *Server) respond(err error) (*connect.Response[pb.ViewResponse], error) {
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.ViewResponse{View: toProtoView(s.session.View())}), nil
}

func (s *Server) GetView(ctx context.Context, req *connect.Request[pb.EmptyRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(nil)
}

// Settings

func (s *Server) AddSeller(ctx context.Context, req *connect.Request[pb.NameRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.AddSeller(ctx, req.Msg.GetName()))
}

func (s *Server) DeleteSeller(ctx context.Context, req *connect.Request[pb.DeleteRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.DeleteSeller(ctx, req.Msg.GetId(), req.Msg.GetConfirmed()))
}

func (s *Server) AddQuickItem(ctx context.Context, req *connect.Request[pb.QuickItemRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.AddQuickItem(ctx, req.Msg.GetName(), req.Msg.GetAmount(), req.Msg.GetSellerId()))
}

func (s *Server) DeleteQuickItem(ctx context.Context, req *connect.Request[pb.DeleteRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.DeleteQuickItem(ctx, req.Msg.GetId(), req.Msg.GetConfirmed()))
}

// Home

func (s *Server) DeleteSoldItem(ctx context.Context, req *connect.Request[pb.IdRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.DeleteSoldItem(ctx, req.Msg.GetId()))
}

func (s *Server) QuickItemFromSoldItem(ctx context.Context, req *connect.Request[pb.IdRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.QuickItemFromSoldItem(req.Msg.GetId()))
}

func (s *Server) ToggleFilter(ctx context.Context, req *connect.Request[pb.IdRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.ToggleFilter(req.Msg.GetId()))
}

// Edits

func (s *Server) BeginEdit(ctx context.Context, req *connect.Request[pb.EditRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.BeginEdit(session.EditKind(req.Msg.GetKind()), req.Msg.GetId()))
}

func (s *Server) UpdateDraft(ctx context.Context, req *connect.Request[pb.EditRequest]) (*connect.Response[pb.ViewResponse], error) {
	d := req.Msg.GetDraft()
	draft := service.ItemDraft{Name: d.GetName(), Amount: d.GetAmount(), SellerID: d.GetSellerId()}
	return s.respond(s.session.UpdateDraft(session.EditKind(req.Msg.GetKind()), draft))
}

func (s *Server) SaveEdit(ctx context.Context, req *connect.Request[pb.EditRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.SaveEdit(ctx, session.EditKind(req.Msg.GetKind())))
}

func (s *Server) CancelEdit(ctx context.Context, req *connect.Request[pb.EditRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.CancelEdit(session.EditKind(req.Msg.GetKind())))
}

// Navigation

func (s *Server) OpenSettings(ctx context.Context, req *connect.Request[pb.EmptyRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.OpenSettings())
}

func (s *Server) Back(ctx context.Context, req *connect.Request[pb.EmptyRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.Back())
}

func (s *Server) StartTransaction(ctx context.Context, req *connect.Request[pb.EmptyRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.StartTransaction())
}

func (s *Server) GoHome(ctx context.Context, req *connect.Request[pb.EmptyRequest]) (*connect.Response[pb.ViewResponse], error) {
	s.session.GoHome()
	return s.respond(nil)
}

// Transaction

func (s *Server) SelectSeller(ctx context.Context, req *connect.Request[pb.IdRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.SelectSeller(req.Msg.GetId()))
}

func (s *Server) SetItemName(ctx context.Context, req *connect.Request[pb.NameRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.SetItemName(req.Msg.GetName()))
}

func (s *Server) AddAmount(ctx context.Context, req *connect.Request[pb.AmountRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.AddAmount(req.Msg.GetAmount()))
}

func (s *Server) AddQuickItemLine(ctx context.Context, req *connect.Request[pb.IdRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.AddQuickItemLine(req.Msg.GetId()))
}

func (s *Server) RemoveLine(ctx context.Context, req *connect.Request[pb.IdRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.RemoveLine(req.Msg.GetId()))
}

func (s *Server) Confirm(ctx context.Context, req *connect.Request[pb.EmptyRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.Confirm(ctx))
}

func (s *Server) Cancel(ctx context.Context, req *connect.Request[pb.ConfirmRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.Cancel(ctx, req.Msg.GetConfirmed()))
}

// Persistence

func (s *Server) Save(ctx context.Context, req *connect.Request[pb.EmptyRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.Save(ctx))
}

func (s *Server) Load(ctx context.Context, req *connect.Request[pb.EmptyRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.Load(ctx))
}

func (s *Server) SubmitPaste(ctx context.Context, req *connect.Request[pb.PasteRequest]) (*connect.Response[pb.ViewResponse], error) {
	return s.respond(s.session.SubmitPaste(ctx, req.Msg.GetText()))
}

func (s *Server) CloseModals(ctx context.Context, req *connect.Request[pb.EmptyRequest]) (*connect.Response[pb.ViewResponse], error) {
	s.session.CloseModals()
	return s.respond(nil)
}
