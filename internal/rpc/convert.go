package rpc

import (
	"github.com/mmynk/yardsale/internal/service"
	"github.com/mmynk/yardsale/internal/session"
	pb "github.com/mmynk/yardsale/pkg/proto"
)

func toProtoView(v session.View) *pb.View {
	out := &pb.View{
		Screen:         string(v.Screen),
		Status:         v.Status,
		Sellers:        make([]*pb.Seller, 0, len(v.Sellers)),
		QuickItems:     make([]*pb.QuickItem, 0, len(v.QuickItems)),
		SoldItems:      make([]*pb.SoldItem, 0, len(v.SoldItems)),
		Totals:         make([]*pb.SellerTotal, 0, len(v.Totals)),
		GrandTotal:     toProtoAmount(v.GrandTotal),
		FilterSellerId: v.Filter,
		Export:         v.Export,
		Pasting:        v.Pasting,
	}
	for _, s := range v.Sellers {
		out.Sellers = append(out.Sellers, &pb.Seller{Id: s.ID, Name: s.Name})
	}
	for _, item := range v.QuickItems {
		out.QuickItems = append(out.QuickItems, &pb.QuickItem{
			Id:         item.ID,
			Name:       item.Name,
			Amount:     item.Amount,
			SellerId:   item.SellerID,
			SellerName: item.SellerName,
			Display:    item.Display,
		})
	}
	for _, item := range v.SoldItems {
		out.SoldItems = append(out.SoldItems, &pb.SoldItem{
			Id:         item.ID,
			Name:       item.Name,
			Amount:     item.Amount,
			SellerId:   item.SellerID,
			Timestamp:  item.Timestamp,
			SellerName: item.SellerName,
			Display:    item.Display,
		})
	}
	for _, t := range v.Totals {
		out.Totals = append(out.Totals, &pb.SellerTotal{
			SellerId: t.SellerID,
			Name:     t.Name,
			Items:    int32(t.Items),
			Total:    toProtoAmount(t.Total),
		})
	}
	if c := v.Checkout; c != nil {
		checkout := &pb.Checkout{
			SelectedSellerId: c.SelectedSeller,
			ItemName:         c.ItemName,
			Lines:            make([]*pb.LineItem, 0, len(c.Lines)),
			Total:            toProtoAmount(c.Total),
			QuickAmounts:     c.QuickAmounts,
		}
		for _, line := range c.Lines {
			checkout.Lines = append(checkout.Lines, &pb.LineItem{
				Id:         line.ID,
				Name:       line.Name,
				Amount:     line.Amount,
				SellerId:   line.SellerID,
				SellerName: line.SellerName,
				Display:    line.Display,
			})
		}
		out.Checkout = checkout
	}
	for _, e := range v.Edits {
		out.Edits = append(out.Edits, &pb.Edit{Kind: string(e.Kind), Id: e.ID, Draft: toProtoDraft(e.Draft)})
	}
	if v.Prefill != nil {
		out.Prefill = toProtoDraft(*v.Prefill)
	}
	return out
}

func toProtoAmount(a session.Amount) *pb.Amount {
	return &pb.Amount{Value: a.Value, Display: a.Display}
}

func toProtoDraft(d service.ItemDraft) *pb.ItemDraft {
	return &pb.ItemDraft{Name: d.Name, Amount: d.Amount, SellerId: d.SellerID}
}
