package transport

import (
	"time"

	"github.com/solopool-hq/payouts-backend/internal/ledger"
	"github.com/solopool-hq/payouts-backend/internal/model"
)

// Amounts serialize as strings so clients never parse money as floats.

type statsResponse struct {
	Coin            string `json:"coin"`
	Miners          int64  `json:"miners"`
	PendingTotal    string `json:"pending_total"`
	PaidTotal       string `json:"paid_total"`
	BlocksFound     int64  `json:"blocks_found"`
	LastBlockHeight int64  `json:"last_block_height"`
}

func statsResponseFrom(s *ledger.CoinStats) statsResponse {
	return statsResponse{
		Coin:            s.Coin.String(),
		Miners:          s.Miners,
		PendingTotal:    s.PendingTotal.String(),
		PaidTotal:       s.PaidTotal.String(),
		BlocksFound:     s.BlocksFound,
		LastBlockHeight: s.LastBlockHeight,
	}
}

type paymentResponse struct {
	ID           string     `json:"id"`
	Amount       string     `json:"amount"`
	TxHash       *string    `json:"tx_hash,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
}

func paymentsResponseFrom(payments []model.Payment) []paymentResponse {
	out := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, paymentResponse{
			ID:           p.ID,
			Amount:       p.Amount.String(),
			TxHash:       p.TxHash,
			Status:       p.Status.String(),
			CreatedAt:    p.CreatedAt,
			ConfirmedAt:  p.ConfirmedAt,
			ErrorMessage: p.ErrorMessage,
		})
	}
	return out
}

type minerResponse struct {
	WalletAddress  string            `json:"wallet_address"`
	Coin           string            `json:"coin"`
	PendingBalance string            `json:"pending_balance"`
	TotalPaid      string            `json:"total_paid"`
	TotalShares    int64             `json:"total_shares"`
	LastShare      *time.Time        `json:"last_share,omitempty"`
	LastPayment    *time.Time        `json:"last_payment,omitempty"`
	Payments       []paymentResponse `json:"payments"`
}

func minerResponseFrom(b *model.MinerBalance, payments []model.Payment) minerResponse {
	return minerResponse{
		WalletAddress:  b.WalletAddress,
		Coin:           b.Coin.String(),
		PendingBalance: b.PendingBalance.String(),
		TotalPaid:      b.TotalPaid.String(),
		TotalShares:    b.TotalShares,
		LastShare:      b.LastShare,
		LastPayment:    b.LastPayment,
		Payments:       paymentsResponseFrom(payments),
	}
}
