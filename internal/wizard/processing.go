package wizard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/elaccess/internal/domain"
)

// process moves the progress bar to 100 in equal steps and then issues the
// receipt.
func (w *Wizard) process(ctx context.Context, gen uint64) {
	steps := int(w.cfg.ProcessingDuration / w.cfg.ProcessingTick)
	if steps < 1 {
		steps = 1
	}

	ticker := time.NewTicker(w.cfg.ProcessingTick)
	defer ticker.Stop()

	for step := 1; step <= steps; step++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if !w.advance(gen, step*100/steps) {
			return
		}
	}
}

// advance records progress and reports whether processing should go on.
func (w *Wizard) advance(gen uint64, progress int) bool {
	w.mu.Lock()
	if gen != w.gen || w.closed || !w.session.Processing {
		w.mu.Unlock()
		return false
	}
	if progress > w.session.Progress {
		w.session.Progress = progress
	}
	if w.session.Progress < 100 {
		w.mu.Unlock()
		return true
	}

	receipt, err := w.issueReceiptLocked()
	onComplete := w.onComplete
	w.mu.Unlock()

	if err != nil {
		zap.L().Error("can't issue receipt", zap.Error(err))
		return false
	}
	zap.L().Info("receipt issued",
		zap.String("receipt_id", receipt.ID),
		zap.String("user_id", receipt.UserID),
		zap.String("item", receipt.Item),
	)
	if onComplete != nil {
		onComplete(receipt)
	}
	return false
}

func (w *Wizard) issueReceiptLocked() (domain.Receipt, error) {
	w.session.Processing = false
	if w.cancelProcessing != nil {
		w.cancelProcessing()
		w.cancelProcessing = nil
	}

	offering, err := w.catalog.Resolve(w.draft.Selection)
	if err != nil {
		w.cancelScheduledLocked()
		w.session.Progress = 0
		w.session.TimerStarted = false
		w.notice = NoticeOfferingUnavailable
		return domain.Receipt{}, err
	}

	receipt := domain.Receipt{
		ID:            w.ids.ReceiptID(),
		TransactionID: w.ids.TransactionID(),
		UserID:        w.session.UserID,
		CreatedAt:     w.now(),
		CustomerName:  w.draft.FullName,
		CustomerEmail: w.draft.Email,
		CustomerPhone: w.draft.Phone,
		Item:          offering.Name,
		Amount:        offering.Price,
		PaymentMethod: w.draft.PaymentMethod,
		Status:        domain.ReceiptStatusCompleted,
	}
	w.receipt = &receipt
	w.step = domain.StepConfirmation
	return receipt, nil
}
