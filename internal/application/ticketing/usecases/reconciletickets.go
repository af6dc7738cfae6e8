package usecases

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"slidebridge/internal/domain/alert"
	"slidebridge/internal/domain/ticketlink"
	"slidebridge/internal/shared/logger"
)

type ReconcileResult struct {
	Checked   int `json:"checked"`
	Updated   int `json:"updated"`
	Errored   int `json:"errored"`
	NeedsSync int `json:"needsSync"`
}

// ReconcileTicketsUseCase polls ConnectWise for every open ticket link and
// refreshes the cached remote status. It only ever flags drift: a remotely
// closed ticket marks the link needsSync, and closing the local side stays
// an explicit operator action. One bad ticket never aborts the run; its link
// is marked errored and the sweep continues.
type ReconcileTicketsUseCase struct {
	linkRepo      ticketlink.Repository
	alertRepo     alert.Repository
	tickets       TicketGateway
	notifier      DriftNotifier
	concurrency   int
	ticketTimeout time.Duration
	logger        logger.Interface
}

func NewReconcileTicketsUseCase(
	linkRepo ticketlink.Repository,
	alertRepo alert.Repository,
	tickets TicketGateway,
	notifier DriftNotifier,
	concurrency int,
	ticketTimeout time.Duration,
	logger logger.Interface,
) *ReconcileTicketsUseCase {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &ReconcileTicketsUseCase{
		linkRepo:      linkRepo,
		alertRepo:     alertRepo,
		tickets:       tickets,
		notifier:      notifier,
		concurrency:   concurrency,
		ticketTimeout: ticketTimeout,
		logger:        logger,
	}
}

func (uc *ReconcileTicketsUseCase) Execute(ctx context.Context) (*ReconcileResult, error) {
	links, err := uc.linkRepo.ListOpen(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list open ticket links", "error", err)
		return nil, err
	}

	result := &ReconcileResult{Checked: len(links)}
	var mu sync.Mutex
	var newlyDrifted []DriftedLink

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(uc.concurrency)

	for _, link := range links {
		group.Go(func() error {
			drifted, updated, errored := uc.reconcileOne(groupCtx, link)

			mu.Lock()
			defer mu.Unlock()
			if updated {
				result.Updated++
				// Drift is counted from successfully refreshed links only;
				// a flag merely carried over on an errored poll is stale.
				if link.NeedsSync() {
					result.NeedsSync++
				}
			}
			if errored {
				result.Errored++
			}
			if drifted != nil {
				newlyDrifted = append(newlyDrifted, *drifted)
			}
			return nil
		})
	}

	// Workers never return errors; per-ticket failures are folded into the
	// summary instead.
	_ = group.Wait()

	if ctx.Err() != nil {
		return result, ctx.Err()
	}

	uc.notifyDrift(newlyDrifted)

	uc.logger.Infow("reconciliation completed",
		"checked", result.Checked,
		"updated", result.Updated,
		"errored", result.Errored,
		"needs_sync", result.NeedsSync,
	)

	return result, nil
}

// reconcileOne polls one ticket and persists the refreshed link. It reports
// whether the link newly drifted, whether it was updated, and whether the
// poll errored.
func (uc *ReconcileTicketsUseCase) reconcileOne(ctx context.Context, link *ticketlink.TicketLink) (*DriftedLink, bool, bool) {
	pollCtx := ctx
	if uc.ticketTimeout > 0 {
		var cancel context.CancelFunc
		pollCtx, cancel = context.WithTimeout(ctx, uc.ticketTimeout)
		defer cancel()
	}

	now := time.Now()
	wasNeedsSync := link.NeedsSync()

	remote, err := uc.tickets.GetTicket(pollCtx, link.TicketID())
	if err != nil {
		uc.logger.Warnw("failed to poll ticket status",
			"ticket_id", link.TicketID(),
			"alert_id", link.AlertID(),
			"error", err,
		)
		link.MarkStatusError(now)
		if err := uc.linkRepo.RefreshRemoteStatus(ctx, link); err != nil {
			if errors.Is(err, ticketlink.ErrLinkAlreadyClosed) {
				uc.logger.Debugw("link closed during reconciliation, skipping", "alert_id", link.AlertID())
				return nil, false, false
			}
			uc.logger.Errorw("failed to persist status error", "alert_id", link.AlertID(), "error", err)
		}
		return nil, false, true
	}

	link.ApplyRemoteStatus(remote.StatusName, remote.Closed, remote.ClosedFlag, now)

	// The write is scoped to the cached remote fields. An operator may have
	// closed the link while GetTicket was in flight; that close must survive
	// this pass, so a concurrently closed link is dropped from the summary.
	if err := uc.linkRepo.RefreshRemoteStatus(ctx, link); err != nil {
		if errors.Is(err, ticketlink.ErrLinkAlreadyClosed) {
			uc.logger.Debugw("link closed during reconciliation, skipping", "alert_id", link.AlertID())
			return nil, false, false
		}
		uc.logger.Errorw("failed to persist reconciled link", "alert_id", link.AlertID(), "error", err)
		return nil, false, true
	}

	if link.NeedsSync() && !wasNeedsSync {
		clientName, alertType := uc.alertInfo(ctx, link.AlertID())
		return &DriftedLink{
			AlertID:      link.AlertID(),
			TicketID:     link.TicketID(),
			TicketStatus: remote.StatusName,
			ClientName:   clientName,
			AlertType:    alertType,
		}, true, false
	}

	return nil, true, false
}

func (uc *ReconcileTicketsUseCase) notifyDrift(items []DriftedLink) {
	if len(items) == 0 || uc.notifier == nil || !uc.notifier.Enabled() {
		return
	}
	if err := uc.notifier.NotifyDrift(items); err != nil {
		uc.logger.Warnw("failed to send drift notification", "count", len(items), "error", err)
	}
}

func (uc *ReconcileTicketsUseCase) alertInfo(ctx context.Context, alertID string) (clientName, alertType string) {
	entity, err := uc.alertRepo.FindByID(ctx, alertID)
	if err != nil {
		return "", ""
	}
	return entity.ClientName(), entity.Type()
}
