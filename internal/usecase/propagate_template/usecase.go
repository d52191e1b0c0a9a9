package propagate_template

import (
	"context"
	"fmt"
	"time"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/timegrid"
)

// UseCase распространение расписания дня-источника на другие даты
type UseCase struct {
	memberRepo MemberRepository
	slotRepo   SlotRepository
	txManager  TransactionManager
	grid       timegrid.Config
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	members MemberRepository,
	slots SlotRepository,
	txManager TransactionManager,
	grid timegrid.Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		memberRepo: members,
		slotRepo:   slots,
		txManager:  txManager,
		grid:       grid,
		logger:     logger,
	}
}

// Execute применяет расписание даты-источника к целевым датам. Для каждой
// цели строится свежая сетка с распределением по участникам, затем статус
// доступности переносится позиционно: слот i цели получает доступность
// слота i источника (по возрастанию времени начала). Позиции за пределами
// источника остаются свободными. Все целевые даты заменяются в одной
// транзакции. Цели, совпадающие с источником, пропускаются без ошибки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PropagateTemplate: source=%s, targets=%d", req.SourceDate, len(req.TargetDates))

	if _, err := time.Parse(domain.DateFormat, req.SourceDate); err != nil {
		uc.logger.Warn("PropagateTemplate: invalid source date %q: %v", req.SourceDate, err)
		return nil, fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidDate, req.SourceDate)
	}

	targets := make([]string, 0, len(req.TargetDates))
	skipped := make([]string, 0)
	for _, date := range req.TargetDates {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			uc.logger.Warn("PropagateTemplate: invalid target date %q: %v", date, err)
			return nil, fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidDate, date)
		}
		if date == req.SourceDate {
			skipped = append(skipped, date)
			continue
		}
		targets = append(targets, date)
	}

	if len(targets) == 0 {
		uc.logger.Warn("PropagateTemplate: nothing to do, all targets match the source")
		return nil, ErrNoTargets
	}

	template, err := timegrid.GenerateTemplate(uc.grid)
	if err != nil {
		uc.logger.Error("PropagateTemplate: invalid grid config: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidGrid, err)
	}

	members, err := uc.memberRepo.List(ctx)
	if err != nil {
		uc.logger.Error("PropagateTemplate: failed to list members: %v", err)
		return nil, fmt.Errorf("%w: failed to list members: %v", ErrInternal, err)
	}

	var slotsPerTarget int

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		source, err := uc.slotRepo.GetByDate(txCtx, req.SourceDate, false)
		if err != nil {
			uc.logger.Error("PropagateTemplate: failed to load source date %s: %v", req.SourceDate, err)
			return fmt.Errorf("%w: failed to load source slots: %v", ErrInternal, err)
		}

		for _, target := range targets {
			slots := timegrid.Allocate(target, template, members)

			// Позиционный перенос доступности из источника
			for i := range slots {
				if i < len(source) {
					slots[i].Available = source[i].Available
				}
			}

			rows := make([]*domain.TimeSlot, 0, len(slots))
			for i := range slots {
				rows = append(rows, &slots[i])
			}

			if err := uc.slotRepo.ReplaceForDate(txCtx, target, rows); err != nil {
				uc.logger.Error("PropagateTemplate: failed to replace slots for date %s: %v", target, err)
				return fmt.Errorf("%w: failed to store slots for %s: %v", ErrInternal, target, err)
			}

			slotsPerTarget = len(rows)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("PropagateTemplate: source=%s applied to %d dates (%d skipped)",
		req.SourceDate, len(targets), len(skipped))

	return &Response{
		SourceDate:     req.SourceDate,
		AppliedDates:   targets,
		SkippedDates:   skipped,
		SlotsPerTarget: slotsPerTarget,
	}, nil
}
