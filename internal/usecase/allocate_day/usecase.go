package allocate_day

import (
	"context"
	"fmt"
	"time"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/timegrid"
)

// UseCase генерация и распределение слотов дня между участниками команды
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

// Execute генерирует сетку слотов на дату и распределяет их блоками между
// участниками. Существующие слоты даты заменяются целиком. Если участников
// нет, день остается нетронутым
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AllocateDay: date=%s", req.Date)

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		uc.logger.Warn("AllocateDay: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidDate, req.Date)
	}

	template, err := timegrid.GenerateTemplate(uc.grid)
	if err != nil {
		uc.logger.Error("AllocateDay: invalid grid config: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidGrid, err)
	}

	members, err := uc.memberRepo.List(ctx)
	if err != nil {
		uc.logger.Error("AllocateDay: failed to list members: %v", err)
		return nil, fmt.Errorf("%w: failed to list members: %v", ErrInternal, err)
	}

	if len(members) == 0 {
		uc.logger.Warn("AllocateDay: no team members, date %s left untouched", req.Date)
		return fromDomain(req.Date, 0, nil), nil
	}

	slots := timegrid.Allocate(req.Date, template, members)

	rows := make([]*domain.TimeSlot, 0, len(slots))
	for i := range slots {
		rows = append(rows, &slots[i])
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return uc.slotRepo.ReplaceForDate(txCtx, req.Date, rows)
	})
	if err != nil {
		uc.logger.Error("AllocateDay: failed to replace slots for date %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to store slots: %v", ErrInternal, err)
	}

	uc.logger.Info("AllocateDay: date=%s, slots=%d, members=%d", req.Date, len(slots), len(members))

	return fromDomain(req.Date, len(members), slots), nil
}
