package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/internal/gateway/messaging"
	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/model/converter"
	"benerin-admin-service/src/internal/repository"
	httpError "benerin-admin-service/src/pkg/http-error"
	"benerin-admin-service/src/pkg/log"
	"benerin-admin-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

const (
	payoutPageSize = 20

	// TypeReconcilePayouts is the asynq task name of the ledger sweep.
	TypeReconcilePayouts = "payouts:reconcile"

	reconcileReportKey = "RECONCILE:PAYOUTS:LATEST"
	reconcileReportTTL = 48 * time.Hour

	payoutCurrency = "IDR"
)

type PayoutUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	PayoutRepository  *repository.PayoutRepository
	BalanceRepository *repository.BalanceRepository
	Redis             redis.UniversalClient
	PayoutProducer    *messaging.PayoutProducer
	Asynq             *asynq.Client
}

func NewPayoutUseCase(
	logger log.Log,
	validate *validator.Validate,
	payoutRepository *repository.PayoutRepository,
	balanceRepository *repository.BalanceRepository,
	redisClient redis.UniversalClient,
	payoutProducer *messaging.PayoutProducer,
	asynqClient *asynq.Client,
) *PayoutUseCase {
	return &PayoutUseCase{
		Log:               logger,
		Validate:          validate,
		PayoutRepository:  payoutRepository,
		BalanceRepository: balanceRepository,
		Redis:             redisClient,
		PayoutProducer:    payoutProducer,
		Asynq:             asynqClient,
	}
}

func (c *PayoutUseCase) List(ctx context.Context, request *model.PayoutListRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "List", utils.ConvertString(request))
		return result
	}

	parser := newFilterParser()
	filter := entity.PayoutFilter{
		Search:       request.Q,
		Status:       request.Status,
		TechnicianID: parser.Uint("technician_id", request.TechnicianID),
		DateFrom:     parser.Date("date_from", request.DateFrom),
		DateTo:       parser.DateEnd("date_to", request.DateTo),
		AmountMin:    parser.Decimal("amount_min", request.AmountMin),
		AmountMax:    parser.Decimal("amount_max", request.AmountMax),
	}
	if fields := parser.Err(); fields != nil {
		result.Error = httpError.NewUnprocessableEntity(fields)
		c.Log.Error("payout-usecase", "invalid filter values", "List", utils.ConvertString(fields))
		return result
	}

	page, size := utils.NormalizePage(request.Page, request.Size, payoutPageSize)
	rows, count, err := c.PayoutRepository.List(ctx, filter, size, utils.Offset(page, size))
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to list payouts"
		result.Error = errObj
		c.Log.Error("payout-usecase", fmt.Sprintf("List query failed: %v", err), "List", "")
		return result
	}

	items := make([]model.PayoutResponse, 0, len(rows))
	for i := range rows {
		items = append(items, converter.PayoutRowToResponse(&rows[i]))
	}

	result.Data = model.PayoutListResponse{
		Items:      items,
		Filters:    *request,
		Pagination: utils.NewPagination(page, size, count),
	}
	return result
}

// Detail returns the payout together with its ledger trail. A payout whose
// trail is missing is reported with an empty ledger array, not an error:
// spotting that gap is exactly what this endpoint is for.
func (c *PayoutUseCase) Detail(ctx context.Context, request *model.PayoutDetailRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "Detail", utils.ConvertString(request))
		return result
	}

	row, err := c.PayoutRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("payout %d not found", request.ID)
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "Detail", utils.ConvertString(err))
		return result
	}

	ref := entity.LedgerRef{Kind: entity.RefKindPayout, ID: row.ID}
	ledger, err := c.BalanceRepository.LedgerTrail(ctx, entity.RoleTeknisi, row.TechnicianID, entity.LedgerTypePayout, ref)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to load payout ledger trail"
		result.Error = errObj
		c.Log.Error("payout-usecase", fmt.Sprintf("LedgerTrail failed: %v", err), "Detail", "")
		return result
	}
	if ledger == nil {
		ledger = []entity.LedgerEntry{}
	}

	result.Data = model.PayoutDetailResponse{
		Payout: converter.PayoutRowToResponse(row),
		Ledger: ledger,
	}
	return result
}

// Approve marks a pending payout paid and writes the technician's debit
// ledger entry in the same transaction, so the books can never show a paid
// payout without its ledger row from this path.
func (c *PayoutUseCase) Approve(ctx context.Context, request *model.PayoutApproveRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "Approve", utils.ConvertString(request))
		return result
	}

	tx, err := c.PayoutRepository.BeginTx(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to open transaction"
		result.Error = errObj
		c.Log.Error("payout-usecase", fmt.Sprintf("BeginTx failed: %v", err), "Approve", "")
		return result
	}
	defer tx.Rollback()

	payout, err := c.PayoutRepository.LockPending(ctx, tx, request.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("payout %d not found", request.ID)
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to load payout"
		result.Error = errObj
		c.Log.Error("payout-usecase", fmt.Sprintf("LockPending failed: %v", err), "Approve", "")
		return result
	}

	if payout.Status != entity.PayoutStatusPending {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("payout %d is already %s", payout.ID, payout.Status)
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "Approve", "")
		return result
	}

	ok, err := c.PayoutRepository.MarkPaid(ctx, tx, payout.ID, request.Note)
	if err != nil || !ok {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to mark payout paid"
		result.Error = errObj
		c.Log.Error("payout-usecase", fmt.Sprintf("MarkPaid failed: ok=%v err=%v", ok, err), "Approve", "")
		return result
	}

	ref := entity.LedgerRef{Kind: entity.RefKindPayout, ID: payout.ID}
	refTable := ref.RefTable()
	note := fmt.Sprintf("payout #%d approved by admin %d", payout.ID, request.AdminID)
	entry := &entity.LedgerEntry{
		OwnerRole: entity.RoleTeknisi,
		OwnerID:   payout.TechnicianID,
		Amount:    payout.Amount.Neg(),
		Currency:  payoutCurrency,
		Type:      entity.LedgerTypePayout,
		RefTable:  &refTable,
		RefID:     &ref.ID,
		Note:      &note,
	}
	if err := c.BalanceRepository.InsertEntry(ctx, tx, entry); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to record ledger entry"
		result.Error = errObj
		c.Log.Error("payout-usecase", fmt.Sprintf("InsertEntry failed: %v", err), "Approve", "")
		return result
	}

	if err := tx.Commit(); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to commit payout approval"
		result.Error = errObj
		c.Log.Error("payout-usecase", fmt.Sprintf("Commit failed: %v", err), "Approve", "")
		return result
	}

	payout.Status = entity.PayoutStatusPaid
	now := time.Now()
	payout.PaidAt = &now

	c.publishStatus(payout)
	c.enqueueReconcile()

	result.Data = converter.PayoutToResponse(payout)
	return result
}

func (c *PayoutUseCase) Reject(ctx context.Context, request *model.PayoutRejectRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "Reject", utils.ConvertString(request))
		return result
	}

	row, err := c.PayoutRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("payout %d not found", request.ID)
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "Reject", utils.ConvertString(err))
		return result
	}

	ok, err := c.PayoutRepository.MarkRejected(ctx, request.ID, request.Note)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to reject payout"
		result.Error = errObj
		c.Log.Error("payout-usecase", fmt.Sprintf("MarkRejected failed: %v", err), "Reject", "")
		return result
	}
	if !ok {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("payout %d is already %s", row.ID, row.Status)
		result.Error = errObj
		c.Log.Error("payout-usecase", errObj.Message, "Reject", "")
		return result
	}

	payout := row.Payout
	payout.Status = entity.PayoutStatusRejected
	payout.Note = &request.Note

	c.publishStatus(&payout)

	result.Data = converter.PayoutToResponse(&payout)
	return result
}

func (c *PayoutUseCase) publishStatus(payout *entity.Payout) {
	if c.PayoutProducer == nil {
		return
	}
	event := converter.PayoutToStatusEvent(payout)
	if err := c.PayoutProducer.SendStatus(event); err != nil {
		// The DB write already committed; a lost event is log-only.
		c.Log.Error("payout-usecase", fmt.Sprintf("Failed publish payout status event: %v", err), "publishStatus", utils.ConvertString(event))
	}
}

// enqueueReconcile schedules an out-of-band sweep so the stored report
// reflects the change without waiting for the next interval.
func (c *PayoutUseCase) enqueueReconcile() {
	if c.Asynq == nil {
		return
	}
	if _, err := c.Asynq.Enqueue(asynq.NewTask(TypeReconcilePayouts, nil)); err != nil {
		c.Log.Error("payout-usecase", fmt.Sprintf("Failed to enqueue reconcile task: %v", err), "enqueueReconcile", "")
	}
}

// HandleReconcileTask is the asynq entry point of the ledger sweep.
func (c *PayoutUseCase) HandleReconcileTask(ctx context.Context, _ *asynq.Task) error {
	return c.Reconcile(ctx)
}

// Reconcile finds paid payouts without a matching ledger entry and stores
// the report where the admin endpoint can read it.
func (c *PayoutUseCase) Reconcile(ctx context.Context) error {
	mismatches, err := c.PayoutRepository.FindPaidWithoutLedger(ctx)
	if err != nil {
		c.Log.Error("payout-usecase", fmt.Sprintf("Reconcile sweep failed: %v", err), "Reconcile", "")
		return err
	}
	if mismatches == nil {
		mismatches = []entity.PayoutMismatch{}
	}

	report := model.PayoutReconcileReport{
		GeneratedAt: time.Now(),
		Mismatches:  mismatches,
	}
	c.Log.Info("payout-usecase", fmt.Sprintf("Reconcile sweep found %d mismatches", len(mismatches)), "Reconcile", "")

	if c.Redis == nil {
		return nil
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	if err := c.Redis.Set(ctx, reconcileReportKey, payload, reconcileReportTTL).Err(); err != nil {
		c.Log.Error("payout-usecase", fmt.Sprintf("Failed to store reconcile report: %v", err), "Reconcile", "")
		return err
	}
	return nil
}

// ReconciliationReport returns the latest sweep result, or an empty report
// when no sweep has run since the report expired.
func (c *PayoutUseCase) ReconciliationReport(ctx context.Context) utils.Result {
	var result utils.Result

	report := model.PayoutReconcileReport{Mismatches: []entity.PayoutMismatch{}}
	if c.Redis != nil {
		raw, err := c.Redis.Get(ctx, reconcileReportKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			errObj := httpError.NewInternalServerError()
			errObj.Message = "Failed to read reconciliation report"
			result.Error = errObj
			c.Log.Error("payout-usecase", fmt.Sprintf("Redis get failed: %v", err), "ReconciliationReport", "")
			return result
		}
		if raw != "" {
			if err := json.Unmarshal([]byte(raw), &report); err != nil {
				c.Log.Error("payout-usecase", fmt.Sprintf("Malformed reconcile report in redis: %v", err), "ReconciliationReport", "")
				report = model.PayoutReconcileReport{Mismatches: []entity.PayoutMismatch{}}
			}
		}
	}

	result.Data = report
	return result
}
