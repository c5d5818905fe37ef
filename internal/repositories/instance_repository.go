package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"family-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InstanceFields are the parent fields that may be pushed onto unprocessed
// instances. Nil fields are left alone.
type InstanceFields struct {
	Description   *string
	PaymentMethod *string
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
}

type instanceRepository struct {
	db *gorm.DB
}

// NewInstanceRepository creates a new transaction instance repository
func NewInstanceRepository(db *gorm.DB) InstanceRepositoryInterface {
	return &instanceRepository{db: db}
}

func (r *instanceRepository) Create(ctx context.Context, instance *models.TransactionInstance) error {
	if err := r.db.WithContext(ctx).Create(instance).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateInstance
		}
		return fmt.Errorf("failed to create transaction instance: %w", err)
	}
	return nil
}

func (r *instanceRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.TransactionInstance, error) {
	var instance models.TransactionInstance
	err := applyLifecycleScope(r.db.WithContext(ctx), models.OnlyActive).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&instance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstanceNotFound
		}
		return nil, fmt.Errorf("failed to get transaction instance: %w", err)
	}
	return &instance, nil
}

func (r *instanceRepository) filtered(ctx context.Context, filter models.InstanceFilter) *gorm.DB {
	query := applyLifecycleScope(r.db.WithContext(ctx).Model(&models.TransactionInstance{}), filter.Lifecycle).
		Where("owner_id = ?", filter.OwnerID)

	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.ParentID != nil {
		query = query.Where("parent_id = ?", *filter.ParentID)
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.Flow != "" {
		query = query.Where("flow = ?", filter.Flow)
	}
	if filter.SubcategoryID != nil {
		query = query.Where("subcategory_id = ?", *filter.SubcategoryID)
	}
	if filter.Processed != nil {
		query = query.Where("is_processed = ?", *filter.Processed)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}
	return query
}

func (r *instanceRepository) Find(ctx context.Context, filter models.InstanceFilter) ([]models.TransactionInstance, error) {
	var instances []models.TransactionInstance

	query := r.filtered(ctx, filter).Order("date ASC, created_at ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	if err := query.Find(&instances).Error; err != nil {
		return nil, fmt.Errorf("failed to find transaction instances: %w", err)
	}
	return instances, nil
}

func (r *instanceRepository) Count(ctx context.Context, filter models.InstanceFilter) (int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transaction instances: %w", err)
	}
	return total, nil
}

// ActiveDatesForParent returns the dates (YYYY-MM-DD) that already have an active instance.
func (r *instanceRepository) ActiveDatesForParent(ctx context.Context, ownerID, parentID uuid.UUID) (map[string]struct{}, error) {
	var dates []models.Date
	err := r.filtered(ctx, models.InstanceFilter{OwnerID: ownerID, ParentID: &parentID}).
		Pluck("date", &dates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load instance dates: %w", err)
	}

	existing := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		existing[d.String()] = struct{}{}
	}
	return existing, nil
}

func (r *instanceRepository) Update(ctx context.Context, instance *models.TransactionInstance) error {
	result := r.db.WithContext(ctx).
		Model(instance).
		Where("owner_id = ?", instance.OwnerID).
		Select("*").Omit("id", "owner_id", "created_at").
		Updates(instance)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateInstance
		}
		return fmt.Errorf("failed to update transaction instance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInstanceNotFound
	}
	return nil
}

// ArchiveByFilter archives every instance matching filter with the shared timestamp at.
// Only active rows are touched regardless of filter.Lifecycle.
func (r *instanceRepository) ArchiveByFilter(ctx context.Context, filter models.InstanceFilter, at time.Time) (int64, error) {
	filter.Lifecycle = models.OnlyActive
	archived := models.ActiveLifecycle().Archive(at)

	result := r.filtered(ctx, filter).Updates(lifecycleColumns(archived))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to archive transaction instances: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// RestoreArchivedAt restores the children of parentID archived by the cascade stamped archivedAt.
func (r *instanceRepository) RestoreArchivedAt(ctx context.Context, ownerID, parentID uuid.UUID, archivedAt time.Time) (int64, error) {
	result := r.filtered(ctx, models.InstanceFilter{
		OwnerID:   ownerID,
		ParentID:  &parentID,
		Lifecycle: models.OnlyArchived,
	}).
		Where("archived_at = ?", models.ArchiveTimestamp(archivedAt)).
		Updates(lifecycleColumns(models.ActiveLifecycle()))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateInstance
		}
		return 0, fmt.Errorf("failed to restore transaction instances: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *instanceRepository) PropagateToUnprocessed(ctx context.Context, ownerID, parentID uuid.UUID, fields InstanceFields) (int64, error) {
	updates := map[string]interface{}{}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.PaymentMethod != nil {
		updates["payment_method"] = *fields.PaymentMethod
	}
	if fields.CategoryID != nil {
		updates["category_id"] = *fields.CategoryID
	}
	if fields.SubcategoryID != nil {
		updates["subcategory_id"] = *fields.SubcategoryID
	}
	if len(updates) == 0 {
		return 0, nil
	}

	unprocessed := false
	result := r.filtered(ctx, models.InstanceFilter{
		OwnerID:   ownerID,
		ParentID:  &parentID,
		Processed: &unprocessed,
	}).Updates(updates)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to propagate fields to instances: %w", result.Error)
	}
	return result.RowsAffected, nil
}

type childSummaryRow struct {
	Total   int64
	MinDate models.Date
	MaxDate models.Date
}

// SummarizeChildren counts the active children of parentID and their date range.
func (r *instanceRepository) SummarizeChildren(ctx context.Context, ownerID, parentID uuid.UUID) (*models.ChildSummary, error) {
	var row childSummaryRow
	err := r.filtered(ctx, models.InstanceFilter{OwnerID: ownerID, ParentID: &parentID}).
		Select("COUNT(*) AS total, MIN(date) AS min_date, MAX(date) AS max_date").
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize instances: %w", err)
	}

	summary := &models.ChildSummary{Count: row.Total}
	if row.Total > 0 {
		summary.MinDate = row.MinDate.Ptr()
		summary.MaxDate = row.MaxDate.Ptr()
	}
	return summary, nil
}

type subcategorySpendRow struct {
	SubcategoryID    uuid.UUID
	TransactionCount int64
	TotalAmount      decimal.Decimal
}

// SumProcessedExpensesBySubcategory returns, in one grouped query, the processed
// expense total of every subcategory for the month.
func (r *instanceRepository) SumProcessedExpensesBySubcategory(ctx context.Context, ownerID uuid.UUID, year int, month time.Month) ([]models.SubcategorySpend, error) {
	from, to := models.PeriodBounds(year, month)

	query := `
		SELECT
			subcategory_id,
			COUNT(*) AS transaction_count,
			SUM(amount) AS total_amount
		FROM transaction_instances
		WHERE owner_id = ?
			AND flow = ?
			AND is_processed = ?
			AND lifecycle_state = ?
			AND subcategory_id IS NOT NULL
			AND date >= ? AND date < ?
		GROUP BY subcategory_id
	`

	var rows []subcategorySpendRow
	if err := r.db.WithContext(ctx).
		Raw(query, ownerID, models.FlowExpense, true, models.LifecycleActive, from, to).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to sum expenses by subcategory: %w", err)
	}

	spends := make([]models.SubcategorySpend, len(rows))
	for i, row := range rows {
		spends[i] = models.SubcategorySpend{
			SubcategoryID:    row.SubcategoryID,
			TransactionCount: row.TransactionCount,
			TotalAmount:      row.TotalAmount.Round(2),
		}
	}
	return spends, nil
}
