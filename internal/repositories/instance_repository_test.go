package repositories

import (
	"context"
	"testing"
	"time"

	"family-ledger/internal/database"
	"family-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestInstanceRepository(t *testing.T) {
	suite.Run(t, new(InstanceRepositorySuite))
}

type InstanceRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   InstanceRepositoryInterface
	ctx    context.Context
	owner  uuid.UUID
	parent *models.RecurringDefinition
}

func (s *InstanceRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewInstanceRepository(s.db.DB)
	s.ctx = context.Background()
	s.owner = uuid.New()

	s.parent = newTestDefinition(s.owner)
	s.Require().NoError(NewDefinitionRepository(s.db.DB).Create(s.ctx, s.parent))
}

func (s *InstanceRepositorySuite) createChild(date string, processed bool) *models.TransactionInstance {
	instance := s.parent.Seed().NewInstance(models.MustParseDate(date), decimal.RequireFromString("100.00"))
	if processed {
		instance.MarkProcessed(time.Now())
	}
	s.Require().NoError(s.repo.Create(s.ctx, instance))
	return instance
}

func (s *InstanceRepositorySuite) TestCreate_DuplicateParentDate() {
	s.createChild("2024-01-31", false)

	dup := s.parent.Seed().NewInstance(models.MustParseDate("2024-01-31"), decimal.RequireFromString("100.00"))
	err := s.repo.Create(s.ctx, dup)
	s.ErrorIs(err, ErrDuplicateInstance)
}

func (s *InstanceRepositorySuite) TestCreate_SingleInstancesShareDates() {
	date := models.MustParseDate("2024-05-10")
	for i := 0; i < 2; i++ {
		single := models.NewSingleInstance(s.owner, models.FlowExpense, uuid.New(), nil,
			decimal.NewFromInt(int64(gofakeit.Number(1, 100))), date)
		s.Require().NoError(s.repo.Create(s.ctx, single))
	}

	count, err := s.repo.Count(s.ctx, models.InstanceFilter{OwnerID: s.owner, Kind: models.KindSingle})
	s.Require().NoError(err)
	s.EqualValues(2, count)
}

func (s *InstanceRepositorySuite) TestFind_AppliesFilters() {
	s.createChild("2024-01-31", true)
	s.createChild("2024-02-29", false)
	s.createChild("2024-03-29", false)

	parentID := s.parent.ID
	unprocessed := false
	from := models.MustParseDate("2024-02-01")

	found, err := s.repo.Find(s.ctx, models.InstanceFilter{
		OwnerID:   s.owner,
		ParentID:  &parentID,
		Processed: &unprocessed,
		From:      &from,
	})
	s.Require().NoError(err)
	s.Require().Len(found, 2)
	s.Equal("2024-02-29", found[0].Date.String())
	s.Equal("2024-03-29", found[1].Date.String())

	page, err := s.repo.Find(s.ctx, models.InstanceFilter{OwnerID: s.owner, Limit: 1, Offset: 2})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal("2024-03-29", page[0].Date.String())

	foreign, err := s.repo.Find(s.ctx, models.InstanceFilter{OwnerID: uuid.New()})
	s.Require().NoError(err)
	s.Empty(foreign)
}

func (s *InstanceRepositorySuite) TestGetByID_ForeignOwner() {
	child := s.createChild("2024-01-31", false)

	_, err := s.repo.GetByID(s.ctx, uuid.New(), child.ID)
	s.ErrorIs(err, ErrInstanceNotFound)

	found, err := s.repo.GetByID(s.ctx, s.owner, child.ID)
	s.Require().NoError(err)
	s.Equal(models.KindRecurring, found.Origin.Kind)
	parentID, ok := found.Origin.Parent()
	s.True(ok)
	s.Equal(s.parent.ID, parentID)
}

func (s *InstanceRepositorySuite) TestActiveDatesForParent() {
	s.createChild("2024-01-31", false)
	s.createChild("2024-02-29", false)

	dates, err := s.repo.ActiveDatesForParent(s.ctx, s.owner, s.parent.ID)
	s.Require().NoError(err)
	s.Len(dates, 2)
	s.Contains(dates, "2024-01-31")
	s.Contains(dates, "2024-02-29")
}

func (s *InstanceRepositorySuite) TestArchiveAndRestoreCascade() {
	s.createChild("2024-01-31", true)
	s.createChild("2024-02-29", false)
	s.createChild("2024-03-29", false)

	parentID := s.parent.ID
	unprocessed := false
	at := time.Now()

	archived, err := s.repo.ArchiveByFilter(s.ctx, models.InstanceFilter{
		OwnerID:   s.owner,
		ParentID:  &parentID,
		Processed: &unprocessed,
	}, at)
	s.Require().NoError(err)
	s.EqualValues(2, archived)

	remaining, err := s.repo.Count(s.ctx, models.InstanceFilter{OwnerID: s.owner, ParentID: &parentID})
	s.Require().NoError(err)
	s.EqualValues(1, remaining)

	// an unrelated later archive must not be restored with the first cascade
	s.createChild("2024-04-29", false)
	later, err := s.repo.ArchiveByFilter(s.ctx, models.InstanceFilter{
		OwnerID:   s.owner,
		ParentID:  &parentID,
		Processed: &unprocessed,
	}, at.Add(time.Minute))
	s.Require().NoError(err)
	s.EqualValues(1, later)

	restored, err := s.repo.RestoreArchivedAt(s.ctx, s.owner, parentID, at)
	s.Require().NoError(err)
	s.EqualValues(2, restored)

	active, err := s.repo.Count(s.ctx, models.InstanceFilter{OwnerID: s.owner, ParentID: &parentID})
	s.Require().NoError(err)
	s.EqualValues(3, active)
}

func (s *InstanceRepositorySuite) TestArchive_AllowsRematerializingDate() {
	s.createChild("2024-01-31", false)

	parentID := s.parent.ID
	_, err := s.repo.ArchiveByFilter(s.ctx, models.InstanceFilter{OwnerID: s.owner, ParentID: &parentID}, time.Now())
	s.Require().NoError(err)

	s.createChild("2024-01-31", false)
}

func (s *InstanceRepositorySuite) TestPropagateToUnprocessed() {
	processed := s.createChild("2024-01-31", true)
	pending := s.createChild("2024-02-29", false)

	description := "rent"
	category := uuid.New()
	changed, err := s.repo.PropagateToUnprocessed(s.ctx, s.owner, s.parent.ID, InstanceFields{
		Description: &description,
		CategoryID:  &category,
	})
	s.Require().NoError(err)
	s.EqualValues(1, changed)

	reloaded, err := s.repo.GetByID(s.ctx, s.owner, pending.ID)
	s.Require().NoError(err)
	s.Equal("rent", reloaded.Description)
	s.Equal(category, reloaded.CategoryID)

	untouched, err := s.repo.GetByID(s.ctx, s.owner, processed.ID)
	s.Require().NoError(err)
	s.Equal(processed.Description, untouched.Description)

	noop, err := s.repo.PropagateToUnprocessed(s.ctx, s.owner, s.parent.ID, InstanceFields{})
	s.Require().NoError(err)
	s.Zero(noop)
}

func (s *InstanceRepositorySuite) TestSummarizeChildren() {
	empty, err := s.repo.SummarizeChildren(s.ctx, s.owner, s.parent.ID)
	s.Require().NoError(err)
	s.Zero(empty.Count)
	s.Nil(empty.MinDate)
	s.Nil(empty.MaxDate)

	s.createChild("2024-02-29", false)
	s.createChild("2024-01-31", true)
	s.createChild("2024-03-29", false)

	summary, err := s.repo.SummarizeChildren(s.ctx, s.owner, s.parent.ID)
	s.Require().NoError(err)
	s.EqualValues(3, summary.Count)
	s.Require().NotNil(summary.MinDate)
	s.Require().NotNil(summary.MaxDate)
	s.Equal("2024-01-31", summary.MinDate.String())
	s.Equal("2024-03-29", summary.MaxDate.String())
}

func (s *InstanceRepositorySuite) TestSumProcessedExpensesBySubcategory() {
	groceries := uuid.New()
	transport := uuid.New()

	add := func(flow models.Flow, sub uuid.UUID, amount, date string, processed bool) *models.TransactionInstance {
		subID := sub
		instance := models.NewSingleInstance(s.owner, flow, uuid.New(), &subID, decimal.RequireFromString(amount), models.MustParseDate(date))
		if !processed {
			instance.IsProcessed = false
			instance.ProcessedAt = nil
		}
		s.Require().NoError(s.repo.Create(s.ctx, instance))
		return instance
	}

	add(models.FlowExpense, groceries, "10.10", "2024-03-01", true)
	add(models.FlowExpense, groceries, "20.20", "2024-03-31", true)
	add(models.FlowExpense, transport, "5.00", "2024-03-15", true)
	add(models.FlowExpense, groceries, "99.00", "2024-03-10", false)
	add(models.FlowIncome, groceries, "1000.00", "2024-03-10", true)
	add(models.FlowExpense, groceries, "7.00", "2024-04-01", true)
	add(models.FlowExpense, groceries, "8.00", "2024-02-29", true)
	archived := add(models.FlowExpense, groceries, "50.00", "2024-03-05", true)

	_, err := s.repo.ArchiveByFilter(s.ctx, models.InstanceFilter{OwnerID: s.owner, From: &archived.Date, To: &archived.Date}, time.Now())
	s.Require().NoError(err)

	spends, err := s.repo.SumProcessedExpensesBySubcategory(s.ctx, s.owner, 2024, time.March)
	s.Require().NoError(err)
	s.Require().Len(spends, 2)

	bySub := map[uuid.UUID]models.SubcategorySpend{}
	for _, spend := range spends {
		bySub[spend.SubcategoryID] = spend
	}
	s.True(decimal.RequireFromString("30.30").Equal(bySub[groceries].TotalAmount))
	s.EqualValues(2, bySub[groceries].TransactionCount)
	s.True(decimal.RequireFromString("5.00").Equal(bySub[transport].TotalAmount))

	other, err := s.repo.SumProcessedExpensesBySubcategory(s.ctx, uuid.New(), 2024, time.March)
	s.Require().NoError(err)
	s.Empty(other)
}
