package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ratehub/fx_rates_service/internal/apperrors"
	"github.com/ratehub/fx_rates_service/internal/core/domain"
	portssvc "github.com/ratehub/fx_rates_service/internal/core/ports/services"
	"github.com/ratehub/fx_rates_service/internal/core/services"
)

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) HasRatesForDate(ctx context.Context, baseID int64, date time.Time) (bool, error) {
	args := m.Called(ctx, baseID, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockRateRepository) ListRates(ctx context.Context, baseID int64, date, untilDate *time.Time) ([]domain.Rate, error) {
	args := m.Called(ctx, baseID, date, untilDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockRateRepository) SaveRates(ctx context.Context, rates []domain.Rate) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

// --- Mock currency directory ---
type MockCurrencyDirectory struct {
	mock.Mock
}

func (m *MockCurrencyDirectory) GetCurrencyByShortName(ctx context.Context, shortName string) (*domain.Currency, error) {
	args := m.Called(ctx, shortName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyDirectory) GetCurrencyByName(ctx context.Context, name string) (*domain.Currency, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyDirectory) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchRates(ctx context.Context, baseShortName string, date time.Time) (*portssvc.RateSnapshot, error) {
	args := m.Called(ctx, baseShortName, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.RateSnapshot), args.Error(1)
}

// --- Test Suite ---
type RateServiceTestSuite struct {
	suite.Suite
	mockRateRepo  *MockRateRepository
	mockDirectory *MockCurrencyDirectory
	mockProvider  *MockRateProvider
	service       portssvc.RateSvcFacade

	usd domain.Currency
	eur domain.Currency
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockRateRepository)
	suite.mockDirectory = new(MockCurrencyDirectory)
	suite.mockProvider = new(MockRateProvider)
	suite.service = services.NewRateService(suite.mockRateRepo, suite.mockDirectory, suite.mockProvider)

	suite.usd = domain.Currency{CurrencyID: 1, ShortName: "USD", Name: "US Dollar", Symbol: "$"}
	suite.eur = domain.Currency{CurrencyID: 2, ShortName: "EUR", Name: "Euro", Symbol: "€"}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func storedRate(base, curr domain.Currency, d time.Time, price string) domain.Rate {
	p, _ := decimal.NewFromString(price)
	return domain.Rate{
		RateID:   uuid.NewString(),
		Base:     base,
		Currency: curr,
		Date:     d,
		Price:    p,
	}
}

// --- Test Cases ---

func (suite *RateServiceTestSuite) TestGetRates_UnknownBase() {
	ctx := context.Background()

	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "XXX").Return(nil, apperrors.ErrCurrencyNotFound).Once()

	rates, err := suite.service.GetRates(ctx, "XXX", nil, nil)

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, apperrors.ErrCurrencyNotFound)
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchRates")
	suite.mockRateRepo.AssertNotCalled(suite.T(), "ListRates")
}

func (suite *RateServiceTestSuite) TestGetRates_NoFilterListsEverything() {
	ctx := context.Background()
	stored := []domain.Rate{storedRate(suite.usd, suite.eur, day(2023, 8, 21), "0.91")}

	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "USD").Return(&suite.usd, nil).Once()
	suite.mockRateRepo.On("ListRates", ctx, suite.usd.CurrencyID, (*time.Time)(nil), (*time.Time)(nil)).Return(stored, nil).Once()

	rates, err := suite.service.GetRates(ctx, "USD", nil, nil)

	suite.Require().NoError(err)
	suite.Equal(stored, rates)
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchRates")
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRates_SingleDaySyncsMissingDay() {
	ctx := context.Background()
	d := day(2023, 8, 21)
	snapshot := &portssvc.RateSnapshot{
		Date: "2023-08-21",
		Base: "USD",
		Rates: map[string]decimal.Decimal{
			"EUR": decimal.RequireFromString("0.913245"),
		},
	}
	stored := []domain.Rate{storedRate(suite.usd, suite.eur, d, "0.913245")}

	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "USD").Return(&suite.usd, nil).Once()
	suite.mockRateRepo.On("HasRatesForDate", ctx, suite.usd.CurrencyID, d).Return(false, nil).Once()
	suite.mockProvider.On("FetchRates", ctx, "USD", d).Return(snapshot, nil).Once()
	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "EUR").Return(&suite.eur, nil).Once()
	suite.mockRateRepo.On("SaveRates", ctx, mock.MatchedBy(func(rs []domain.Rate) bool {
		if len(rs) != 1 {
			return false
		}
		r := rs[0]
		return r.Base.CurrencyID == suite.usd.CurrencyID &&
			r.Currency.CurrencyID == suite.eur.CurrencyID &&
			r.Date.Equal(d) &&
			r.Price.Equal(decimal.RequireFromString("0.913245"))
	})).Return(nil).Once()
	suite.mockRateRepo.On("ListRates", ctx, suite.usd.CurrencyID, &d, (*time.Time)(nil)).Return(stored, nil).Once()

	rates, err := suite.service.GetRates(ctx, "USD", &d, nil)

	suite.Require().NoError(err)
	suite.Equal(stored, rates)
	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRates_UnknownSnapshotCurrencyDropped() {
	ctx := context.Background()
	d := day(2023, 8, 21)
	snapshot := &portssvc.RateSnapshot{
		Date: "2023-08-21",
		Base: "USD",
		Rates: map[string]decimal.Decimal{
			"EUR": decimal.RequireFromString("0.91"),
			"XYZ": decimal.RequireFromString("42.0"),
		},
	}
	stored := []domain.Rate{storedRate(suite.usd, suite.eur, d, "0.91")}

	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "USD").Return(&suite.usd, nil).Once()
	suite.mockRateRepo.On("HasRatesForDate", ctx, suite.usd.CurrencyID, d).Return(false, nil).Once()
	suite.mockProvider.On("FetchRates", ctx, "USD", d).Return(snapshot, nil).Once()
	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "EUR").Return(&suite.eur, nil).Once()
	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "XYZ").Return(nil, apperrors.ErrCurrencyNotFound).Once()
	suite.mockRateRepo.On("SaveRates", ctx, mock.MatchedBy(func(rs []domain.Rate) bool {
		return len(rs) == 1 && rs[0].Currency.ShortName == "EUR"
	})).Return(nil).Once()
	suite.mockRateRepo.On("ListRates", ctx, suite.usd.CurrencyID, &d, (*time.Time)(nil)).Return(stored, nil).Once()

	rates, err := suite.service.GetRates(ctx, "USD", &d, nil)

	suite.Require().NoError(err)
	suite.Equal(stored, rates)
	// Only the known pair was persisted.
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "SaveRates", 1)
}

func (suite *RateServiceTestSuite) TestGetRates_RangeTooLarge() {
	ctx := context.Background()
	// Mon 2023-08-21 through Tue 2023-08-29 spans 7 business days.
	from := day(2023, 8, 21)
	until := day(2023, 8, 29)

	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "USD").Return(&suite.usd, nil).Once()

	rates, err := suite.service.GetRates(ctx, "USD", &from, &until)

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, apperrors.ErrRangeTooLarge)
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchRates")
	suite.mockRateRepo.AssertNotCalled(suite.T(), "HasRatesForDate")
}

func (suite *RateServiceTestSuite) TestGetRates_ExactlyFiveBusinessDays() {
	ctx := context.Background()
	// Sat 2023-08-19 through Fri 2023-08-25: 7 calendar days, 5 business days.
	from := day(2023, 8, 19)
	until := day(2023, 8, 25)
	stored := []domain.Rate{storedRate(suite.usd, suite.eur, day(2023, 8, 21), "0.91")}

	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "USD").Return(&suite.usd, nil).Once()
	suite.mockRateRepo.On("HasRatesForDate", ctx, suite.usd.CurrencyID, mock.AnythingOfType("time.Time")).Return(true, nil).Times(5)
	suite.mockRateRepo.On("ListRates", ctx, suite.usd.CurrencyID, &from, &until).Return(stored, nil).Once()

	rates, err := suite.service.GetRates(ctx, "USD", &from, &until)

	suite.Require().NoError(err)
	suite.Equal(stored, rates)
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchRates")
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRates_InvalidRange() {
	ctx := context.Background()
	from := day(2023, 8, 25)
	until := day(2023, 8, 21)

	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "USD").Return(&suite.usd, nil).Once()

	rates, err := suite.service.GetRates(ctx, "USD", &from, &until)

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, apperrors.ErrInvalidRange)
}

func (suite *RateServiceTestSuite) TestGetRates_ProviderFailureAborts() {
	ctx := context.Background()
	d := day(2023, 8, 21)

	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "USD").Return(&suite.usd, nil).Once()
	suite.mockRateRepo.On("HasRatesForDate", ctx, suite.usd.CurrencyID, d).Return(false, nil).Once()
	suite.mockProvider.On("FetchRates", ctx, "USD", d).Return(nil, apperrors.ErrProviderUnavailable).Once()

	rates, err := suite.service.GetRates(ctx, "USD", &d, nil)

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, apperrors.ErrProviderUnavailable)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveRates")
	suite.mockRateRepo.AssertNotCalled(suite.T(), "ListRates")
}

func (suite *RateServiceTestSuite) TestGetRates_SecondCallIssuesNoFetches() {
	ctx := context.Background()
	from := day(2023, 8, 21)
	until := day(2023, 8, 22)
	snapshot := &portssvc.RateSnapshot{
		Base: "USD",
		Rates: map[string]decimal.Decimal{
			"EUR": decimal.RequireFromString("0.91"),
		},
	}
	stored := []domain.Rate{
		storedRate(suite.usd, suite.eur, from, "0.91"),
		storedRate(suite.usd, suite.eur, until, "0.91"),
	}

	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "USD").Return(&suite.usd, nil)
	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "EUR").Return(&suite.eur, nil)

	// First call: both days missing, one fetch per day.
	suite.mockRateRepo.On("HasRatesForDate", ctx, suite.usd.CurrencyID, from).Return(false, nil).Once()
	suite.mockRateRepo.On("HasRatesForDate", ctx, suite.usd.CurrencyID, until).Return(false, nil).Once()
	suite.mockProvider.On("FetchRates", ctx, "USD", from).Return(snapshot, nil).Once()
	suite.mockProvider.On("FetchRates", ctx, "USD", until).Return(snapshot, nil).Once()
	suite.mockRateRepo.On("SaveRates", ctx, mock.AnythingOfType("[]domain.Rate")).Return(nil).Times(2)

	// Second call: both days already synced.
	suite.mockRateRepo.On("HasRatesForDate", ctx, suite.usd.CurrencyID, from).Return(true, nil).Once()
	suite.mockRateRepo.On("HasRatesForDate", ctx, suite.usd.CurrencyID, until).Return(true, nil).Once()

	suite.mockRateRepo.On("ListRates", ctx, suite.usd.CurrencyID, &from, &until).Return(stored, nil).Times(2)

	first, err := suite.service.GetRates(ctx, "USD", &from, &until)
	suite.Require().NoError(err)

	second, err := suite.service.GetRates(ctx, "USD", &from, &until)
	suite.Require().NoError(err)

	suite.Equal(first, second)
	suite.mockProvider.AssertNumberOfCalls(suite.T(), "FetchRates", 2)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRates_AlreadySyncedDaySkipsFetch() {
	ctx := context.Background()
	d := day(2023, 8, 21)
	stored := []domain.Rate{storedRate(suite.usd, suite.eur, d, "0.91")}

	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "USD").Return(&suite.usd, nil).Once()
	suite.mockRateRepo.On("HasRatesForDate", ctx, suite.usd.CurrencyID, d).Return(true, nil).Once()
	suite.mockRateRepo.On("ListRates", ctx, suite.usd.CurrencyID, &d, (*time.Time)(nil)).Return(stored, nil).Once()

	rates, err := suite.service.GetRates(ctx, "USD", &d, nil)

	suite.Require().NoError(err)
	suite.Equal(stored, rates)
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchRates")
}

func (suite *RateServiceTestSuite) TestGetRates_DayPersistsAsSingleBatch() {
	ctx := context.Background()
	d := day(2023, 8, 21)
	gbp := domain.Currency{CurrencyID: 3, ShortName: "GBP", Name: "Pound Sterling", Symbol: "£"}
	snapshot := &portssvc.RateSnapshot{
		Date: "2023-08-21",
		Base: "USD",
		Rates: map[string]decimal.Decimal{
			"EUR": decimal.RequireFromString("0.91"),
			"GBP": decimal.RequireFromString("0.79"),
		},
	}
	stored := []domain.Rate{
		storedRate(suite.usd, suite.eur, d, "0.91"),
		storedRate(suite.usd, gbp, d, "0.79"),
	}

	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "USD").Return(&suite.usd, nil).Once()
	suite.mockRateRepo.On("HasRatesForDate", ctx, suite.usd.CurrencyID, d).Return(false, nil).Once()
	suite.mockProvider.On("FetchRates", ctx, "USD", d).Return(snapshot, nil).Once()
	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "EUR").Return(&suite.eur, nil).Once()
	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "GBP").Return(&gbp, nil).Once()
	// Both pairs of the day arrive in one write, never one call per pair.
	suite.mockRateRepo.On("SaveRates", ctx, mock.MatchedBy(func(rs []domain.Rate) bool {
		return len(rs) == 2
	})).Return(nil).Once()
	suite.mockRateRepo.On("ListRates", ctx, suite.usd.CurrencyID, &d, (*time.Time)(nil)).Return(stored, nil).Once()

	rates, err := suite.service.GetRates(ctx, "USD", &d, nil)

	suite.Require().NoError(err)
	suite.Equal(stored, rates)
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "SaveRates", 1)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetRates_SaveFailureAborts() {
	ctx := context.Background()
	d := day(2023, 8, 21)
	snapshot := &portssvc.RateSnapshot{
		Date: "2023-08-21",
		Base: "USD",
		Rates: map[string]decimal.Decimal{
			"EUR": decimal.RequireFromString("0.91"),
		},
	}

	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "USD").Return(&suite.usd, nil).Once()
	suite.mockRateRepo.On("HasRatesForDate", ctx, suite.usd.CurrencyID, d).Return(false, nil).Once()
	suite.mockProvider.On("FetchRates", ctx, "USD", d).Return(snapshot, nil).Once()
	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "EUR").Return(&suite.eur, nil).Once()
	suite.mockRateRepo.On("SaveRates", ctx, mock.AnythingOfType("[]domain.Rate")).Return(assert.AnError).Once()

	rates, err := suite.service.GetRates(ctx, "USD", &d, nil)

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "ListRates")
}

func (suite *RateServiceTestSuite) TestGetRates_AllUnknownSnapshotSkipsWrite() {
	ctx := context.Background()
	d := day(2023, 8, 21)
	snapshot := &portssvc.RateSnapshot{
		Date: "2023-08-21",
		Base: "USD",
		Rates: map[string]decimal.Decimal{
			"XYZ": decimal.RequireFromString("42.0"),
		},
	}

	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "USD").Return(&suite.usd, nil).Once()
	suite.mockRateRepo.On("HasRatesForDate", ctx, suite.usd.CurrencyID, d).Return(false, nil).Once()
	suite.mockProvider.On("FetchRates", ctx, "USD", d).Return(snapshot, nil).Once()
	suite.mockDirectory.On("GetCurrencyByShortName", ctx, "XYZ").Return(nil, apperrors.ErrCurrencyNotFound).Once()
	suite.mockRateRepo.On("ListRates", ctx, suite.usd.CurrencyID, &d, (*time.Time)(nil)).Return([]domain.Rate{}, nil).Once()

	rates, err := suite.service.GetRates(ctx, "USD", &d, nil)

	suite.Require().NoError(err)
	suite.Empty(rates)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveRates")
}

// --- Run Suite ---
func TestRateService(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
