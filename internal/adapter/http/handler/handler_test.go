package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"
	"gold-ledger/internal/core/ports/mocks"
	"gold-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const phone = "9876543210"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newContext builds a test context with an optional JSON body and path
// params given as key, value pairs.
func newContext(method, target string, body interface{}, params ...string) (*gin.Context, *httptest.ResponseRecorder) {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(params); i += 2 {
		c.Params = append(c.Params, gin.Param{Key: params[i], Value: params[i+1]})
	}
	return c, w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "data is an object: %s", w.Body.String())
	return data
}

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

// --- Customer Handler Tests ---

func TestCustomerRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := mocks.NewMockWalletService(ctrl)
	wallet.EXPECT().RegisterCustomer(gomock.Any(), phone, "Asha Rao").
		Return(&domain.Customer{Phone: phone, Name: "Asha Rao", CreatedAt: time.Now()}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/customers", map[string]string{"phone": phone, "name": " Asha Rao "})
	NewCustomerHandler(wallet).Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, phone, decodeData(t, w)["phone"])
}

func TestCustomerRegister_BadPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, w := newContext(http.MethodPost, "/api/v1/customers", map[string]string{"phone": "123", "name": "x"})
	NewCustomerHandler(mocks.NewMockWalletService(ctrl)).Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", decodeErrorCode(t, w))
}

func TestCustomerBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := mocks.NewMockWalletService(ctrl)
	wallet.EXPECT().LatestBalance(gomock.Any(), phone).
		Return(&domain.Balance{CustomerID: phone, Cash: dec("5000.00"), Grams: dec("0.8333"), Version: 1, UpdatedAt: time.Now()}, nil)

	c, w := newContext(http.MethodGet, "/", nil, "phone", phone)
	NewCustomerHandler(wallet).Balance(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "5000", data["cash"])
	assert.Equal(t, "0.8333", data["grams"])
	assert.NotNil(t, data["updated_at"])
}

func TestCustomerBalance_ZeroBalanceOmitsUpdatedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := mocks.NewMockWalletService(ctrl)
	wallet.EXPECT().LatestBalance(gomock.Any(), phone).Return(&domain.Balance{CustomerID: phone}, nil)

	c, w := newContext(http.MethodGet, "/", nil, "phone", phone)
	NewCustomerHandler(wallet).Balance(c)

	require.Equal(t, http.StatusOK, w.Code)
	_, present := decodeData(t, w)["updated_at"]
	assert.False(t, present)
}

// --- Deposit Handler Tests ---

func TestDepositRecord_MapsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := mocks.NewMockWalletService(ctrl)
	wallet.EXPECT().RecordDeposit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.DepositRequest) (*domain.WalletEntry, error) {
			assert.Equal(t, phone, req.CustomerID)
			assert.Equal(t, "5000", req.CashAmount.String())
			assert.Nil(t, req.DeliveryCharge)
			require.NotNil(t, req.TaxAmount)
			assert.Equal(t, "150", req.TaxAmount.String())
			return &domain.WalletEntry{ID: uuid.New(), CustomerID: phone, Status: domain.EntryStatusPending}, nil
		},
	)

	c, w := newContext(http.MethodPost, "/api/v1/deposits", `{"customer_id":"9876543210","cash_amount":"5000","tax_amount":150}`)
	NewDepositHandler(wallet).Record(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "PENDING", decodeData(t, w)["status"])
}

func TestDepositRecord_MalformedAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, w := newContext(http.MethodPost, "/api/v1/deposits", `{"customer_id":"9876543210","cash_amount":"lots"}`)
	NewDepositHandler(mocks.NewMockWalletService(ctrl)).Record(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDepositConfirm_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, w := newContext(http.MethodPost, "/", nil, "id", "not-a-uuid")
	NewDepositHandler(mocks.NewMockWalletService(ctrl)).Confirm(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDepositConfirm_NotPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	wallet := mocks.NewMockWalletService(ctrl)
	wallet.EXPECT().ConfirmDeposit(gomock.Any(), id).Return(nil, apperror.ErrNotPending())

	c, w := newContext(http.MethodPost, "/", nil, "id", id.String())
	NewDepositHandler(wallet).Confirm(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NF_004", decodeErrorCode(t, w))
}

func TestDepositList_ParsesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := mocks.NewMockWalletService(ctrl)
	wallet.EXPECT().ListDeposits(gomock.Any(), phone, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, f domain.HistoryFilter) (*domain.DepositPage, error) {
			assert.Equal(t, "CONFIRMED", f.Status)
			assert.Equal(t, 2, f.Page)
			assert.Equal(t, 10, f.Limit)
			require.NotNil(t, f.From)
			require.NotNil(t, f.To)
			assert.Equal(t, "2024-03-01", f.From.In(domain.ReportZone).Format(time.DateOnly))
			assert.Equal(t, "23:59:59", f.To.In(domain.ReportZone).Format(time.TimeOnly))
			return &domain.DepositPage{Page: 2, Limit: 10}, nil
		},
	)

	c, w := newContext(http.MethodGet, "/x?status=CONFIRMED&page=2&limit=10&from=2024-03-01&to=2024-03-31", nil, "phone", phone)
	NewDepositHandler(wallet).List(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDepositList_InvertedRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, w := newContext(http.MethodGet, "/x?from=2024-03-02&to=2024-03-01", nil, "phone", phone)
	NewDepositHandler(mocks.NewMockWalletService(ctrl)).List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDepositList_LimitBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, w := newContext(http.MethodGet, "/x?limit=300", nil, "phone", phone)
	NewDepositHandler(mocks.NewMockWalletService(ctrl)).List(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", decodeErrorCode(t, w))

	wallet := mocks.NewMockWalletService(ctrl)
	wallet.EXPECT().ListDeposits(gomock.Any(), phone, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, f domain.HistoryFilter) (*domain.DepositPage, error) {
			assert.Equal(t, 100, f.Limit)
			return &domain.DepositPage{Page: 1, Limit: 100}, nil
		},
	)
	c, w = newContext(http.MethodGet, "/x?limit=100", nil, "phone", phone)
	NewDepositHandler(wallet).List(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Sell Handler Tests ---

func TestSellApprove_ExceedsBalanceCarriesDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	wallet := mocks.NewMockWalletService(ctrl)
	wallet.EXPECT().ApproveSell(gomock.Any(), id).Return(nil,
		apperror.ErrExceedsBalance().WithDetail("max_sellable", "9920.00"))

	c, w := newContext(http.MethodPost, "/", nil, "id", id.String())
	NewSellHandler(wallet).Approve(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "FUND_001", resp["error_code"])
	assert.Equal(t, "9920.00", resp["details"].(map[string]interface{})["max_sellable"])
}

func TestSellApprove_ReturnsBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	wallet := mocks.NewMockWalletService(ctrl)
	wallet.EXPECT().ApproveSell(gomock.Any(), id).Return(&ports.SellApproval{
		Sell:    &domain.SellEntry{ID: id, Status: domain.EntryStatusConfirmed},
		Balance: &domain.Balance{CustomerID: phone, Cash: dec("7920.00"), Grams: dec("1.32")},
	}, nil)

	c, w := newContext(http.MethodPost, "/", nil, "id", id.String())
	NewSellHandler(wallet).Approve(c)

	require.Equal(t, http.StatusOK, w.Code)
	balance := decodeData(t, w)["balance"].(map[string]interface{})
	assert.Equal(t, "7920", balance["cash"])
}

func TestSellRecord_PassesOptionalCharges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := mocks.NewMockWalletService(ctrl)
	wallet.EXPECT().RecordSell(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.SellRequest) (*domain.SellEntry, error) {
			assert.Nil(t, req.TaxAmount)
			require.NotNil(t, req.GatewayCharge)
			assert.Equal(t, "30", req.GatewayCharge.String())
			return &domain.SellEntry{ID: uuid.New(), Status: domain.EntryStatusPending}, nil
		},
	)

	c, w := newContext(http.MethodPost, "/", `{"customer_id":"9876543210","cash_amount":"2000","gateway_charge":"30"}`)
	NewSellHandler(wallet).Record(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

// --- Coin Handler Tests ---

func TestCoinCreate_MapsItemsAndAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := mocks.NewMockWalletService(ctrl)
	wallet.EXPECT().CreateCoinPurchase(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CoinPurchaseRequest) (*domain.CoinPurchaseEntry, error) {
			require.Len(t, req.Items, 1)
			assert.Equal(t, 2, req.Items[0].Quantity)
			assert.Equal(t, "Pune", req.Address.City)
			assert.Equal(t, "5000", req.InvestAmount.String())
			return &domain.CoinPurchaseEntry{ID: uuid.New(), Status: domain.CoinStatusApprovalPending}, nil
		},
	)

	body := `{"customer_id":"9876543210","items":[{"coin_grams":"1","quantity":2,"amount":"12000"}],
		"total_amount":"12000","tax_amount":"600","delivery_charge":"100","amount_payable":"12700",
		"invest_amount":"5000","address":{"line":"12 MG Road","city":" Pune ","post_code":"411001"}}`
	c, w := newContext(http.MethodPost, "/", body)
	NewCoinHandler(wallet).Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "APPROVAL_PENDING", decodeData(t, w)["status"])
}

func TestCoinCreate_RequiresItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, w := newContext(http.MethodPost, "/", `{"customer_id":"9876543210","items":[]}`)
	NewCoinHandler(mocks.NewMockWalletService(ctrl)).Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCoinCancel_AlreadyCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	wallet := mocks.NewMockWalletService(ctrl)
	wallet.EXPECT().CancelCoinPurchase(gomock.Any(), id).Return(nil, apperror.ErrAlreadyCancelled())

	c, w := newContext(http.MethodPost, "/", nil, "id", id.String())
	NewCoinHandler(wallet).Cancel(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONF_002", decodeErrorCode(t, w))
}

// --- Allotment Handler Tests ---

func TestAllot_InsufficientGrams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	allot := mocks.NewMockAllotmentService(ctrl)
	allot.EXPECT().Allot(gomock.Any(), phone, dec("0.5")).
		Return(nil, apperror.ErrInsufficientGrams().WithDetail("available_grams", "0.3333"))

	c, w := newContext(http.MethodPost, "/", `{"customer_id":"9876543210","grams":"0.5"}`)
	NewAllotmentHandler(allot).Allot(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "FUND_004", decodeErrorCode(t, w))
}

func TestAllotmentsByCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	allot := mocks.NewMockAllotmentService(ctrl)
	allot.EXPECT().ByCustomer(gomock.Any(), phone).Return([]domain.AllotmentView{
		{Allotment: domain.Allotment{ID: uuid.New(), CustomerID: phone, Grams: dec("0.5")}, AmountReduced: dec("3000.12")},
	}, nil)

	c, w := newContext(http.MethodGet, "/", nil, "phone", phone)
	NewAllotmentHandler(allot).ByCustomer(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "3000.12", resp.Data[0]["amount_reduced"])
	assert.Equal(t, "0.5", resp.Data[0]["grams"])
}

// --- Report Handler Tests ---

func TestReportGenerate_PassesQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := mocks.NewMockReportService(ctrl)
	reports.EXPECT().Generate(gomock.Any(), domain.ReportRequest{
		CustomerID: phone, StartDate: "2024-03-01", EndDate: "2024-03-31", Page: 1, PageSize: 50,
	}).Return(&domain.Report{CustomerID: phone}, nil)

	c, w := newContext(http.MethodGet, "/x?start_date=2024-03-01&end_date=2024-03-31&page=1&page_size=50", nil, "phone", phone)
	NewReportHandler(reports).Generate(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReportGenerate_BadDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, w := newContext(http.MethodGet, "/x?start_date=01-03-2024", nil, "phone", phone)
	NewReportHandler(mocks.NewMockReportService(ctrl)).Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Rate Handler Tests ---

func TestRateConvert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rates := mocks.NewMockRateOracle(ctrl)
	rates.EXPECT().ConvertGrams(gomock.Any(), dec("0.8333")).
		Return(&ports.GramConversion{Grams: dec("0.8333"), Rate: dec("6000"), Amount: dec("4999.80")}, nil)

	c, w := newContext(http.MethodGet, "/x?grams=0.8333", nil)
	NewRateHandler(rates, nil).Convert(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "4999.8", decodeData(t, w)["amount"])
}

func TestRateConvert_BadGrams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, w := newContext(http.MethodGet, "/x?grams=abc", nil)
	NewRateHandler(mocks.NewMockRateOracle(ctrl), nil).Convert(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_003", decodeErrorCode(t, w))
}

func TestRateCurrent_Unavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rates := mocks.NewMockRateOracle(ctrl)
	rates.EXPECT().CurrentRate(gomock.Any()).Return(nil, apperror.ErrRateUnavailable())

	c, w := newContext(http.MethodGet, "/", nil)
	NewRateHandler(rates, nil).Current(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "UPS_001", decodeErrorCode(t, w))
}

func TestRateRecord_Stale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rates := mocks.NewMockRateOracle(ctrl)
	rates.EXPECT().RecordRate(gomock.Any(), dec("6100"), int64(100)).Return(nil, apperror.ErrStaleSample())

	c, w := newContext(http.MethodPost, "/", `{"price_per_gram":"6100","timestamp":100}`)
	NewRateHandler(rates, nil).Record(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRateRefresh_FeedDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rates := mocks.NewMockRateOracle(ctrl)
	rates.EXPECT().RefreshRate(gomock.Any()).Return(nil, apperror.ErrStaleRate(errors.New("timeout")))

	c, w := newContext(http.MethodPost, "/", nil)
	NewRateHandler(rates, nil).Refresh(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCharges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := mocks.NewMockWalletService(ctrl)
	wallet.EXPECT().Charges(gomock.Any()).Return(&domain.ChargeSettings{TaxPercent: dec("3")}, nil)

	c, w := newContext(http.MethodGet, "/", nil)
	NewRateHandler(nil, wallet).Charges(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3", decodeData(t, w)["tax_percent"])
}

// --- Health Check Tests ---

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := mocks.NewMockHealthChecker(ctrl)
	db.EXPECT().Name().Return("postgresql").AnyTimes()
	db.EXPECT().Ping(gomock.Any()).Return(nil)
	cache := mocks.NewMockHealthChecker(ctrl)
	cache.EXPECT().Name().Return("redis").AnyTimes()
	cache.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	c, w := newContext(http.MethodGet, "/health", nil)
	HealthCheck("postgres", db, cache)(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	assert.Equal(t, "healthy", deps["postgresql"].(map[string]interface{})["status"])
	assert.Equal(t, "connection refused", deps["redis"].(map[string]interface{})["error"])
}

func TestHealthCheck_NoDependencies(t *testing.T) {
	c, w := newContext(http.MethodGet, "/health", nil)
	HealthCheck("memory")(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"storage":"memory"`)
}
