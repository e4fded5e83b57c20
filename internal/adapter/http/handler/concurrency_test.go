package handler_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentSellApprovals approves more sells than the balance can
// cover at once. Row locks must serialise them so that only the affordable
// ones go through and the cash never goes negative.
func TestConcurrentSellApprovals(t *testing.T) {
	env := newAPIEnv(t)

	code, _ := env.do(t, http.MethodPost, "/api/v1/customers", map[string]string{"phone": customerPhone, "name": "Asha"}, true)
	require.Equal(t, http.StatusCreated, code)
	code, _ = env.do(t, http.MethodPost, "/api/v1/rates", map[string]interface{}{"price_per_gram": "6000"}, true)
	require.Equal(t, http.StatusCreated, code)

	code, resp := env.do(t, http.MethodPost, "/api/v1/deposits", map[string]interface{}{
		"customer_id": customerPhone, "cash_amount": "5000",
	}, false)
	require.Equal(t, http.StatusCreated, code)
	code, _ = env.do(t, http.MethodPost, "/api/v1/deposits/"+data(resp)["id"].(string)+"/confirm", nil, true)
	require.Equal(t, http.StatusOK, code)

	// Each sell deducts 1000 plus 3% tax, so four of ten fit into 5000.
	const sells = 10
	ids := make([]string, 0, sells)
	for i := 0; i < sells; i++ {
		code, resp := env.do(t, http.MethodPost, "/api/v1/sells", map[string]interface{}{
			"customer_id": customerPhone, "cash_amount": "1000",
		}, false)
		require.Equal(t, http.StatusCreated, code)
		ids = append(ids, data(resp)["id"].(string))
	}

	var wg sync.WaitGroup
	var approved, refused, other atomic.Int64
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/sells/"+id+"/approve", nil)
			req.Header.Set("Authorization", "Bearer "+env.token)
			w := httptest.NewRecorder()
			env.router.ServeHTTP(w, req)

			switch w.Code {
			case http.StatusOK:
				approved.Add(1)
			case http.StatusBadRequest:
				refused.Add(1)
			default:
				other.Add(1)
			}
		}(id)
	}
	wg.Wait()

	t.Logf("sell approvals: %d approved, %d refused", approved.Load(), refused.Load())
	assert.Equal(t, int64(4), approved.Load())
	assert.Equal(t, int64(6), refused.Load())
	assert.Zero(t, other.Load())

	code, resp = env.do(t, http.MethodGet, "/api/v1/customers/"+customerPhone+"/balance", nil, false)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "880", data(resp)["cash"])
}
