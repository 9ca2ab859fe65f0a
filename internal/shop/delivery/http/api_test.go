package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	delivery "github.com/fixhub/repairshop/internal/shop/delivery/http"
	"github.com/fixhub/repairshop/internal/shop/repository"
	"github.com/fixhub/repairshop/internal/shop/resolver"
)

// newServer wires the full route table over an in-memory store. Metrics,
// the event publisher and the response cache are all absent, as they are
// when their backends are not configured.
func newServer() *mux.Router {
	store := repository.NewMemory()
	res := resolver.New(
		store.Customers(), store.Services(), store.Repairs(),
		store.Items(), store.Products(), store.Variants(),
	)

	router := mux.NewRouter()
	delivery.RegisterAll(router,
		delivery.NewCustomerHandler(store.Customers(), res, nil),
		delivery.NewServiceHandler(store.Services(), res, nil),
		delivery.NewRepairHandler(store.Repairs(), res, nil, nil),
		delivery.NewItemHandler(store.Items(), res, nil, nil),
		delivery.NewProductHandler(store.Products(), res, nil, nil),
		delivery.NewVariantHandler(store.Variants(), res, nil, nil),
	)
	return router
}

func do(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func errBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decode(t, rec, &body)
	return body["error"]
}

// register creates a customer through the open endpoint and logs it in,
// returning the customer id and a bearer token.
func register(t *testing.T, router *mux.Router, email string) (uint, string) {
	t.Helper()
	rec := do(t, router, http.MethodPost, "/customers", "", map[string]string{
		"name": "Ada", "email": email, "password": "s3cret", "address": "1 Main St",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID uint `json:"id"`
	}
	decode(t, rec, &created)

	form := url.Values{"username": {email}, "password": {"s3cret"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	loginRec := httptest.NewRecorder()
	router.ServeHTTP(loginRec, req)
	require.Equal(t, http.StatusOK, loginRec.Code, loginRec.Body.String())

	var login struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		CustomerID  uint   `json:"customer_id"`
	}
	decode(t, loginRec, &login)
	require.Equal(t, "bearer", login.TokenType)
	require.Equal(t, created.ID, login.CustomerID)

	return created.ID, login.AccessToken
}

func createService(t *testing.T, router *mux.Router, customerID uint, token, kind string) uint {
	t.Helper()
	rec := do(t, router, http.MethodPost, fmt.Sprintf("/customers/%d/services", customerID), token,
		map[string]interface{}{"type": kind, "total_cost": 0})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID uint `json:"id"`
	}
	decode(t, rec, &created)
	return created.ID
}

func TestCustomerEndpoints(t *testing.T) {
	router := newServer()
	id, token := register(t, router, "ada@example.com")

	t.Run("get is open", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, fmt.Sprintf("/customers/%d", id), "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("list is open", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/customers", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/customers/9999", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "customer with id 9999 does not exist", errBody(t, rec))
	})

	t.Run("non-numeric id is 400", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/customers/abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid customer_id", errBody(t, rec))
	})

	t.Run("mutations require a token", func(t *testing.T) {
		rec := do(t, router, http.MethodPatch, fmt.Sprintf("/customers/%d", id), "",
			map[string]string{"name": "Ada L."})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "authorization header required", errBody(t, rec))
	})

	t.Run("a garbage token is rejected", func(t *testing.T) {
		rec := do(t, router, http.MethodPatch, fmt.Sprintf("/customers/%d", id), "not-a-token",
			map[string]string{"name": "Ada L."})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "could not validate credentials", errBody(t, rec))
	})

	t.Run("patch merges fields", func(t *testing.T) {
		rec := do(t, router, http.MethodPatch, fmt.Sprintf("/customers/%d", id), token,
			map[string]string{"address": "2 Side St"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var updated struct {
			Email   string `json:"email"`
			Address string `json:"address"`
		}
		decode(t, rec, &updated)
		assert.Equal(t, "2 Side St", updated.Address)
		assert.Equal(t, "ada@example.com", updated.Email)
	})

	t.Run("empty patch is 400", func(t *testing.T) {
		rec := do(t, router, http.MethodPatch, fmt.Sprintf("/customers/%d", id), token,
			map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "no valid fields provided for update", errBody(t, rec))
	})

	t.Run("put requires every field", func(t *testing.T) {
		rec := do(t, router, http.MethodPut, fmt.Sprintf("/customers/%d", id), token,
			map[string]string{"name": "Ada"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email is required", errBody(t, rec))
	})

	t.Run("another customer's token is forbidden", func(t *testing.T) {
		_, otherToken := register(t, router, "bob@example.com")
		rec := do(t, router, http.MethodPatch, fmt.Sprintf("/customers/%d", id), otherToken,
			map[string]string{"name": "Mallory"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "not authorized to perform requested action", errBody(t, rec))
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/customers", "", map[string]string{
			"name": "Ada", "email": "ada@example.com", "password": "s3cret", "address": "1 Main St",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("bad credentials read as forbidden", func(t *testing.T) {
		form := url.Values{"username": {"ada@example.com"}, "password": {"wrong"}}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "invalid credentials", errBody(t, rec))
	})

	t.Run("delete returns no content", func(t *testing.T) {
		victimID, victimToken := register(t, router, "victim@example.com")
		rec := do(t, router, http.MethodDelete, fmt.Sprintf("/customers/%d", victimID), victimToken, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())

		rec = do(t, router, http.MethodGet, fmt.Sprintf("/customers/%d", victimID), "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServiceEndpoints(t *testing.T) {
	router := newServer()
	id, token := register(t, router, "ada@example.com")
	serviceID := createService(t, router, id, token, "repair")

	t.Run("create requires a token", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, fmt.Sprintf("/customers/%d/services", id), "",
			map[string]interface{}{"type": "sale"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid type is 400", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, fmt.Sprintf("/customers/%d/services", id), token,
			map[string]interface{}{"type": "rental"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid service type", errBody(t, rec))
	})

	t.Run("reads are open", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, fmt.Sprintf("/customers/%d/services", id), "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, router, http.MethodGet, fmt.Sprintf("/customers/%d/services/%d", id, serviceID), "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("changing the type is 400", func(t *testing.T) {
		rec := do(t, router, http.MethodPatch, fmt.Sprintf("/customers/%d/services/%d", id, serviceID), token,
			map[string]interface{}{"type": "sale"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "service type cannot be changed after creation", errBody(t, rec))
	})

	t.Run("a service under the wrong customer is 404", func(t *testing.T) {
		otherID, otherToken := register(t, router, "bob@example.com")
		rec := do(t, router, http.MethodPatch, fmt.Sprintf("/customers/%d/services/%d", otherID, serviceID), otherToken,
			map[string]interface{}{"total_cost": 10})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRepairEndpoints(t *testing.T) {
	router := newServer()
	id, token := register(t, router, "ada@example.com")
	repairSR := createService(t, router, id, token, "repair")
	sale := createService(t, router, id, token, "sale")

	base := fmt.Sprintf("/customers/%d/services/%d/repairs", id, repairSR)

	rec := do(t, router, http.MethodPost, base, token,
		map[string]string{"description": "cracked screen"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var repair struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	decode(t, rec, &repair)
	assert.Equal(t, "pending", repair.Status)

	t.Run("repairs under a sale request read as 404", func(t *testing.T) {
		rec := do(t, router, http.MethodPost,
			fmt.Sprintf("/customers/%d/services/%d/repairs", id, sale), token,
			map[string]string{"description": "cracked screen"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("status patch stamps the start date", func(t *testing.T) {
		rec := do(t, router, http.MethodPatch, fmt.Sprintf("%s/%d", base, repair.ID), token,
			map[string]string{"status": "in_progress"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var updated struct {
			Status       string  `json:"status"`
			StartDate    *string `json:"start_date"`
			FinishedDate *string `json:"finished_date"`
		}
		decode(t, rec, &updated)
		assert.Equal(t, "in_progress", updated.Status)
		assert.NotNil(t, updated.StartDate)
		assert.Nil(t, updated.FinishedDate)
	})

	t.Run("put replaces the whole ticket", func(t *testing.T) {
		rec := do(t, router, http.MethodPut, fmt.Sprintf("%s/%d", base, repair.ID), token,
			map[string]string{"description": "full refurbishment", "status": "completed"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var updated struct {
			Description  string  `json:"description"`
			FinishedDate *string `json:"finished_date"`
		}
		decode(t, rec, &updated)
		assert.Equal(t, "full refurbishment", updated.Description)
		assert.NotNil(t, updated.FinishedDate)
	})

	t.Run("reads are open", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, fmt.Sprintf("%s/%d", base, repair.ID), "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete returns no content", func(t *testing.T) {
		rec := do(t, router, http.MethodDelete, fmt.Sprintf("%s/%d", base, repair.ID), token, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestItemEndpoints(t *testing.T) {
	router := newServer()
	id, token := register(t, router, "ada@example.com")
	sale := createService(t, router, id, token, "sale")

	rec := do(t, router, http.MethodPost, "/products", "",
		map[string]interface{}{"name": "Phone", "price": 300})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var product struct {
		ID uint `json:"id"`
	}
	decode(t, rec, &product)

	rec = do(t, router, http.MethodPost, fmt.Sprintf("/products/%d/variants", product.ID), "",
		map[string]interface{}{"size": "M", "color": "black", "stock_quantity": 10})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var variant struct {
		ID uint `json:"id"`
	}
	decode(t, rec, &variant)

	base := fmt.Sprintf("/customers/%d/services/%d/items", id, sale)

	rec = do(t, router, http.MethodPost, base, token,
		map[string]interface{}{"product_variant_id": variant.ID, "quantity": 2, "unit_price": 299.99})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var item struct {
		ID uint `json:"id"`
	}
	decode(t, rec, &item)

	t.Run("the same variant twice conflicts", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, base, token,
			map[string]interface{}{"product_variant_id": variant.ID, "quantity": 1, "unit_price": 299.99})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("changing the variant is 400", func(t *testing.T) {
		rec := do(t, router, http.MethodPatch, fmt.Sprintf("%s/%d", base, item.ID), token,
			map[string]interface{}{"product_variant_id": variant.ID + 1})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "product variant cannot be changed after creation", errBody(t, rec))
	})

	t.Run("patch merges quantity", func(t *testing.T) {
		rec := do(t, router, http.MethodPatch, fmt.Sprintf("%s/%d", base, item.ID), token,
			map[string]interface{}{"quantity": 5})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var updated struct {
			Quantity int `json:"quantity"`
		}
		decode(t, rec, &updated)
		assert.Equal(t, 5, updated.Quantity)
	})

	t.Run("reads are open", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, base, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestProductEndpoints(t *testing.T) {
	router := newServer()

	rec := do(t, router, http.MethodPost, "/products", "",
		map[string]interface{}{"name": "Phone", "description": "flagship", "price": 899, "stock_quantity": 3})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var product struct {
		ID uint `json:"id"`
	}
	decode(t, rec, &product)

	t.Run("missing name is 400", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, "/products", "",
			map[string]interface{}{"price": 1})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "name is required", errBody(t, rec))
	})

	t.Run("catalog reads are open", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/products", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, router, http.MethodGet, fmt.Sprintf("/products/%d", product.ID), "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("put without description is 400", func(t *testing.T) {
		rec := do(t, router, http.MethodPut, fmt.Sprintf("/products/%d", product.ID), "",
			map[string]interface{}{"name": "Phone SE", "price": 499})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "description is required", errBody(t, rec))

		rec = do(t, router, http.MethodGet, fmt.Sprintf("/products/%d", product.ID), "", nil)
		var stored struct {
			Description string `json:"description"`
		}
		decode(t, rec, &stored)
		assert.Equal(t, "flagship", stored.Description)
	})

	t.Run("put defaults only the stock quantity", func(t *testing.T) {
		rec := do(t, router, http.MethodPut, fmt.Sprintf("/products/%d", product.ID), "",
			map[string]interface{}{"name": "Phone SE", "price": 499, "description": "compact"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var updated struct {
			Name          string `json:"name"`
			Description   string `json:"description"`
			StockQuantity int    `json:"stock_quantity"`
		}
		decode(t, rec, &updated)
		assert.Equal(t, "Phone SE", updated.Name)
		assert.Equal(t, "compact", updated.Description)
		assert.Zero(t, updated.StockQuantity)
	})

	t.Run("variants live under their product", func(t *testing.T) {
		rec := do(t, router, http.MethodPost, fmt.Sprintf("/products/%d/variants", product.ID), "",
			map[string]interface{}{"size": "L", "color": "red", "stock_quantity": 2})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var variant struct {
			ID uint `json:"id"`
		}
		decode(t, rec, &variant)

		rec = do(t, router, http.MethodGet, fmt.Sprintf("/products/%d/variants/%d", product.ID, variant.ID), "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, router, http.MethodGet, "/products/9999/variants", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = do(t, router, http.MethodDelete, fmt.Sprintf("/products/%d/variants/%d", product.ID, variant.ID), "", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("delete returns no content", func(t *testing.T) {
		rec := do(t, router, http.MethodDelete, fmt.Sprintf("/products/%d", product.ID), "", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(t, router, http.MethodGet, fmt.Sprintf("/products/%d", product.ID), "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
