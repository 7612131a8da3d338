package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/catalogo/internal/http/controllers"
	"github.com/dropDatabas3/catalogo/internal/http/services"
	"github.com/dropDatabas3/catalogo/internal/store/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svcs := services.New(services.Deps{Store: memory.New()})
	h := New(controllers.New(svcs), Options{})
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	var rd *strings.Reader
	if body != "" {
		rd = strings.NewReader(body)
	} else {
		rd = strings.NewReader("")
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var payload map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return resp, payload
}

func TestBrandCRUDOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	// create: envelope {ok, data}
	resp, payload := doJSON(t, "POST", srv.URL+"/v1/brands", `{"name":"Toyota"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, payload["ok"])
	data := payload["data"].(map[string]any)
	require.Equal(t, float64(1), data["id"])
	require.Equal(t, "Toyota", data["name"])
	require.Equal(t, true, data["is_active"])

	// list: arreglo pelado, sin envelope
	listResp, err := http.Get(srv.URL + "/v1/brands")
	require.NoError(t, err)
	defer listResp.Body.Close()
	var rows []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&rows))
	require.Len(t, rows, 1)

	// update parcial con id como string (coerción laxa)
	resp, payload = doJSON(t, "PUT", srv.URL+"/v1/brands", `{"id":"1","is_active":false}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = payload["data"].(map[string]any)
	require.Equal(t, false, data["is_active"])
	require.Equal(t, "Toyota", data["name"])

	// delete con body {id}: devuelve el registro eliminado
	resp, payload = doJSON(t, "DELETE", srv.URL+"/v1/brands", `{"id":1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, payload["ok"])

	// segunda vez: 404 con {message}
	resp, payload = doJSON(t, "DELETE", srv.URL+"/v1/brands", `{"id":1}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Marca no encontrada", payload["message"])
}

func TestValidationErrorsOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp, payload := doJSON(t, "POST", srv.URL+"/v1/brands", `{"name":"  "}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Nombre requerido", payload["message"])

	resp, _ = doJSON(t, "POST", srv.URL+"/v1/brands", `{not json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// duplicado
	doJSON(t, "POST", srv.URL+"/v1/brands", `{"name":"Toyota"}`)
	resp, payload = doJSON(t, "POST", srv.URL+"/v1/brands", `{"name":"toyota"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Marca ya existe", payload["message"])
}

func TestPriceMatrixOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	doJSON(t, "POST", srv.URL+"/v1/brands", `{"name":"Toyota"}`)
	doJSON(t, "POST", srv.URL+"/v1/models", `{"name":"Corolla","year":2024,"version":"XEI","brand_id":1}`)
	doJSON(t, "POST", srv.URL+"/v1/types", `{"name":"Sedán"}`)
	doJSON(t, "POST", srv.URL+"/v1/subtypes", `{"name":"Base","type_id":1}`)

	resp, payload := doJSON(t, "POST", srv.URL+"/v1/prices", `{"1":{"1":20000}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, payload["ok"])
	_, hasData := payload["data"]
	require.False(t, hasData, "el upsert masivo no devuelve data")

	listResp, err := http.Get(srv.URL + "/v1/prices")
	require.NoError(t, err)
	defer listResp.Body.Close()
	var rows []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&rows))
	require.Len(t, rows, 1)
	require.Equal(t, "Corolla", rows[0]["model_name"])
	require.Equal(t, "Toyota", rows[0]["brand_name"])
	require.Equal(t, "Base", rows[0]["subtype_name"])
	require.Equal(t, "Sedán", rows[0]["type_name"])
	require.Equal(t, float64(20000), rows[0]["price"])
}

func TestEmptyListIsJSONArray(t *testing.T) {
	srv := newTestServer(t)

	for _, route := range []string{"/v1/brands", "/v1/models", "/v1/types", "/v1/subtypes", "/v1/prices", "/v1/clients"} {
		resp, err := http.Get(srv.URL + route)
		require.NoError(t, err)
		var rows []any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows), route)
		resp.Body.Close()
		require.NotNil(t, rows, "%s debería devolver [], no null", route)
		require.Empty(t, rows)
	}
}

func TestRouteNotFoundAndMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	resp, payload := doJSON(t, "GET", srv.URL+"/v1/nope", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "La ruta solicitada no existe.", payload["message"])

	resp, payload = doJSON(t, "PATCH", srv.URL+"/v1/brands", `{}`)
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	require.Equal(t, "El método HTTP no está permitido para este recurso.", payload["message"])
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "ok", payload["status"])
}
