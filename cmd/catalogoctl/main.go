// catalogoctl es la CLI de administración del catálogo: opera contra la
// API HTTP del servicio (listar, crear, borrar, precios y seed).
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type client struct {
	BaseURL   string
	OutFormat string // "json" | "text"
	HTTP      *http.Client
}

func (c *client) do(method, path string, body []byte) (int, []byte, error) {
	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Println(string(body))
	} else {
		fmt.Printf("status=%d\n", status)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// entityCmd arma el subárbol list/create/delete para una entidad del
// catálogo. create recibe el body como JSON crudo (--data) para no
// duplicar acá el esquema de cada entidad.
func entityCmd(cl *client, use, short, route string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	var listQuery string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Listar " + use,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := route
			if listQuery != "" {
				path += "?" + strings.TrimPrefix(listQuery, "?")
			}
			status, body, err := cl.do("GET", path, nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("list fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	listCmd.Flags().StringVar(&listQuery, "query", "", "Query string de filtros (ej. q=corolla&active=true)")

	var createData string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Crear un registro (body JSON con --data)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if createData == "" {
				return fmt.Errorf("--data es requerido (body JSON)")
			}
			status, body, err := cl.do("POST", route, []byte(createData))
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("create fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	createCmd.Flags().StringVar(&createData, "data", "", "Body JSON del registro")

	var updateData string
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Editar un registro (body JSON con --data, incluye id)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if updateData == "" {
				return fmt.Errorf("--data es requerido (body JSON con id)")
			}
			status, body, err := cl.do("PUT", route, []byte(updateData))
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("update fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&updateData, "data", "", "Body JSON con los campos a editar")

	var deleteID int
	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Eliminar un registro por id",
		RunE: func(cmd *cobra.Command, args []string) error {
			if deleteID == 0 {
				return fmt.Errorf("--id es requerido")
			}
			b, _ := json.Marshal(map[string]int{"id": deleteID})
			status, body, err := cl.do("DELETE", route, b)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("delete fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	deleteCmd.Flags().IntVar(&deleteID, "id", 0, "ID del registro a eliminar")

	cmd.AddCommand(listCmd, createCmd, updateCmd, deleteCmd)
	return cmd
}

func main() {
	var (
		baseURL = envOr("CATALOGO_URL", "http://localhost:8080")
		out     = envOr("CATALOGO_OUT", "text")
		timeout = 30 * time.Second
	)

	root := &cobra.Command{
		Use:   "catalogoctl",
		Short: "CLI de administración del catálogo de vehículos",
	}

	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base del servicio (env CATALOGO_URL)")
	root.PersistentFlags().StringVar(&out, "out", out, "Formato de salida: json|text")

	cl := &client{BaseURL: baseURL, OutFormat: out, HTTP: &http.Client{Timeout: timeout}}

	root.AddCommand(
		entityCmd(cl, "brands", "Marcas", "/v1/brands"),
		entityCmd(cl, "models", "Modelos", "/v1/models"),
		entityCmd(cl, "types", "Tipos de vehículo", "/v1/types"),
		entityCmd(cl, "subtypes", "Subtipos", "/v1/subtypes"),
		entityCmd(cl, "clients", "Clientes", "/v1/clients"),
	)

	// precios: list + upsert masivo con la matriz completa
	pricesCmd := &cobra.Command{
		Use:   "prices",
		Short: "Matriz de precios",
	}
	var priceQuery string
	pricesListCmd := &cobra.Command{
		Use:   "list",
		Short: "Listar precios (join con modelo y subtipo)",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/v1/prices"
			if priceQuery != "" {
				path += "?" + strings.TrimPrefix(priceQuery, "?")
			}
			status, body, err := cl.do("GET", path, nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("list fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	pricesListCmd.Flags().StringVar(&priceQuery, "query", "", "Query string de filtros (ej. model_id=3)")

	var matrixFile string
	pricesSetCmd := &cobra.Command{
		Use:   "set",
		Short: "Upsert masivo de la matriz { model_id: { subtype_id: precio } }",
		RunE: func(cmd *cobra.Command, args []string) error {
			if matrixFile == "" {
				return fmt.Errorf("--file es requerido (JSON de la matriz)")
			}
			b, err := os.ReadFile(matrixFile)
			if err != nil {
				return err
			}
			status, body, err := cl.do("POST", "/v1/prices", b)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("set fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	pricesSetCmd.Flags().StringVar(&matrixFile, "file", "", "Archivo JSON con la matriz de precios")

	pricesCmd.AddCommand(pricesListCmd, pricesSetCmd)
	root.AddCommand(pricesCmd)

	// seed: carga un catálogo mínimo de ejemplo
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Cargar datos de ejemplo (marcas, tipos, modelos)",
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds := []struct {
				route string
				body  string
			}{
				{"/v1/brands", `{"name":"Toyota"}`},
				{"/v1/brands", `{"name":"Hyundai"}`},
				{"/v1/types", `{"name":"Sedán"}`},
				{"/v1/types", `{"name":"SUV"}`},
				{"/v1/models", `{"name":"Corolla","year":2024,"version":"XEI","brand_id":1}`},
				{"/v1/models", `{"name":"Tucson","year":2024,"version":"GL","brand_id":2}`},
			}
			for _, s := range seeds {
				status, body, err := cl.do("POST", s.route, []byte(s.body))
				if err != nil {
					return err
				}
				// "ya existe" no corta el seed, solo se informa
				if status/100 != 2 {
					fmt.Printf("skip %s: status=%d body=%s\n", s.route, status, strings.TrimSpace(string(body)))
					continue
				}
				cl.print(status, body)
			}
			return nil
		},
	}
	root.AddCommand(seedCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
