package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/frota/internal/apitest"
	"github.com/alexisbeaulieu97/frota/internal/screens"
	"github.com/alexisbeaulieu97/frota/internal/validation"
	"github.com/alexisbeaulieu97/frota/internal/vehicle"
)

func fleet() []vehicle.Vehicle {
	return []vehicle.Vehicle{
		{Placa: "ABC1234", Marca: "Fiat", Modelo: "Uno", Ano: "2010", Cor: "Azul"},
		{Placa: "DEF1G23", Marca: "Chevrolet", Modelo: "Onix", Ano: "2022", Cor: "Prata"},
		{Placa: "GHI-5678", Marca: "Volkswagen", Modelo: "Gol", Ano: "2015", Cor: "Branco"},
	}
}

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FROTA_COLOR_SCHEME", "light")
	t.Setenv("FROTA_API_URL", "")
	t.Setenv("FROTA_LOG_LEVEL", "")
	t.Setenv("FROTA_DATA_DIR", "")
	return home
}

func execute(t *testing.T, srv *apitest.Server, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(""))
	if srv != nil {
		args = append(args, "--api-url", srv.URL)
	}
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestListCommand_TableNewestFirst(t *testing.T) {
	setupHome(t)
	srv := apitest.NewServer(t, fleet()...)

	out, err := execute(t, srv, "list")
	require.NoError(t, err)

	require.Contains(t, out, "PLACA")
	gol := strings.Index(out, "GHI-5678")
	onix := strings.Index(out, "DEF1G23")
	uno := strings.Index(out, "ABC1234")
	require.True(t, gol >= 0 && onix >= 0 && uno >= 0)
	assert.Less(t, gol, onix)
	assert.Less(t, onix, uno)
}

func TestListCommand_Search(t *testing.T) {
	setupHome(t)
	srv := apitest.NewServer(t, fleet()...)

	out, err := execute(t, srv, "list", "--search", "  PRATA ")
	require.NoError(t, err)
	assert.Contains(t, out, "Onix")
	assert.NotContains(t, out, "Uno")

	out, err = execute(t, srv, "list", "--search", "tesla")
	require.NoError(t, err)
	assert.Contains(t, out, `No vehicles match "tesla".`)
}

func TestListCommand_JSON(t *testing.T) {
	setupHome(t)
	srv := apitest.NewServer(t, fleet()...)

	out, err := execute(t, srv, "list", "--json")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, 3, payload.Count)
	require.Len(t, payload.Vehicles, 3)
	assert.Equal(t, vehicle.ID("3"), payload.Vehicles[0].ID)
}

func TestListCommand_Empty(t *testing.T) {
	setupHome(t)
	srv := apitest.NewServer(t)

	out, err := execute(t, srv, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No vehicles registered yet.")
}

func TestListCommand_ServerError(t *testing.T) {
	setupHome(t)
	srv := apitest.NewServer(t, fleet()...)
	srv.FailWith(http.StatusInternalServerError)

	_, err := execute(t, srv, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to list")
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "--api-url")
}

func TestShowCommand(t *testing.T) {
	setupHome(t)
	srv := apitest.NewServer(t, fleet()...)

	out, err := execute(t, srv, "show", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Placa:   DEF1G23")
	assert.Contains(t, out, "Modelo:  Onix")

	_, err = execute(t, srv, "show", "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Contains(t, err.Error(), "frota list")
}

func TestAddCommand_Success(t *testing.T) {
	setupHome(t)
	srv := apitest.NewServer(t)

	out, err := execute(t, srv, "add", "--placa", "abc1d23", "--marca", "fiat", "--modelo", "Argo", "--ano", "2023", "--cor", "Vermelho")
	require.NoError(t, err)
	assert.Contains(t, out, screens.MsgCreated)
	assert.Contains(t, out, "ABC1D23")

	records := srv.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "ABC1D23", records[0].Placa)
	assert.Equal(t, "Fiat", records[0].Marca)
}

func TestAddCommand_ValidationBlocksRequest(t *testing.T) {
	setupHome(t)
	srv := apitest.NewServer(t)

	_, err := execute(t, srv, "add", "--placa", "AB12", "--marca", "Fiat", "--modelo", "Argo", "--ano", "2023", "--cor", "Vermelho")
	require.Error(t, err)
	assert.Contains(t, err.Error(), validation.MsgInvalidPlate)

	_, err = execute(t, srv, "add", "--placa", "ABC1234")
	require.Error(t, err)
	assert.Contains(t, err.Error(), validation.MsgRequiredFields)

	assert.Empty(t, srv.Requests())
}

func TestEditCommand_ChangesOnlyGivenFields(t *testing.T) {
	setupHome(t)
	srv := apitest.NewServer(t, fleet()...)

	out, err := execute(t, srv, "edit", "1", "--cor", "Preto")
	require.NoError(t, err)
	assert.Contains(t, out, screens.MsgUpdated)
	assert.Contains(t, out, "-cor: Azul\n")
	assert.Contains(t, out, "+cor: Preto\n")
	assert.Contains(t, out, " modelo: Uno\n")

	records := srv.Records()
	require.Len(t, records, 3)
	var uno vehicle.Vehicle
	for _, r := range records {
		if r.ID == "1" {
			uno = r
		}
	}
	assert.Equal(t, "Preto", uno.Cor)
	assert.Equal(t, "Uno", uno.Modelo)
	assert.Equal(t, "ABC1234", uno.Placa)
}

func TestEditCommand_RequiresAField(t *testing.T) {
	setupHome(t)
	srv := apitest.NewServer(t, fleet()...)

	_, err := execute(t, srv, "edit", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no field to change")
	assert.Empty(t, srv.Requests())
}

func TestRemoveCommand(t *testing.T) {
	setupHome(t)
	srv := apitest.NewServer(t, fleet()...)

	_, err := execute(t, srv, "remove", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
	assert.Len(t, srv.Records(), 3)

	out, err := execute(t, srv, "remove", "2", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, screens.MsgDeleted)
	assert.Len(t, srv.Records(), 2)

	_, err = execute(t, srv, "remove", "2", "--force")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoginCommand(t *testing.T) {
	setupHome(t)

	out, err := execute(t, nil, "login", "--email", "frota@empresa.com", "--senha", "segredo")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as frota@empresa.com")

	_, err = execute(t, nil, "login", "--email", "ab.c", "--senha", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), validation.MsgInvalidEmail)

	_, err = execute(t, nil, "login")
	require.Error(t, err)
	assert.Contains(t, err.Error(), validation.MsgRequiredFields)
}

func TestThemeCommand_TogglePersists(t *testing.T) {
	home := setupHome(t)

	out, err := execute(t, nil, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, err = execute(t, nil, "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	data, err := os.ReadFile(filepath.Join(home, ".frota", "prefs.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"dark"`)

	t.Setenv("FROTA_COLOR_SCHEME", "light")
	out, err = execute(t, nil, "theme", "show")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out, "stored choice wins over the host scheme")
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	home := setupHome(t)
	srv := apitest.NewServer(t, fleet()...)

	path := filepath.Join(home, ".frota", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("api_url: "+srv.URL+"\ntimeout: 2s\n"), 0o644))

	out, err := execute(t, nil, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "GHI-5678")

	_, err = execute(t, nil, "list", "--api-url", "ftp://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating configuration")
}

func TestConfigFileSyntaxError(t *testing.T) {
	home := setupHome(t)

	path := filepath.Join(home, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: [\n"), 0o644))

	_, err := execute(t, nil, "list", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading "+path)
}
