package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/preston-bernstein/nba-recipes-service/internal/gateway"
	"github.com/preston-bernstein/nba-recipes-service/internal/testutil"
)

type gatewayFixture struct {
	mux     *http.ServeMux
	handler *GatewayHandler
}

func newGatewayFixture(t *testing.T, nba, rec http.Handler) gatewayFixture {
	t.Helper()
	nbaSrv := httptest.NewServer(nba)
	recSrv := httptest.NewServer(rec)
	t.Cleanup(nbaSrv.Close)
	t.Cleanup(recSrv.Close)
	return gatewayFixtureFor(t, nbaSrv.URL, recSrv.URL)
}

func gatewayFixtureFor(t *testing.T, nbaURL, recURL string) gatewayFixture {
	t.Helper()
	nbaTarget, err := url.Parse(nbaURL)
	if err != nil {
		t.Fatalf("parse nba url: %v", err)
	}
	recTarget, err := url.Parse(recURL)
	if err != nil {
		t.Fatalf("parse recipes url: %v", err)
	}

	client := gateway.NewClient(gateway.Config{NBABaseURL: nbaURL, RecipesBaseURL: recURL})
	h := NewGatewayHandler(client, nbaTarget, recTarget, nil)
	h.pick = func(n int) int { return n - 1 }

	mux := http.NewServeMux()
	mux.Handle("/nba/", h.NBAProxy())
	mux.Handle("/recipes/", h.RecipesProxy())
	mux.HandleFunc("/status", h.Status)
	mux.HandleFunc("/services-status", h.ServicesStatus)
	mux.HandleFunc("/recipe-by-team/{identifier...}", h.RecipeByTeam)
	mux.HandleFunc("/recipe-by-player/{identifier...}", h.RecipeByPlayer)
	mux.HandleFunc("/recipe-starting-with-team/{identifier...}", h.RecipeStartingWithTeam)
	return gatewayFixture{mux: mux, handler: h}
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func nbaStub() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", jsonHandler(http.StatusOK, `{"status":"Service is up and running"}`))
	mux.HandleFunc("/getTeamInfo/{identifier...}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("identifier") {
		case "1", "Atlanta Hawks":
			jsonHandler(http.StatusOK, `{"id":1,"name":"Atlanta Hawks","city":"Atlanta","nickname":"Hawks"}`)(w, r)
		case "2":
			jsonHandler(http.StatusOK, `{"id":2,"name":"boston Celtics","city":"Boston","nickname":"Celtics"}`)(w, r)
		case "3":
			jsonHandler(http.StatusOK, `{"id":3,"name":"","city":"N/A","nickname":"N/A"}`)(w, r)
		default:
			jsonHandler(http.StatusNotFound, `{"error":"Team not found"}`)(w, r)
		}
	})
	mux.HandleFunc("/getPlayerInfo/{identifier...}", jsonHandler(http.StatusOK, `{"id":56,"name":"Trae Young","height":"1.85","weight":null}`))
	return mux
}

func recipesStub(body string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", jsonHandler(http.StatusOK, `{"status":"Recipes service is up and running"}`))
	mux.HandleFunc("/getRecipes", jsonHandler(http.StatusOK, body))
	return mux
}

const twoRecipes = `[{"id":1,"name":"Apple pie","ingredients":"apples","instructions":"bake"},` +
	`{"id":2,"name":"Brownies","ingredients":"cocoa","instructions":"bake"}]`

func TestGatewayStatus(t *testing.T) {
	f := newGatewayFixture(t, nbaStub(), recipesStub("[]"))
	rr := testutil.Serve(f.mux, http.MethodGet, "/status", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Body.String(); got != "{\"message\":\"Gateway is running\"}\n" {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestServicesStatusPassesBodiesThrough(t *testing.T) {
	f := newGatewayFixture(t, nbaStub(), recipesStub("[]"))
	rr := testutil.Serve(f.mux, http.MethodGet, "/services-status", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["nbaService"]["status"] != "Service is up and running" {
		t.Fatalf("unexpected nba status %v", resp["nbaService"])
	}
	if resp["recipesService"]["status"] != "Recipes service is up and running" {
		t.Fatalf("unexpected recipes status %v", resp["recipesService"])
	}
}

func TestRecipeByTeamPicksRecipe(t *testing.T) {
	f := newGatewayFixture(t, nbaStub(), recipesStub(twoRecipes))
	rr := testutil.Serve(f.mux, http.MethodGet, "/recipe-by-team/1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp teamRecipe
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Team.Name != "Atlanta Hawks" {
		t.Fatalf("unexpected team %+v", resp.Team)
	}
	if resp.Recipe == nil || resp.Recipe.Name != "Brownies" {
		t.Fatalf("expected picker to choose the last recipe, got %+v", resp.Recipe)
	}
}

func TestRecipeByTeamNullWhenNoRecipes(t *testing.T) {
	f := newGatewayFixture(t, nbaStub(), recipesStub("[]"))
	rr := testutil.Serve(f.mux, http.MethodGet, "/recipe-by-team/Atlanta%20Hawks", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	if v, ok := resp["recipe"]; !ok || v != nil {
		t.Fatalf("expected null recipe, got %v", v)
	}
}

func TestRecipeByPlayer(t *testing.T) {
	f := newGatewayFixture(t, nbaStub(), recipesStub(twoRecipes))
	rr := testutil.Serve(f.mux, http.MethodGet, "/recipe-by-player/56", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp playerRecipe
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Player.ID != 56 || resp.Recipe == nil {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestRecipeByTeamForwardsDownstreamStatus(t *testing.T) {
	f := newGatewayFixture(t, nbaStub(), recipesStub(twoRecipes))
	rr := testutil.Serve(f.mux, http.MethodGet, "/recipe-by-team/999", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	var resp struct {
		Message string            `json:"message"`
		Error   map[string]string `json:"error"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Message != "Error forwarding the request" || resp.Error["error"] != "Team not found" {
		t.Fatalf("unexpected body %+v", resp)
	}
}

func TestRecipeStartingWithTeam(t *testing.T) {
	f := newGatewayFixture(t, nbaStub(), recipesStub(twoRecipes))

	rr := testutil.Serve(f.mux, http.MethodGet, "/recipe-starting-with-team/1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp teamRecipe
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Recipe == nil || resp.Recipe.Name != "Apple pie" {
		t.Fatalf("expected Apple pie, got %+v", resp.Recipe)
	}

	rr = testutil.Serve(f.mux, http.MethodGet, "/recipe-starting-with-team/2", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Recipe == nil || resp.Recipe.Name != "Brownies" {
		t.Fatalf("expected lower-case initial to match Brownies, got %+v", resp.Recipe)
	}
}

func TestRecipeStartingWithTeamMisses(t *testing.T) {
	f := newGatewayFixture(t, nbaStub(), recipesStub(`[{"id":1,"name":"Zucchini","ingredients":"z","instructions":"z"}]`))

	rr := testutil.Serve(f.mux, http.MethodGet, "/recipe-starting-with-team/1", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["message"] != "No recipe found starting with the letter A" {
		t.Fatalf("unexpected message %q", resp["message"])
	}

	rr = testutil.Serve(f.mux, http.MethodGet, "/recipe-starting-with-team/3", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	testutil.DecodeJSON(t, rr, &resp)
	if resp["message"] != "Team not found" {
		t.Fatalf("unexpected message %q", resp["message"])
	}
}

func TestProxyStripsPrefix(t *testing.T) {
	var seenPath string
	nba := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenPath = r.URL.Path
		jsonHandler(http.StatusOK, `[]`)(w, r)
	})
	f := newGatewayFixture(t, nba, recipesStub("[]"))

	rr := testutil.Serve(f.mux, http.MethodGet, "/nba/getTeamsInfo", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if seenPath != "/getTeamsInfo" {
		t.Fatalf("expected stripped path, got %q", seenPath)
	}
}

func TestProxyForwardsMethodAndBody(t *testing.T) {
	rec := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/addRecipes" {
			t.Errorf("unexpected forwarded request %s %s", r.Method, r.URL.Path)
		}
		jsonHandler(http.StatusCreated, `{"message":"Recipes added successfully"}`)(w, r)
	})
	f := newGatewayFixture(t, nbaStub(), rec)

	rr := testutil.ServeJSON(f.mux, http.MethodPost, "/recipes/addRecipes", `[]`)
	testutil.AssertStatus(t, rr, http.StatusCreated)
}

func TestUnreachableDownstreamIs502(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	f := gatewayFixtureFor(t, deadURL, deadURL)

	rr := testutil.Serve(f.mux, http.MethodGet, "/nba/status", nil)
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["message"] != "Error forwarding the request" || resp["error"] == "" {
		t.Fatalf("unexpected proxy error body %v", resp)
	}

	rr = testutil.Serve(f.mux, http.MethodGet, "/recipe-by-team/1", nil)
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
	rr = testutil.Serve(f.mux, http.MethodGet, "/services-status", nil)
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}

func TestProxyForwardsRequestID(t *testing.T) {
	var seen string
	nba := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-ID")
		jsonHandler(http.StatusOK, `{}`)(w, r)
	})
	f := newGatewayFixture(t, nba, recipesStub("[]"))

	req := httptest.NewRequest(http.MethodGet, "/nba/status", nil)
	req.Header.Set("X-Request-ID", "gw-1")
	testutil.AssertStatus(t, testutil.ServeRequest(f.mux, req), http.StatusOK)
	if seen != "gw-1" {
		t.Fatalf("expected request id to reach the NBA service, got %q", seen)
	}
}
